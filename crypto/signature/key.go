// Copyright (C) 2018  MediBloc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>

// Package signature defines keys and recoverable signature schemes.
package signature

import (
	"github.com/icon-project/ICONKit/crypto/signature/algorithm"
)

// PrivateKey signs 32 byte hashes.
type PrivateKey interface {
	Algorithm() algorithm.Algorithm

	// Encoded returns the secret scalar.
	Encoded() ([]byte, error)
	Decode(data []byte) error

	// Clear zeroes the secret.
	Clear()

	PublicKey() PublicKey

	// Sign returns a recoverable signature of hash.
	Sign(hash []byte) ([]byte, error)
}

// PublicKey is the verifying half of a key pair.
type PublicKey interface {
	Algorithm() algorithm.Algorithm

	// Encoded returns the uncompressed encoding, format byte included.
	Encoded() ([]byte, error)

	// Raw returns the encoding without the format byte. Addresses hash this form.
	Raw() ([]byte, error)

	Compressed() ([]byte, error)

	// Decode accepts compressed, uncompressed and raw encodings.
	Decode(data []byte) error
	Clear()
}
