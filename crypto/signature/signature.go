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

package signature

import (
	"github.com/icon-project/ICONKit/crypto/signature/algorithm"
)

// Scheme is a recoverable signature scheme. Implementations are stateless and
// safe for concurrent use.
type Scheme interface {
	Algorithm() algorithm.Algorithm

	GenerateKey() (PrivateKey, error)

	// Recover returns the public key that produced sig over hash.
	Recover(hash []byte, sig []byte) (PublicKey, error)

	// Verify reports whether sig over hash was made by pub.
	Verify(pub PublicKey, hash []byte, sig []byte) bool
}
