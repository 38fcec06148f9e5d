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

package secp256k1

import (
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/icon-project/ICONKit/crypto/signature/algorithm"
)

// PublicKey is a secp256k1 point.
type PublicKey struct {
	publicKey *secp.PublicKey
}

// NewPublicKey parses a compressed, uncompressed or raw 64 byte public key.
func NewPublicKey(b []byte) (*PublicKey, error) {
	pub := new(PublicKey)
	if err := pub.Decode(b); err != nil {
		return nil, err
	}
	return pub, nil
}

// Algorithm implements signature.PublicKey.
func (k *PublicKey) Algorithm() algorithm.Algorithm {
	return algorithm.SECP256K1
}

// Encoded encodes to the 65 byte uncompressed format.
func (k *PublicKey) Encoded() ([]byte, error) {
	if k.publicKey == nil {
		return nil, ErrInvalidPublicKey
	}
	return k.publicKey.SerializeUncompressed(), nil
}

// Raw returns the 64 byte X||Y encoding without the format byte.
func (k *PublicKey) Raw() ([]byte, error) {
	b, err := k.Encoded()
	if err != nil {
		return nil, err
	}
	return b[1:], nil
}

// Decode parses a compressed, uncompressed or raw 64 byte encoding.
func (k *PublicKey) Decode(b []byte) error {
	if len(b) == RawPublicKeyLength {
		b = append([]byte{0x04}, b...)
	}
	pub, err := secp.ParsePubKey(b)
	if err != nil {
		return ErrInvalidPublicKey
	}
	k.publicKey = pub
	return nil
}

// Clear drops the point.
func (k *PublicKey) Clear() {
	k.publicKey = nil
}

// Compressed encodes to the 33 byte compressed format.
func (k *PublicKey) Compressed() ([]byte, error) {
	if k.publicKey == nil {
		return nil, ErrInvalidPublicKey
	}
	return k.publicKey.SerializeCompressed(), nil
}
