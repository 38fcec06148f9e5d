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
	"github.com/icon-project/ICONKit/crypto/signature"
	"github.com/icon-project/ICONKit/crypto/signature/algorithm"
)

// Scheme is recoverable ECDSA over secp256k1 with [R || S || V] signatures.
type Scheme struct{}

var _ signature.Scheme = Scheme{}

// Algorithm implements signature.Scheme.
func (Scheme) Algorithm() algorithm.Algorithm {
	return algorithm.SECP256K1
}

// GenerateKey implements signature.Scheme.
func (Scheme) GenerateKey() (signature.PrivateKey, error) {
	return GeneratePrivateKey()
}

// Recover implements signature.Scheme.
func (Scheme) Recover(hash []byte, sig []byte) (signature.PublicKey, error) {
	pub, err := RecoverPubkey(hash, sig)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(pub)
}

// Verify implements signature.Scheme.
func (Scheme) Verify(pub signature.PublicKey, hash []byte, sig []byte) bool {
	if pub == nil || pub.Algorithm() != algorithm.SECP256K1 {
		return false
	}
	b, err := pub.Encoded()
	if err != nil {
		return false
	}
	return VerifySignature(b, hash, sig)
}
