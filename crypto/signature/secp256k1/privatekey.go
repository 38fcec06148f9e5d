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
	"encoding/hex"

	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/icon-project/ICONKit/crypto/signature"
	"github.com/icon-project/ICONKit/crypto/signature/algorithm"
)

// PrivateKey secp256k1 private key
type PrivateKey struct {
	privateKey *secp.PrivateKey
}

// GeneratePrivateKey generate a new private key
func GeneratePrivateKey() (*PrivateKey, error) {
	for {
		key, err := secp.GeneratePrivateKey()
		if err != nil {
			return nil, err
		}
		if SeckeyVerify(key.Serialize()) {
			return &PrivateKey{privateKey: key}, nil
		}
	}
}

// NewPrivateKey returns a private key from a 32 byte scalar.
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	priv := new(PrivateKey)
	if err := priv.Decode(b); err != nil {
		return nil, err
	}
	return priv, nil
}

// NewPrivateKeyFromHex gets new private key from hex string.
func NewPrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return NewPrivateKey(b)
}

// Algorithm returns algorithm name.
func (k *PrivateKey) Algorithm() algorithm.Algorithm {
	return algorithm.SECP256K1
}

// Encoded encodes to bytes.
func (k *PrivateKey) Encoded() ([]byte, error) {
	if k.privateKey == nil {
		return nil, ErrInvalidPrivateKey
	}
	return k.privateKey.Serialize(), nil
}

// Hex returns the hex encoded scalar.
func (k *PrivateKey) Hex() string {
	b, err := k.Encoded()
	if err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}

// Decode decode data to key.
func (k *PrivateKey) Decode(b []byte) error {
	if !SeckeyVerify(b) {
		return ErrInvalidPrivateKey
	}
	k.privateKey = secp.PrivKeyFromBytes(b)
	return nil
}

// Clear clear key content.
func (k *PrivateKey) Clear() {
	if k.privateKey != nil {
		k.privateKey.Zero()
	}
}

// PublicKey returns public key.
func (k *PrivateKey) PublicKey() signature.PublicKey {
	return &PublicKey{publicKey: k.privateKey.PubKey()}
}

// Sign signs a 32 byte hash with private key.
func (k *PrivateKey) Sign(hash []byte) ([]byte, error) {
	if k.privateKey == nil {
		return nil, ErrInvalidPrivateKey
	}
	return Sign(hash, k.privateKey.Serialize())
}
