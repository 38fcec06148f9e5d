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

package transaction

import (
	"encoding/base64"
	"time"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto"
	"github.com/icon-project/ICONKit/crypto/signature/secp256k1"
	"github.com/icon-project/ICONKit/metrics"
	"github.com/icon-project/ICONKit/util/byteutils"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
)

// ParamSignature is the key of the signature in wire params.
const ParamSignature = "signature"

// Signer signs transaction hashes on behalf of an address.
type Signer interface {
	Address() common.Address
	SignHash(hash []byte) ([]byte, error)
}

// KeySigner signs with a bare private key.
type KeySigner struct {
	key     *secp256k1.PrivateKey
	address common.Address
}

// NewKeySigner returns a Signer for key.
func NewKeySigner(key *secp256k1.PrivateKey) (*KeySigner, error) {
	addr, err := common.PublicKeyToAddress(key.PublicKey())
	if err != nil {
		return nil, err
	}
	return &KeySigner{key: key, address: addr}, nil
}

// Address implements Signer.
func (s *KeySigner) Address() common.Address { return s.address }

// SignHash implements Signer.
func (s *KeySigner) SignHash(hash []byte) ([]byte, error) {
	defer metrics.Since(metrics.SignTimer, time.Now())
	return s.key.Sign(hash)
}

// SignedTransaction is a transaction with its hash and signature.
// Params is the exact parameter set sent over the wire, signature included.
type SignedTransaction struct {
	Transaction Transaction
	Hash        string
	Signature   string
	Params      map[string]interface{}
}

// Sign hashes the canonical preimage of tx and signs it with signer.
func Sign(tx Transaction, signer Signer) (*SignedTransaction, error) {
	params, err := tx.Params()
	if err != nil {
		return nil, err
	}
	if !signer.Address().Equals(tx.from) {
		logging.WithFields(logrus.Fields{
			"from":   tx.from,
			"signer": signer.Address(),
		}).Debug("Signer does not own the sender address.")
		return nil, ErrSignerMismatch
	}
	preimage, err := Serialize(params)
	if err != nil {
		return nil, err
	}
	hash := crypto.Sha3256([]byte(preimage))

	sig, err := signer.SignHash(hash)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(sig)
	params[ParamSignature] = encoded

	return &SignedTransaction{
		Transaction: tx,
		Hash:        byteutils.Bytes2Hex(hash),
		Signature:   encoded,
		Params:      params,
	}, nil
}

// TxHash returns the 0x prefixed hash as reported by the network.
func (s *SignedTransaction) TxHash() string {
	return "0x" + s.Hash
}

// Verify checks that the signature recovers to the sender address.
func (s *SignedTransaction) Verify() error {
	sig, err := base64.StdEncoding.DecodeString(s.Signature)
	if err != nil {
		return ErrInvalidSignature
	}
	hash, err := s.Transaction.HashBytes()
	if err != nil {
		return err
	}
	if byteutils.Bytes2Hex(hash) != s.Hash {
		return ErrInvalidSignature
	}
	pub, err := secp256k1.RecoverPubkey(hash, sig)
	if err != nil {
		return ErrInvalidSignature
	}
	addr, err := common.BytesToAddress(pub)
	if err != nil {
		return ErrInvalidSignature
	}
	if !addr.Equals(s.Transaction.From()) {
		return ErrInvalidSignature
	}
	return nil
}
