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

package crypto

import (
	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto/signature"
	"github.com/icon-project/ICONKit/crypto/signature/algorithm"
	"github.com/icon-project/ICONKit/crypto/signature/secp256k1"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
)

// SchemeOf returns the signature scheme of alg.
func SchemeOf(alg algorithm.Algorithm) (signature.Scheme, error) {
	switch alg {
	case algorithm.SECP256K1:
		return secp256k1.Scheme{}, nil
	default:
		return nil, algorithm.ErrInvalidCryptoAlgorithm
	}
}

// GenerateKey generates a private key of alg.
func GenerateKey(alg algorithm.Algorithm) (signature.PrivateKey, error) {
	scheme, err := SchemeOf(alg)
	if err != nil {
		return nil, err
	}
	return scheme.GenerateKey()
}

// CheckCryptoAlgorithm checks algorithm.
func CheckCryptoAlgorithm(alg algorithm.Algorithm) error {
	_, err := SchemeOf(alg)
	return err
}

// CheckAddress signs a fresh timestamp with key, recovers the signer and
// reports whether the recovered address equals address.
func CheckAddress(key signature.PrivateKey, address common.Address) bool {
	scheme, err := SchemeOf(key.Algorithm())
	if err != nil {
		return false
	}
	msg := Sha3256([]byte(common.MicroTimestampHex()))

	out, err := key.Sign(msg)
	if err != nil {
		logging.WithFields(logrus.Fields{
			"err": err,
		}).Debug("Failed to sign self-test message.")
		return false
	}
	pub, err := scheme.Recover(msg, out)
	if err != nil {
		return false
	}
	recovered, err := common.PublicKeyToAddress(pub)
	if err != nil {
		return false
	}
	return recovered.Equals(address)
}
