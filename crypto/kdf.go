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
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"time"

	"github.com/icon-project/ICONKit/crypto/rand"
	"github.com/icon-project/ICONKit/metrics"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// PRF is the pseudo random function used by PBKDF2.
type PRF string

// PRFs
const (
	PRFSHA1   PRF = "hmac-sha1"
	PRFSHA256 PRF = "hmac-sha256"
	PRFSHA512 PRF = "hmac-sha512"
)

// Scrypt defaults.
const (
	DefaultScryptN = 4096
	DefaultScryptR = 6
	DefaultScryptP = 1
	DefaultKeyLen  = 32
	SaltLength     = 32
)

func (p PRF) hash() (func() hash.Hash, error) {
	switch p {
	case PRFSHA1:
		return sha1.New, nil
	case PRFSHA256:
		return sha256.New, nil
	case PRFSHA512:
		return sha512.New, nil
	}
	return nil, ErrUnsupportedPRF
}

// PBKDF2 derives keyLen bytes from password and salt.
func PBKDF2(prf PRF, password, salt []byte, keyLen, rounds int) ([]byte, error) {
	h, err := prf.hash()
	if err != nil {
		return nil, err
	}
	if keyLen <= 0 || rounds <= 0 {
		logging.WithFields(logrus.Fields{
			"keyLen": keyLen,
			"rounds": rounds,
		}).Debug("Invalid pbkdf2 parameters.")
		return nil, ErrKeyDerivation
	}
	defer metrics.Since(metrics.PBKDF2Timer, time.Now())
	return pbkdf2.Key(password, salt, rounds, keyLen, h), nil
}

// Scrypt derives keyLen bytes from password and salt.
func Scrypt(password, salt []byte, keyLen, n, r, p int) ([]byte, error) {
	defer metrics.Since(metrics.ScryptTimer, time.Now())
	key, err := scrypt.Key(password, salt, n, r, p, keyLen)
	if err != nil {
		logging.WithFields(logrus.Fields{
			"n":   n,
			"r":   r,
			"p":   p,
			"err": err,
		}).Debug("Failed to derive scrypt key.")
		return nil, ErrKeyDerivation
	}
	return key, nil
}

// ScryptWithSalt derives a key with scrypt. A nil salt is replaced with fresh random bytes.
// The salt actually used is returned with the key.
func ScryptWithSalt(password, salt []byte, keyLen, n, r, p int) (key []byte, usedSalt []byte, err error) {
	if salt == nil {
		salt = rand.GetEntropyCSPRNG(SaltLength)
	}
	key, err = Scrypt(password, salt, keyLen, n, r, p)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

// DefaultScrypt derives a key with the default scrypt parameters.
func DefaultScrypt(password, salt []byte) ([]byte, []byte, error) {
	return ScryptWithSalt(password, salt, DefaultKeyLen, DefaultScryptN, DefaultScryptR, DefaultScryptP)
}
