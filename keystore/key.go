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

package keystore

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto"
	"github.com/icon-project/ICONKit/crypto/rand"
	"github.com/icon-project/ICONKit/crypto/signature"
	"github.com/icon-project/ICONKit/crypto/signature/secp256k1"
	"github.com/icon-project/ICONKit/metrics"
	"github.com/icon-project/ICONKit/util/byteutils"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/pborman/uuid"
	"github.com/sirupsen/logrus"
)

// EncryptKey encrypts a key using the specified scrypt parameters.
func EncryptKey(key signature.PrivateKey, password string, scryptN, scryptR, scryptP int) (*Keystore, error) {
	if key == nil {
		return nil, ErrNilKey
	}
	derivedKey, salt, err := crypto.ScryptWithSalt([]byte(password), nil, crypto.DefaultKeyLen, scryptN, scryptR, scryptP)
	if err != nil {
		return nil, err
	}
	defer byteutils.ZeroBytes(derivedKey)

	return newKeystore(key, derivedKey, KDFScrypt, KDFParamsJSON{
		DKLen: crypto.DefaultKeyLen,
		Salt:  byteutils.Bytes2Hex(salt),
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
	})
}

// EncryptKeyPBKDF2 encrypts a key with PBKDF2-HMAC-SHA256.
func EncryptKeyPBKDF2(key signature.PrivateKey, password string, rounds int) (*Keystore, error) {
	if key == nil {
		return nil, ErrNilKey
	}
	salt := rand.GetEntropyCSPRNG(crypto.SaltLength)
	derivedKey, err := crypto.PBKDF2(crypto.PRFSHA256, []byte(password), salt, crypto.DefaultKeyLen, rounds)
	if err != nil {
		return nil, err
	}
	defer byteutils.ZeroBytes(derivedKey)

	return newKeystore(key, derivedKey, KDFPBKDF2, KDFParamsJSON{
		DKLen: crypto.DefaultKeyLen,
		Salt:  byteutils.Bytes2Hex(salt),
		C:     rounds,
		PRF:   string(crypto.PRFSHA256),
	})
}

func newKeystore(key signature.PrivateKey, derivedKey []byte, kdf string, params KDFParamsJSON) (*Keystore, error) {
	keyBytes, err := key.Encoded()
	if err != nil {
		return nil, err
	}
	defer byteutils.ZeroBytes(keyBytes)

	addr, err := common.PublicKeyToAddress(key.PublicKey())
	if err != nil {
		return nil, err
	}
	enc, err := crypto.Encrypt(derivedKey, keyBytes)
	if err != nil {
		return nil, err
	}
	return &Keystore{
		Version: Version,
		ID:      uuid.NewRandom().String(),
		Address: addr,
		Crypto: CryptoJSON{
			CipherText:   enc.CipherText,
			CipherParams: CipherParamsJSON{IV: enc.IV},
			Cipher:       CipherAES128CTR,
			KDF:          kdf,
			KDFParams:    params,
			MAC:          enc.MAC,
		},
		CoinType: CoinType,
	}, nil
}

// Parse decodes a keystore JSON blob and validates its shape.
func Parse(data []byte) (*Keystore, error) {
	ks := new(Keystore)
	if err := json.Unmarshal(data, ks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKeystore, err)
	}
	if err := ks.validate(); err != nil {
		return nil, err
	}
	return ks, nil
}

func (ks *Keystore) validate() error {
	if ks.Version != Version {
		return fmt.Errorf("%w: version not supported: %d", ErrMalformedKeystore, ks.Version)
	}
	if !common.IsAddress(ks.Address.String()) {
		return fmt.Errorf("%w: invalid address %q", ErrMalformedKeystore, ks.Address)
	}
	if ks.Crypto.Cipher != CipherAES128CTR {
		return fmt.Errorf("%w: cipher not supported: %s", ErrMalformedKeystore, ks.Crypto.Cipher)
	}
	if ks.Crypto.KDF != KDFScrypt && ks.Crypto.KDF != KDFPBKDF2 {
		return fmt.Errorf("%w: unsupported KDF: %s", ErrMalformedKeystore, ks.Crypto.KDF)
	}
	return nil
}

// JSON encodes the keystore.
func (ks *Keystore) JSON() ([]byte, error) {
	return json.Marshal(ks)
}

// Extract decrypts the private key. The MAC is checked before decryption
// and the address of the decrypted key is checked after it.
func (ks *Keystore) Extract(password string) (*secp256k1.PrivateKey, error) {
	if err := ks.validate(); err != nil {
		return nil, err
	}
	cipherText, err := byteutils.Hex2Bytes(ks.Crypto.CipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrMalformedKeystore, err)
	}
	iv, err := byteutils.Hex2Bytes(ks.Crypto.CipherParams.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: iv: %v", ErrMalformedKeystore, err)
	}
	mac, err := byteutils.Hex2Bytes(ks.Crypto.MAC)
	if err != nil {
		return nil, fmt.Errorf("%w: mac: %v", ErrMalformedKeystore, err)
	}

	derivedKey, err := ks.deriveKey(password)
	if err != nil {
		return nil, err
	}
	defer byteutils.ZeroBytes(derivedKey)

	if err := crypto.VerifyMAC(derivedKey, cipherText, mac); err != nil {
		metrics.Inc(metrics.DecryptFailCounter)
		logging.WithFields(logrus.Fields{
			"address": ks.Address,
		}).Debug("Keystore MAC mismatch.")
		return nil, ErrMACMismatch
	}

	plainText, _, err := crypto.Decrypt(derivedKey, cipherText, iv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKeystore, err)
	}
	defer byteutils.ZeroBytes(plainText)

	key, err := secp256k1.NewPrivateKey(plainText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKeystore, err)
	}
	addr, err := common.PublicKeyToAddress(key.PublicKey())
	if err != nil {
		return nil, err
	}
	if !addr.Equals(ks.Address) {
		metrics.Inc(metrics.DecryptFailCounter)
		key.Clear()
		return nil, ErrWrongPassphrase
	}
	return key, nil
}

func (ks *Keystore) deriveKey(password string) ([]byte, error) {
	params := ks.Crypto.KDFParams
	salt, err := byteutils.Hex2Bytes(params.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrMalformedKeystore, err)
	}
	if params.DKLen < crypto.DerivedKeyLength || params.DKLen > MaxDKLen {
		return nil, fmt.Errorf("%w: dklen %d", ErrMalformedKeystore, params.DKLen)
	}
	if err := checkKDFParams(ks.Crypto.KDF, params); err != nil {
		return nil, err
	}

	var derivedKey []byte
	switch ks.Crypto.KDF {
	case KDFScrypt:
		derivedKey, err = crypto.Scrypt([]byte(password), salt, params.DKLen, params.N, params.R, params.P)
	case KDFPBKDF2:
		prf := crypto.PRF(strings.ToLower(params.PRF))
		if prf == "" {
			prf = crypto.PRFSHA256
		}
		derivedKey, err = crypto.PBKDF2(prf, []byte(password), salt, params.DKLen, params.C)
	default:
		return nil, fmt.Errorf("%w: unsupported KDF: %s", ErrMalformedKeystore, ks.Crypto.KDF)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKeystore, err)
	}
	key := byteutils.CopyBytes(derivedKey[:crypto.DerivedKeyLength])
	byteutils.ZeroBytes(derivedKey)
	return key, nil
}

func checkKDFParams(kdf string, params KDFParamsJSON) error {
	switch kdf {
	case KDFScrypt:
		if params.N <= 1 || params.R <= 0 || params.P <= 0 || params.P > MaxScryptP {
			return fmt.Errorf("%w: scrypt params n=%d r=%d p=%d", ErrMalformedKeystore, params.N, params.R, params.P)
		}
		if params.N > MaxScryptMemory/128/params.R {
			return fmt.Errorf("%w: scrypt memory 128*%d*%d exceeds %d", ErrMalformedKeystore, params.N, params.R, MaxScryptMemory)
		}
	case KDFPBKDF2:
		if params.C <= 0 || params.C > MaxPBKDF2Rounds {
			return fmt.Errorf("%w: pbkdf2 rounds %d", ErrMalformedKeystore, params.C)
		}
	}
	return nil
}
