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
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"

	"github.com/icon-project/ICONKit/crypto/rand"
	"github.com/icon-project/ICONKit/util/byteutils"
)

// DerivedKeyLength is the key length consumed by Encrypt and Decrypt.
const DerivedKeyLength = 32

// EncryptedData is the output of Encrypt. Fields are hex encoded.
type EncryptedData struct {
	CipherText string
	MAC        string
	IV         string
}

// AESCTRXOR encrypts or decrypts inText with AES in CTR mode.
func AESCTRXOR(key, inText, iv []byte) ([]byte, error) {
	aesBlock, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != aes.BlockSize {
		return nil, ErrInvalidIV
	}
	stream := cipher.NewCTR(aesBlock, iv)
	outText := make([]byte, len(inText))
	stream.XORKeyStream(outText, inText)
	return outText, nil
}

// Encrypt encrypts plaintext with AES-128-CTR under derivedKey[:16] and a fresh IV.
// The MAC is Keccak-256 of derivedKey[16:32] and the ciphertext.
func Encrypt(derivedKey, plaintext []byte) (*EncryptedData, error) {
	if len(derivedKey) != DerivedKeyLength {
		return nil, ErrInvalidDerivedKey
	}
	iv := rand.GetEntropyCSPRNG(aes.BlockSize)
	cipherText, err := AESCTRXOR(derivedKey[:16], plaintext, iv)
	if err != nil {
		return nil, err
	}
	return &EncryptedData{
		CipherText: byteutils.Bytes2Hex(cipherText),
		MAC:        byteutils.Bytes2Hex(MAC(derivedKey, cipherText)),
		IV:         byteutils.Bytes2Hex(iv),
	}, nil
}

// Decrypt decrypts cipherText and returns the plaintext with the MAC computed over cipherText.
// Comparing the MAC is left to the caller.
func Decrypt(derivedKey, cipherText, iv []byte) (plaintext []byte, mac []byte, err error) {
	if len(derivedKey) != DerivedKeyLength {
		return nil, nil, ErrInvalidDerivedKey
	}
	plaintext, err = AESCTRXOR(derivedKey[:16], cipherText, iv)
	if err != nil {
		return nil, nil, err
	}
	return plaintext, MAC(derivedKey, cipherText), nil
}

// MAC computes the keystore MAC of cipherText.
func MAC(derivedKey, cipherText []byte) []byte {
	return Keccak256(derivedKey[16:32], cipherText)
}

// VerifyMAC compares the expected MAC with the one computed from derivedKey and cipherText.
func VerifyMAC(derivedKey, cipherText, mac []byte) error {
	if len(derivedKey) != DerivedKeyLength {
		return ErrInvalidDerivedKey
	}
	if subtle.ConstantTimeCompare(MAC(derivedKey, cipherText), mac) != 1 {
		return ErrMACMismatch
	}
	return nil
}
