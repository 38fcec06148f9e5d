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

// Package wallet holds an unlocked key pair together with its optional keystore.
// A Wallet is owned by one goroutine at a time.
package wallet

import (
	"encoding/base64"
	"errors"
	"io/ioutil"
	"time"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto"
	"github.com/icon-project/ICONKit/crypto/signature"
	"github.com/icon-project/ICONKit/crypto/signature/secp256k1"
	"github.com/icon-project/ICONKit/keystore"
	"github.com/icon-project/ICONKit/metrics"
	"github.com/icon-project/ICONKit/util/byteutils"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
)

// Wallet owns a private key and optionally the keystore it was loaded from.
type Wallet struct {
	key      *secp256k1.PrivateKey
	pub      signature.PublicKey
	address  common.Address
	keystore *keystore.Keystore
}

// New returns a wallet with a freshly generated key.
func New() (*Wallet, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return fromKey(key)
}

// NewFromPrivateKey returns a wallet holding a copy of key.
func NewFromPrivateKey(key *secp256k1.PrivateKey) (*Wallet, error) {
	if key == nil {
		return nil, ErrInvalidPrivateKey
	}
	b, err := key.Encoded()
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	defer byteutils.ZeroBytes(b)
	cp, err := secp256k1.NewPrivateKey(b)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return fromKey(cp)
}

// NewFromHex returns a wallet for a hex encoded private key.
func NewFromHex(s string) (*Wallet, error) {
	key, err := secp256k1.NewPrivateKeyFromHex(byteutils.TrimHexPrefix(s))
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return fromKey(key)
}

// NewFromKeystore unlocks ks with password.
func NewFromKeystore(ks *keystore.Keystore, password string) (*Wallet, error) {
	key, err := ks.Extract(password)
	if err != nil {
		return nil, err
	}
	w, err := fromKey(key)
	if err != nil {
		return nil, err
	}
	if !w.address.Equals(ks.Address) {
		w.Lock()
		return nil, ErrWrongPassphrase
	}
	w.keystore = ks
	return w, nil
}

// Open loads the keystore file at path and unlocks it.
func Open(path, password string) (*Wallet, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ks, err := keystore.Parse(data)
	if err != nil {
		return nil, err
	}
	return NewFromKeystore(ks, password)
}

func fromKey(key *secp256k1.PrivateKey) (*Wallet, error) {
	pub := key.PublicKey()
	addr, err := common.PublicKeyToAddress(pub)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		key:     key,
		pub:     pub,
		address: addr,
	}, nil
}

// Address returns the wallet address.
func (w *Wallet) Address() common.Address {
	return w.address
}

// PublicKey returns the public key.
func (w *Wallet) PublicKey() signature.PublicKey {
	return w.pub
}

// PrivateKey returns the private key, or nil when locked. Lock clears it.
func (w *Wallet) PrivateKey() *secp256k1.PrivateKey {
	return w.key
}

// Keystore returns the attached keystore, or nil.
func (w *Wallet) Keystore() *keystore.Keystore {
	return w.keystore
}

// State returns keystore.Unlocked while the private key is held in memory.
func (w *Wallet) State() keystore.State {
	if w.key == nil {
		return keystore.Locked
	}
	return keystore.Unlocked
}

// Lock clears the private key. The keystore, if any, is kept for Unlock.
func (w *Wallet) Lock() {
	if w.key != nil {
		w.key.Clear()
		w.key = nil
	}
}

// Unlock decrypts the attached keystore with password.
func (w *Wallet) Unlock(password string) error {
	if w.keystore == nil {
		return ErrEmptyKeystore
	}
	key, err := w.keystore.Extract(password)
	if err != nil {
		return err
	}
	addr, err := common.PublicKeyToAddress(key.PublicKey())
	if err != nil {
		return err
	}
	if !addr.Equals(w.address) {
		key.Clear()
		return ErrWrongPassphrase
	}
	w.Lock()
	w.key = key
	return nil
}

// SignHash signs a 32 byte hash and returns the 65 byte recoverable signature.
func (w *Wallet) SignHash(hash []byte) ([]byte, error) {
	if w.key == nil {
		return nil, ErrLocked
	}
	defer metrics.Since(metrics.SignTimer, time.Now())
	return w.key.Sign(hash)
}

// Sign signs the SHA3-256 hash of data.
func (w *Wallet) Sign(data []byte) ([]byte, error) {
	return w.SignHash(crypto.Sha3256(data))
}

// GetSignature returns the base64 encoded signature of data.
func (w *Wallet) GetSignature(data []byte) (string, error) {
	sig, err := w.Sign(data)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// GenerateKeystore encrypts the key with the standard scrypt parameters and attaches the result.
func (w *Wallet) GenerateKeystore(password string) (*keystore.Keystore, error) {
	return w.GenerateKeystoreWithParams(password, keystore.StandardScryptN, keystore.StandardScryptR, keystore.StandardScryptP)
}

// GenerateKeystoreWithParams encrypts the key with the given scrypt parameters and attaches the result.
func (w *Wallet) GenerateKeystoreWithParams(password string, n, r, p int) (*keystore.Keystore, error) {
	if w.key == nil {
		return nil, ErrLocked
	}
	ks, err := keystore.EncryptKey(w.key, password, n, r, p)
	if err != nil {
		return nil, err
	}
	if !ks.Address.Equals(w.address) {
		return nil, ErrAddressMismatch
	}
	w.keystore = ks
	return ks, nil
}

// ChangePassword re-encrypts the keystore under newPassword. The keystore is
// replaced only after the new one decrypts to this wallet's address.
func (w *Wallet) ChangePassword(oldPassword, newPassword string) error {
	if w.keystore == nil {
		return ErrEmptyKeystore
	}
	key, err := w.keystore.Extract(oldPassword)
	if err != nil {
		return err
	}
	defer key.Clear()

	n, r, p := scryptParams(w.keystore)
	ks, err := keystore.EncryptKey(key, newPassword, n, r, p)
	if err != nil {
		return err
	}
	check, err := ks.Extract(newPassword)
	if err != nil {
		return err
	}
	defer check.Clear()
	addr, err := common.PublicKeyToAddress(check.PublicKey())
	if err != nil {
		return err
	}
	if !addr.Equals(w.address) || !ks.Address.Equals(w.address) {
		return ErrAddressMismatch
	}

	logging.WithFields(logrus.Fields{
		"address": w.address,
	}).Info("Keystore password changed.")
	w.keystore = ks
	return nil
}

func scryptParams(ks *keystore.Keystore) (n, r, p int) {
	params := ks.Crypto.KDFParams
	if ks.Crypto.KDF == keystore.KDFScrypt && params.N > 0 && params.R > 0 && params.P > 0 {
		return params.N, params.R, params.P
	}
	return keystore.StandardScryptN, keystore.StandardScryptR, keystore.StandardScryptP
}

// Save writes the keystore as JSON to path.
func (w *Wallet) Save(path string) error {
	if w.keystore == nil {
		return ErrEmptyKeystore
	}
	data, err := w.keystore.JSON()
	if err != nil {
		return err
	}
	return keystore.WriteFile(path, data)
}

// Load attaches the keystore stored at path.
func (w *Wallet) Load(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return w.LoadRaw(data)
}

// LoadRaw attaches a keystore given as JSON. It must belong to this wallet.
func (w *Wallet) LoadRaw(data []byte) error {
	ks, err := keystore.Parse(data)
	if err != nil {
		return err
	}
	if !ks.Address.Equals(w.address) {
		return ErrAddressMismatch
	}
	w.keystore = ks
	return nil
}

// IsWrongPassphrase reports whether err is any authentication failure of a keystore.
func IsWrongPassphrase(err error) bool {
	return errors.Is(err, ErrWrongPassphrase) ||
		errors.Is(err, keystore.ErrWrongPassphrase) ||
		errors.Is(err, keystore.ErrMACMismatch)
}

