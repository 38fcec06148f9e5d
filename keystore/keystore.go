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
	"sort"
	"sync"
	"time"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto/signature"
	"github.com/icon-project/ICONKit/metrics"
	"github.com/icon-project/ICONKit/util/logging"
)

// KeyStore holds unlocked private keys by address and signs with them.
// It is safe for concurrent use.
type KeyStore struct {
	mu   sync.RWMutex
	keys map[common.Address]signature.PrivateKey
}

// NewKeyStore returns an empty KeyStore.
func NewKeyStore() *KeyStore {
	return &KeyStore{keys: make(map[common.Address]signature.PrivateKey)}
}

// SetKey adds key under its derived address.
func (ks *KeyStore) SetKey(key signature.PrivateKey) (common.Address, error) {
	if key == nil {
		return "", ErrNilKey
	}
	addr, err := common.PublicKeyToAddress(key.PublicKey())
	if err != nil {
		return "", err
	}

	ks.mu.Lock()
	defer ks.mu.Unlock()
	if old, ok := ks.keys[addr]; ok && old != key {
		old.Clear()
	}
	ks.keys[addr] = key
	return addr, nil
}

// Unlock extracts the key of k with password and adds it.
func (ks *KeyStore) Unlock(k *Keystore, password string) (common.Address, error) {
	key, err := k.Extract(password)
	if err != nil {
		return "", err
	}
	addr, err := ks.SetKey(key)
	if err != nil {
		return "", err
	}
	logging.WithField("address", addr).Debug("Unlocked account.")
	return addr, nil
}

// Delete clears and removes the key of a.
func (ks *KeyStore) Delete(a common.Address) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	key, ok := ks.keys[a]
	if !ok {
		return ErrNoMatch
	}
	key.Clear()
	delete(ks.keys, a)
	return nil
}

// LockAll clears and removes every key.
func (ks *KeyStore) LockAll() {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	for a, key := range ks.keys {
		key.Clear()
		delete(ks.keys, a)
	}
}

// HasAddress reports whether the key of addr is unlocked.
func (ks *KeyStore) HasAddress(addr common.Address) bool {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	_, ok := ks.keys[addr]
	return ok
}

// Accounts returns the unlocked addresses in ascending order.
func (ks *KeyStore) Accounts() []common.Address {
	ks.mu.RLock()
	addresses := make([]common.Address, 0, len(ks.keys))
	for addr := range ks.keys {
		addresses = append(addresses, addr)
	}
	ks.mu.RUnlock()

	sort.Slice(addresses, func(i, j int) bool { return addresses[i] < addresses[j] })
	return addresses
}

// GetKey returns the key of a.
func (ks *KeyStore) GetKey(a common.Address) (signature.PrivateKey, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	key, ok := ks.keys[a]
	if !ok {
		return nil, ErrNoMatch
	}
	return key, nil
}

// SignHash signs hash with the key of a.
func (ks *KeyStore) SignHash(a common.Address, hash []byte) ([]byte, error) {
	defer metrics.Since(metrics.SignTimer, time.Now())
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	key, ok := ks.keys[a]
	if !ok {
		return nil, ErrNoMatch
	}
	return key.Sign(hash)
}

// Signer returns a signer bound to the key of a. It fails once the key is removed.
func (ks *KeyStore) Signer(a common.Address) *AccountSigner {
	return &AccountSigner{ks: ks, address: a}
}

// AccountSigner signs hashes with one account of a KeyStore.
type AccountSigner struct {
	ks      *KeyStore
	address common.Address
}

// Address returns the account address.
func (s *AccountSigner) Address() common.Address { return s.address }

// SignHash signs hash with the account key.
func (s *AccountSigner) SignHash(hash []byte) ([]byte, error) {
	return s.ks.SignHash(s.address, hash)
}
