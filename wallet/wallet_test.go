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

package wallet_test

import (
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto"
	"github.com/icon-project/ICONKit/crypto/signature/secp256k1"
	"github.com/icon-project/ICONKit/keystore"
	"github.com/icon-project/ICONKit/transaction"
	"github.com/icon-project/ICONKit/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKeyHex  = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"
	testAddress = common.Address("hx39de21d6905bebd5b76371170b7097b85bd3bc48")
)

func lightKeystore(t *testing.T, w *wallet.Wallet, password string) *keystore.Keystore {
	ks, err := w.GenerateKeystoreWithParams(password, keystore.LightScryptN, keystore.StandardScryptR, keystore.LightScryptP)
	require.NoError(t, err)
	return ks
}

func TestNew(t *testing.T) {
	w1, err := wallet.New()
	require.NoError(t, err)
	w2, err := wallet.New()
	require.NoError(t, err)

	assert.True(t, common.IsAddress(w1.Address().String()))
	assert.NotEqual(t, w1.Address(), w2.Address())
	assert.Equal(t, keystore.Unlocked, w1.State())
	assert.Nil(t, w1.Keystore())
	assert.True(t, crypto.CheckAddress(w1.PrivateKey(), w1.Address()))
}

func TestNewFromHex(t *testing.T) {
	w, err := wallet.NewFromHex("0x" + testKeyHex)
	require.NoError(t, err)
	assert.Equal(t, testAddress, w.Address())
	assert.Equal(t, testKeyHex, w.PrivateKey().Hex())

	_, err = wallet.NewFromHex("00")
	assert.Equal(t, wallet.ErrInvalidPrivateKey, err)
	_, err = wallet.NewFromPrivateKey(nil)
	assert.Equal(t, wallet.ErrInvalidPrivateKey, err)
}

func TestLockKeepsCallerKey(t *testing.T) {
	key, err := secp256k1.NewPrivateKeyFromHex(testKeyHex)
	require.NoError(t, err)
	signer, err := transaction.NewKeySigner(key)
	require.NoError(t, err)

	w, err := wallet.NewFromPrivateKey(key)
	require.NoError(t, err)
	assert.Equal(t, testAddress, w.Address())
	assert.NotSame(t, key, w.PrivateKey())

	w.Lock()
	assert.Nil(t, w.PrivateKey())
	assert.Equal(t, testKeyHex, key.Hex())

	hash := crypto.Sha3256([]byte("ICON"))
	sig, err := signer.SignHash(hash)
	require.NoError(t, err)
	pub, err := secp256k1.RecoverPubkey(hash, sig)
	require.NoError(t, err)
	addr, err := common.BytesToAddress(pub)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)
}

func TestSign(t *testing.T) {
	w, err := wallet.NewFromHex(testKeyHex)
	require.NoError(t, err)

	data := []byte("ICON")
	sig, err := w.Sign(data)
	require.NoError(t, err)
	require.Len(t, sig, secp256k1.SignatureLength)

	pub, err := secp256k1.RecoverPubkey(crypto.Sha3256(data), sig)
	require.NoError(t, err)
	addr, err := common.BytesToAddress(pub)
	require.NoError(t, err)
	assert.Equal(t, testAddress, addr)

	encoded, err := w.GetSignature(data)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Len(t, decoded, secp256k1.SignatureLength)

	_, err = w.SignHash([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestKeystoreRoundTrip(t *testing.T) {
	w, err := wallet.New()
	require.NoError(t, err)
	ks, err := w.GenerateKeystore("P@ssw0rd")
	require.NoError(t, err)
	assert.Equal(t, w.Address(), ks.Address)
	assert.Equal(t, keystore.StandardScryptN, ks.Crypto.KDFParams.N)
	assert.Equal(t, ks, w.Keystore())

	restored, err := wallet.NewFromKeystore(ks, "P@ssw0rd")
	require.NoError(t, err)
	assert.Equal(t, w.Address(), restored.Address())

	wrong, err := wallet.NewFromKeystore(ks, "password")
	assert.Nil(t, wrong)
	assert.True(t, wallet.IsWrongPassphrase(err))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.json")

	w, err := wallet.NewFromHex(testKeyHex)
	require.NoError(t, err)
	assert.Equal(t, wallet.ErrEmptyKeystore, w.Save(path))

	lightKeystore(t, w, "pass")
	require.NoError(t, w.Save(path))

	opened, err := wallet.Open(path, "pass")
	require.NoError(t, err)
	assert.Equal(t, testAddress, opened.Address())

	other, err := wallet.New()
	require.NoError(t, err)
	assert.Equal(t, wallet.ErrAddressMismatch, other.Load(path))

	fresh, err := wallet.NewFromHex(testKeyHex)
	require.NoError(t, err)
	require.NoError(t, fresh.Load(path))
	assert.Equal(t, w.Keystore().Crypto, fresh.Keystore().Crypto)

	assert.ErrorIs(t, fresh.LoadRaw([]byte("{}")), keystore.ErrMalformedKeystore)
}

func TestChangePassword(t *testing.T) {
	w, err := wallet.New()
	require.NoError(t, err)
	assert.Equal(t, wallet.ErrEmptyKeystore, w.ChangePassword("a", "b"))

	before := lightKeystore(t, w, "old")
	assert.True(t, wallet.IsWrongPassphrase(w.ChangePassword("bad", "new")))
	assert.Equal(t, before, w.Keystore())

	require.NoError(t, w.ChangePassword("old", "new"))
	after := w.Keystore()
	assert.NotEqual(t, before.Crypto.CipherText, after.Crypto.CipherText)
	assert.Equal(t, before.Address, after.Address)
	assert.Equal(t, keystore.LightScryptN, after.Crypto.KDFParams.N)

	_, err = wallet.NewFromKeystore(after, "old")
	assert.Error(t, err)
	restored, err := wallet.NewFromKeystore(after, "new")
	require.NoError(t, err)
	assert.Equal(t, w.Address(), restored.Address())
}

func TestLockUnlock(t *testing.T) {
	w, err := wallet.New()
	require.NoError(t, err)
	assert.Equal(t, wallet.ErrEmptyKeystore, w.Unlock("x"))
	lightKeystore(t, w, "pw")

	w.Lock()
	assert.Equal(t, keystore.Locked, w.State())
	assert.Nil(t, w.PrivateKey())
	_, err = w.Sign([]byte("data"))
	assert.Equal(t, wallet.ErrLocked, err)

	assert.Error(t, w.Unlock("wrong"))
	assert.Equal(t, keystore.Locked, w.State())
	require.NoError(t, w.Unlock("pw"))
	assert.Equal(t, keystore.Unlocked, w.State())

	_, err = w.Sign([]byte("data"))
	assert.NoError(t, err)
}
