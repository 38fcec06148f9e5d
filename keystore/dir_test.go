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

package keystore_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/keystore"
	"github.com/icon-project/ICONKit/util/testutil/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirStoreAndScan(t *testing.T) {
	root := t.TempDir()
	d, err := keystore.NewDir(filepath.Join(root, "keys"))
	require.NoError(t, err)
	assert.Empty(t, d.Accounts())

	ks, err := keystore.Parse([]byte(scryptKeystore))
	require.NoError(t, err)
	path, err := d.Store(ks)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "UTC--")
	assert.Contains(t, filepath.Base(path), testAddress)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())

	found, err := d.Find(testAddress)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	loaded, err := d.Load(testAddress)
	require.NoError(t, err)
	assert.Equal(t, ks.Crypto, loaded.Crypto)

	// A fresh scan picks up existing files and ignores others.
	require.NoError(t, ioutil.WriteFile(filepath.Join(d.Path(), "garbage.json"), []byte("{}"), 0600))
	require.NoError(t, ioutil.WriteFile(filepath.Join(d.Path(), ".hidden"), []byte(pbkdf2Keystore), 0600))
	again, err := keystore.NewDir(d.Path())
	require.NoError(t, err)
	assert.Equal(t, []common.Address{testAddress}, again.Accounts())

	require.NoError(t, os.Remove(path))
	require.NoError(t, again.Refresh())
	assert.False(t, again.HasAddress(testAddress))
	_, err = again.Find(testAddress)
	assert.Equal(t, keystore.ErrNoMatch, err)
}

func TestDirMixedCaseAddress(t *testing.T) {
	d, err := keystore.NewDir(t.TempDir())
	require.NoError(t, err)

	upper := strings.Replace(pbkdf2Keystore, testAddress, "hx"+strings.ToUpper(testAddress[2:]), 1)
	path := filepath.Join(d.Path(), "UTC--external--upper")
	require.NoError(t, keystore.WriteFile(path, []byte(upper)))
	require.NoError(t, d.Refresh())

	addr, err := common.ParseAddress(testAddress)
	require.NoError(t, err)
	found, err := d.Find(addr)
	require.NoError(t, err)
	assert.Equal(t, path, found)
	assert.True(t, d.HasAddress(common.Address(strings.ToUpper(testAddress[:2])+testAddress[2:])))
	assert.Equal(t, []common.Address{testAddress}, d.Accounts())

	loaded, err := d.Load(addr)
	require.NoError(t, err)
	key, err := loaded.Extract(testPassword)
	require.NoError(t, err)
	assert.Equal(t, testKeyHex, key.Hex())
}

func TestDirWatch(t *testing.T) {
	d, err := keystore.NewDir(t.TempDir())
	require.NoError(t, err)
	defer d.Close()

	d.Watch()
	if !retry.New(t, 100, 20*time.Millisecond).Until(d.Watching) {
		t.Skip("file system notifications unavailable")
	}

	path := filepath.Join(d.Path(), "UTC--external--"+testAddress)
	require.NoError(t, keystore.WriteFile(path, []byte(pbkdf2Keystore)))
	retry.New(t, 250, 20*time.Millisecond).Try(func(t retry.T) {
		assert.True(t, d.HasAddress(testAddress))
	})

	d.Close()
	retry.New(t, 100, 20*time.Millisecond).Try(func(t retry.T) {
		assert.False(t, d.Watching())
	})
}
