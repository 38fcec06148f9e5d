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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCacheScan(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, ioutil.WriteFile(a, []byte("a"), 0600))
	require.NoError(t, ioutil.WriteFile(b, []byte("b"), 0600))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ".hidden"), []byte("h"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0700))

	fc := newFileCache()
	creates, deletes, updates, err := fc.scan(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []interface{}{a, b}, creates.List())
	assert.True(t, deletes.IsEmpty())
	assert.True(t, updates.IsEmpty())

	creates, deletes, updates, err = fc.scan(dir)
	require.NoError(t, err)
	assert.True(t, creates.IsEmpty())
	assert.True(t, deletes.IsEmpty())
	assert.True(t, updates.IsEmpty())

	require.NoError(t, os.Remove(a))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(b, later, later))
	creates, deletes, updates, err = fc.scan(dir)
	require.NoError(t, err)
	assert.True(t, creates.IsEmpty())
	assert.Equal(t, []interface{}{a}, deletes.List())
	assert.Equal(t, []interface{}{b}, updates.List())

	_, _, _, err = fc.scan(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
