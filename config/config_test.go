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

package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update .golden files")

func TestEmptyFileName(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
}

func TestConfigNotExist(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf", "config.yaml")

	conf, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
	assert.FileExists(t, file)
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := `provider: https://ctz.solidwallet.io/api/v3
nid: 3
timeout: 5s
log:
  level: debug
  age: 24
metrics: true
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	conf, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "https://ctz.solidwallet.io/api/v3", conf.Provider)
	assert.Equal(t, uint64(3), conf.Nid)
	assert.Equal(t, 5*time.Second, conf.Timeout)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, uint32(24), conf.Log.Age)
	assert.True(t, conf.Metrics)
	assert.Equal(t, DefaultKeydir, conf.Keydir)
	assert.Equal(t, DefaultBlockCacheSize, conf.BlockCacheSize)
}

func TestInvalidConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("unknown_field: 1\n"), 0644))

	_, err := LoadConfig(file)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	path := filepath.Join("testdata", strings.ToLower(t.Name())+".golden")
	s, err := defaultConfigString()
	require.NoError(t, err)
	if *update {
		require.NoError(t, os.WriteFile(path, []byte(s), 0644))
	}

	golden, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(golden), s)
}
