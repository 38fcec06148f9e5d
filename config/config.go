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

// Package config loads the client configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Default values.
const (
	DefaultProvider       = "http://localhost:9000/api/v3"
	DefaultNid            = 1
	DefaultTimeout        = 60 * time.Second
	DefaultKeydir         = "keystore"
	DefaultDatadir        = "data"
	DefaultLogLevel       = "info"
	DefaultBlockCacheSize = 128
)

// Config is the client configuration.
type Config struct {
	Provider       string        `yaml:"provider"`
	Nid            uint64        `yaml:"nid"`
	Timeout        time.Duration `yaml:"timeout"`
	Keydir         string        `yaml:"keydir"`
	Datadir        string        `yaml:"datadir"`
	Log            LogConfig     `yaml:"log"`
	Metrics        bool          `yaml:"metrics"`
	BlockCacheSize int           `yaml:"block_cache_size"`
}

// LogConfig configures util/logging.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
	Age   uint32 `yaml:"age"`
}

// LoadConfig loads configuration from the file. An empty name returns the
// defaults; a missing file is created with the defaults first.
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		return DefaultConfig(), nil
	}

	if !common.FileExist(file) {
		if err := createDefaultConfigFile(file); err != nil {
			return nil, err
		}
		logging.Console().WithField("file", file).Info("Created default config file.")
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	conf := DefaultConfig()
	if err := yaml.UnmarshalStrict(b, conf); err != nil {
		logging.Console().WithFields(logrus.Fields{
			"file": file,
			"err":  err,
		}).Error("Failed to parse config file.")
		return nil, fmt.Errorf("config %s: %w", file, err)
	}
	return conf, nil
}

func createDefaultConfigFile(filename string) error {
	s, err := defaultConfigString()
	if err != nil {
		return err
	}
	if err := common.EnsureDir(filename, 0755); err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(s), 0644)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: DefaultProvider,
		Nid:      DefaultNid,
		Timeout:  DefaultTimeout,
		Keydir:   DefaultKeydir,
		Datadir:  DefaultDatadir,
		Log: LogConfig{
			Path:  "",
			Level: DefaultLogLevel,
			Age:   0,
		},
		Metrics:        false,
		BlockCacheSize: DefaultBlockCacheSize,
	}
}

func defaultConfigString() (string, error) {
	b, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
