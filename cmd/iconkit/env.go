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

package main

import (
	"path/filepath"

	"github.com/icon-project/ICONKit/config"
	"github.com/icon-project/ICONKit/journal"
	"github.com/icon-project/ICONKit/keystore"
	"github.com/icon-project/ICONKit/metrics"
	"github.com/icon-project/ICONKit/rpc"
	"github.com/icon-project/ICONKit/storage"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const journalDirName = "journal"

// env holds the services a command runs with.
type env struct {
	config   *config.Config
	client   *rpc.Client
	keys     *keystore.Dir
	unlocked *keystore.KeyStore
	storage  storage.Storage
	journal  *journal.Journal
}

// setup loads the configuration and brings up logging and metrics.
func setup(ctx *cli.Context) (*env, error) {
	conf, err := config.LoadConfig(ctx.GlobalString(configFlag.Name))
	if err != nil {
		return nil, err
	}
	if err := logging.Init(conf.Log.Path, conf.Log.Level, conf.Log.Age); err != nil {
		return nil, err
	}
	if conf.Metrics || ctx.GlobalBool(metricsFlag.Name) {
		metrics.EnableMetrics()
	}
	metrics.Inc(metrics.CommandCounter)

	logging.WithFields(logrus.Fields{
		"provider": conf.Provider,
		"nid":      conf.Nid,
		"keydir":   conf.Keydir,
	}).Debug("Set up iconkit.")
	return &env{config: conf, unlocked: keystore.NewKeyStore()}, nil
}

func (e *env) keydir() (*keystore.Dir, error) {
	if e.keys != nil {
		return e.keys, nil
	}
	dir, err := keystore.NewDir(e.config.Keydir)
	if err != nil {
		logging.Console().WithFields(logrus.Fields{
			"keydir": e.config.Keydir,
			"err":    err,
		}).Error("Failed to open keystore directory.")
		return nil, err
	}
	e.keys = dir
	return dir, nil
}

func (e *env) rpcClient() (*rpc.Client, error) {
	if e.client != nil {
		return e.client, nil
	}
	c, err := rpc.NewClient(e.config.Provider,
		rpc.WithTimeout(e.config.Timeout),
		rpc.WithBlockCacheSize(e.config.BlockCacheSize),
	)
	if err != nil {
		return nil, err
	}
	e.client = c
	return c, nil
}

func (e *env) txJournal() (*journal.Journal, error) {
	if e.journal != nil {
		return e.journal, nil
	}
	s, err := storage.NewLeveldbStorage(filepath.Join(e.config.Datadir, journalDirName))
	if err != nil {
		logging.Console().WithFields(logrus.Fields{
			"datadir": e.config.Datadir,
			"err":     err,
		}).Error("Failed to create leveldb storage.")
		return nil, err
	}
	e.storage = s
	e.journal = journal.New(s)
	return e.journal, nil
}

func (e *env) close() {
	e.unlocked.LockAll()
	if e.keys != nil {
		e.keys.Close()
	}
	if e.storage != nil {
		if err := e.storage.Close(); err != nil {
			logging.WithError(err).Warn("Failed to close storage.")
		}
	}
}

// action wraps a command body with setup and teardown.
func action(fn func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.close()
		return fn(ctx, e)
	}
}
