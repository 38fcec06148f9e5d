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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/keystore"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/icon-project/ICONKit/wallet"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	errMissingKeyFile = errors.New("key file is required")
	errMissingAddress = errors.New("address is required")
)

var lightFlag = cli.BoolFlag{
	Name:  "light",
	Usage: "use light scrypt parameters",
}

var accountCommand = cli.Command{
	Name:  "account",
	Usage: "manage keystore accounts",
	Subcommands: []cli.Command{
		{
			Name:   "new",
			Usage:  "create a new account",
			Flags:  []cli.Flag{lightFlag},
			Action: action(accountNew),
		},
		{
			Name:      "import",
			Usage:     "import a hex private key",
			ArgsUsage: "<keyfile>",
			Flags:     []cli.Flag{lightFlag},
			Action:    action(accountImport),
		},
		{
			Name:   "list",
			Usage:  "list accounts in the keydir",
			Action: action(accountList),
		},
		{
			Name:      "password",
			Usage:     "change the password of an account",
			ArgsUsage: "<address>",
			Action:    action(accountPassword),
		},
	},
}

func storeWallet(ctx *cli.Context, e *env, w *wallet.Wallet) error {
	password, err := getPassword(ctx, "Set your password: ", true)
	if err != nil {
		return err
	}
	n, p := keystore.StandardScryptN, keystore.StandardScryptP
	if ctx.Bool(lightFlag.Name) {
		n, p = keystore.LightScryptN, keystore.LightScryptP
	}
	ks, err := w.GenerateKeystoreWithParams(password, n, keystore.StandardScryptR, p)
	if err != nil {
		return err
	}
	dir, err := e.keydir()
	if err != nil {
		return err
	}
	path, err := dir.Store(ks)
	if err != nil {
		return err
	}
	logging.Console().WithFields(logrus.Fields{
		"address": w.Address(),
		"file":    path,
	}).Info("Stored keystore.")
	fmt.Println(w.Address())
	return nil
}

func accountNew(ctx *cli.Context, e *env) error {
	w, err := wallet.New()
	if err != nil {
		return err
	}
	return storeWallet(ctx, e, w)
}

func accountImport(ctx *cli.Context, e *env) error {
	file := ctx.Args().First()
	if file == "" {
		return errMissingKeyFile
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	w, err := wallet.NewFromHex(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	return storeWallet(ctx, e, w)
}

func accountList(ctx *cli.Context, e *env) error {
	dir, err := e.keydir()
	if err != nil {
		return err
	}
	for i, addr := range dir.Accounts() {
		path, _ := dir.Find(addr)
		fmt.Printf("Account #%d: %s %s\n", i, addr, path)
	}
	return nil
}

func accountPassword(ctx *cli.Context, e *env) error {
	addr, err := common.ParseAddress(ctx.Args().First())
	if err != nil {
		return errMissingAddress
	}
	dir, err := e.keydir()
	if err != nil {
		return err
	}
	path, err := dir.Find(addr)
	if err != nil {
		return err
	}
	ks, err := dir.Load(addr)
	if err != nil {
		return err
	}

	oldPassword, err := promptPassword("Current password: ")
	if err != nil {
		return err
	}
	w, err := wallet.NewFromKeystore(ks, oldPassword)
	if err != nil {
		return err
	}
	newPassword, err := getPassword(ctx, "New password: ", true)
	if err != nil {
		return err
	}
	if err := w.ChangePassword(oldPassword, newPassword); err != nil {
		return err
	}
	return w.Save(path)
}
