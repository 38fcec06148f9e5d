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
	"fmt"
	"os"

	"github.com/icon-project/ICONKit/util/logging"
	"github.com/urfave/cli"
)

var (
	version string
	commit  string
	branch  string
)

var (
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "load configuration from `FILE`",
	}
	keystoreFlag = cli.StringFlag{
		Name:  "keystore",
		Usage: "keystore `FILE` to sign with instead of looking up the keydir",
	}
	passwordFileFlag = cli.StringFlag{
		Name:  "password-file",
		Usage: "read the keystore password from `FILE`",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "collect and publish metrics",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "iconkit"
	app.Usage = "ICON wallet and JSON-RPC command line interface"
	app.Version = versionStr()
	app.Flags = []cli.Flag{
		configFlag,
		keystoreFlag,
		passwordFileFlag,
		metricsFlag,
	}
	app.Commands = []cli.Command{
		accountCommand,
		txCommand,
		balanceCommand,
	}

	if err := app.Run(os.Args); err != nil {
		logging.Console().Error(err)
		os.Exit(1)
	}
}

func versionStr() string {
	if version == "" {
		return ""
	}
	return fmt.Sprintf("%s, branch %s, commit %s", version, branch, commit)
}
