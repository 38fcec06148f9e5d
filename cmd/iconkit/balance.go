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
	"context"
	"fmt"

	"github.com/icon-project/ICONKit/common"
	"github.com/urfave/cli"
)

var balanceCommand = cli.Command{
	Name:      "balance",
	Usage:     "print the ICX balance of an address",
	ArgsUsage: "<address>",
	Action:    action(balance),
}

func balance(ctx *cli.Context, e *env) error {
	addr, err := common.ParseAddress(ctx.Args().First())
	if err != nil {
		return err
	}
	c, err := e.rpcClient()
	if err != nil {
		return err
	}
	v, err := c.GetBalance(addr).Execute(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%s ICX\n", common.FormatUnit(v, common.ICX))
	return nil
}
