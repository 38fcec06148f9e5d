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
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/holiman/uint256"
	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto"
	"github.com/icon-project/ICONKit/keystore"
	"github.com/icon-project/ICONKit/transaction"
	"github.com/icon-project/ICONKit/util/byteutils"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const defaultStepLimit = 100000

var errMissingParamsFile = errors.New("transaction params file is required")

var (
	fromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "sender `ADDRESS`",
	}
	toFlag = cli.StringFlag{
		Name:  "to",
		Usage: "recipient `ADDRESS`",
	}
	valueFlag = cli.StringFlag{
		Name:  "value",
		Usage: "amount in ICX",
		Value: "0",
	}
	stepLimitFlag = cli.Uint64Flag{
		Name:  "step-limit",
		Usage: "maximum steps",
		Value: defaultStepLimit,
	}
	nidFlag = cli.Uint64Flag{
		Name:  "nid",
		Usage: "network id, overrides the config",
	}
	messageFlag = cli.StringFlag{
		Name:  "message",
		Usage: "attach a message",
	}
	estimateFlag = cli.BoolFlag{
		Name:  "estimate",
		Usage: "estimate the step limit before signing",
	}
)

var txFlags = []cli.Flag{fromFlag, toFlag, valueFlag, stepLimitFlag, nidFlag, messageFlag, estimateFlag}

var txCommand = cli.Command{
	Name:  "tx",
	Usage: "sign and send transactions",
	Subcommands: []cli.Command{
		{
			Name:   "sign",
			Usage:  "sign a transaction and print its params",
			Flags:  txFlags,
			Action: action(txSign),
		},
		{
			Name:   "send",
			Usage:  "sign a transaction and send it",
			Flags:  txFlags,
			Action: action(txSend),
		},
		{
			Name:      "hash",
			Usage:     "print the hash of transaction params stored as JSON",
			ArgsUsage: "<file>",
			Action:    action(txHash),
		},
	},
}

// buildTransaction assembles the transaction described by the command flags.
func buildTransaction(ctx *cli.Context, nid uint64) (transaction.Transaction, error) {
	from, err := common.ParseAddress(ctx.String(fromFlag.Name))
	if err != nil {
		return transaction.Transaction{}, err
	}
	if !common.IsRecipient(ctx.String(toFlag.Name)) {
		return transaction.Transaction{}, common.ErrInvalidAddress
	}
	to := common.Address(ctx.String(toFlag.Name))
	value, err := common.ParseUnit(ctx.String(valueFlag.Name), common.ICX)
	if err != nil {
		return transaction.Transaction{}, err
	}
	if ctx.IsSet(nidFlag.Name) {
		nid = ctx.Uint64(nidFlag.Name)
	}

	tx := transaction.NewTransfer(from, to, value).
		WithNid(uint256.NewInt(nid)).
		WithStepLimit(uint256.NewInt(ctx.Uint64(stepLimitFlag.Name))).
		WithTimestamp(common.MicroTimestampHex())
	if msg := ctx.String(messageFlag.Name); msg != "" {
		tx = tx.WithMessage(msg)
	}
	return tx, nil
}

// openSigner unlocks the keystore of from, either the --keystore file or the
// matching file in the keydir.
func openSigner(ctx *cli.Context, e *env, from common.Address) (transaction.Signer, error) {
	var ks *keystore.Keystore
	if path := ctx.GlobalString(keystoreFlag.Name); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if ks, err = keystore.Parse(data); err != nil {
			return nil, err
		}
	} else {
		dir, err := e.keydir()
		if err != nil {
			return nil, err
		}
		if ks, err = dir.Load(from); err != nil {
			return nil, err
		}
	}
	if !ks.Address.Equals(from) {
		return nil, transaction.ErrSignerMismatch
	}

	password, err := getPassword(ctx, "Password: ", false)
	if err != nil {
		return nil, err
	}
	if _, err := e.unlocked.Unlock(ks, password); err != nil {
		return nil, err
	}
	return e.unlocked.Signer(ks.Address), nil
}

func signFromFlags(ctx *cli.Context, e *env) (*transaction.SignedTransaction, error) {
	tx, err := buildTransaction(ctx, e.config.Nid)
	if err != nil {
		return nil, err
	}
	if ctx.Bool(estimateFlag.Name) {
		c, err := e.rpcClient()
		if err != nil {
			return nil, err
		}
		req, err := c.EstimateStep(tx)
		if err != nil {
			return nil, err
		}
		steps, err := req.Execute(context.Background())
		if err != nil {
			return nil, err
		}
		tx = tx.WithStepLimit(steps)
	}

	signer, err := openSigner(ctx, e, tx.From())
	if err != nil {
		return nil, err
	}
	return transaction.Sign(tx, signer)
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func txSign(ctx *cli.Context, e *env) error {
	signed, err := signFromFlags(ctx, e)
	if err != nil {
		return err
	}
	j, err := e.txJournal()
	if err != nil {
		return err
	}
	if _, err := j.Record(signed, ""); err != nil {
		return err
	}
	return printJSON(signed.Params)
}

func txSend(ctx *cli.Context, e *env) error {
	signed, err := signFromFlags(ctx, e)
	if err != nil {
		return err
	}
	c, err := e.rpcClient()
	if err != nil {
		return err
	}
	hash, err := c.SendTransaction(signed).Execute(context.Background())
	if err != nil {
		return err
	}
	j, err := e.txJournal()
	if err != nil {
		return err
	}
	if _, err := j.Record(signed, hash); err != nil {
		logging.Console().WithFields(logrus.Fields{
			"txHash": signed.TxHash(),
			"err":    err,
		}).Warn("Failed to record transaction.")
	}
	fmt.Println(hash)
	return nil
}

// paramsHash returns the hash of wire params, ignoring any signature.
func paramsHash(params map[string]interface{}) (string, error) {
	unsigned := make(map[string]interface{}, len(params))
	for k, v := range params {
		if k != transaction.ParamSignature {
			unsigned[k] = v
		}
	}
	preimage, err := transaction.Serialize(unsigned)
	if err != nil {
		return "", err
	}
	return byteutils.ToHex(crypto.Sha3256([]byte(preimage))), nil
}

func txHash(ctx *cli.Context, e *env) error {
	file := ctx.Args().First()
	if file == "" {
		return errMissingParamsFile
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	params := make(map[string]interface{})
	if err := json.Unmarshal(b, &params); err != nil {
		return err
	}
	hash, err := paramsHash(params)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
