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
	"path/filepath"
	"strings"

	"github.com/icon-project/ICONKit/keystore"
	"github.com/icon-project/ICONKit/wallet"
	"golang.org/x/term"
)

func main() {
	imported := false
	var w *wallet.Wallet
	var err error
	if len(os.Args) == 1 {
		w, err = wallet.New()
	} else if len(os.Args) == 3 && os.Args[1] == "-i" {
		var pk []byte
		pk, err = os.ReadFile(os.Args[2])
		if err == nil {
			w, err = wallet.NewFromHex(strings.TrimSpace(string(pk)))
		}
		imported = true
	} else {
		fmt.Println("usage: keyutil\n       keyutil [-i] key_file")
		os.Exit(1)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Print("Set your passphrase: ")
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Print("Confirm your passphrase: ")
	passphrase2, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println()
	if string(passphrase) != string(passphrase2) {
		fmt.Println("Confirmed passphrase doesn't match, please try again.")
		os.Exit(1)
	}

	if _, err := w.GenerateKeystore(string(passphrase)); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	dir, err := keystore.NewDir(".")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	path, err := dir.Store(w.Keystore())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	w.Lock()

	if imported {
		fmt.Println("Keystore file successfully imported:", filepath.Base(path))
	} else {
		fmt.Println("Keystore file successfully created:", filepath.Base(path))
	}
}
