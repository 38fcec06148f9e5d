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

	"github.com/urfave/cli"
	"golang.org/x/term"
)

var errPasswordMismatch = errors.New("confirmed password doesn't match")

// readPasswordFile returns the first line of path.
func readPasswordFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(strings.SplitN(string(b), "\n", 2)[0], "\r"), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// getPassword reads the password from --password-file or the terminal.
// confirm asks twice when prompting.
func getPassword(ctx *cli.Context, prompt string, confirm bool) (string, error) {
	if path := ctx.GlobalString(passwordFileFlag.Name); path != "" {
		return readPasswordFile(path)
	}
	pw, err := promptPassword(prompt)
	if err != nil {
		return "", err
	}
	if !confirm {
		return pw, nil
	}
	pw2, err := promptPassword("Confirm your password: ")
	if err != nil {
		return "", err
	}
	if pw != pw2 {
		return "", errPasswordMismatch
	}
	return pw, nil
}
