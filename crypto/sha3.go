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

package crypto

import (
	"github.com/icon-project/ICONKit/common"
	"golang.org/x/crypto/sha3"
)

// Sha3256 returns the FIPS-202 SHA3-256 digest of the data.
func Sha3256(args ...[]byte) []byte {
	hasher := sha3.New256()
	for _, bytes := range args {
		hasher.Write(bytes)
	}
	return hasher.Sum(nil)
}

// Sha3256Hash returns the SHA3-256 digest as a Hash.
func Sha3256Hash(args ...[]byte) common.Hash {
	return common.BytesToHash(Sha3256(args...))
}

// Keccak256 returns the legacy Keccak-256 digest of the data.
func Keccak256(args ...[]byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	for _, bytes := range args {
		hasher.Write(bytes)
	}
	return hasher.Sum(nil)
}
