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

package keystore

import (
	"github.com/icon-project/ICONKit/common"
)

// Keystore format constants.
const (
	Version  = 3
	CoinType = "icx"

	CipherAES128CTR = "aes-128-ctr"
	KDFScrypt       = "scrypt"
	KDFPBKDF2       = "pbkdf2"
)

// Scrypt parameters.
const (
	StandardScryptN = 1 << 14
	StandardScryptR = 8
	StandardScryptP = 1

	// LightScryptN and LightScryptP keep tests fast.
	LightScryptN = 1 << 12
	LightScryptP = 1

	DefaultPBKDF2Rounds = 16384
)

// Upper bounds on kdf parameters read from keystore files. scrypt needs
// 128*n*r bytes of memory.
const (
	MaxScryptMemory = 256 << 20
	MaxScryptP      = 16
	MaxPBKDF2Rounds = 1 << 22
	MaxDKLen        = 128
)

// State is the lock state of key material.
type State int

// States
const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Keystore is the V3 JSON container of an encrypted private key.
type Keystore struct {
	Version  int            `json:"version"`
	ID       string         `json:"id"`
	Address  common.Address `json:"address"`
	Crypto   CryptoJSON     `json:"crypto"`
	CoinType string         `json:"coinType"`
}

// CryptoJSON json format for crypto field in keystore file
type CryptoJSON struct {
	CipherText   string           `json:"ciphertext"`
	CipherParams CipherParamsJSON `json:"cipherparams"`
	Cipher       string           `json:"cipher"`
	KDF          string           `json:"kdf"`
	KDFParams    KDFParamsJSON    `json:"kdfparams"`
	MAC          string           `json:"mac"`
}

// CipherParamsJSON holds the cipher iv.
type CipherParamsJSON struct {
	IV string `json:"iv"`
}

// KDFParamsJSON holds parameters for both kdfs. C and PRF are used by pbkdf2; N, R and P by scrypt.
type KDFParamsJSON struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	C     int    `json:"c,omitempty"`
	PRF   string `json:"prf,omitempty"`
	N     int    `json:"n,omitempty"`
	R     int    `json:"r,omitempty"`
	P     int    `json:"p,omitempty"`
}
