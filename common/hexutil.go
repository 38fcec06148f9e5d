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

package common

import (
	"strings"
	"time"

	"github.com/holiman/uint256"
	"github.com/icon-project/ICONKit/util/byteutils"
)

// Uint256ToHex returns v as minimal lowercase hex with 0x prefix.
func Uint256ToHex(v *uint256.Int) string {
	if v == nil {
		return "0x0"
	}
	return v.Hex()
}

// HexToUint256 parses a hex string, with or without 0x prefix.
func HexToUint256(s string) (*uint256.Int, error) {
	s = byteutils.TrimHexPrefix(s)
	if s == "" {
		return nil, ErrInvalidHex
	}
	if trimmed := strings.TrimLeft(s, "0"); trimmed != "" {
		s = trimmed
	} else {
		s = "0"
	}
	v, err := uint256.FromHex("0x" + s)
	switch {
	case err == uint256.ErrBig256Range:
		return nil, ErrOverflow
	case err != nil:
		return nil, ErrInvalidHex
	}
	return v, nil
}

// Uint64ToHex returns n as minimal lowercase hex with 0x prefix.
func Uint64ToHex(n uint64) string {
	return Uint256ToHex(uint256.NewInt(n))
}

// HexToUint64 parses a hex string that fits in 64 bits.
func HexToUint64(s string) (uint64, error) {
	v, err := HexToUint256(s)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, ErrOverflow
	}
	return v.Uint64(), nil
}

// TimeToHex returns t as a hex count of microseconds since the epoch.
func TimeToHex(t time.Time) string {
	return Uint64ToHex(uint64(t.UnixNano() / int64(time.Microsecond)))
}

// HexToTime parses a hex microsecond timestamp.
func HexToTime(s string) (time.Time, error) {
	us, err := HexToUint64(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, 0).Add(time.Duration(us) * time.Microsecond), nil
}

// MicroTimestampHex returns the current time in hex microseconds.
func MicroTimestampHex() string {
	return TimeToHex(time.Now())
}
