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

// Package byteutils converts between byte slices and the hex strings used on the wire.
package byteutils

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// HasHexPrefix reports whether s starts with 0x or 0X.
func HasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// TrimHexPrefix drops a leading 0x or 0X.
func TrimHexPrefix(s string) string {
	if HasHexPrefix(s) {
		return s[2:]
	}
	return s
}

// IsHex reports whether s is an even number of hex digits, without prefix.
func IsHex(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
	}) < 0
}

// Bytes2Hex encodes d as lowercase hex without prefix.
func Bytes2Hex(d []byte) string {
	return hex.EncodeToString(d)
}

// Hex2Bytes decodes hex without prefix.
func Hex2Bytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// ToHex encodes b with a 0x prefix. Empty input gives "0x0".
func ToHex(b []byte) string {
	if len(b) == 0 {
		return "0x0"
	}
	return "0x" + Bytes2Hex(b)
}

// FromHex decodes s with or without prefix. Odd lengths are left padded.
func FromHex(s string) ([]byte, error) {
	s = TrimHexPrefix(s)
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return Hex2Bytes(s)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// CopyBytes returns a copy of b, nil for nil.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}

// ZeroBytes overwrites b with zeros.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
