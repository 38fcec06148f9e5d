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

	"github.com/holiman/uint256"
)

// Unit is the number of decimals a denomination carries relative to loop.
type Unit uint8

// Units.
const (
	Loop  Unit = 0
	GLoop Unit = 9
	ICX   Unit = 18
)

func (u Unit) multiplier() *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(u)))
}

// String returns the denomination name.
func (u Unit) String() string {
	switch u {
	case Loop:
		return "loop"
	case GLoop:
		return "gloop"
	case ICX:
		return "icx"
	}
	return "unknown"
}

// ToLoop converts an amount in unit to loop.
func ToLoop(v *uint256.Int, unit Unit) (*uint256.Int, error) {
	if v == nil {
		return nil, ErrInvalidAmount
	}
	out, overflow := new(uint256.Int).MulOverflow(v, unit.multiplier())
	if overflow {
		return nil, ErrOverflow
	}
	return out, nil
}

// FromLoop converts loop to unit, truncating the fraction.
func FromLoop(v *uint256.Int, unit Unit) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Div(v, unit.multiplier())
}

// FormatUnit renders a loop amount as a decimal string in unit.
func FormatUnit(v *uint256.Int, unit Unit) string {
	if v == nil {
		return "0"
	}
	s := v.Dec()
	if unit == Loop {
		return s
	}
	d := int(unit)
	if len(s) <= d {
		s = strings.Repeat("0", d-len(s)+1) + s
	}
	whole, frac := s[:len(s)-d], strings.TrimRight(s[len(s)-d:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// ParseUnit parses a decimal amount such as "1.5" in unit and returns it in loop.
func ParseUnit(s string, unit Unit) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, ErrInvalidAmount
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > int(unit) || strings.ContainsRune(frac, '.') {
		return nil, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	digits := whole + frac + strings.Repeat("0", int(unit)-len(frac))
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, ErrInvalidAmount
		}
	}
	v, err := uint256.FromDecimal(digits)
	switch {
	case err == uint256.ErrBig256Range:
		return nil, ErrOverflow
	case err != nil:
		return nil, ErrInvalidAmount
	}
	return v, nil
}
