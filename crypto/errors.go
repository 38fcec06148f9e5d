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

import "errors"

// Errors
var (
	ErrKeyDerivation     = errors.New("key derivation failed")
	ErrInvalidDerivedKey = errors.New("derived key must be 32 bytes")
	ErrInvalidIV         = errors.New("invalid initialization vector")
	ErrMACMismatch       = errors.New("mac mismatch")
	ErrUnsupportedPRF    = errors.New("unsupported pbkdf2 prf")
)
