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

package algorithm

import "errors"

// Algorithm type alias
type Algorithm uint8

const (
	// SECP256K1 a type of signer
	SECP256K1 Algorithm = 1
)

// ErrInvalidCryptoAlgorithm invalid crypto algorithm.
var ErrInvalidCryptoAlgorithm = errors.New("invalid crypto algorithm")

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case SECP256K1:
		return "secp256k1"
	default:
		return "unknown"
	}
}
