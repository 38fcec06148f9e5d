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

package transaction

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrMissingParameter  = errors.New("missing parameter")
	ErrUnsupportedValue  = errors.New("unsupported value in transaction params")
	ErrSignerMismatch    = errors.New("signer address does not match from")
	ErrInvalidSignature  = errors.New("invalid transaction signature")
	ErrInvalidFrom       = errors.New("invalid from address")
	ErrInvalidTo         = errors.New("invalid to address")
	ErrInvalidDataParams = errors.New("data params must be a JSON object")
)

// Required parameter names.
const (
	ParamFrom = "from"
	ParamTo   = "to"
	ParamNid  = "nid"
)

// MissingParameterError reports a required field that was never set.
type MissingParameterError struct {
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingParameter, e.Parameter)
}

// Unwrap returns ErrMissingParameter.
func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}
