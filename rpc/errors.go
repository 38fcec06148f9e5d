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

package rpc

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrParsing        = errors.New("cannot parse response")
	ErrUnknown        = errors.New("response has neither result nor error")
	ErrHTTPStatus     = errors.New("unexpected http status")
	ErrInvalidURL     = errors.New("invalid provider url")
	ErrMissingHash    = errors.New("hash is empty")
	ErrMissingAddress = errors.New("address is empty")
)

// Error is a JSON-RPC error object returned by the node.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}
