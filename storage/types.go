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

// Package storage implements key/value backends for locally kept client data.
package storage

import "errors"

// Errors
var (
	ErrKeyNotFound = errors.New("not found")
	ErrClosed      = errors.New("storage closed")
)

// Storage is a byte key/value store. Values returned by Get are owned by the caller.
type Storage interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Put(key []byte, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key []byte) error

	// Keys returns every key starting with prefix in ascending order.
	Keys(prefix []byte) ([][]byte, error)

	Close() error
}
