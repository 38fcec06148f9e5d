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

package storage

import (
	"github.com/icon-project/ICONKit/util/byteutils"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LeveldbStorage persists entries in a leveldb directory.
type LeveldbStorage struct {
	db *leveldb.DB
}

var _ Storage = (*LeveldbStorage)(nil)

// Journals are small and written once per transaction.
var leveldbOptions = &opt.Options{
	BlockCacheCapacity:     opt.MiB,
	Filter:                 filter.NewBloomFilter(10),
	OpenFilesCacheCapacity: 64,
	WriteBuffer:            opt.MiB,
}

var syncWrite = &opt.WriteOptions{Sync: true}

// NewLeveldbStorage opens or creates a leveldb database at path.
func NewLeveldbStorage(path string) (*LeveldbStorage, error) {
	db, err := leveldb.OpenFile(path, leveldbOptions)
	if err != nil {
		return nil, err
	}
	logging.WithField("path", path).Debug("Opened leveldb storage.")
	return &LeveldbStorage{db: db}, nil
}

func convertError(err error) error {
	switch err {
	case leveldb.ErrNotFound:
		return ErrKeyNotFound
	case leveldb.ErrClosed:
		return ErrClosed
	}
	return err
}

// Get implements Storage.
func (s *LeveldbStorage) Get(key []byte) ([]byte, error) {
	value, err := s.db.Get(key, nil)
	if err != nil {
		return nil, convertError(err)
	}
	return value, nil
}

// Has implements Storage.
func (s *LeveldbStorage) Has(key []byte) (bool, error) {
	ok, err := s.db.Has(key, nil)
	return ok, convertError(err)
}

// Put implements Storage. Writes are synced.
func (s *LeveldbStorage) Put(key []byte, value []byte) error {
	return convertError(s.db.Put(key, value, syncWrite))
}

// Delete implements Storage.
func (s *LeveldbStorage) Delete(key []byte) error {
	return convertError(s.db.Delete(key, syncWrite))
}

// Keys implements Storage.
func (s *LeveldbStorage) Keys(prefix []byte) ([][]byte, error) {
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	var keys [][]byte
	for iter.Next() {
		keys = append(keys, byteutils.CopyBytes(iter.Key()))
	}
	return keys, convertError(iter.Error())
}

// Close closes the database. Closing twice is allowed.
func (s *LeveldbStorage) Close() error {
	if err := s.db.Close(); err != nil && err != leveldb.ErrClosed {
		return err
	}
	return nil
}
