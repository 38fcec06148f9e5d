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

// Package journal keeps a local record of submitted signed transactions.
package journal

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/icon-project/ICONKit/storage"
	"github.com/icon-project/ICONKit/transaction"
	"github.com/icon-project/ICONKit/util/byteutils"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
)

var keyPrefix = []byte("tx/")

// Errors
var (
	ErrNotFound    = errors.New("transaction not in journal")
	ErrEmptyHash   = errors.New("transaction hash is empty")
	ErrNilSigned   = errors.New("signed transaction is nil")
	ErrHashChanged = errors.New("node returned a different transaction hash")
)

// Entry is one recorded transaction.
type Entry struct {
	TxHash        string                 `json:"txHash"`
	SubmittedHash string                 `json:"submittedHash,omitempty"`
	From          string                 `json:"from"`
	To            string                 `json:"to"`
	Params        map[string]interface{} `json:"params"`
	RecordedAt    int64                  `json:"recordedAt"`
}

// Journal stores entries keyed by transaction hash.
type Journal struct {
	storage storage.Storage
}

// New returns a journal backed by s.
func New(s storage.Storage) *Journal {
	return &Journal{storage: s}
}

func key(hash string) ([]byte, error) {
	h := strings.ToLower(byteutils.TrimHexPrefix(hash))
	if h == "" {
		return nil, ErrEmptyHash
	}
	return append(append([]byte{}, keyPrefix...), h...), nil
}

// Record stores signed with the hash the node returned for it. An empty
// submittedHash records a transaction that was signed but not sent.
func (j *Journal) Record(signed *transaction.SignedTransaction, submittedHash string) (*Entry, error) {
	if signed == nil {
		return nil, ErrNilSigned
	}
	e := &Entry{
		TxHash:        signed.TxHash(),
		SubmittedHash: submittedHash,
		From:          signed.Transaction.From().String(),
		To:            signed.Transaction.To().String(),
		Params:        signed.Params,
		RecordedAt:    time.Now().UnixNano() / int64(time.Microsecond),
	}
	k, err := key(e.TxHash)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	if err := j.storage.Put(k, data); err != nil {
		return nil, err
	}

	logger := logging.WithFields(logrus.Fields{
		"txHash": e.TxHash,
		"from":   e.From,
	})
	if submittedHash != "" && !strings.EqualFold(byteutils.TrimHexPrefix(submittedHash), signed.Hash) {
		logger.WithField("submitted", submittedHash).Warn("Node returned a different transaction hash.")
		return e, ErrHashChanged
	}
	logger.Debug("Recorded transaction.")
	return e, nil
}

// Get returns the entry of hash.
func (j *Journal) Get(hash string) (*Entry, error) {
	k, err := key(hash)
	if err != nil {
		return nil, err
	}
	data, err := j.storage.Get(k)
	if err == storage.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	e := new(Entry)
	if err := json.Unmarshal(data, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns every entry ordered by hash.
func (j *Journal) List() ([]*Entry, error) {
	keys, err := j.storage.Keys(keyPrefix)
	if err != nil {
		return nil, err
	}
	entries := make([]*Entry, 0, len(keys))
	for _, k := range keys {
		data, err := j.storage.Get(k)
		if err != nil {
			return nil, err
		}
		e := new(Entry)
		if err := json.Unmarshal(data, e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Delete removes the entry of hash.
func (j *Journal) Delete(hash string) error {
	k, err := key(hash)
	if err != nil {
		return err
	}
	ok, err := j.storage.Has(k)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return j.storage.Delete(k)
}
