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
	"github.com/holiman/uint256"
	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto"
	"github.com/icon-project/ICONKit/util/byteutils"
)

// DefaultVersion is the protocol version set on new transactions.
const DefaultVersion = "0x3"

// Transaction is an immutable set of transaction fields. Every With method
// returns a modified copy and leaves the receiver untouched.
type Transaction struct {
	version   string
	from      common.Address
	to        common.Address
	value     *uint256.Int
	stepLimit *uint256.Int
	timestamp string
	nid       *uint256.Int
	nonce     *uint256.Int
	data      Data
}

// New returns a transaction with the default version and the current timestamp.
func New() Transaction {
	return Transaction{
		version:   DefaultVersion,
		timestamp: common.MicroTimestampHex(),
	}
}

// NewTransfer returns a coin transfer.
func NewTransfer(from, to common.Address, value *uint256.Int) Transaction {
	return New().WithFrom(from).WithTo(to).WithValue(value)
}

// NewMessage returns a transaction carrying a text message.
func NewMessage(from, to common.Address, text string) Transaction {
	return New().WithFrom(from).WithTo(to).WithMessage(text)
}

// NewCall returns a score method call.
func NewCall(from, score common.Address, method string, params map[string]interface{}) Transaction {
	return New().WithFrom(from).WithTo(score).WithCall(method, params)
}

// NewDeploy returns a score deployment. content is the hex encoded archive.
func NewDeploy(from, to common.Address, contentType string, content []byte, params map[string]interface{}) Transaction {
	return New().WithFrom(from).WithTo(to).WithData(Deploy{
		ContentType: contentType,
		Content:     byteutils.ToHex(content),
		Params:      params,
	})
}

func cloneInt(v *uint256.Int) *uint256.Int {
	if v == nil {
		return nil
	}
	return v.Clone()
}

// WithVersion sets version.
func (tx Transaction) WithVersion(v string) Transaction {
	tx.version = v
	return tx
}

// WithFrom sets the sender.
func (tx Transaction) WithFrom(a common.Address) Transaction {
	tx.from = a
	return tx
}

// WithTo sets the recipient.
func (tx Transaction) WithTo(a common.Address) Transaction {
	tx.to = a
	return tx
}

// WithValue sets the amount in loop. Nil clears it.
func (tx Transaction) WithValue(v *uint256.Int) Transaction {
	tx.value = cloneInt(v)
	return tx
}

// WithStepLimit sets the step limit. Nil clears it.
func (tx Transaction) WithStepLimit(v *uint256.Int) Transaction {
	tx.stepLimit = cloneInt(v)
	return tx
}

// WithTimestamp sets the hex microsecond timestamp.
func (tx Transaction) WithTimestamp(ts string) Transaction {
	tx.timestamp = ts
	return tx
}

// WithNid sets the network id.
func (tx Transaction) WithNid(nid *uint256.Int) Transaction {
	tx.nid = cloneInt(nid)
	return tx
}

// WithNonce sets the nonce. Nil clears it.
func (tx Transaction) WithNonce(nonce *uint256.Int) Transaction {
	tx.nonce = cloneInt(nonce)
	return tx
}

// WithData sets the payload. Params of call and deploy data are deep copied.
// Params that cannot be copied leave the payload unset and fail in Params.
func (tx Transaction) WithData(d Data) Transaction {
	c, err := cloneData(d)
	if err != nil {
		tx.data = invalidData{err: err}
		return tx
	}
	tx.data = c
	return tx
}

// WithMessage sets a message payload.
func (tx Transaction) WithMessage(text string) Transaction {
	return tx.WithData(Message{Text: text})
}

// WithCall sets a call payload.
func (tx Transaction) WithCall(method string, params map[string]interface{}) Transaction {
	return tx.WithData(Call{Method: method, Params: params})
}

// Version returns version.
func (tx Transaction) Version() string { return tx.version }

// From returns the sender.
func (tx Transaction) From() common.Address { return tx.from }

// To returns the recipient.
func (tx Transaction) To() common.Address { return tx.to }

// Value returns a copy of value, or nil.
func (tx Transaction) Value() *uint256.Int { return cloneInt(tx.value) }

// StepLimit returns a copy of step limit, or nil.
func (tx Transaction) StepLimit() *uint256.Int { return cloneInt(tx.stepLimit) }

// Timestamp returns the hex timestamp.
func (tx Transaction) Timestamp() string { return tx.timestamp }

// Nid returns a copy of the network id, or nil.
func (tx Transaction) Nid() *uint256.Int { return cloneInt(tx.nid) }

// Nonce returns a copy of nonce, or nil.
func (tx Transaction) Nonce() *uint256.Int { return cloneInt(tx.nonce) }

// Data returns a copy of the payload, or nil.
func (tx Transaction) Data() Data {
	d, err := cloneData(tx.data)
	if err != nil {
		return nil
	}
	return d
}

// Params returns the wire parameters without signature.
func (tx Transaction) Params() (map[string]interface{}, error) {
	if tx.from == "" {
		return nil, &MissingParameterError{Parameter: ParamFrom}
	}
	if tx.to == "" {
		return nil, &MissingParameterError{Parameter: ParamTo}
	}
	if tx.nid == nil {
		return nil, &MissingParameterError{Parameter: ParamNid}
	}
	if !common.IsAddress(tx.from.String()) {
		return nil, ErrInvalidFrom
	}
	if !common.IsRecipient(tx.to.String()) {
		return nil, ErrInvalidTo
	}

	params := map[string]interface{}{
		"version":   tx.version,
		"from":      tx.from.String(),
		"to":        tx.to.String(),
		"timestamp": tx.timestamp,
		"nid":       common.Uint256ToHex(tx.nid),
	}
	if tx.value != nil {
		params["value"] = common.Uint256ToHex(tx.value)
	}
	if tx.stepLimit != nil {
		params["stepLimit"] = common.Uint256ToHex(tx.stepLimit)
	}
	if tx.nonce != nil {
		params["nonce"] = common.Uint256ToHex(tx.nonce)
	}
	if tx.data != nil {
		if bad, ok := tx.data.(invalidData); ok {
			return nil, bad.err
		}
		v, err := dataValue(tx.data)
		if err != nil {
			return nil, err
		}
		params["dataType"] = tx.data.DataType()
		params["data"] = v
	}
	return params, nil
}

// EstimateParams returns the params used for step estimation, which never carry a step limit.
func (tx Transaction) EstimateParams() (map[string]interface{}, error) {
	return tx.WithStepLimit(nil).Params()
}

// Preimage returns the canonical serialization that is hashed and signed.
func (tx Transaction) Preimage() (string, error) {
	params, err := tx.Params()
	if err != nil {
		return "", err
	}
	return Serialize(params)
}

// HashBytes returns the SHA3-256 hash of the preimage.
func (tx Transaction) HashBytes() ([]byte, error) {
	preimage, err := tx.Preimage()
	if err != nil {
		return nil, err
	}
	return crypto.Sha3256([]byte(preimage)), nil
}

// Hash returns the hex encoded transaction hash.
func (tx Transaction) Hash() (string, error) {
	h, err := tx.HashBytes()
	if err != nil {
		return "", err
	}
	return byteutils.Bytes2Hex(h), nil
}

// invalidData carries a copy failure from WithData to Params.
type invalidData struct {
	err error
}

func (invalidData) DataType() string { return "" }
func (invalidData) isData()          {}
