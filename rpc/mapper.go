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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/icon-project/ICONKit/common"
)

// UnmarshalJSON decodes a call object, a deploy object or a message string, in that order.
func (d *DataValue) UnmarshalJSON(b []byte) error {
	*d = DataValue{}
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d.Message = &s
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("%w: data value: %v", ErrParsing, err)
	}
	if _, ok := fields["method"]; ok {
		call := new(CallData)
		if err := json.Unmarshal(b, call); err != nil {
			return err
		}
		d.Call = call
		return nil
	}
	if _, ok := fields["contentType"]; ok {
		deploy := new(DeployData)
		if err := json.Unmarshal(b, deploy); err != nil {
			return err
		}
		d.Deploy = deploy
		return nil
	}
	return fmt.Errorf("%w: unknown data value", ErrParsing)
}

// MarshalJSON encodes whichever variant is set.
func (d DataValue) MarshalJSON() ([]byte, error) {
	switch {
	case d.Call != nil:
		return json.Marshal(d.Call)
	case d.Deploy != nil:
		return json.Marshal(d.Deploy)
	case d.Message != nil:
		return json.Marshal(*d.Message)
	}
	return []byte("null"), nil
}

// IsSuccess reports whether the transaction succeeded.
func (r *TransactionResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// StepUsedValue parses StepUsed.
func (r *TransactionResult) StepUsedValue() (*uint256.Int, error) {
	return common.HexToUint256(r.StepUsed)
}

// StepPriceValue parses StepPrice.
func (r *TransactionResult) StepPriceValue() (*uint256.Int, error) {
	return common.HexToUint256(r.StepPrice)
}

// Fee returns stepUsed * stepPrice in loop.
func (r *TransactionResult) Fee() (*uint256.Int, error) {
	used, err := r.StepUsedValue()
	if err != nil {
		return nil, err
	}
	price, err := r.StepPriceValue()
	if err != nil {
		return nil, err
	}
	fee, overflow := new(uint256.Int).MulOverflow(used, price)
	if overflow {
		return nil, common.ErrOverflow
	}
	return fee, nil
}

// HeightValue parses BlockHeight.
func (t *TransactionByHash) HeightValue() (uint64, error) {
	return common.HexToUint64(t.BlockHeight)
}

func decodeJSON[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrParsing, err)
	}
	return v, nil
}

func decodeString(raw json.RawMessage) (string, error) {
	return decodeJSON[string](raw)
}

func decodeUint256(raw json.RawMessage) (*uint256.Int, error) {
	s, err := decodeString(raw)
	if err != nil {
		return nil, err
	}
	v, err := common.HexToUint256(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsing, err)
	}
	return v, nil
}

func decodeRaw(raw json.RawMessage) (json.RawMessage, error) {
	return raw, nil
}
