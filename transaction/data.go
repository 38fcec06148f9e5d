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
	"github.com/mitchellh/copystructure"
)

// Data types.
const (
	DataTypeMessage = "message"
	DataTypeCall    = "call"
	DataTypeDeploy  = "deploy"
)

// Data is the payload of a transaction. It is one of Message, Call or Deploy.
type Data interface {
	DataType() string
	isData()
}

// Message carries a plain text payload.
type Message struct {
	Text string
}

// Call invokes a method of a score.
type Call struct {
	Method string
	Params map[string]interface{}
}

// Deploy installs or updates a score.
type Deploy struct {
	ContentType string
	Content     string
	Params      map[string]interface{}
}

// DataType implements Data.
func (Message) DataType() string { return DataTypeMessage }

// DataType implements Data.
func (Call) DataType() string { return DataTypeCall }

// DataType implements Data.
func (Deploy) DataType() string { return DataTypeDeploy }

func (Message) isData() {}
func (Call) isData()    {}
func (Deploy) isData()  {}

// cloneData returns d with its params deep copied.
func cloneData(d Data) (Data, error) {
	switch v := d.(type) {
	case nil:
		return nil, nil
	case Message:
		return v, nil
	case Call:
		params, err := copyParams(v.Params)
		if err != nil {
			return nil, err
		}
		v.Params = params
		return v, nil
	case Deploy:
		params, err := copyParams(v.Params)
		if err != nil {
			return nil, err
		}
		v.Params = params
		return v, nil
	}
	return nil, ErrUnsupportedValue
}

// dataValue returns the wire value of the data field.
func dataValue(d Data) (interface{}, error) {
	switch v := d.(type) {
	case Message:
		return v.Text, nil
	case Call:
		m := map[string]interface{}{"method": v.Method}
		if v.Params != nil {
			params, err := copyParams(v.Params)
			if err != nil {
				return nil, err
			}
			m["params"] = params
		}
		return m, nil
	case Deploy:
		m := map[string]interface{}{
			"contentType": v.ContentType,
			"content":     v.Content,
		}
		if v.Params != nil {
			params, err := copyParams(v.Params)
			if err != nil {
				return nil, err
			}
			m["params"] = params
		}
		return m, nil
	}
	return nil, ErrUnsupportedValue
}

func copyParams(params map[string]interface{}) (map[string]interface{}, error) {
	if params == nil {
		return nil, nil
	}
	c, err := copystructure.Copy(params)
	if err != nil {
		return nil, err
	}
	out, ok := c.(map[string]interface{})
	if !ok {
		return nil, ErrInvalidDataParams
	}
	return out, nil
}
