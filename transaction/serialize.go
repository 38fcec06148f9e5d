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
	"fmt"
	"sort"
	"strings"
)

// Method is the JSON-RPC method whose params are serialized for signing.
const Method = "icx_sendTransaction"

var escaper = strings.NewReplacer(".", "\\.")

// Serialize returns the canonical signing preimage of params.
// Keys are sorted byte-wise and each pair is written as key.value joined by ".".
// Nested objects are wrapped in {} and arrays in []. A "." inside a string is
// written as "\." in a single pass.
func Serialize(params map[string]interface{}) (string, error) {
	var b strings.Builder
	b.WriteString(Method)
	b.WriteByte('.')
	if err := writeDict(&b, params); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeDict(b *strings.Builder, m map[string]interface{}) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k)
		b.WriteByte('.')
		if err := writeValue(b, m[k]); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}

func writeArray(b *strings.Builder, a []interface{}) error {
	for i, item := range a {
		if i > 0 {
			b.WriteByte('.')
		}
		if err := writeValue(b, item); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	return nil
}

func writeValue(b *strings.Builder, v interface{}) error {
	switch v := v.(type) {
	case string:
		escaper.WriteString(b, v)
	case map[string]interface{}:
		b.WriteByte('{')
		if err := writeDict(b, v); err != nil {
			return err
		}
		b.WriteByte('}')
	case map[string]string:
		m := make(map[string]interface{}, len(v))
		for k, s := range v {
			m[k] = s
		}
		return writeValue(b, m)
	case []interface{}:
		b.WriteByte('[')
		if err := writeArray(b, v); err != nil {
			return err
		}
		b.WriteByte(']')
	case []string:
		a := make([]interface{}, len(v))
		for i, s := range v {
			a[i] = s
		}
		return writeValue(b, a)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return nil
}
