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
	"context"
	"encoding/json"
)

// Request is a prepared JSON-RPC call whose result decodes to T.
type Request[T any] struct {
	client   *Client
	endpoint string
	method   string
	params   interface{}
	decode   func(json.RawMessage) (T, error)
	hook     func(T)
	cached   func() (T, bool)
}

func newRequest[T any](c *Client, method string, params interface{}, decode func(json.RawMessage) (T, error)) *Request[T] {
	return &Request[T]{
		client:   c,
		endpoint: c.provider,
		method:   method,
		params:   params,
		decode:   decode,
	}
}

// Method returns the JSON-RPC method name.
func (r *Request[T]) Method() string {
	return r.method
}

// Params returns the request params.
func (r *Request[T]) Params() interface{} {
	return r.params
}

// Execute sends the request and waits for the result.
func (r *Request[T]) Execute(ctx context.Context) (T, error) {
	var zero T
	if r.cached != nil {
		if v, ok := r.cached(); ok {
			return v, nil
		}
	}
	raw, err := r.client.call(ctx, r.endpoint, r.method, r.params)
	if err != nil {
		return zero, err
	}
	v, err := r.decode(raw)
	if err != nil {
		return zero, err
	}
	if r.hook != nil {
		r.hook(v)
	}
	return v, nil
}

// Async sends the request on a new goroutine and passes the outcome to done.
func (r *Request[T]) Async(ctx context.Context, done func(T, error)) {
	go func() {
		done(r.Execute(ctx))
	}()
}
