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
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/icon-project/ICONKit/metrics"
	"github.com/icon-project/ICONKit/util/logging"
	"github.com/sirupsen/logrus"
)

// Protocol constants.
const (
	JSONRPCVersion = "2.0"
	APIVersion     = "v3"

	DefaultTimeout        = 60 * time.Second
	DefaultBlockCacheSize = 128
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithIDGenerator sets the source of JSON-RPC request ids.
func WithIDGenerator(gen func() int64) Option {
	return func(c *Client) { c.nextID = gen }
}

// WithBlockCacheSize sets the number of blocks kept by GetBlockByHash. Zero disables the cache.
func WithBlockCacheSize(n int) Option {
	return func(c *Client) { c.cacheSize = n }
}

// Client talks to an ICON node over JSON-RPC. It is safe for concurrent use.
type Client struct {
	provider  string
	debug     string
	http      *http.Client
	timeout   time.Duration
	nextID    func() int64
	cacheSize int
	blocks    *lru.Cache
}

// NewClient returns a client for provider, a URL such as https://host/api/v3.
func NewClient(provider string, opts ...Option) (*Client, error) {
	u, err := url.Parse(provider)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, provider)
	}

	var counter int64
	c := &Client{
		provider:  provider,
		debug:     debugEndpoint(u),
		timeout:   DefaultTimeout,
		cacheSize: DefaultBlockCacheSize,
		nextID: func() int64 {
			return atomic.AddInt64(&counter, 1)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.cacheSize > 0 {
		c.blocks, err = lru.New(c.cacheSize)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// debugEndpoint maps .../api/v3 to .../api/debug/v3.
func debugEndpoint(u *url.URL) string {
	d := *u
	p := strings.TrimSuffix(d.Path, "/")
	if i := strings.LastIndex(p, "/"+APIVersion); i >= 0 {
		p = p[:i]
	}
	d.Path = path.Join("/", p, "debug", APIVersion)
	return d.String()
}

// Provider returns the endpoint url.
func (c *Client) Provider() string {
	return c.provider
}

type request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	ID      int64       `json:"id"`
	Params  interface{} `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// call posts one request and returns the raw result.
func (c *Client) call(ctx context.Context, endpoint, method string, params interface{}) (json.RawMessage, error) {
	defer metrics.Since(metrics.RPCTimerPrefix+method, time.Now())

	result, err := c.post(ctx, endpoint, method, params)
	if err != nil {
		metrics.Inc(metrics.RPCErrorCounter)
		logging.WithFields(logrus.Fields{
			"method": method,
			"err":    err,
		}).Debug("JSON-RPC request failed.")
		return nil, err
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, endpoint, method string, params interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(&request{
		JSONRPC: JSONRPCVersion,
		Method:  method,
		ID:      c.nextID(),
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError:
	default:
		return nil, fmt.Errorf("%w: %d %s", ErrHTTPStatus, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	res := new(response)
	if err := json.Unmarshal(data, res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsing, err)
	}
	if res.Error != nil {
		return nil, res.Error
	}
	if len(res.Result) == 0 {
		return nil, ErrUnknown
	}
	return res.Result, nil
}
