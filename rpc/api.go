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
	"encoding/json"

	"github.com/holiman/uint256"
	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/transaction"
)

// GetLastBlock returns the latest block.
func (c *Client) GetLastBlock() *Request[*Block] {
	return newRequest(c, MethodGetLastBlock, nil, decodeJSON[*Block])
}

// GetBlockByHeight returns the block at height.
func (c *Client) GetBlockByHeight(height uint64) *Request[*Block] {
	return newRequest(c, MethodGetBlockByHeight, map[string]string{
		"height": common.Uint64ToHex(height),
	}, decodeJSON[*Block])
}

// GetBlockByHash returns the block with hash. Blocks are immutable and served from cache when possible.
func (c *Client) GetBlockByHash(hash string) *Request[*Block] {
	req := newRequest(c, MethodGetBlockByHash, map[string]string{
		"hash": hash,
	}, decodeJSON[*Block])
	if c.blocks == nil {
		return req
	}
	req.cached = func() (*Block, bool) {
		return c.CachedBlock(hash)
	}
	req.hook = func(b *Block) {
		if b != nil {
			c.blocks.Add(hash, b)
		}
	}
	return req
}

// CachedBlock returns a block stored by an earlier GetBlockByHash.
func (c *Client) CachedBlock(hash string) (*Block, bool) {
	if c.blocks == nil {
		return nil, false
	}
	v, ok := c.blocks.Get(hash)
	if !ok {
		return nil, false
	}
	return v.(*Block), true
}

// GetBalance returns the balance of addr in loop.
func (c *Client) GetBalance(addr common.Address) *Request[*uint256.Int] {
	return newRequest(c, MethodGetBalance, map[string]string{
		"address": addr.String(),
	}, decodeUint256)
}

// GetTotalSupply returns the total supply in loop.
func (c *Client) GetTotalSupply() *Request[*uint256.Int] {
	return newRequest(c, MethodGetTotalSupply, nil, decodeUint256)
}

// GetScoreAPI returns the interface of a score.
func (c *Client) GetScoreAPI(score common.Address) *Request[[]ScoreAPI] {
	return newRequest(c, MethodGetScoreAPI, map[string]string{
		"address": score.String(),
	}, decodeJSON[[]ScoreAPI])
}

// GetTransactionByHash returns a transaction.
func (c *Client) GetTransactionByHash(hash string) *Request[*TransactionByHash] {
	return newRequest(c, MethodGetTransactionByHash, map[string]string{
		"txHash": hash,
	}, decodeJSON[*TransactionByHash])
}

// GetTransactionResult returns the receipt of a transaction.
func (c *Client) GetTransactionResult(hash string) *Request[*TransactionResult] {
	return newRequest(c, MethodGetTransactionResult, map[string]string{
		"txHash": hash,
	}, decodeJSON[*TransactionResult])
}

// Call invokes a read-only score method and returns its raw result.
func (c *Client) Call(from, score common.Address, method string, params map[string]interface{}) *Request[json.RawMessage] {
	data := map[string]interface{}{"method": method}
	if params != nil {
		data["params"] = params
	}
	p := map[string]interface{}{
		"to":       score.String(),
		"dataType": transaction.DataTypeCall,
		"data":     data,
	}
	if from != "" {
		p["from"] = from.String()
	}
	return newRequest(c, MethodCall, p, decodeRaw)
}

// CallString invokes a read-only score method whose result is a string.
func (c *Client) CallString(from, score common.Address, method string, params map[string]interface{}) *Request[string] {
	req := c.Call(from, score, method, params)
	return newRequest(c, req.method, req.params, decodeString)
}

// SendTransaction submits a signed transaction and returns its hash.
func (c *Client) SendTransaction(signed *transaction.SignedTransaction) *Request[string] {
	return newRequest(c, MethodSendTransaction, signed.Params, decodeString)
}

// EstimateStep asks the debug endpoint for the steps tx would use.
func (c *Client) EstimateStep(tx transaction.Transaction) (*Request[*uint256.Int], error) {
	params, err := tx.EstimateParams()
	if err != nil {
		return nil, err
	}
	req := newRequest(c, MethodEstimateStep, params, decodeUint256)
	req.endpoint = c.debug
	return req, nil
}
