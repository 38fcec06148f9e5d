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
)

// JSON-RPC methods.
const (
	MethodSendTransaction      = "icx_sendTransaction"
	MethodGetBalance           = "icx_getBalance"
	MethodGetTransactionResult = "icx_getTransactionResult"
	MethodGetLastBlock         = "icx_getLastBlock"
	MethodGetBlockByHash       = "icx_getBlockByHash"
	MethodGetBlockByHeight     = "icx_getBlockByHeight"
	MethodGetTotalSupply       = "icx_getTotalSupply"
	MethodGetTransactionByHash = "icx_getTransactionByHash"
	MethodCall                 = "icx_call"
	MethodGetScoreAPI          = "icx_getScoreApi"
	MethodEstimateStep         = "debug_estimateStep"
)

// Transaction status values.
const (
	StatusSuccess = "0x1"
	StatusFailure = "0x0"
)

// Block is a block as returned by icx_getBlockBy*.
type Block struct {
	Version                  string                 `json:"version"`
	PrevBlockHash            string                 `json:"prev_block_hash"`
	MerkleTreeRootHash       string                 `json:"merkle_tree_root_hash"`
	TimeStamp                int64                  `json:"time_stamp"`
	ConfirmedTransactionList []ConfirmedTransaction `json:"confirmed_transaction_list"`
	BlockHash                string                 `json:"block_hash"`
	Height                   uint64                 `json:"height"`
	PeerID                   string                 `json:"peer_id"`
	Signature                string                 `json:"signature"`
}

// ConfirmedTransaction is a transaction inside a block.
type ConfirmedTransaction struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Timestamp string     `json:"timestamp"`
	Signature string     `json:"signature"`
	TxHash    string     `json:"txHash"`
	Version   string     `json:"version,omitempty"`
	Nid       string     `json:"nid,omitempty"`
	StepLimit string     `json:"stepLimit,omitempty"`
	Value     string     `json:"value,omitempty"`
	Nonce     string     `json:"nonce,omitempty"`
	DataType  string     `json:"dataType,omitempty"`
	Data      *DataValue `json:"data,omitempty"`
	Fee       string     `json:"fee,omitempty"`
	Method    string     `json:"method,omitempty"`
}

// UnmarshalJSON accepts the snake case hash key of v2 transactions.
func (t *ConfirmedTransaction) UnmarshalJSON(b []byte) error {
	type plain ConfirmedTransaction
	aux := struct {
		*plain
		TxHashV2 string `json:"tx_hash"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if t.TxHash == "" {
		t.TxHash = aux.TxHashV2
	}
	return nil
}

// TransactionByHash is the result of icx_getTransactionByHash.
type TransactionByHash struct {
	Version     string     `json:"version"`
	From        string     `json:"from"`
	To          string     `json:"to"`
	Value       string     `json:"value,omitempty"`
	StepLimit   string     `json:"stepLimit"`
	Timestamp   string     `json:"timestamp"`
	Nid         string     `json:"nid,omitempty"`
	Nonce       string     `json:"nonce,omitempty"`
	TxHash      string     `json:"txHash"`
	TxIndex     string     `json:"txIndex"`
	BlockHeight string     `json:"blockHeight"`
	BlockHash   string     `json:"blockHash"`
	Signature   string     `json:"signature"`
	DataType    string     `json:"dataType,omitempty"`
	Data        *DataValue `json:"data,omitempty"`
}

// TransactionResult is the result of icx_getTransactionResult.
type TransactionResult struct {
	TxHash             string     `json:"txHash"`
	BlockHeight        string     `json:"blockHeight"`
	BlockHash          string     `json:"blockHash"`
	TxIndex            string     `json:"txIndex"`
	To                 string     `json:"to"`
	StepUsed           string     `json:"stepUsed"`
	StepPrice          string     `json:"stepPrice"`
	CumulativeStepUsed string     `json:"cumulativeStepUsed"`
	EventLogs          []EventLog `json:"eventLogs,omitempty"`
	LogsBloom          string     `json:"logsBloom,omitempty"`
	Status             string     `json:"status"`
	Failure            *Failure   `json:"failure,omitempty"`
	ScoreAddress       string     `json:"scoreAddress,omitempty"`
}

// EventLog is an event emitted by a score.
type EventLog struct {
	ScoreAddress string   `json:"scoreAddress"`
	Indexed      []string `json:"indexed"`
	Data         []string `json:"data,omitempty"`
}

// Failure describes why a transaction failed.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ScoreAPI describes one entry of a score interface.
type ScoreAPI struct {
	Type     string                   `json:"type"`
	Name     string                   `json:"name"`
	Inputs   []map[string]interface{} `json:"inputs"`
	Outputs  []map[string]interface{} `json:"outputs,omitempty"`
	Readonly string                   `json:"readonly,omitempty"`
	Payable  string                   `json:"payable,omitempty"`
}

// CallData is the data of a call transaction.
type CallData struct {
	Method string                 `json:"method"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// DeployData is the data of a deploy transaction.
type DeployData struct {
	ContentType string                 `json:"contentType"`
	Content     string                 `json:"content"`
	Params      map[string]interface{} `json:"params,omitempty"`
}

// DataValue holds exactly one of Call, Deploy or Message.
type DataValue struct {
	Call    *CallData
	Deploy  *DeployData
	Message *string
}
