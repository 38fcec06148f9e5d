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

package transaction_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto/signature/secp256k1"
	"github.com/icon-project/ICONKit/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addrA    = common.Address("hx" + strings.Repeat("a", 40))
	addrB    = common.Address("hx" + strings.Repeat("b", 40))
	scoreC   = common.Address("cx" + strings.Repeat("c", 40))
	testTime = "0x5c42da6830136"
)

func base() transaction.Transaction {
	return transaction.New().
		WithFrom(addrA).
		WithTo(addrB).
		WithStepLimit(uint256.NewInt(0x5000)).
		WithNid(uint256.NewInt(3)).
		WithNonce(uint256.NewInt(1)).
		WithTimestamp(testTime)
}

func TestTransferGolden(t *testing.T) {
	tx := base().WithValue(uint256.NewInt(0x100))

	preimage, err := tx.Preimage()
	require.NoError(t, err)
	assert.Equal(t, "icx_sendTransaction.from."+string(addrA)+".nid.0x3.nonce.0x1.stepLimit.0x5000"+
		".timestamp.0x5c42da6830136.to."+string(addrB)+".value.0x100.version.0x3", preimage)

	hash, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal(t, "3f46b98834ad73fd051eba5fc7ce3dd24db205660bc40c2ab1aa21fd39e58c3f", hash)
}

func TestMessageGolden(t *testing.T) {
	tx := base().WithMessage("Hello, ICON. v1.0")

	preimage, err := tx.Preimage()
	require.NoError(t, err)
	assert.Equal(t, "icx_sendTransaction.data.Hello, ICON\\. v1\\.0.dataType.message.from."+string(addrA)+
		".nid.0x3.nonce.0x1.stepLimit.0x5000.timestamp.0x5c42da6830136.to."+string(addrB)+".version.0x3", preimage)

	hash, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal(t, "a53433557272fea0d914527a4f110c956e78860aa2f2c99a6eb5abda113c733d", hash)
}

func TestCallGolden(t *testing.T) {
	params := map[string]interface{}{
		"_to":    string(addrB),
		"_value": "0x1234",
		"_memo":  []interface{}{"a.b", map[string]interface{}{"k": "v"}, []interface{}{}},
		"_empty": map[string]interface{}{},
	}
	tx := base().WithTo(scoreC).WithCall("transfer", params)

	preimage, err := tx.Preimage()
	require.NoError(t, err)
	assert.Equal(t, "icx_sendTransaction.data.{method.transfer.params.{_empty.{}._memo.[a\\.b.{k.v}.[]]._to."+string(addrB)+
		"._value.0x1234}}.dataType.call.from."+string(addrA)+".nid.0x3.nonce.0x1.stepLimit.0x5000"+
		".timestamp.0x5c42da6830136.to."+string(scoreC)+".version.0x3", preimage)

	hash, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal(t, "2c8722426c22d28fcf453c8523a5515d9b34f78827f3fd97b3d455f2d6cc1641", hash)

	// The transaction keeps its own copy of params.
	params["_value"] = "0x0"
	again, err := tx.Preimage()
	require.NoError(t, err)
	assert.Equal(t, preimage, again)
}

func TestEstimateParams(t *testing.T) {
	tx := base().WithValue(uint256.NewInt(0x100))

	params, err := tx.EstimateParams()
	require.NoError(t, err)
	assert.NotContains(t, params, "stepLimit")
	assert.NotContains(t, params, "signature")

	preimage, err := transaction.Serialize(params)
	require.NoError(t, err)
	assert.Equal(t, "icx_sendTransaction.from."+string(addrA)+".nid.0x3.nonce.0x1"+
		".timestamp.0x5c42da6830136.to."+string(addrB)+".value.0x100.version.0x3", preimage)

	hash, err := tx.WithStepLimit(nil).Hash()
	require.NoError(t, err)
	assert.Equal(t, "2fd2e30275b7cf2ab5de14df68b2892029b72b9712e1678dc49028fb875f9962", hash)

	full, err := tx.Params()
	require.NoError(t, err)
	assert.Equal(t, "0x5000", full["stepLimit"])
}

func TestOrderIndependence(t *testing.T) {
	a := transaction.New().
		WithTimestamp(testTime).
		WithNonce(uint256.NewInt(1)).
		WithValue(uint256.NewInt(0x100)).
		WithNid(uint256.NewInt(3)).
		WithTo(addrB).
		WithStepLimit(uint256.NewInt(0x5000)).
		WithFrom(addrA)
	b := base().WithValue(uint256.NewInt(0x100))

	pa, err := a.Preimage()
	require.NoError(t, err)
	pb, err := b.Preimage()
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestCopyOnWrite(t *testing.T) {
	value := uint256.NewInt(10)
	tx := base().WithValue(value)
	value.SetUint64(20)
	assert.Equal(t, uint64(10), tx.Value().Uint64())

	tx.Value().SetUint64(30)
	assert.Equal(t, uint64(10), tx.Value().Uint64())

	other := tx.WithTo(scoreC)
	assert.Equal(t, addrB, tx.To())
	assert.Equal(t, scoreC, other.To())
	assert.Equal(t, transaction.DefaultVersion, tx.Version())
}

func TestMissingParameters(t *testing.T) {
	tests := []struct {
		tx    transaction.Transaction
		param string
	}{
		{base().WithFrom(""), transaction.ParamFrom},
		{base().WithTo(""), transaction.ParamTo},
		{base().WithNid(nil), transaction.ParamNid},
	}
	for _, test := range tests {
		_, err := test.tx.Params()
		var missing *transaction.MissingParameterError
		require.True(t, errors.As(err, &missing), test.param)
		assert.Equal(t, test.param, missing.Parameter)
		assert.ErrorIs(t, err, transaction.ErrMissingParameter)
	}

	_, err := base().WithFrom("hx1234").Params()
	assert.Equal(t, transaction.ErrInvalidFrom, err)
	_, err = base().WithTo("0x1234").Params()
	assert.Equal(t, transaction.ErrInvalidTo, err)
}

func TestUnsupportedValue(t *testing.T) {
	tx := base().WithCall("transfer", map[string]interface{}{"amount": 12})
	_, err := tx.Preimage()
	assert.ErrorIs(t, err, transaction.ErrUnsupportedValue)

	tx = base().WithCall("transfer", map[string]interface{}{"amount": nil})
	_, err = tx.Preimage()
	assert.ErrorIs(t, err, transaction.ErrUnsupportedValue)
}

func TestDeployData(t *testing.T) {
	tx := transaction.NewDeploy(addrA, scoreC, "application/zip", []byte{0xca, 0xfe},
		map[string]interface{}{"name": "token"}).
		WithNid(uint256.NewInt(1)).
		WithTimestamp(testTime)

	params, err := tx.Params()
	require.NoError(t, err)
	assert.Equal(t, transaction.DataTypeDeploy, params["dataType"])
	assert.Equal(t, map[string]interface{}{
		"contentType": "application/zip",
		"content":     "0xcafe",
		"params":      map[string]interface{}{"name": "token"},
	}, params["data"])

	d, ok := tx.Data().(transaction.Deploy)
	require.True(t, ok)
	assert.Equal(t, "0xcafe", d.Content)
}

func TestSign(t *testing.T) {
	key, err := secp256k1.NewPrivateKeyFromHex("289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032")
	require.NoError(t, err)
	signer, err := transaction.NewKeySigner(key)
	require.NoError(t, err)

	tx := transaction.NewTransfer(signer.Address(), addrB, uint256.NewInt(0x100)).
		WithStepLimit(uint256.NewInt(0x5000)).
		WithNid(uint256.NewInt(3))

	signed, err := transaction.Sign(tx, signer)
	require.NoError(t, err)
	require.NoError(t, signed.Verify())

	hash, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal(t, hash, signed.Hash)
	assert.Equal(t, "0x"+hash, signed.TxHash())
	assert.Equal(t, signed.Signature, signed.Params["signature"])
	assert.Equal(t, string(signer.Address()), signed.Params["from"])

	// The signing params must not alter the transaction preimage.
	unsigned, err := tx.Params()
	require.NoError(t, err)
	assert.NotContains(t, unsigned, "signature")

	tampered := *signed
	tampered.Transaction = tx.WithValue(uint256.NewInt(1))
	assert.Equal(t, transaction.ErrInvalidSignature, tampered.Verify())

	_, err = transaction.Sign(base(), signer)
	assert.Equal(t, transaction.ErrSignerMismatch, err)
}
