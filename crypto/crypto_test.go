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

package crypto_test

import (
	"testing"

	"github.com/icon-project/ICONKit/common"
	"github.com/icon-project/ICONKit/crypto"
	"github.com/icon-project/ICONKit/crypto/signature/algorithm"
	"github.com/icon-project/ICONKit/crypto/signature/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	key, err := crypto.GenerateKey(algorithm.SECP256K1)
	require.NoError(t, err)
	assert.Equal(t, algorithm.SECP256K1, key.Algorithm())

	_, err = crypto.GenerateKey(algorithm.Algorithm(99))
	assert.Equal(t, algorithm.ErrInvalidCryptoAlgorithm, err)
	assert.Equal(t, algorithm.ErrInvalidCryptoAlgorithm, crypto.CheckCryptoAlgorithm(algorithm.Algorithm(99)))
	assert.NoError(t, crypto.CheckCryptoAlgorithm(algorithm.SECP256K1))
}

func TestCheckAddress(t *testing.T) {
	key, err := secp256k1.NewPrivateKeyFromHex("289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032")
	require.NoError(t, err)

	assert.True(t, crypto.CheckAddress(key, "hx39de21d6905bebd5b76371170b7097b85bd3bc48"))
	assert.False(t, crypto.CheckAddress(key, "hx0502987e630ea7ebb2bf1d84a65a727109385bcf"))

	other, err := crypto.GenerateKey(algorithm.SECP256K1)
	require.NoError(t, err)
	addr, err := common.PublicKeyToAddress(other.PublicKey())
	require.NoError(t, err)
	assert.True(t, crypto.CheckAddress(other, addr))
}
