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

package keystore

import (
	"encoding/json"
	"testing"

	"github.com/icon-project/ICONKit/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longDKLenKeystore = `{"version":3,"id":"5d1a2c6e-8f3b-4c2a-9e1d-7b6a5c4d3e2f","address":"hx39de21d6905bebd5b76371170b7097b85bd3bc48","crypto":{"ciphertext":"5777e1dcc419227df75f84ee02d5b5fb2070b75928a71579afc761dad2f2931e","cipherparams":{"iv":"bd1b9f8e3d0b4a9a4f1b8e0a3c2d1e0f"},"cipher":"aes-128-ctr","kdf":"pbkdf2","kdfparams":{"dklen":64,"salt":"3fa2c1d0e9b8a7f6e5d4c3b2a1908f7e6d5c4b3a29180f7e6d5c4b3a29180f7e","c":16384,"prf":"hmac-sha256"},"mac":"c663053c90c397c90cf363e66d68a7ad98cda876d876bb188f8da660915ffe51"},"coinType":"icx"}`

func TestDeriveKeyTruncates(t *testing.T) {
	ks := new(Keystore)
	require.NoError(t, json.Unmarshal([]byte(longDKLenKeystore), ks))

	key, err := ks.deriveKey("qwer1234!")
	require.NoError(t, err)
	assert.Len(t, key, crypto.DerivedKeyLength)
	assert.Equal(t, crypto.DerivedKeyLength, cap(key))
}

func TestCheckKDFParams(t *testing.T) {
	ok := []KDFParamsJSON{
		{N: StandardScryptN, R: StandardScryptR, P: StandardScryptP},
		{N: MaxScryptMemory / 128 / 8, R: 8, P: MaxScryptP},
	}
	for _, p := range ok {
		assert.NoError(t, checkKDFParams(KDFScrypt, p), "%+v", p)
	}
	assert.NoError(t, checkKDFParams(KDFPBKDF2, KDFParamsJSON{C: DefaultPBKDF2Rounds}))

	bad := []KDFParamsJSON{
		{N: 1 << 26, R: 8, P: 1},
		{N: MaxScryptMemory / 128 / 8 * 2, R: 8, P: 1},
		{N: 1 << 14, R: 0, P: 1},
		{N: 1 << 14, R: 8, P: MaxScryptP + 1},
		{N: 1, R: 8, P: 1},
	}
	for _, p := range bad {
		assert.ErrorIs(t, checkKDFParams(KDFScrypt, p), ErrMalformedKeystore, "%+v", p)
	}
	assert.ErrorIs(t, checkKDFParams(KDFPBKDF2, KDFParamsJSON{C: MaxPBKDF2Rounds + 1}), ErrMalformedKeystore)
	assert.ErrorIs(t, checkKDFParams(KDFPBKDF2, KDFParamsJSON{}), ErrMalformedKeystore)
}
