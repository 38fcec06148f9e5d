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

package secp256k1_test

import (
	"encoding/hex"
	"testing"

	"github.com/icon-project/ICONKit/crypto/signature/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

var (
	testPrivHex  = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"
	testPub64Hex = "7db227d7094ce215c3a0f57e1bcc732551fe351f94249471934567e0f5dc1bf795962b8cccb87a2eb56b29fbe37d614e2f4c3c45b789ae4f1f51f4cb21972ffd"
)

func testHash(s string) []byte {
	h := sha3.Sum256([]byte(s))
	return h[:]
}

func TestNewPrivateKeyErrors(t *testing.T) {
	_, err := secp256k1.NewPrivateKeyFromHex("0000000000000000000000000000000000000000000000000000000000000000")
	assert.Equal(t, secp256k1.ErrInvalidPrivateKey, err, "zero scalar should be rejected")

	_, err = secp256k1.NewPrivateKeyFromHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	assert.Equal(t, secp256k1.ErrInvalidPrivateKey, err, "scalar >= N should be rejected")

	_, err = secp256k1.NewPrivateKeyFromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	assert.Equal(t, secp256k1.ErrInvalidPrivateKey, err, "scalar == N should be rejected")

	_, err = secp256k1.NewPrivateKeyFromHex("1234")
	assert.Equal(t, secp256k1.ErrInvalidPrivateKey, err, "short scalar should be rejected")

	_, err = secp256k1.NewPrivateKeyFromHex("zz")
	assert.Error(t, err)
}

func TestPublicKeyDerivation(t *testing.T) {
	key, err := secp256k1.NewPrivateKeyFromHex(testPrivHex)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		raw, err := key.PublicKey().(*secp256k1.PublicKey).Raw()
		require.NoError(t, err)
		assert.Equal(t, testPub64Hex, hex.EncodeToString(raw))
	}

	encoded, err := key.PublicKey().Encoded()
	require.NoError(t, err)
	assert.Len(t, encoded, secp256k1.PublicKeyLength)
	assert.Equal(t, byte(0x04), encoded[0])
	assert.Equal(t, testPrivHex, key.Hex())
}

func TestSign(t *testing.T) {
	key, err := secp256k1.NewPrivateKeyFromHex(testPrivHex)
	require.NoError(t, err)
	pub, err := key.PublicKey().Encoded()
	require.NoError(t, err)

	msg := testHash("foo")
	sig, err := key.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, secp256k1.SignatureLength)
	assert.True(t, sig[64] == 0 || sig[64] == 1, "recovery id should be 0 or 1")

	recovered, err := secp256k1.RecoverPubkey(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, pub, recovered)

	assert.True(t, secp256k1.VerifySignature(pub, msg, sig))
	assert.True(t, secp256k1.VerifySignature(pub, msg, sig[:64]))
	assert.False(t, secp256k1.VerifySignature(pub, testHash("bar"), sig))

	again, err := key.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, sig, again, "RFC6979 signatures should be deterministic")
}

func TestScheme(t *testing.T) {
	var scheme secp256k1.Scheme
	key, err := scheme.GenerateKey()
	require.NoError(t, err)

	msg := testHash("scheme")
	sig, err := key.Sign(msg)
	require.NoError(t, err)

	pub, err := scheme.Recover(msg, sig)
	require.NoError(t, err)
	want, _ := key.PublicKey().Encoded()
	got, _ := pub.Encoded()
	assert.Equal(t, want, got)

	assert.True(t, scheme.Verify(pub, msg, sig))
	assert.False(t, scheme.Verify(pub, testHash("other"), sig))
	assert.False(t, scheme.Verify(nil, msg, sig))
}

func TestInvalidSign(t *testing.T) {
	key, err := secp256k1.NewPrivateKeyFromHex(testPrivHex)
	require.NoError(t, err)
	seckey, _ := key.Encoded()

	_, err = secp256k1.Sign(make([]byte, 1), seckey)
	assert.Equal(t, secp256k1.ErrInvalidHashLength, err, "expected sign with hash 1 byte to error")

	_, err = secp256k1.Sign(make([]byte, 33), seckey)
	assert.Equal(t, secp256k1.ErrInvalidHashLength, err, "expected sign with hash 33 byte to error")

	_, err = secp256k1.Sign(make([]byte, 32), nil)
	assert.Equal(t, secp256k1.ErrInvalidPrivateKey, err)
}

func TestInvalidRecover(t *testing.T) {
	msg := testHash("foo")
	_, err := secp256k1.RecoverPubkey(msg, make([]byte, 64))
	assert.Equal(t, secp256k1.ErrInvalidSignatureLen, err)

	sig := make([]byte, 65)
	sig[64] = 4
	_, err = secp256k1.RecoverPubkey(msg, sig)
	assert.Equal(t, secp256k1.ErrInvalidRecoveryID, err)
}

func TestCompression(t *testing.T) {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	pub := key.PublicKey()

	compressed, err := pub.Compressed()
	require.NoError(t, err)
	assert.Len(t, compressed, secp256k1.CompressedKeyLength)

	decoded, err := secp256k1.NewPublicKey(compressed)
	require.NoError(t, err)
	want, _ := pub.Encoded()
	got, _ := decoded.Encoded()
	assert.Equal(t, want, got)

	raw, _ := pub.Raw()
	fromRaw, err := secp256k1.NewPublicKey(raw)
	require.NoError(t, err)
	got, _ = fromRaw.Encoded()
	assert.Equal(t, want, got)
}
