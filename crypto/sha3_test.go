package crypto_test

import (
	"encoding/hex"
	"testing"

	"github.com/icon-project/ICONKit/crypto"
	"github.com/stretchr/testify/assert"
)

func TestSha3(t *testing.T) {
	inA := make([]byte, 5)
	inB := make([]byte, 8)
	ha := crypto.Sha3256(inA)
	hb := crypto.Sha3256(inB)

	assert.Len(t, ha, 32, "The length hash output should be 32 bytes")
	assert.Len(t, hb, 32, "The length hash output should be 32 bytes")
	assert.NotEqual(t, ha, hb, "Hash of zero-bytes with different length should not equal")
}

func TestHashVectors(t *testing.T) {
	tests := []struct {
		name string
		fn   func(...[]byte) []byte
		in   string
		exp  string
	}{
		{"sha3 empty", crypto.Sha3256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"sha3 abc", crypto.Sha3256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"keccak abc", crypto.Keccak256, "abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
	}
	for _, test := range tests {
		assert.Equal(t, test.exp, hex.EncodeToString(test.fn([]byte(test.in))), test.name)
	}

	assert.Equal(t, crypto.Sha3256([]byte("abc")), crypto.Sha3256([]byte("a"), []byte("bc")))
	assert.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		crypto.Sha3256Hash([]byte("abc")).Hex())
}
