package rand_test

import (
	"testing"

	"github.com/icon-project/ICONKit/crypto/rand"
	"github.com/stretchr/testify/assert"
)

func TestRandom(t *testing.T) {
	a := rand.GetEntropyCSPRNG(32)
	b := rand.GetEntropyCSPRNG(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b, "Two random outputs should not equal")
	assert.Empty(t, rand.GetEntropyCSPRNG(0))
}
