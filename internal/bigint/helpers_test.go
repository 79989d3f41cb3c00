package bigint

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomBigInt and randomOddBigInt use crypto/rand purely to generate
// test fixtures; the core under test never imports it.

func randomBigInt(t *testing.T, bits int) *big.Int {
	t.Helper()
	n, err := rand.Prime(rand.Reader, bits)
	require.NoError(t, err)
	return n
}

func randomOddBigInt(t *testing.T, bits int) *big.Int {
	t.Helper()
	n, err := rand.Prime(rand.Reader, bits)
	require.NoError(t, err)
	return n
}
