package bigint

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModPowMatchesMathBig is the §8 property 9 check: for random
// (a, e, m) with m odd and bitlen(m) in {256, 1024, 2048}, ModPow must
// match math/big's Exp bit-for-bit.
func TestModPowMatchesMathBig(t *testing.T) {
	t.Parallel()
	for _, bits := range []int{256, 1024, 2048} {
		bits := bits
		t.Run(sizeLabel(bits), func(t *testing.T) {
			t.Parallel()
			m := randomOddBigInt(t, bits)
			a := randomLessThan(t, m)
			e := randomLessThan(t, m)

			want := new(big.Int).Exp(a, e, m)

			xa := FromBytes(a.Bytes())
			xe := FromBytes(e.Bytes())
			xm := FromBytes(m.Bytes())

			got := ModPow(xa, xe, xm)

			size := (m.BitLen() + 7) / 8
			assert.Equal(t, leftPad(want.Bytes(), size), got.Bytes(size))
		})
	}
}

func TestModPowBaseOneAndZeroExponent(t *testing.T) {
	t.Parallel()
	m := randomOddBigInt(t, 256)
	xm := FromBytes(m.Bytes())

	got := ModPow(One(), Zero(), xm)
	size := (m.BitLen() + 7) / 8
	assert.Equal(t, leftPad(big.NewInt(1).Bytes(), size), got.Bytes(size))
}

func randomLessThan(t *testing.T, m *big.Int) *big.Int {
	t.Helper()
	n, err := rand.Int(rand.Reader, m)
	require.NoError(t, err)
	return n
}

func sizeLabel(bits int) string {
	switch bits {
	case 256:
		return "256-bit"
	case 1024:
		return "1024-bit"
	case 2048:
		return "2048-bit"
	default:
		return "bits"
	}
}
