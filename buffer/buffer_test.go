package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutGetInt32(t *testing.T) {
	t.Parallel()
	for _, x := range []uint32{0, 1, 0xFF, 0x01020304, 0xFFFFFFFF} {
		b := New(nil)
		b.PutInt32(x)
		assert.Equal(t, uint32(x), b.GetInt32())
	}
}

func TestGetIntWidths(t *testing.T) {
	t.Parallel()
	b := New([]byte{0xAB, 0x01, 0x02, 0x03})
	assert.Equal(t, uint32(0xAB), b.GetInt(8))
	assert.Equal(t, uint32(0x0102), b.GetInt(16))
	assert.Equal(t, uint32(0x03), b.GetInt(8))
}

func TestToArrayBufferMatchesSource(t *testing.T) {
	t.Parallel()
	s := "hello, oaep"
	b := New([]byte(s))
	assert.Equal(t, []byte(s), b.ToArrayBuffer())
}

func TestGetBytesNoCountClears(t *testing.T) {
	t.Parallel()
	b := New([]byte{1, 2, 3, 4})
	b.GetByte()
	rest := b.GetBytes(-1)
	assert.Equal(t, []byte{2, 3, 4}, rest)
	assert.Equal(t, 0, b.Length())
}

func TestCompactDropsConsumedPrefix(t *testing.T) {
	t.Parallel()
	b := New([]byte{1, 2, 3, 4, 5})
	b.GetBytes(2)
	b.Compact()
	assert.Equal(t, []byte{3, 4, 5}, b.Bytes(-1))
	assert.Equal(t, 3, b.Len())
}

func TestToHex(t *testing.T) {
	t.Parallel()
	b := New([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.Equal(t, "deadbeef", b.ToHex())
}
