// Package buffer implements a growable octet sequence with a read
// cursor, used throughout the core to thread byte-endian values and
// raw digests between components without relying on any particular
// string encoding.
package buffer

import "encoding/hex"

// ByteBuffer is a mutable octet sequence with a read cursor r, where
// 0 <= r <= len(data). Writes always append at the end; reads always
// advance r. No reader ever observes data[:r].
type ByteBuffer struct {
	data []byte
	r    int
}

// New returns a ByteBuffer pre-loaded with the given bytes. The slice
// is copied so the caller may reuse it afterward.
func New(data []byte) *ByteBuffer {
	b := &ByteBuffer{data: make([]byte, len(data))}
	copy(b.data, data)
	return b
}

// PutByte appends a single octet.
func (b *ByteBuffer) PutByte(v byte) *ByteBuffer {
	b.data = append(b.data, v)
	return b
}

// PutBytes appends os in order.
func (b *ByteBuffer) PutBytes(os []byte) *ByteBuffer {
	b.data = append(b.data, os...)
	return b
}

// PutInt32 appends a 32-bit unsigned integer, big-endian.
func (b *ByteBuffer) PutInt32(v uint32) *ByteBuffer {
	return b.PutBytes([]byte{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	})
}

// GetByte consumes and returns the next octet.
func (b *ByteBuffer) GetByte() byte {
	v := b.data[b.r]
	b.r++
	return v
}

// GetInt32 consumes and returns the next 4 octets as a big-endian
// unsigned integer.
func (b *ByteBuffer) GetInt32() uint32 {
	return uint32(b.GetByte())<<24 | uint32(b.GetByte())<<16 | uint32(b.GetByte())<<8 | uint32(b.GetByte())
}

// GetInt consumes ceil(bits/8) octets and returns them as a big-endian
// unsigned integer. bits must be one of 8, 16, 24, 32.
func (b *ByteBuffer) GetInt(bits int) uint32 {
	n := (bits + 7) / 8
	var v uint32
	for i := 0; i < n; i++ {
		v = v<<8 | uint32(b.GetByte())
	}
	return v
}

// GetBytes consumes and returns count octets. If count is negative,
// all remaining octets are consumed and the buffer is cleared.
func (b *ByteBuffer) GetBytes(count int) []byte {
	all := count < 0
	if all {
		count = len(b.data) - b.r
	}
	out := make([]byte, count)
	copy(out, b.data[b.r:b.r+count])
	if all {
		b.Clear()
	} else {
		b.r += count
	}
	return out
}

// Bytes peeks count octets starting at the read cursor without
// advancing it. If count is negative, all remaining octets are
// returned.
func (b *ByteBuffer) Bytes(count int) []byte {
	if count < 0 {
		count = len(b.data) - b.r
	}
	out := make([]byte, count)
	copy(out, b.data[b.r:b.r+count])
	return out
}

// Length returns the number of unread octets remaining.
func (b *ByteBuffer) Length() int {
	return len(b.data) - b.r
}

// Len returns the total size of the buffer's backing storage,
// including already-read bytes.
func (b *ByteBuffer) Len() int {
	return len(b.data)
}

// Compact shifts data[r:] to offset 0 and resets r to 0.
func (b *ByteBuffer) Compact() *ByteBuffer {
	b.data = append([]byte(nil), b.data[b.r:]...)
	b.r = 0
	return b
}

// Clear empties the buffer entirely.
func (b *ByteBuffer) Clear() *ByteBuffer {
	b.data = nil
	b.r = 0
	return b
}

// ToHex renders the unread remainder as a lowercase hex string.
func (b *ByteBuffer) ToHex() string {
	return hex.EncodeToString(b.data[b.r:])
}

// ToArrayBuffer returns a copy of the unread remainder.
func (b *ByteBuffer) ToArrayBuffer() []byte {
	return b.Bytes(-1)
}
