package digest

const (
	sha256BlockSize  = 64
	sha256DigestSize = 32
)

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256State is a FIPS 180-4 SHA-256 engine.
type sha256State struct {
	h   [8]uint32
	buf []byte
	len uint64
}

// NewSHA256 returns a fresh SHA-256 hash.Hash.
func NewSHA256() *sha256State {
	s := &sha256State{}
	s.Reset()
	return s
}

func (s *sha256State) Reset() {
	s.h = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	s.buf = s.buf[:0]
	s.len = 0
}

func (s *sha256State) Size() int      { return sha256DigestSize }
func (s *sha256State) BlockSize() int { return sha256BlockSize }

func (s *sha256State) Write(p []byte) (int, error) {
	s.len += uint64(len(p)) * 8
	s.buf = append(s.buf, p...)
	for len(s.buf) >= sha256BlockSize {
		s.block(s.buf[:sha256BlockSize])
		s.buf = s.buf[sha256BlockSize:]
	}
	return len(p), nil
}

func (s *sha256State) Sum(b []byte) []byte {
	cp := *s
	cp.buf = append([]byte(nil), s.buf...)
	cp.pad()
	for len(cp.buf) > 0 {
		cp.block(cp.buf[:sha256BlockSize])
		cp.buf = cp.buf[sha256BlockSize:]
	}
	out := make([]byte, sha256DigestSize)
	for i, v := range cp.h {
		out[i*4] = byte(v >> 24)
		out[i*4+1] = byte(v >> 16)
		out[i*4+2] = byte(v >> 8)
		out[i*4+3] = byte(v)
	}
	return append(b, out...)
}

func (s *sha256State) pad() {
	msgLen := s.len
	s.buf = append(s.buf, 0x80)
	for len(s.buf)%sha256BlockSize != 56 {
		s.buf = append(s.buf, 0)
	}
	for i := 7; i >= 0; i-- {
		s.buf = append(s.buf, byte(msgLen>>(uint(i)*8)))
	}
}

func (s *sha256State) block(chunk []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(chunk[i*4])<<24 | uint32(chunk[i*4+1])<<16 | uint32(chunk[i*4+2])<<8 | uint32(chunk[i*4+3])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4], s.h[5], s.h[6], s.h[7]

	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + sha256K[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + temp1
		d = c
		c = b
		b = a
		a = temp1 + temp2
	}

	s.h[0] += a
	s.h[1] += b
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
	s.h[5] += f
	s.h[6] += g
	s.h[7] += h
}
