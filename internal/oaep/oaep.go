// Package oaep implements the RSAES-OAEP encoding pipeline and RSA
// primitive of spec.md §4.7, generalized from
// github.com/blck-snwmn/toyrsa's EncryptOAEP: the lHash/seed/DB
// layout and the mgf1xor-based masking are kept as-is, but math/big
// is replaced by internal/bigint.Int and crypto/rand's seed is
// replaced by internal/csprng.Generator.
package oaep

import (
	"errors"

	"github.com/JiangJie/rsa-oaep-encryption/internal/bigint"
	"github.com/JiangJie/rsa-oaep-encryption/internal/csprng"
)

// ErrMessageTooLong is returned when the plaintext does not fit the
// modulus and hash combination (spec.md §4.7's precondition
// mLen <= k - 2*hLen - 2).
var ErrMessageTooLong = errors.New("oaep: message too long for modulus and hash size")

// Hash is the hash.Hash-shaped interface the OAEP pipeline needs: the
// digest engines in internal/digest all satisfy it, so this package
// never imports a concrete algorithm itself.
type Hash interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
	Size() int
	BlockSize() int
}

// Encode runs the full RSAES-OAEP encoding pipeline and RSA primitive
// of spec.md §4.7 against the empty label (the only label value this
// core supports) and returns the k-octet ciphertext, k =
// ceil(bitlen(n)/8).
func Encode(n, e *bigint.Int, plaintext []byte, h Hash, gen *csprng.Generator) ([]byte, error) {
	h.Reset()
	lHash := h.Sum(nil)
	hLen := h.Size()

	k := (n.BitLen() + 7) / 8
	mLen := len(plaintext)
	if mLen > k-2*hLen-2 {
		return nil, ErrMessageTooLong
	}

	em := make([]byte, k)
	seed := em[1 : hLen+1]
	db := em[hLen+1:]

	copy(db[:hLen], lHash)
	db[len(db)-mLen-1] = 0x01
	copy(db[len(db)-mLen:], plaintext)

	copy(seed, gen.GenerateSync(hLen))

	mgf1xor(db, seed, h)
	mgf1xor(seed, db, h)

	m := bigint.FromBytes(em)
	c := bigint.ModPow(m, e, n)
	return c.Bytes(k), nil
}

// mgf1xor XORs MGF1(seed, len(dst), h) into dst in place, per
// spec.md §4.7's MGF1 description: for counter c from 0 upward, emit
// H(seed || I2OSP(c, 4)) and concatenate until len(dst) bytes have
// been produced.
func mgf1xor(dst, seed []byte, h Hash) {
	var counter [4]byte
	var digest []byte
	done := 0
	for done < len(dst) {
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		digest = h.Sum(digest[:0])

		n := len(digest)
		if remaining := len(dst) - done; n > remaining {
			n = remaining
		}
		for i := 0; i < n; i++ {
			dst[done+i] ^= digest[i]
		}
		done += n

		for i := 3; i >= 0; i-- {
			counter[i]++
			if counter[i] != 0 {
				break
			}
		}
	}
}
