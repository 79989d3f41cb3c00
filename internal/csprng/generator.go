// Package csprng implements a simplified Fortuna-style pseudorandom
// generator (spec.md §4.6), built on the from-scratch SHA-256 engine
// in internal/digest and the from-scratch AES-128 block cipher in
// aes.go. The OAEP encoder (internal/oaep) is its only consumer; it
// needs cryptographically strong seed bytes, never more.
package csprng

import (
	"crypto/rand"
	"errors"

	"github.com/JiangJie/rsa-oaep-encryption/internal/digest"
)

// ErrEntropyFailure is returned by New when the OS entropy source
// cannot supply the bytes that seed the pools. The only host facility
// this package uses is the OS entropy source feeding those pools —
// spec.md §4.6 explicitly recommends this over the toy Park-Miller
// LCG its own source uses, since the pools, not this source, are
// where the cryptographic strength actually lives.
var ErrEntropyFailure = errors.New("csprng: entropy source failure")

const (
	numPools  = 32
	keySize   = aesKeySize
	blockSize = aesBlockSize
)

// entropyPool is a SHA-256 state accumulating seed bytes, per
// spec.md's "Entropy pool" glossary entry.
type entropyPool = interface {
	Write([]byte) (int, error)
	Sum([]byte) []byte
	Reset()
}

// Generator is the PRNG context spec.md §3 describes: 32 entropy
// pools, a current AES-128 key and counter seed, and reseed/generated
// byte counters. It is not safe for concurrent use — spec.md §5
// requires callers sharing one Generator across threads to guard it
// with exclusive access or use one Generator per thread.
type Generator struct {
	pools       [numPools]entropyPool
	poolIndex   int
	key         [keySize]byte
	seed        [blockSize]byte
	reseedCount uint64
	generated   uint64
}

// New returns a Generator seeded from the OS entropy source.
func New() (*Generator, error) {
	g := &Generator{}
	for i := range g.pools {
		g.pools[i] = digest.NewSHA256()
	}
	seed := make([]byte, numPools*digestSeedBytes)
	if _, err := rand.Read(seed); err != nil {
		return nil, ErrEntropyFailure
	}
	g.Collect(seed)
	return g, nil
}

// digestSeedBytes is how much OS entropy each pool receives on
// construction, before any reseed has run.
const digestSeedBytes = 32

// Collect feeds seed material into the pools round-robin, one byte
// per pool, per spec.md §4.6's collect(os) description.
func (g *Generator) Collect(os []byte) {
	for _, b := range os {
		g.pools[g.poolIndex].Write([]byte{b})
		g.poolIndex = (g.poolIndex + 1) % numPools
	}
}

// reseed runs the Fortuna catch-up algorithm (spec.md §4.6): pool i
// contributes to reseed number n only when 2^i divides n, so pool 0
// contributes every reseed, pool 1 every other, and so on — pools
// that contribute less often accumulate more entropy between uses.
// The new key is SHA-256(current key bytes ‖ selected pool digests),
// truncated to the 128 bits AES-128 needs; the new counter seed is
// SHA-256(new key), similarly truncated.
func (g *Generator) reseed() {
	g.reseedCount++
	h := digest.NewSHA256()
	h.Write(g.key[:])
	for i := 0; i < numPools; i++ {
		if g.reseedCount%(uint64(1)<<uint(i)) != 0 {
			break
		}
		sum := g.pools[i].Sum(nil)
		g.pools[i].Reset()
		h.Write(sum)
	}
	newKey := h.Sum(nil)
	copy(g.key[:], newKey[:keySize])

	h2 := digest.NewSHA256()
	h2.Write(g.key[:])
	newSeed := h2.Sum(nil)
	copy(g.seed[:], newSeed[:blockSize])
}

// incrementSeed increments the seed's least significant 32 bits,
// treating the 16-byte seed as big-endian per spec.md §4.6's counter
// description.
func incrementSeed(seed *[blockSize]byte) {
	for i := blockSize - 1; i >= blockSize-4; i-- {
		seed[i]++
		if seed[i] != 0 {
			return
		}
	}
}

// GenerateSync returns count pseudorandom bytes. It reseeds first
// (spec.md §3: "reseeded implicitly every call to the byte
// generator"), runs AES-128 in counter mode with the resulting key
// over the resulting seed, incrementing the seed's least significant
// 32 bits per block, and finally — per spec.md §4.6's closing
// sentence — formats a fresh key and seed for the next call from two
// more blocks of that same keystream, so no future call's output can
// be used to recover the bytes this call just returned.
func (g *Generator) GenerateSync(count int) []byte {
	g.reseed()
	w := expandKey(g.key)

	out := make([]byte, 0, count)
	for len(out) < count {
		block := encryptBlock(w, g.seed)
		out = append(out, block[:]...)
		incrementSeed(&g.seed)
	}
	out = out[:count]

	var rekeyMaterial [keySize + blockSize]byte
	filled := 0
	for filled < len(rekeyMaterial) {
		block := encryptBlock(w, g.seed)
		filled += copy(rekeyMaterial[filled:], block[:])
		incrementSeed(&g.seed)
	}
	copy(g.key[:], rekeyMaterial[:keySize])
	copy(g.seed[:], rekeyMaterial[keySize:])
	g.generated += uint64(count)

	return out
}
