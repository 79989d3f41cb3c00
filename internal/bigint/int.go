// Package bigint implements the arbitrary-precision integer engine
// the RSA primitive needs: a limb-based non-negative integer with
// Montgomery modular exponentiation, independent of math/big. Every
// value the RSA-OAEP pipeline produces (n, e, the encoded message) is
// non-negative, so unlike the jsbn-derived source this spec is ported
// from, Int carries no sign field — see spec.md §9's own suggestion to
// drop signed-magnitude complexity outside subTo/divRemTo, taken one
// step further here since this core never calls either with a
// negative operand or result.
package bigint

// DB is the number of bits per limb. DM is the per-limb mask, and DV
// the limb base 2^DB. The source these semantics are ported from
// keeps DB at 28 to stay inside the 53-bit float-safe range of a
// JavaScript double; this port runs on native 64-bit integers, so the
// limb arithmetic below uses uint64 accumulators directly rather than
// the 14-bit split multiply spec.md §4.5 describes, with an identical
// numeric result (spec.md §4.5 explicitly permits this substitution).
const (
	DB = 28
	DM = (1 << DB) - 1
	DV = 1 << DB
)

// Int is a non-negative, clamped, base-2^DB limb array, least
// significant limb first. The zero value represents zero (an empty
// limb slice with no redundant leading zero limb).
type Int struct {
	limbs []uint32
}

// Zero returns the integer 0.
func Zero() *Int { return &Int{} }

// One returns the integer 1.
func One() *Int { return &Int{limbs: []uint32{1}} }

// FromBytes interprets b as a non-negative big-endian octet string
// (OS2IP) and returns the corresponding Int.
func FromBytes(b []byte) *Int {
	limbs := make([]uint32, 0, (len(b)*8+DB-1)/DB+1)
	var acc uint64
	var accBits uint

	for i := len(b) - 1; i >= 0; i-- {
		acc |= uint64(b[i]) << accBits
		accBits += 8
		for accBits >= DB {
			limbs = append(limbs, uint32(acc&DM))
			acc >>= DB
			accBits -= DB
		}
	}
	if accBits > 0 && acc != 0 {
		limbs = append(limbs, uint32(acc&DM))
	}
	return &Int{limbs: clamp(limbs)}
}

// Bytes renders x as a fixed-width big-endian octet string (I2OSP),
// left-padded with 0x00 to exactly size bytes. size must be large
// enough to hold x; callers in this core always size from the
// modulus, which is guaranteed by the OAEP encode step.
func (x *Int) Bytes(size int) []byte {
	out := make([]byte, size)
	var acc uint64
	var accBits uint
	pos := size - 1

	for _, limb := range x.limbs {
		acc |= uint64(limb) << accBits
		accBits += DB
		for accBits >= 8 && pos >= 0 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos--
		}
	}
	for accBits > 0 && pos >= 0 {
		out[pos] = byte(acc)
		acc >>= 8
		pos--
	}
	return out
}

// BitLen returns DB*(t-1) + bitlen(top limb), or 0 for zero.
func (x *Int) BitLen() int {
	t := len(x.limbs)
	if t == 0 {
		return 0
	}
	top := x.limbs[t-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return DB*(t-1) + bits
}

// IsZero reports whether x is the integer 0.
func (x *Int) IsZero() bool { return len(x.limbs) == 0 }

// Clone returns an independent copy of x.
func (x *Int) Clone() *Int {
	return &Int{limbs: append([]uint32(nil), x.limbs...)}
}

// clamp drops redundant high zero limbs so the top limb (if any) is
// always non-zero.
func clamp(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

// cmpLimbs compares two clamped limb arrays: -1, 0, or 1.
func cmpLimbs(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y: -1, 0, or 1.
func (x *Int) Cmp(y *Int) int { return cmpLimbs(x.limbs, y.limbs) }

// addLimbs returns a+b.
func addLimbs(a, b []uint32) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint32, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a) {
			av = uint64(a[i])
		}
		if i < len(b) {
			bv = uint64(b[i])
		}
		sum := av + bv + carry
		out[i] = uint32(sum & DM)
		carry = sum >> DB
	}
	out[n] = uint32(carry)
	return clamp(out)
}

// subLimbs returns a-b, requiring a >= b.
func subLimbs(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	for i := range a {
		var bv int64
		if i < len(b) {
			bv = int64(b[i])
		}
		d := int64(a[i]) - bv - borrow
		if d < 0 {
			d += DV
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return clamp(out)
}

// Add returns x+y.
func (x *Int) Add(y *Int) *Int { return &Int{limbs: addLimbs(x.limbs, y.limbs)} }

// Sub returns x-y. x must be >= y.
func (x *Int) Sub(y *Int) *Int { return &Int{limbs: subLimbs(x.limbs, y.limbs)} }

// ShiftLeftLimbs returns x shifted left by n whole limbs (dlShiftTo
// in spec.md §4.5's naming) — equivalent to multiplying by DV^n.
func (x *Int) ShiftLeftLimbs(n int) *Int {
	if x.IsZero() || n == 0 {
		return x.Clone()
	}
	out := make([]uint32, len(x.limbs)+n)
	copy(out[n:], x.limbs)
	return &Int{limbs: clamp(out)}
}

// shl1 shifts the clamped limb array left by one bit, injecting
// carryIn as the new low bit. Used by the bit-at-a-time modular
// reduction in mul.go.
func shl1(a []uint32, carryIn uint32) []uint32 {
	out := make([]uint32, len(a)+1)
	carry := carryIn & 1
	for i, limb := range a {
		out[i] = ((limb << 1) | carry) & DM
		carry = limb >> (DB - 1)
	}
	out[len(a)] = carry
	return clamp(out)
}
