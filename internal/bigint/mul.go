package bigint

// Bit returns bit i of x (0-indexed from the least significant bit),
// or 0 if i is beyond the integer's length.
func (x *Int) Bit(i int) uint32 {
	limbIdx := i / DB
	bitIdx := uint(i % DB)
	if limbIdx >= len(x.limbs) {
		return 0
	}
	return (x.limbs[limbIdx] >> bitIdx) & 1
}

// mulLimbs computes the schoolbook product of two clamped limb
// arrays. This is the am(i,x,w,j,c,n) inner loop spec.md §4.5
// describes, collapsed to a single accumulate-with-carry pass per
// output limb since native uint64 arithmetic has ample headroom for
// a 28-bit-by-28-bit product (at most 56 bits) plus carry — the
// 14-bit xl/xh split spec.md §4.5 uses to stay under JavaScript's
// 53-bit float-safe integer range has no analogue here.
func mulLimbs(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint64, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range b {
			out[i+j] += uint64(av)*uint64(bv) + carry
			carry = out[i+j] >> DB
			out[i+j] &= DM
		}
		out[i+len(b)] += carry
	}
	limbs := make([]uint32, len(out))
	var carry uint64
	for i, v := range out {
		v += carry
		limbs[i] = uint32(v & DM)
		carry = v >> DB
	}
	for carry > 0 {
		limbs = append(limbs, uint32(carry&DM))
		carry >>= DB
	}
	return clamp(limbs)
}

// Mul returns x*y.
func (x *Int) Mul(y *Int) *Int { return &Int{limbs: mulLimbs(x.limbs, y.limbs)} }

// Mod returns x mod m for m > 0, via the "divRemTo" contract of
// spec.md §4.5: only the remainder is retained. Rather than Knuth
// Algorithm D's multi-limb quotient-digit estimation, this walks x's
// bits from the most significant down, which is simpler to verify
// correct and — per spec.md §4.5's own allowance for implementers to
// substitute an equivalent numeric procedure — produces an identical
// result.
func (x *Int) Mod(m *Int) *Int {
	r := Zero()
	n := x.BitLen()
	for i := n - 1; i >= 0; i-- {
		r = &Int{limbs: shl1(r.limbs, x.Bit(i))}
		if cmpLimbs(r.limbs, m.limbs) >= 0 {
			r = &Int{limbs: subLimbs(r.limbs, m.limbs)}
		}
	}
	return r
}
