package bigint

// Ctx is a Montgomery reduction context bound to a specific odd
// modulus, per spec.md §3's "Montgomery context" data model: once
// built it is immutable, and it is valid only for operands whose
// magnitude is < m^2 (the product of two already-reduced values,
// which is exactly what ModPow ever feeds it).
type Ctx struct {
	m      *Int
	t      int // limb count of m
	nPrime uint32
}

// NewCtx builds a Montgomery context for the odd modulus m.
func NewCtx(m *Int) *Ctx {
	return &Ctx{
		m:      m,
		t:      len(m.limbs),
		nPrime: negModInverse(m.limbs[0]),
	}
}

// negModInverse returns -d0^-1 mod 2^DB (spec.md §4.5's invDigit),
// computed via Newton-Raphson doubling starting from the 1-bit
// inverse (any odd d0 is its own inverse mod 2) and doubling the
// number of correct bits each iteration until all 32 bits of native
// uint32 arithmetic are correct; masking to DM then yields the
// low-DB-bit inverse, since Newton's iteration for a modular inverse
// never disturbs the bits already converged at a smaller modulus.
func negModInverse(d0 uint32) uint32 {
	y := uint32(1)
	for i := 0; i < 5; i++ {
		y = y * (2 - d0*y)
	}
	inv := y & DM
	return (DV - inv) & DM
}

// reduce performs Montgomery reduction (x * R^-1 mod m) on a limb
// array representing a value < m*R, where R = DV^t. This is the
// "Separated Operand Scan" variant of spec.md §4.5's description: for
// each limb position i, u0 = (x[i] * n') mod DV cancels x[i] mod DV
// by adding u0*m, then the carry is propagated forward; after all t
// positions, the bottom t limbs are zero by construction and are
// discarded, and the limbs from position t upward hold (x + u*m)/DV^t.
func (c *Ctx) reduce(x []uint32) []uint32 {
	t := c.t
	buf := make([]uint32, 2*t+2)
	copy(buf, x)

	for i := 0; i < t; i++ {
		u0 := (buf[i] * c.nPrime) & DM
		var carry uint64
		for j := 0; j < t; j++ {
			prod := uint64(u0)*uint64(c.m.limbs[j]) + uint64(buf[i+j]) + carry
			buf[i+j] = uint32(prod & DM)
			carry = prod >> DB
		}
		k := i + t
		for carry > 0 {
			s := uint64(buf[k]) + carry
			buf[k] = uint32(s & DM)
			carry = s >> DB
			k++
		}
	}

	result := clamp(buf[t:])
	// The classic convert-and-revert discipline guarantees result < m
	// without a conditional subtract (spec.md §4.5's closing note);
	// this implementation keeps the check since it costs one
	// comparison and makes reduce correct for any input < m*R, not
	// only the specific sequence ModPow happens to produce.
	if cmpLimbs(result, c.m.limbs) >= 0 {
		result = subLimbs(result, c.m.limbs)
	}
	return result
}

// montMul computes (a*b)*R^-1 mod m for two values already in
// Montgomery form, i.e. ordinary Montgomery multiplication.
func (c *Ctx) montMul(a, b []uint32) []uint32 {
	return c.reduce(mulLimbs(a, b))
}

// toMontgomery converts x (0 <= x < m) into Montgomery form, x*R mod m.
func (c *Ctx) toMontgomery(x *Int) []uint32 {
	shifted := x.ShiftLeftLimbs(c.t)
	return shifted.Mod(c.m).limbs
}

// ModPow computes base^exp mod m using left-to-right binary
// exponentiation in Montgomery form, per spec.md §4.5. The source this
// is ported from uses window width k=1 (plain square-and-multiply);
// this port does the same, since spec.md explicitly allows — but does
// not require — a wider window.
func ModPow(base, exp, m *Int) *Int {
	ctx := NewCtx(m)

	baseMont := ctx.toMontgomery(base)
	resultMont := ctx.toMontgomery(One()) // Montgomery form of 1, i.e. R mod m

	for i := exp.BitLen() - 1; i >= 0; i-- {
		resultMont = ctx.montMul(resultMont, resultMont)
		if exp.Bit(i) == 1 {
			resultMont = ctx.montMul(resultMont, baseMont)
		}
	}

	return &Int{limbs: ctx.reduce(resultMont)}
}
