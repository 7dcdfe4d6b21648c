package monet

import (
	"math/big"
	"math/bits"
)

// uint128 is an unsigned 128-bit integer.
type uint128 struct {
	hi, lo uint64
}

func (u uint128) isZero() bool {
	return u.hi == 0 && u.lo == 0
}

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

// sub wraps around on underflow.
func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi: hi, lo: lo}
}

// mul returns false if the product does not fit into 128 bits.
func (u uint128) mul(v uint128) (uint128, bool) {
	if u.hi != 0 && v.hi != 0 {
		return uint128{}, false
	}
	hi, lo := bits.Mul64(u.lo, v.lo)
	c1, p1 := bits.Mul64(u.hi, v.lo)
	c2, p2 := bits.Mul64(u.lo, v.hi)
	if c1 != 0 || c2 != 0 {
		return uint128{}, false
	}
	var carry uint64
	hi, carry = bits.Add64(hi, p1, 0)
	if carry != 0 {
		return uint128{}, false
	}
	hi, carry = bits.Add64(hi, p2, 0)
	if carry != 0 {
		return uint128{}, false
	}
	return uint128{hi: hi, lo: lo}, true
}

// quoRem panics if v is zero, callers must check.
func (u uint128) quoRem(v uint128) (q, r uint128) {
	if v.hi == 0 {
		// 128-bit by 64-bit long division
		q.hi = u.hi / v.lo
		rem := u.hi % v.lo
		q.lo, rem = bits.Div64(rem, u.lo, v.lo)
		return q, uint128{lo: rem}
	}
	// Shift-subtract division, the quotient fits into 64 bits here.
	for i := 127; i >= 0; i-- {
		carry := r.hi >> 63
		r.hi = r.hi<<1 | r.lo>>63
		r.lo = r.lo<<1 | u.bit(i)
		if carry != 0 || r.cmp(v) >= 0 {
			r = r.sub(v)
			q = q.setBit(i)
		}
	}
	return q, r
}

func (u uint128) bit(i int) uint64 {
	if i >= 64 {
		return (u.hi >> (i - 64)) & 1
	}
	return (u.lo >> i) & 1
}

func (u uint128) setBit(i int) uint128 {
	if i >= 64 {
		u.hi |= 1 << (i - 64)
	} else {
		u.lo |= 1 << i
	}
	return u
}

// int128 is a signed 128-bit integer in two's complement form.
// Its zero value is 0.
type int128 struct {
	hi, lo uint64
}

var (
	maxInt128Mag = uint128{hi: 1<<63 - 1, lo: 1<<64 - 1} // 2^127 - 1
	minInt128Mag = uint128{hi: 1 << 63}                  // 2^127
	minInt128    = int128{hi: 1 << 63}
)

// pow10Int128 holds powers of ten that fit into int128, 10^0 through 10^38.
var pow10Int128 = func() [39]int128 {
	var p [39]int128
	u := uint128{lo: 1}
	ten := uint128{lo: 10}
	for i := range p {
		p[i] = int128{hi: u.hi, lo: u.lo}
		u, _ = u.mul(ten)
	}
	return p
}()

func int128FromInt64(i int64) int128 {
	hi := uint64(0)
	if i < 0 {
		hi = 1<<64 - 1
	}
	return int128{hi: hi, lo: uint64(i)} //nolint:gosec
}

// int128FromMag builds an integer from a sign and a magnitude.
// It returns false if the result is out of range.
func int128FromMag(neg bool, u uint128) (int128, bool) {
	if neg {
		if u.cmp(minInt128Mag) > 0 {
			return int128{}, false
		}
		return int128{hi: u.hi, lo: u.lo}.negWrap(), true
	}
	if u.cmp(maxInt128Mag) > 0 {
		return int128{}, false
	}
	return int128{hi: u.hi, lo: u.lo}, true
}

func int128FromBig(b *big.Int) (int128, bool) {
	if b.BitLen() > 128 {
		return int128{}, false
	}
	var mag big.Int
	mag.Abs(b)
	lo := new(big.Int).And(&mag, new(big.Int).SetUint64(1<<64-1)).Uint64()
	hi := new(big.Int).Rsh(&mag, 64).Uint64()
	return int128FromMag(b.Sign() < 0, uint128{hi: hi, lo: lo})
}

func (x int128) isNeg() bool {
	return x.hi>>63 == 1
}

func (x int128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x int128) sign() int {
	switch {
	case x.isNeg():
		return -1
	case x.isZero():
		return 0
	}
	return 1
}

// negWrap returns -x, wrapping for the minimum value.
func (x int128) negWrap() int128 {
	lo, carry := bits.Add64(^x.lo, 1, 0)
	hi, _ := bits.Add64(^x.hi, 0, carry)
	return int128{hi: hi, lo: lo}
}

// mag returns the absolute value as an unsigned integer, it never overflows.
func (x int128) mag() uint128 {
	if x.isNeg() {
		y := x.negWrap()
		return uint128{hi: y.hi, lo: y.lo}
	}
	return uint128{hi: x.hi, lo: x.lo}
}

func (x int128) neg() (int128, bool) {
	if x == minInt128 {
		return int128{}, false
	}
	return x.negWrap(), true
}

func (x int128) add(y int128) (int128, bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	z := int128{hi: hi, lo: lo}
	if x.isNeg() == y.isNeg() && z.isNeg() != x.isNeg() {
		return int128{}, false
	}
	return z, true
}

func (x int128) sub(y int128) (int128, bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	z := int128{hi: hi, lo: lo}
	if x.isNeg() != y.isNeg() && z.isNeg() != x.isNeg() {
		return int128{}, false
	}
	return z, true
}

func (x int128) mul(y int128) (int128, bool) {
	u, ok := x.mag().mul(y.mag())
	if !ok {
		return int128{}, false
	}
	return int128FromMag(x.isNeg() != y.isNeg(), u)
}

// quoRem computes the quotient truncated toward zero and the remainder,
// which has the sign of the dividend.
// The caller must ensure that y is not zero.
func (x int128) quoRem(y int128) (q, r int128, ok bool) {
	uq, ur := x.mag().quoRem(y.mag())
	q, ok = int128FromMag(x.isNeg() != y.isNeg(), uq)
	if !ok {
		return int128{}, int128{}, false
	}
	// The remainder is smaller than the divisor, so it always fits.
	r, _ = int128FromMag(x.isNeg(), ur)
	return q, r, true
}

func (x int128) cmp(y int128) int {
	xh, yh := int64(x.hi), int64(y.hi) //nolint:gosec
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// int64 returns false if x does not fit into int64.
func (x int128) int64() (int64, bool) {
	i := int64(x.lo) //nolint:gosec
	if int128FromInt64(i) != x {
		return 0, false
	}
	return i, true
}

func (x int128) big() *big.Int {
	u := x.mag()
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(u.lo))
	if x.isNeg() {
		b.Neg(b)
	}
	return b
}

// digits appends the decimal digits of u.
func (u uint128) digits(buf []byte) []byte {
	if u.hi == 0 {
		return appendUint(buf, u.lo)
	}
	// 10^19 is the largest power of ten below 2^64.
	const e19 = 10_000_000_000_000_000_000
	q, r := u.quoRem(uint128{lo: e19})
	buf = q.digits(buf)
	var tmp [19]byte
	for i := len(tmp) - 1; i >= 0; i-- {
		tmp[i] = byte(r.lo%10) + '0'
		r.lo /= 10
	}
	return append(buf, tmp[:]...)
}

func appendUint(buf []byte, v uint64) []byte {
	var tmp [20]byte
	pos := len(tmp)
	for {
		pos--
		tmp[pos] = byte(v%10) + '0'
		v /= 10
		if v == 0 {
			break
		}
	}
	return append(buf, tmp[pos:]...)
}
