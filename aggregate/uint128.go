package aggregate

import "math/bits"

// uint128 is a 128 bit unsigned integer, hi word first. IPv4 addresses live
// in the low 32 bits with hi == 0, so one set of arithmetic serves both
// address families.
type uint128 struct {
	hi uint64
	lo uint64
}

var maxUint128 = uint128{^uint64(0), ^uint64(0)}

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

func (u uint128) and(v uint128) uint128 {
	return uint128{u.hi & v.hi, u.lo & v.lo}
}

func (u uint128) or(v uint128) uint128 {
	return uint128{u.hi | v.hi, u.lo | v.lo}
}

func (u uint128) not() uint128 {
	return uint128{^u.hi, ^u.lo}
}

func (u uint128) add(v uint128) uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi, lo}
}

func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi, lo}
}

func (u uint128) addOne() uint128 {
	return u.add(uint128{0, 1})
}

// trailingZeros returns 128 for the zero value.
func (u uint128) trailingZeros() int {
	if u.lo != 0 {
		return bits.TrailingZeros64(u.lo)
	}
	if u.hi != 0 {
		return 64 + bits.TrailingZeros64(u.hi)
	}
	return 128
}

func (u uint128) bitLen() int {
	if u.hi != 0 {
		return 64 + bits.Len64(u.hi)
	}
	return bits.Len64(u.lo)
}

// pow2 returns 2^n for n in [0, 127].
func pow2(n int) uint128 {
	if n < 64 {
		return uint128{0, 1 << uint(n)}
	}
	return uint128{1 << uint(n-64), 0}
}

// hostMask returns a value with the low n bits set.
func hostMask(n int) uint128 {
	if n >= 128 {
		return maxUint128
	}
	return pow2(n).sub(uint128{0, 1})
}
