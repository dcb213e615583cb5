package aggregate

// prefixesFromRange splits the inclusive range [start, end] into the minimal
// ordered sequence of aligned CIDR blocks with no overlap and no gap. At
// every step the emitted block is the largest one that both starts at cur
// (alignment) and still fits in the remainder; any smaller choice is valid
// but never minimal.
func prefixesFromRange(family Family, start, end uint128) []Prefix {
	width := family.Width()
	var blocks []Prefix

	cur := start
	for {
		align := cur.trailingZeros()
		if align > width {
			align = width
		}
		size := align
		if rem := remainderBits(cur, end); rem < size {
			size = rem
		}

		blocks = append(blocks, Prefix{family: family, base: cur, mask: width - size})

		blockEnd := cur.or(hostMask(size))
		if blockEnd.cmp(end) >= 0 {
			return blocks
		}
		cur = blockEnd.addOne()
	}
}

// remainderBits returns the largest n such that 2^n addresses fit into
// [cur, end].
func remainderBits(cur, end uint128) int {
	rem := end.sub(cur)
	if rem == maxUint128 {
		return 128
	}
	return rem.addOne().bitLen() - 1
}
