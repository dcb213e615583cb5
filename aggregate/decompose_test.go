package aggregate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rangePrefixes(t *testing.T, family Family, start, end string) []string {
	width := family.Width()
	s, err := ParsePrefix(fmt.Sprintf("%s/%d", start, width), family)
	assert.NoError(t, err)
	e, err := ParsePrefix(fmt.Sprintf("%s/%d", end, width), family)
	assert.NoError(t, err)

	var texts []string
	for _, prefix := range prefixesFromRange(family, s.base, e.base) {
		texts = append(texts, prefix.String())
	}
	return texts
}

func TestDecomposeAlignedRange(t *testing.T) {
	assert.Equal(t,
		[]string{"3.4.8.0/23"},
		rangePrefixes(t, IPv4, "3.4.8.0", "3.4.9.255"))
}

func TestDecomposeUnalignedRange(t *testing.T) {
	// 10.0.0.1-10.0.0.6 cannot use any block larger than alignment and
	// remainder permit
	assert.Equal(t,
		[]string{"10.0.0.1/32", "10.0.0.2/31", "10.0.0.4/31", "10.0.0.6/32"},
		rangePrefixes(t, IPv4, "10.0.0.1", "10.0.0.6"))
}

func TestDecomposeCrossParentAlignment(t *testing.T) {
	// two adjacent /24s without a common /23 parent stay two blocks
	assert.Equal(t,
		[]string{"10.0.1.0/24", "10.0.2.0/24"},
		rangePrefixes(t, IPv4, "10.0.1.0", "10.0.2.255"))
}

func TestDecomposeSingleAddress(t *testing.T) {
	assert.Equal(t,
		[]string{"10.0.0.7/32"},
		rangePrefixes(t, IPv4, "10.0.0.7", "10.0.0.7"))
}

func TestDecomposeFullSpace(t *testing.T) {
	assert.Equal(t,
		[]string{"0.0.0.0/0"},
		rangePrefixes(t, IPv4, "0.0.0.0", "255.255.255.255"))
	assert.Equal(t,
		[]string{"::/0"},
		rangePrefixes(t, IPv6, "::", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"))
}

func TestDecomposeTopOfSpace(t *testing.T) {
	assert.Equal(t,
		[]string{"255.255.255.254/31"},
		rangePrefixes(t, IPv4, "255.255.255.254", "255.255.255.255"))
}

func TestDecomposeIPv6(t *testing.T) {
	assert.Equal(t,
		[]string{"2600:1f14::/35", "2600:1f14:2000::/36"},
		rangePrefixes(t, IPv6, "2600:1f14::", "2600:1f14:2fff:ffff:ffff:ffff:ffff:ffff"))
}

func TestDecomposeCoversExactly(t *testing.T) {
	// blocks must tile [start, end]: in order, no overlap, no gap, aligned
	cases := [][2]string{
		{"10.0.0.3", "10.0.5.77"},
		{"0.0.0.1", "127.255.255.255"},
		{"192.168.0.0", "192.168.0.0"},
	}
	for _, c := range cases {
		s := parsePrefix(t, c[0]+"/32", IPv4)
		e := parsePrefix(t, c[1]+"/32", IPv4)
		blocks := prefixesFromRange(IPv4, s.base, e.base)

		cur := s.base
		for _, block := range blocks {
			start, end := block.interval()
			assert.Equal(t, 0, start.cmp(cur))
			align := start.trailingZeros()
			if align > 32 {
				align = 32
			}
			assert.True(t, 32-block.MaskLen() <= align)
			cur = end.addOne()
		}
		assert.Equal(t, 0, cur.cmp(e.base.addOne()))
	}
}
