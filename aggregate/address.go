package aggregate

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Family tags which address family a prefix belongs to.
type Family int

// address families
const (
	IPv4 Family = iota
	IPv6
)

// Width .
func (f Family) Width() int {
	if f == IPv4 {
		return 32
	}
	return 128
}

// String .
func (f Family) String() string {
	if f == IPv4 {
		return "ipv4"
	}
	return "ipv6"
}

// Prefix is a CIDR block: a base address and a mask length. The base is
// always canonical, its host bits are zero.
type Prefix struct {
	family Family
	base   uint128
	mask   int
}

// ParseError reports a prefix string the engine rejected and why.
type ParseError struct {
	Text   string
	Family Family
	Reason string
}

// Error .
func (e ParseError) Error() string {
	return fmt.Sprintf("parse %s prefix %q: %s", e.Family, e.Text, e.Reason)
}

// ParsePrefix parses CIDR notation for the given family. Nonzero host bits
// are masked off rather than rejected, upstream lists are not always
// canonical.
func ParsePrefix(text string, family Family) (Prefix, error) {
	ip, ipNet, err := net.ParseCIDR(text)
	if err != nil {
		return Prefix{}, ParseError{Text: text, Family: family, Reason: "invalid CIDR notation"}
	}
	if (ip.To4() != nil) != (family == IPv4) {
		return Prefix{}, ParseError{Text: text, Family: family, Reason: "address family mismatch"}
	}
	mask, _ := ipNet.Mask.Size()
	if mask < 0 || mask > family.Width() {
		return Prefix{}, ParseError{Text: text, Family: family, Reason: "mask length out of range"}
	}
	return newPrefix(family, addressValue(ip, family), mask), nil
}

// newPrefix canonicalizes by zeroing the host bits of base.
func newPrefix(family Family, base uint128, mask int) Prefix {
	hosts := hostMask(family.Width() - mask)
	return Prefix{
		family: family,
		base:   base.and(hosts.not()),
		mask:   mask,
	}
}

// Family .
func (p Prefix) Family() Family {
	return p.family
}

// MaskLen .
func (p Prefix) MaskLen() int {
	return p.mask
}

// String renders the prefix in CIDR notation.
func (p Prefix) String() string {
	return fmt.Sprintf("%s/%d", addressString(p.base, p.family), p.mask)
}

// interval returns the inclusive address range the prefix covers.
func (p Prefix) interval() (start, end uint128) {
	start = p.base
	end = p.base.or(hostMask(p.family.Width() - p.mask))
	return
}

func addressValue(ip net.IP, family Family) uint128 {
	if family == IPv4 {
		return uint128{0, uint64(binary.BigEndian.Uint32(ip.To4()))}
	}
	ip = ip.To16()
	return uint128{
		binary.BigEndian.Uint64(ip[:8]),
		binary.BigEndian.Uint64(ip[8:]),
	}
}

func addressString(v uint128, family Family) string {
	if family == IPv4 {
		ip := make(net.IP, net.IPv4len)
		binary.BigEndian.PutUint32(ip, uint32(v.lo))
		return ip.String()
	}
	ip := make(net.IP, net.IPv6len)
	binary.BigEndian.PutUint64(ip[:8], v.hi)
	binary.BigEndian.PutUint64(ip[8:], v.lo)
	return ip.String()
}
