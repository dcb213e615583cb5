package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(t *testing.T, text string, family Family, meta Metadata) Entry {
	return Entry{Prefix: parsePrefix(t, text, family), Metadata: meta}
}

func TestMergeIntervalsAdjacent(t *testing.T) {
	// numerically adjacent /24s merge even without a shared /23 parent
	intervals := mergeIntervals(IPv4, []Entry{
		entry(t, "3.4.9.0/24", IPv4, Metadata{Region: "us-west-1"}),
		entry(t, "3.4.8.0/24", IPv4, Metadata{Region: "us-east-1"}),
	})
	assert.Equal(t, 1, len(intervals))
	assert.Equal(t, "3.4.8.0", addressString(intervals[0].start, IPv4))
	assert.Equal(t, "3.4.9.255", addressString(intervals[0].end, IPv4))
	assert.Equal(t, 2, len(intervals[0].records))
}

func TestMergeIntervalsUnalignedAdjacency(t *testing.T) {
	// 10.0.1.0/24 and 10.0.2.0/24 touch on the address line but do not
	// share a /23 parent; they still form one interval
	intervals := mergeIntervals(IPv4, []Entry{
		entry(t, "10.0.1.0/24", IPv4, Metadata{}),
		entry(t, "10.0.2.0/24", IPv4, Metadata{}),
	})
	assert.Equal(t, 1, len(intervals))
	assert.Equal(t, "10.0.1.0", addressString(intervals[0].start, IPv4))
	assert.Equal(t, "10.0.2.255", addressString(intervals[0].end, IPv4))
}

func TestMergeIntervalsGap(t *testing.T) {
	intervals := mergeIntervals(IPv4, []Entry{
		entry(t, "10.0.0.0/24", IPv4, Metadata{}),
		entry(t, "10.0.2.0/24", IPv4, Metadata{}),
	})
	assert.Equal(t, 2, len(intervals))
}

func TestMergeIntervalsContainment(t *testing.T) {
	intervals := mergeIntervals(IPv4, []Entry{
		entry(t, "10.0.0.128/25", IPv4, Metadata{Region: "inner"}),
		entry(t, "10.0.0.0/16", IPv4, Metadata{Region: "outer"}),
	})
	assert.Equal(t, 1, len(intervals))
	assert.Equal(t, "10.0.0.0", addressString(intervals[0].start, IPv4))
	assert.Equal(t, "10.0.255.255", addressString(intervals[0].end, IPv4))
	assert.Equal(t, 2, len(intervals[0].records))
}

func TestMergeIntervalsKeepsDuplicateRecords(t *testing.T) {
	// identical prefixes contribute one record each, reconciliation needs
	// every contributor
	intervals := mergeIntervals(IPv4, []Entry{
		entry(t, "3.4.8.0/24", IPv4, Metadata{Region: "us-east-1"}),
		entry(t, "3.4.8.0/24", IPv4, Metadata{Region: "us-east-1"}),
	})
	assert.Equal(t, 1, len(intervals))
	assert.Equal(t, []Metadata{{Region: "us-east-1"}, {Region: "us-east-1"}}, intervals[0].records)
}

func TestMergeIntervalsTopOfAddressSpace(t *testing.T) {
	intervals := mergeIntervals(IPv4, []Entry{
		entry(t, "255.255.255.0/24", IPv4, Metadata{}),
		entry(t, "255.255.254.0/24", IPv4, Metadata{}),
	})
	assert.Equal(t, 1, len(intervals))
	assert.Equal(t, "255.255.255.255", addressString(intervals[0].end, IPv4))
}

func TestMergeIntervalsEmpty(t *testing.T) {
	assert.Nil(t, mergeIntervals(IPv4, nil))
}
