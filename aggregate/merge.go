package aggregate

import "sort"

// mergedInterval is a maximal contiguous run of covered addresses together
// with every metadata record that contributed to it. Duplicated input
// prefixes contribute duplicated records on purpose, reconciliation needs
// each contributor to judge field agreement.
type mergedInterval struct {
	family  Family
	start   uint128
	end     uint128
	records []Metadata
}

type taggedInterval struct {
	start  uint128
	end    uint128
	record Metadata
}

// mergeIntervals collapses the entries of one family into the minimal list
// of contiguous intervals covering exactly the same addresses. Two intervals
// merge when they overlap or touch on the address line (end + 1 == start),
// prefix alignment plays no part here.
func mergeIntervals(family Family, entries []Entry) []mergedInterval {
	if len(entries) == 0 {
		return nil
	}

	intervals := make([]taggedInterval, len(entries))
	for i, entry := range entries {
		start, end := entry.Prefix.interval()
		intervals[i] = taggedInterval{start: start, end: end, record: entry.Metadata}
	}

	// start ascending, then end descending, so a containing interval is
	// scanned before the intervals it contains.
	sort.SliceStable(intervals, func(i, j int) bool {
		if c := intervals[i].start.cmp(intervals[j].start); c != 0 {
			return c < 0
		}
		return intervals[i].end.cmp(intervals[j].end) > 0
	})

	var merged []mergedInterval
	current := mergedInterval{
		family:  family,
		start:   intervals[0].start,
		end:     intervals[0].end,
		records: []Metadata{intervals[0].record},
	}
	for _, next := range intervals[1:] {
		// next extends current when it starts at or before current.end + 1;
		// the end + 1 comparison is phrased as start - 1 <= end to dodge
		// overflow at the top of the address space.
		touches := next.start.cmp(current.end) <= 0
		if !touches && next.start.sub(uint128{0, 1}).cmp(current.end) <= 0 {
			touches = true
		}
		if touches {
			if next.end.cmp(current.end) > 0 {
				current.end = next.end
			}
			current.records = append(current.records, next.record)
			continue
		}
		merged = append(merged, current)
		current = mergedInterval{
			family:  family,
			start:   next.start,
			end:     next.end,
			records: []Metadata{next.record},
		}
	}
	return append(merged, current)
}
