package aggregate

import "sort"

// Entry pairs one CIDR block with its metadata. It is both the input unit
// and the output unit of the engine.
type Entry struct {
	Prefix   Prefix
	Metadata Metadata
}

// Result holds the three lists one run produces. Original is the input
// deduplicated and canonically sorted, Merged and Compacted are the
// aggregated lists under the two metadata policies. All three cover exactly
// the same set of addresses.
type Result struct {
	Original  []Entry
	Merged    []Entry
	Compacted []Entry
}

// Aggregate runs the whole pipeline over the given entries. It is a pure
// function: no I/O, no retained references, and byte-identical results for
// identical input across runs.
func Aggregate(entries []Entry) Result {
	result := Result{
		Original: dedupEntries(entries),
	}
	for _, family := range []Family{IPv4, IPv6} {
		var part []Entry
		for _, entry := range entries {
			if entry.Prefix.family == family {
				part = append(part, entry)
			}
		}
		for _, interval := range mergeIntervals(family, part) {
			merged := mergeMetadata(interval.records)
			for _, prefix := range prefixesFromRange(family, interval.start, interval.end) {
				result.Merged = append(result.Merged, Entry{Prefix: prefix, Metadata: merged})
				result.Compacted = append(result.Compacted, Entry{Prefix: prefix, Metadata: compactMetadata()})
			}
		}
	}
	return result
}

// dedupEntries drops exact (prefix, metadata) duplicates and sorts the rest
// canonically. This list is the comparison baseline for the aggregated ones.
func dedupEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sortEntries(sorted)

	deduped := sorted[:1]
	for _, entry := range sorted[1:] {
		if entry != deduped[len(deduped)-1] {
			deduped = append(deduped, entry)
		}
	}
	return deduped
}

// sortEntries orders canonically: IPv4 before IPv6, then numerically by
// start address, then wider blocks (shorter masks) first, then by metadata
// so duplicates of a prefix keep a stable order.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Prefix.family != b.Prefix.family {
			return a.Prefix.family < b.Prefix.family
		}
		if c := a.Prefix.base.cmp(b.Prefix.base); c != 0 {
			return c < 0
		}
		if a.Prefix.mask != b.Prefix.mask {
			return a.Prefix.mask < b.Prefix.mask
		}
		if a.Metadata.Region != b.Metadata.Region {
			return a.Metadata.Region < b.Metadata.Region
		}
		if a.Metadata.Service != b.Metadata.Service {
			return a.Metadata.Service < b.Metadata.Service
		}
		return a.Metadata.NetworkBorderGroup < b.Metadata.NetworkBorderGroup
	})
}
