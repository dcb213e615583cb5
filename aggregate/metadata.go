package aggregate

// Other is the sentinel written into a metadata field whose contributing
// records do not agree.
const Other = "other"

// Metadata carries the upstream annotations of one published prefix. The
// field set is closed, reconciliation compares every field by name.
type Metadata struct {
	Region             string
	Service            string
	NetworkBorderGroup string
}

// mergeMetadata keeps a field when all contributors agree on it and writes
// Other when at least two disagree. A single contributor passes through
// untouched.
func mergeMetadata(records []Metadata) Metadata {
	merged := records[0]
	for _, record := range records[1:] {
		if record.Region != merged.Region {
			merged.Region = Other
		}
		if record.Service != merged.Service {
			merged.Service = Other
		}
		if record.NetworkBorderGroup != merged.NetworkBorderGroup {
			merged.NetworkBorderGroup = Other
		}
	}
	return merged
}

// compactMetadata discards every field unconditionally, even for blocks a
// single record contributed.
func compactMetadata() Metadata {
	return Metadata{
		Region:             Other,
		Service:            Other,
		NetworkBorderGroup: Other,
	}
}
