package store

import (
	"context"

	"github.com/ipranges/bale/feed"
)

// RunResult groups the three documents one pipeline pass produces.
type RunResult struct {
	Original  feed.Document
	Merged    feed.Document
	Compacted feed.Document
}

// Store persists the documents of one run. Implementations must write all
// three or report an error, a partial run is worse than a failed one for
// consumers diffing outputs between runs.
type Store interface {
	Save(ctx context.Context, result RunResult) error
}
