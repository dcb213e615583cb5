package compactor

import (
	"context"
	"time"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ipranges/bale/aggregate"
	"github.com/ipranges/bale/feed"
	"github.com/ipranges/bale/service"
	"github.com/ipranges/bale/store"
)

// Fetcher hands back one upstream document per call.
type Fetcher interface {
	Fetch(ctx context.Context) (*feed.Document, error)
}

// Compactor runs the fetch, aggregate, persist pipeline, once immediately
// and then on every tick of the interval.
type Compactor struct {
	fetcher     Fetcher
	store       store.Store
	interval    time.Duration
	skipInvalid bool
}

// New .
func New(fetcher Fetcher, stor store.Store, interval time.Duration, skipInvalid bool) *Compactor {
	return &Compactor{
		fetcher:     fetcher,
		store:       stor,
		interval:    interval,
		skipInvalid: skipInvalid,
	}
}

// Serve runs passes until the context is canceled. A failed pass is logged
// and retried on the next tick, stale output files stay in place meanwhile.
func (c *Compactor) Serve(ctx context.Context) (service.Disposable, error) {
	if err := c.RunOnce(ctx); err != nil {
		log.Errorf("[Serve] initial pass failed, cause=%v", err)
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return service.NoopDisposable{}, nil
		case <-ticker.C:
			if err := c.RunOnce(ctx); err != nil {
				log.Errorf("[Serve] pass failed, cause=%v", err)
			}
		}
	}
}

// RunOnce executes a single pipeline pass.
func (c *Compactor) RunOnce(ctx context.Context) error {
	start := time.Now()

	doc, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return errors.Trace(err)
	}

	entries, err := feed.Entries(doc, c.skipInvalid)
	if err != nil {
		return errors.Trace(err)
	}

	result := aggregate.Aggregate(entries)
	log.Infof("[RunOnce] aggregated %d entries: original=%d merged=%d compacted=%d",
		len(entries), len(result.Original), len(result.Merged), len(result.Compacted))

	if err := c.store.Save(ctx, store.RunResult{
		Original:  feed.BuildDocument(doc.SyncToken, doc.CreateDate, result.Original),
		Merged:    feed.BuildDocument(doc.SyncToken, doc.CreateDate, result.Merged),
		Compacted: feed.BuildDocument(doc.SyncToken, doc.CreateDate, result.Compacted),
	}); err != nil {
		return errors.Trace(err)
	}

	log.Infof("[RunOnce] pass complete in %v", time.Since(start))
	return nil
}
