package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ipranges/bale/types"
)

// Client fetches the upstream range document over HTTP.
type Client struct {
	url    string
	client *http.Client
}

// NewClient .
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads and decodes one document.
func (c *Client) Fetch(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Trace(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Annotatef(err, "fetch %s", c.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Annotatef(types.ErrUpstreamStatus, "fetch %s: %s", c.url, resp.Status)
	}

	doc := &Document{}
	if err := json.NewDecoder(resp.Body).Decode(doc); err != nil {
		return nil, errors.Annotatef(err, "decode %s", c.url)
	}
	if len(doc.Prefixes) == 0 && len(doc.IPv6Prefixes) == 0 {
		return nil, errors.Annotatef(types.ErrEmptyDocument, "fetch %s", c.url)
	}

	log.Infof("[Fetch] %s: syncToken=%s ipv4=%d ipv6=%d",
		c.url, doc.SyncToken, len(doc.Prefixes), len(doc.IPv6Prefixes))
	return doc, nil
}
