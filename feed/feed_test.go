package feed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ipranges/bale/aggregate"
)

const sampleDocument = `{
  "syncToken": "1693305600",
  "createDate": "2026-08-29-08-00-00",
  "prefixes": [
    {
      "ip_prefix": "3.4.8.0/24",
      "region": "us-east-1",
      "service": "AMAZON",
      "network_border_group": "us-east-1"
    },
    {
      "ip_prefix": "3.4.9.0/24",
      "region": "us-west-1",
      "service": "AMAZON",
      "network_border_group": "us-west-1"
    }
  ],
  "ipv6_prefixes": [
    {
      "ipv6_prefix": "2600:1f14::/35",
      "region": "eu-west-1",
      "service": "AMAZON",
      "network_border_group": "eu-west-1"
    }
  ]
}`

func decodeSample(t *testing.T) *Document {
	doc := &Document{}
	assert.NoError(t, json.Unmarshal([]byte(sampleDocument), doc))
	return doc
}

func TestEntries(t *testing.T) {
	doc := decodeSample(t)
	entries, err := Entries(doc, false)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, "3.4.8.0/24", entries[0].Prefix.String())
	assert.Equal(t, aggregate.IPv4, entries[0].Prefix.Family())
	assert.Equal(t, "us-east-1", entries[0].Metadata.Region)
	assert.Equal(t, "2600:1f14::/35", entries[2].Prefix.String())
	assert.Equal(t, aggregate.IPv6, entries[2].Prefix.Family())
}

func TestEntriesFailFast(t *testing.T) {
	doc := decodeSample(t)
	doc.Prefixes[1].IPPrefix = "not-a-prefix"

	_, err := Entries(doc, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prefixes[1]")
}

func TestEntriesSkipInvalid(t *testing.T) {
	doc := decodeSample(t)
	doc.Prefixes[1].IPPrefix = "not-a-prefix"

	entries, err := Entries(doc, true)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(entries))
}

func TestBuildDocumentPartitionsFamilies(t *testing.T) {
	doc := decodeSample(t)
	entries, err := Entries(doc, false)
	assert.NoError(t, err)

	built := BuildDocument(doc.SyncToken, doc.CreateDate, entries)
	assert.Equal(t, doc.SyncToken, built.SyncToken)
	assert.Equal(t, doc.CreateDate, built.CreateDate)
	assert.Equal(t, 2, len(built.Prefixes))
	assert.Equal(t, 1, len(built.IPv6Prefixes))

	// the family-foreign prefix field must be absent from each record
	data, err := json.Marshal(built)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), `"ip_prefix":"2600`)
	assert.Contains(t, string(data), `"ipv6_prefix":"2600:1f14::/35"`)
}

func TestBuildDocumentEmpty(t *testing.T) {
	built := BuildDocument("token", "date", nil)
	data, err := json.Marshal(built)
	assert.NoError(t, err)
	// empty collections stay as [] to match the upstream schema
	assert.Contains(t, string(data), `"prefixes":[]`)
	assert.Contains(t, string(data), `"ipv6_prefixes":[]`)
}
