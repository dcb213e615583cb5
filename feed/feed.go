package feed

import (
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ipranges/bale/aggregate"
)

// Document mirrors the upstream ip-ranges JSON layout. IPv4 and IPv6 entries
// live in separate collections, each record naming only the prefix field of
// its own family.
type Document struct {
	SyncToken    string     `json:"syncToken"`
	CreateDate   string     `json:"createDate"`
	Prefixes     []Record   `json:"prefixes"`
	IPv6Prefixes []RecordV6 `json:"ipv6_prefixes"`
}

// Record is one published IPv4 range.
type Record struct {
	IPPrefix           string `json:"ip_prefix"`
	Region             string `json:"region"`
	Service            string `json:"service"`
	NetworkBorderGroup string `json:"network_border_group"`
}

// RecordV6 is one published IPv6 range.
type RecordV6 struct {
	IPv6Prefix         string `json:"ipv6_prefix"`
	Region             string `json:"region"`
	Service            string `json:"service"`
	NetworkBorderGroup string `json:"network_border_group"`
}

// Entries converts the document into engine entries. With skipInvalid a
// record that fails to parse is logged and dropped, otherwise the first
// failure aborts with an error naming the offending record.
func Entries(doc *Document, skipInvalid bool) ([]aggregate.Entry, error) {
	var entries []aggregate.Entry

	for i, record := range doc.Prefixes {
		prefix, err := aggregate.ParsePrefix(record.IPPrefix, aggregate.IPv4)
		if err != nil {
			if skipInvalid {
				log.Warnf("[Entries] skipping prefixes[%d]: %v", i, err)
				continue
			}
			return nil, errors.Annotatef(err, "prefixes[%d]", i)
		}
		entries = append(entries, aggregate.Entry{
			Prefix: prefix,
			Metadata: aggregate.Metadata{
				Region:             record.Region,
				Service:            record.Service,
				NetworkBorderGroup: record.NetworkBorderGroup,
			},
		})
	}

	for i, record := range doc.IPv6Prefixes {
		prefix, err := aggregate.ParsePrefix(record.IPv6Prefix, aggregate.IPv6)
		if err != nil {
			if skipInvalid {
				log.Warnf("[Entries] skipping ipv6_prefixes[%d]: %v", i, err)
				continue
			}
			return nil, errors.Annotatef(err, "ipv6_prefixes[%d]", i)
		}
		entries = append(entries, aggregate.Entry{
			Prefix: prefix,
			Metadata: aggregate.Metadata{
				Region:             record.Region,
				Service:            record.Service,
				NetworkBorderGroup: record.NetworkBorderGroup,
			},
		})
	}

	return entries, nil
}

// BuildDocument renders engine entries back into the upstream layout,
// carrying over the source document's sync token and creation date so the
// outputs stay diffable against it.
func BuildDocument(syncToken, createDate string, entries []aggregate.Entry) Document {
	doc := Document{
		SyncToken:    syncToken,
		CreateDate:   createDate,
		Prefixes:     []Record{},
		IPv6Prefixes: []RecordV6{},
	}
	for _, entry := range entries {
		if entry.Prefix.Family() == aggregate.IPv4 {
			doc.Prefixes = append(doc.Prefixes, Record{
				IPPrefix:           entry.Prefix.String(),
				Region:             entry.Metadata.Region,
				Service:            entry.Metadata.Service,
				NetworkBorderGroup: entry.Metadata.NetworkBorderGroup,
			})
			continue
		}
		doc.IPv6Prefixes = append(doc.IPv6Prefixes, RecordV6{
			IPv6Prefix:         entry.Prefix.String(),
			Region:             entry.Metadata.Region,
			Service:            entry.Metadata.Service,
			NetworkBorderGroup: entry.Metadata.NetworkBorderGroup,
		})
	}
	return doc
}
