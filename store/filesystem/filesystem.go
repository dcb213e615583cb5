package filesystem

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ipranges/bale/feed"
	"github.com/ipranges/bale/store"
)

// output file names, one per policy
const (
	OriginalFile  = "ip-ranges-original.json"
	MergedFile    = "ip-ranges-merged.json"
	CompactedFile = "ip-ranges-compacted.json"
)

// FSStore is an implementation of Store writing one JSON file per policy
// under a root directory.
type FSStore struct {
	root string
}

// NewStore .
func NewStore(rootDir string) (*FSStore, error) {
	if err := os.MkdirAll(rootDir, 0755); err != nil && !os.IsExist(err) {
		return nil, errors.WithStack(err)
	}
	return &FSStore{
		root: rootDir,
	}, nil
}

// Save writes the three documents. Each file lands via a temp file and
// rename so readers never observe a half-written document.
func (s FSStore) Save(ctx context.Context, result store.RunResult) error {
	files := []struct {
		name string
		doc  feed.Document
	}{
		{OriginalFile, result.Original},
		{MergedFile, result.Merged},
		{CompactedFile, result.Compacted},
	}
	for _, file := range files {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		default:
		}
		if err := s.writeDocument(file.name, file.doc); err != nil {
			return err
		}
		log.Infof("[Save] wrote %s: ipv4=%d ipv6=%d",
			file.name, len(file.doc.Prefixes), len(file.doc.IPv6Prefixes))
	}
	return nil
}

func (s FSStore) writeDocument(name string, doc feed.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	data = append(data, '\n')

	tmp, err := ioutil.TempFile(s.root, name+".tmp")
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.WithStack(err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.WithStack(err)
	}
	if err = os.Rename(tmp.Name(), filepath.Join(s.root, name)); err != nil {
		os.Remove(tmp.Name())
		return errors.WithStack(err)
	}
	return nil
}
