// Package document reads and writes the taggable JSON documents the beans
// CLI operates on.
//
// A document is a single JSON object:
//
//	{"id": "...", "name": "...", "tags": [...]}
//
// A "tags" value of null (or a missing key) is the absent list; [] is a
// present list with no tags. The distinction survives a load/save cycle.
package document

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/mesh-intelligence/databeans/pkg/tag"
)

// Document errors.
var (
	// ErrInvalidDocument is returned when a file does not hold a document.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrWriteFailed marks every error returned by Save.
	ErrWriteFailed = errors.New("document write failed")
)

// Document is a named, taggable record.
type Document struct {
	ID      string    `json:"id"`
	Name    string    `json:"name,omitempty"`
	TagList []tag.Tag `json:"tags"`
}

var _ tag.Taggable = (*Document)(nil)

// New returns a document with a fresh UUID v7 and no tag list.
func New(name string) (*Document, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "generating document id")
	}
	return &Document{ID: id.String(), Name: name}, nil
}

// Tags returns the document's tag list.
func (d *Document) Tags() []tag.Tag { return d.TagList }

// SetTags replaces the document's tag list.
func (d *Document) SetTags(tags []tag.Tag) { d.TagList = tags }

// Decode parses a document and validates every tag in it.
func Decode(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Wrapf(ErrInvalidDocument, "decode: %v", err)
	}
	if d.ID == "" {
		return nil, errors.Wrap(ErrInvalidDocument, "missing id")
	}
	for i, t := range d.TagList {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrapf(err, "tag %d", i)
		}
	}
	return &d, nil
}

// Load reads the document stored at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	d, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "document %s", path)
	}
	return d, nil
}

// Save writes d to path using the temp-file, fsync, rename pattern so a
// failed write never leaves a truncated document behind.
func Save(path string, d *Document) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return writeFailed(err, "encoding document")
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".doc-*.tmp")
	if err != nil {
		return writeFailed(err, "creating temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return writeFailed(err, "writing document")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return writeFailed(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return writeFailed(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return writeFailed(err, "renaming temp file")
	}
	return nil
}

func writeFailed(err error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), ErrWriteFailed)
}

// Update loads the document at path, applies fn, and saves the result.
// Nothing is written if fn fails.
func Update(path string, fn func(*Document) error) (*Document, error) {
	d, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := Save(path, d); err != nil {
		return nil, err
	}
	return d, nil
}
