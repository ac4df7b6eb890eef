// Package asset models the units of web content that get dumped to disk.
//
// An asset is either a Leaf, usually backed by a single source file, or a
// Collection of child assets whose output is concatenated. Assets may be
// parameterized by variables; the current value assignment affects both the
// resolved source and target paths.
package asset

import "time"

// Kind tags an asset as a leaf or a collection.
type Kind uint8

const (
	Leaf Kind = iota
	Collection
)

func (k Kind) String() string {
	if k == Collection {
		return "collection"
	}
	return "leaf"
}

type Asset interface {
	Kind() Kind
	// Leaves returns the immediate children of a collection and nil for a leaf.
	Leaves() []Asset
	Vars() []string
	Values() map[string]string
	SetValues(values map[string]string)
	SourceRoot() string
	SourcePath() string
	TargetPath() string
	SetTargetPath(path string)
	// Dump produces the filtered content for the current value assignment.
	Dump() ([]byte, error)
	LastModified() (time.Time, error)
}

// Filter transforms asset content.
type Filter interface {
	Filter(mediaType string, in []byte) ([]byte, error)
}

func applyFilters(filters []Filter, mediaType string, b []byte) ([]byte, error) {
	var err error
	for _, f := range filters {
		b, err = f.Filter(mediaType, b)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func copyValues(values map[string]string) map[string]string {
	o := make(map[string]string, len(values))
	for k, v := range values {
		o[k] = v
	}
	return o
}
