package asset

import (
	"mime"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/vinceanalytics/assetdump/internal/vars"
	"gopkg.in/src-d/go-errors.v1"
)

var ErrSourceRead = errors.NewKind("unable to read asset source %s")

// File is a leaf asset read from root/path. The path may embed {var}
// placeholders which are resolved against the current values.
type File struct {
	root    string
	path    string
	vars    []string
	values  map[string]string
	target  string
	filters []Filter
}

var _ Asset = (*File)(nil)

func NewFile(root, path string, vars []string, filters ...Filter) *File {
	return &File{
		root:    root,
		path:    path,
		vars:    slices.Clone(vars),
		values:  map[string]string{},
		filters: filters,
	}
}

func (f *File) Kind() Kind      { return Leaf }
func (f *File) Leaves() []Asset { return nil }

func (f *File) Vars() []string { return f.vars }

func (f *File) Values() map[string]string { return f.values }

func (f *File) SetValues(values map[string]string) {
	f.values = copyValues(values)
}

func (f *File) SourceRoot() string { return f.root }
func (f *File) SourcePath() string { return f.path }

func (f *File) TargetPath() string        { return f.target }
func (f *File) SetTargetPath(path string) { f.target = path }

// Filename returns the source file location for the current values.
func (f *File) Filename() (string, error) {
	p, err := vars.Resolve(f.path, f.vars, f.values)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.root, filepath.FromSlash(p)), nil
}

func (f *File) Dump() ([]byte, error) {
	name, err := f.Filename()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, ErrSourceRead.Wrap(err, name)
	}
	return applyFilters(f.filters, MediaType(name), b)
}

func (f *File) LastModified() (time.Time, error) {
	name, err := f.Filename()
	if err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(name)
	if err != nil {
		return time.Time{}, ErrSourceRead.Wrap(err, name)
	}
	return info.ModTime(), nil
}

// MediaType returns the media type for path based on its extension, without
// parameters. Unknown extensions map to application/octet-stream.
func MediaType(path string) string {
	switch ext := filepath.Ext(path); ext {
	case ".js", ".mjs":
		return "application/javascript"
	case ".css":
		return "text/css"
	default:
		t, _, err := mime.ParseMediaType(mime.TypeByExtension(ext))
		if err != nil {
			return "application/octet-stream"
		}
		return t
	}
}
