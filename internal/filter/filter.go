// Package filter provides the named content filters an asset formula can
// reference. All of them are backed by a shared minifier.
package filter

import (
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"
	"github.com/vinceanalytics/assetdump/internal/asset"
	"gopkg.in/src-d/go-errors.v1"
)

var (
	ErrUnknownFilter = errors.NewKind("unknown filter %q")
	ErrFilter        = errors.NewKind("filter %s failed")
)

var minifier *minify.M

func init() {
	minifier = minify.New()
	minifier.AddFunc("text/css", css.Minify)
	minifier.AddFunc("text/html", html.Minify)
	minifier.AddFunc("application/javascript", js.Minify)
	minifier.AddFunc("image/svg+xml", svg.Minify)
	minifier.AddFunc("application/json", json.Minify)
}

// Min minifies content as a fixed media type. An empty media type minifies
// according to the type of the asset being filtered, and content of a type
// with no registered minifier is returned unchanged.
type Min struct {
	Name      string
	MediaType string
}

var _ asset.Filter = (*Min)(nil)

func (m *Min) Filter(mediaType string, in []byte) ([]byte, error) {
	if m.MediaType != "" {
		mediaType = m.MediaType
	}
	o, err := minifier.Bytes(mediaType, in)
	if err == minify.ErrNotExist && m.MediaType == "" {
		return in, nil
	}
	if err != nil {
		return nil, ErrFilter.Wrap(err, m.Name)
	}
	return o, nil
}

var named = map[string]string{
	"cssmin":  "text/css",
	"jsmin":   "application/javascript",
	"htmlmin": "text/html",
	"svgmin":  "image/svg+xml",
	"jsonmin": "application/json",
	"minify":  "",
}

// Optional reports whether name carries the "?" prefix. Optional filters are
// skipped in debug mode.
func Optional(name string) bool {
	return strings.HasPrefix(name, "?")
}

// Get returns the filter registered under name, ignoring a "?" prefix.
func Get(name string) (asset.Filter, error) {
	name = strings.TrimPrefix(name, "?")
	t, ok := named[name]
	if !ok {
		return nil, ErrUnknownFilter.New(name)
	}
	return &Min{Name: name, MediaType: t}, nil
}

// Resolve returns the filters for names, dropping optional ones when debug
// is true.
func Resolve(names []string, debug bool) ([]asset.Filter, error) {
	o := make([]asset.Filter, 0, len(names))
	for _, n := range names {
		if debug && Optional(n) {
			continue
		}
		f, err := Get(n)
		if err != nil {
			return nil, err
		}
		o = append(o, f)
	}
	return o, nil
}
