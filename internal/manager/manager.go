// Package manager builds assets from configured formulas and serves them by
// name.
package manager

import (
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/vinceanalytics/assetdump/internal/asset"
	"github.com/vinceanalytics/assetdump/internal/config"
	"github.com/vinceanalytics/assetdump/internal/filter"
	"gopkg.in/src-d/go-errors.v1"
)

var (
	ErrNotFound = errors.NewKind("there is no asset named %q")
	ErrNoInputs = errors.NewKind("input %q of asset %q matched no files")
)

// Manager holds named assets. Assets built from formulas are created on
// first access and reused afterwards. Formula filters are applied to every
// leaf, so leaves dumped on their own in debug mode are filtered too.
type Manager struct {
	root     string
	debug    bool
	formulas map[string]*Formula
	assets   map[string]asset.Asset
}

func New(o *config.Options) *Manager {
	m := &Manager{
		root:     o.ReadFrom,
		debug:    o.Debug,
		formulas: make(map[string]*Formula, len(o.Assets)),
		assets:   make(map[string]asset.Asset),
	}
	for name, a := range o.Assets {
		m.formulas[name] = fromConfig(a)
	}
	return m
}

// Set registers an asset that has no formula.
func (m *Manager) Set(name string, a asset.Asset) {
	m.assets[name] = a
}

// Names returns every known asset name in sorted order.
func (m *Manager) Names() []string {
	o := make([]string, 0, len(m.formulas)+len(m.assets))
	for name := range m.formulas {
		o = append(o, name)
	}
	for name := range m.assets {
		if _, ok := m.formulas[name]; !ok {
			o = append(o, name)
		}
	}
	sort.Strings(o)
	return o
}

func (m *Manager) IsDebug() bool { return m.debug }

// Roots returns the directories assets are read from.
func (m *Manager) Roots() []string {
	if m.root == "" {
		return nil
	}
	return []string{m.root}
}

func (m *Manager) HasFormula(name string) bool {
	_, ok := m.formulas[name]
	return ok
}

func (m *Manager) Formula(name string) (*Formula, error) {
	f, ok := m.formulas[name]
	if !ok {
		return nil, ErrNotFound.New(name)
	}
	return f, nil
}

func (m *Manager) Get(name string) (asset.Asset, error) {
	if a, ok := m.assets[name]; ok {
		return a, nil
	}
	f, ok := m.formulas[name]
	if !ok {
		return nil, ErrNotFound.New(name)
	}
	a, err := m.build(name, f)
	if err != nil {
		return nil, err
	}
	m.assets[name] = a
	return a, nil
}

// LastModified returns the modification time of a for its current values.
func (m *Manager) LastModified(a asset.Asset) (time.Time, error) {
	return a.LastModified()
}

func (m *Manager) build(name string, f *Formula) (asset.Asset, error) {
	debug := m.debug
	if f.Options.Debug != nil {
		debug = *f.Options.Debug
	}
	filters, err := filter.Resolve(f.Filters, debug)
	if err != nil {
		return nil, err
	}
	id := f.Options.Name
	if id == "" {
		id, err = f.Hash()
		if err != nil {
			return nil, err
		}
	}
	var leaves []asset.Asset
	for _, in := range f.Inputs {
		files, err := m.expand(name, in, f.Options.Vars)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			leaf := asset.NewFile(m.root, file, f.Options.Vars, filters...)
			leaf.SetTargetPath(f.leafOutput(id, len(leaves)+1, file))
			leaves = append(leaves, leaf)
		}
	}
	g := asset.NewGroup(leaves, f.Options.Vars)
	g.SetTargetPath(f.output(id))
	slog.Debug("built asset", "name", name, "leaves", len(leaves), "target", g.TargetPath())
	return g, nil
}

func (m *Manager) expand(name, input string, vars []string) ([]string, error) {
	for _, v := range vars {
		if strings.Contains(input, "{"+v+"}") {
			return []string{input}, nil
		}
	}
	if !strings.ContainsAny(input, "*?[{") {
		return []string{input}, nil
	}
	files, err := doublestar.Glob(os.DirFS(m.root), input)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoInputs.New(input, name)
	}
	slices.Sort(files)
	return files, nil
}
