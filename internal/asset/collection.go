package asset

import (
	"bytes"
	"slices"
	"time"
)

// Group is a collection asset. Its output is the output of every child
// joined by a newline, passed through the group filters.
type Group struct {
	children []Asset
	vars     []string
	values   map[string]string
	target   string
	filters  []Filter
}

var _ Asset = (*Group)(nil)

func NewGroup(children []Asset, vars []string, filters ...Filter) *Group {
	return &Group{
		children: children,
		vars:     slices.Clone(vars),
		values:   map[string]string{},
		filters:  filters,
	}
}

func (g *Group) Kind() Kind      { return Collection }
func (g *Group) Leaves() []Asset { return g.children }

// Vars returns the group variables followed by any child variable not
// already declared, in first-seen order.
func (g *Group) Vars() []string {
	o := slices.Clone(g.vars)
	for _, c := range g.children {
		for _, v := range c.Vars() {
			if !slices.Contains(o, v) {
				o = append(o, v)
			}
		}
	}
	return o
}

func (g *Group) Values() map[string]string { return g.values }

func (g *Group) SetValues(values map[string]string) {
	g.values = copyValues(values)
	for _, c := range g.children {
		c.SetValues(values)
	}
}

func (g *Group) SourceRoot() string { return "" }
func (g *Group) SourcePath() string { return "" }

func (g *Group) TargetPath() string        { return g.target }
func (g *Group) SetTargetPath(path string) { g.target = path }

func (g *Group) Dump() ([]byte, error) {
	var b bytes.Buffer
	for i, c := range g.children {
		o, err := c.Dump()
		if err != nil {
			return nil, err
		}
		if i != 0 {
			b.WriteByte('\n')
		}
		b.Write(o)
	}
	return applyFilters(g.filters, MediaType(g.target), b.Bytes())
}

// LastModified is the most recent modification time of any child.
func (g *Group) LastModified() (time.Time, error) {
	var m time.Time
	for _, c := range g.children {
		ts, err := c.LastModified()
		if err != nil {
			return time.Time{}, err
		}
		if ts.After(m) {
			m = ts
		}
	}
	return m, nil
}
