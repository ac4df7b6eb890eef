// Package dump writes assets to disk and tracks which of them changed since
// they were last seen in the current session.
package dump

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vinceanalytics/assetdump/internal/asset"
	"github.com/vinceanalytics/assetdump/internal/manager"
	"github.com/vinceanalytics/assetdump/internal/vars"
)

// Manager provides named assets and their formulas.
type Manager interface {
	Get(name string) (asset.Asset, error)
	HasFormula(name string) bool
	Formula(name string) (*manager.Formula, error)
	IsDebug() bool
	LastModified(a asset.Asset) (time.Time, error)
}

// Output receives progress notices.
type Output interface {
	Dir(path string)
	File(path string)
	Source(root, path string)
	Verbose() bool
}

type Dumper struct {
	Manager Manager
	// BasePath is the directory target paths are relative to.
	BasePath string
	// Variables holds the values every asset variable is dumped for.
	Variables map[string][]string
	Output    Output
}

// DumpAll dumps names in order, sharing visits, and stops at the first error.
func (d *Dumper) DumpAll(names []string, visits *Visits) error {
	for _, name := range names {
		if err := d.DumpAsset(name, visits); err != nil {
			return err
		}
	}
	return nil
}

// DumpAsset writes the named asset for every combination of its variables.
//
// In debug mode each leaf is written as well, unless the asset fingerprint
// under the leaf key is unchanged. The leaf key is built from the parent
// asset source path, so all leaves of one asset share a single key.
func (d *Dumper) DumpAsset(name string, visits *Visits) error {
	a, err := d.Manager.Get(name)
	if err != nil {
		return err
	}
	var f *manager.Formula
	if d.Manager.HasFormula(name) {
		f, err = d.Manager.Formula(name)
		if err != nil {
			return err
		}
	}
	slog.Debug("dumping asset", "name", name, "kind", a.Kind())
	if err := d.write(a); err != nil {
		return err
	}
	debug := d.Manager.IsDebug()
	if f != nil && f.Options.Debug != nil {
		debug = *f.Options.Debug
	}
	if !debug {
		return nil
	}
	for _, leaf := range a.Leaves() {
		key := name + "_" + a.SourcePath()
		changed, err := d.CheckChanged(a, key, nil, visits)
		if err != nil {
			return err
		}
		if !changed {
			slog.Debug("skipping unchanged leaf", "name", name, "key", key, "source", leaf.SourcePath())
			continue
		}
		if err := d.write(leaf); err != nil {
			return err
		}
	}
	return nil
}

// CheckAsset reports whether the named asset changed since it was last
// checked. The serialized formula is part of the fingerprint.
func (d *Dumper) CheckAsset(name string, visits *Visits) (bool, error) {
	var formula *string
	if d.Manager.HasFormula(name) {
		f, err := d.Manager.Formula(name)
		if err != nil {
			return false, err
		}
		s, err := f.Serialize()
		if err != nil {
			return false, err
		}
		formula = &s
	}
	a, err := d.Manager.Get(name)
	if err != nil {
		return false, err
	}
	return d.CheckChanged(a, name, formula, visits)
}

// CheckChanged computes the fingerprint of a under key and compares it with
// the one recorded in visits, which is then replaced. The fingerprint is the
// latest modification time over all variable combinations plus formula. A
// key seen for the first time is always changed.
func (d *Dumper) CheckChanged(a asset.Asset, key string, formula *string, visits *Visits) (bool, error) {
	combinations, err := vars.Combinations(a.Vars(), d.Variables)
	if err != nil {
		return false, err
	}
	var mtime time.Time
	for _, c := range combinations {
		a.SetValues(c)
		ts, err := d.Manager.LastModified(a)
		if err != nil {
			return false, err
		}
		if ts.After(mtime) {
			mtime = ts
		}
	}
	changed := true
	if prev, ok := visits.m[key]; ok {
		changed = !prev.same(mtime, formula)
	}
	visits.m[key] = Visit{MTime: mtime, Formula: formula}
	return changed, nil
}

// Target returns the output file for a with its current values.
func (d *Dumper) Target(a asset.Asset) (string, error) {
	target := strings.TrimRight(d.BasePath, "/") + "/" + a.TargetPath()
	target = strings.ReplaceAll(target, "_controller/", "")
	return vars.Resolve(target, a.Vars(), a.Values())
}

func (d *Dumper) write(a asset.Asset) error {
	combinations, err := vars.Combinations(a.Vars(), d.Variables)
	if err != nil {
		return err
	}
	for _, c := range combinations {
		a.SetValues(c)
		target, err := d.Target(a)
		if err != nil {
			return err
		}
		dir := filepath.Dir(target)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			if err := os.MkdirAll(dir, 0777); err != nil {
				return ErrDirectoryCreate.Wrap(err, dir)
			}
			d.Output.Dir(dir)
		}
		d.Output.File(target)
		if d.Output.Verbose() {
			d.sources(a)
		}
		b, err := a.Dump()
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, b, 0644); err != nil {
			return ErrFileWrite.Wrap(err, target)
		}
		slog.Debug("wrote asset", "target", target, "size", len(b))
	}
	return nil
}

func (d *Dumper) sources(a asset.Asset) {
	if a.Kind() == asset.Collection {
		for _, leaf := range a.Leaves() {
			d.Output.Source(leaf.SourceRoot(), leaf.SourcePath())
		}
		return
	}
	d.Output.Source(a.SourceRoot(), a.SourcePath())
}
