package manager

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/vinceanalytics/assetdump/internal/config"
	"gopkg.in/yaml.v2"
)

// DefaultOutput is used for formulas that do not declare an output. The
// star is replaced by the asset name.
const DefaultOutput = "assetic/*"

// Formula describes how a named asset is built.
type Formula struct {
	Inputs  []string `yaml:"inputs"`
	Filters []string `yaml:"filters"`
	Options Options  `yaml:"options"`
}

type Options struct {
	Output string   `yaml:"output,omitempty"`
	Vars   []string `yaml:"vars,omitempty"`
	// Debug overrides the manager debug mode for this asset when set.
	Debug *bool  `yaml:"debug,omitempty"`
	Name  string `yaml:"name,omitempty"`
}

func fromConfig(a config.Asset) *Formula {
	return &Formula{
		Inputs:  a.Inputs,
		Filters: a.Filters,
		Options: Options{
			Output: a.Output,
			Vars:   a.Vars,
			Debug:  a.Debug,
			Name:   a.Name,
		},
	}
}

// Serialize returns the stable textual form of f used for change detection.
func (f *Formula) Serialize() (string, error) {
	b, err := yaml.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Hash returns a short fingerprint of the inputs, filters and options.
func (f *Formula) Hash() (string, error) {
	s, err := f.Serialize()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))[:7], nil
}

// output computes the target path template for the formula. name replaces
// the star and every declared variable absent from the template is appended
// after it.
func (f *Formula) output(name string) string {
	out := f.Options.Output
	if out == "" {
		out = DefaultOutput
		if len(f.Inputs) > 0 {
			out += path.Ext(f.Inputs[0])
		}
	}
	var add []string
	for _, v := range f.Options.Vars {
		if !strings.Contains(out, "{"+v+"}") {
			add = append(add, "{"+v+"}")
		}
	}
	if len(add) > 0 {
		out = strings.Replace(out, "*", "*."+strings.Join(add, "."), 1)
	}
	return strings.Replace(out, "*", name, 1)
}

// leafOutput computes the target path template of the n-th leaf (1 based)
// of the asset named name.
func (f *Formula) leafOutput(name string, n int, source string) string {
	base := strings.TrimSuffix(path.Base(source), path.Ext(source))
	part := name + "_part_" + strconv.Itoa(n) + "_" + base
	out := f.Options.Output
	if out == "" || strings.Contains(out, "*") {
		withStar := f.output("*")
		return strings.Replace(withStar, "*", part, 1)
	}
	ext := path.Ext(out)
	return strings.TrimSuffix(out, ext) + "_part_" + strconv.Itoa(n) + "_" + base + ext
}
