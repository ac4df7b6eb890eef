package config

import (
	"os"
	"path/filepath"

	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v2"
)

var (
	ErrRead    = errors.NewKind("unable to read configuration file %s")
	ErrDecode  = errors.NewKind("invalid configuration file %s")
	ErrInvalid = errors.NewKind("invalid configuration: %s")
)

// Load reads the configuration file at path on top of Defaults. Relative
// read_from and write_to are resolved against the directory holding the file.
//
// Inputs with {var} placeholders must be quoted inside a flow sequence,
// as in inputs: ["js/lang_{locale}.js"], or YAML reads the braces as a map.
func Load(path string) (*Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrRead.Wrap(err, path)
	}
	o := Defaults()
	if err := yaml.UnmarshalStrict(b, o); err != nil {
		return nil, ErrDecode.Wrap(err, path)
	}
	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	o.ReadFrom = resolve(root, o.ReadFrom)
	o.WriteTo = resolve(root, o.WriteTo)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Options) Validate() error {
	if o.WriteTo == "" {
		return ErrInvalid.New("write_to is required")
	}
	for name, a := range o.Assets {
		if len(a.Inputs) == 0 {
			return ErrInvalid.New("asset " + name + " has no inputs")
		}
	}
	return nil
}

// Encode returns o as YAML.
func (o *Options) Encode() ([]byte, error) {
	return yaml.Marshal(o)
}

func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, filepath.Clean(path))
}
