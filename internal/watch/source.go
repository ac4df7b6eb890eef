package watch

import (
	"github.com/vinceanalytics/assetdump/internal/config"
	"github.com/vinceanalytics/assetdump/internal/manager"
)

// File loads assets from a configuration file.
type File struct {
	Path string
	// Override is applied to the decoded options before assets are built.
	Override func(o *config.Options)
}

var _ Source = (*File)(nil)

func (f *File) Load() (*Snapshot, error) {
	o, err := f.Options()
	if err != nil {
		return nil, err
	}
	return Build(o), nil
}

// Build creates the assets described by o.
func Build(o *config.Options) *Snapshot {
	m := manager.New(o)
	return &Snapshot{
		Manager:   m,
		Names:     m.Names(),
		Variables: o.Variables,
		Roots:     m.Roots(),
	}
}

// Options returns the decoded configuration with Override applied.
func (f *File) Options() (*config.Options, error) {
	o, err := config.Load(f.Path)
	if err != nil {
		return nil, err
	}
	if f.Override != nil {
		f.Override(o)
	}
	return o, nil
}
