package dump

import (
	"github.com/vinceanalytics/assetdump/internal/vars"
	"gopkg.in/src-d/go-errors.v1"
)

var (
	ErrDirectoryCreate = errors.NewKind("unable to create directory %s")
	ErrFileWrite       = errors.NewKind("unable to write file %s")

	// ErrMissingVariableConfig is returned when an asset declares a variable
	// that has no configured values.
	ErrMissingVariableConfig = vars.ErrMissingVariableConfig
)
