package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require.Equal(t, VERSION+"-ERR-BuildInfo", Version{}.String())

	v := fromSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2024-01-02T10:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	})
	require.Equal(t, VERSION+"-20240102-012345678-dirty", v.String())

	require.Equal(t, VERSION, fromSettings(nil).String())
}
