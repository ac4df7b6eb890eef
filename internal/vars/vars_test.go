package vars

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombinations(t *testing.T) {
	t.Run("no vars", func(t *testing.T) {
		got, err := Combinations(nil, map[string][]string{"a": {"1", "2"}})
		require.NoError(t, err)
		require.Equal(t, []map[string]string{{}}, got)
	})
	t.Run("cartesian product", func(t *testing.T) {
		values := map[string][]string{
			"a": {"1", "2"},
			"b": {"x", "y"},
		}
		want := []map[string]string{
			{"a": "1", "b": "x"},
			{"a": "1", "b": "y"},
			{"a": "2", "b": "x"},
			{"a": "2", "b": "y"},
		}
		got, err := Combinations([]string{"a", "b"}, values)
		require.NoError(t, err)
		require.Equal(t, want, got)

		again, err := Combinations([]string{"a", "b"}, values)
		require.NoError(t, err)
		require.Equal(t, got, again)
	})
	t.Run("missing domain", func(t *testing.T) {
		_, err := Combinations([]string{"a", "locale"}, map[string][]string{"a": {"1"}})
		require.Error(t, err)
		require.True(t, ErrMissingVariableConfig.Is(err))
	})
	t.Run("empty domain", func(t *testing.T) {
		got, err := Combinations([]string{"a"}, map[string][]string{"a": {}})
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestResolve(t *testing.T) {
	got, err := Resolve("/out/css/app_{a}.{b}.css", []string{"a", "b"}, map[string]string{"a": "1", "b": "dark"})
	require.NoError(t, err)
	require.Equal(t, "/out/css/app_1.dark.css", got)

	got, err = Resolve("/out/{theme}/app.css", []string{"a"}, map[string]string{"a": "1"})
	require.NoError(t, err)
	require.Equal(t, "/out/{theme}/app.css", got)

	_, err = Resolve("/out/app_{a}.css", []string{"a"}, map[string]string{})
	require.True(t, ErrUnresolvedVariable.Is(err))
}
