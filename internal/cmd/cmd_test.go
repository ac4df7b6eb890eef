package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vinceanalytics/assetdump/internal/cmd/vinit"
	"github.com/vinceanalytics/assetdump/internal/config"
	"github.com/vinceanalytics/assetdump/internal/version"
)

const conf = `
read_from: src
write_to: web
variables:
  locale: [en, fr]
assets:
  app_css:
    inputs: [css/*.css]
    output: css/app.css
  lang_js:
    inputs: ["js/lang_{locale}.js"]
    output: js/lang_{locale}.js
    vars: [locale]
`

func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range map[string]string{
		config.FILE:         conf,
		"src/css/a.css":     "a{}",
		"src/css/b.css":     "b{}",
		"src/js/lang_en.js": "var en",
		"src/js/lang_fr.js": "var fr",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	app := App()
	app.Writer = &b
	err := app.Run(context.Background(), append([]string{"assetdump"}, args...))
	return b.String(), err
}

func TestDump(t *testing.T) {
	dir := project(t)
	out, err := run(t, "--config", filepath.Join(dir, config.FILE), "dump", "--verbose")
	require.NoError(t, err)
	require.Contains(t, out, "Dumping all 2 assets.")
	require.Contains(t, out, "Debug mode is off.")
	require.Contains(t, out, "[file+] "+filepath.Join(dir, "web", "css", "app.css"))
	require.Contains(t, out, "[file+] "+filepath.Join(dir, "web", "js", "lang_fr.js"))
	require.Contains(t, out, filepath.Join(dir, "src")+"/css/a.css")
	require.Contains(t, out, "dumped 2 assets")

	b, err := os.ReadFile(filepath.Join(dir, "web", "css", "app.css"))
	require.NoError(t, err)
	require.Equal(t, "a{}\nb{}", string(b))
	b, err = os.ReadFile(filepath.Join(dir, "web", "js", "lang_en.js"))
	require.NoError(t, err)
	require.Equal(t, "var en", string(b))
}

func TestDumpWriteTo(t *testing.T) {
	dir := project(t)
	target := filepath.Join(t.TempDir(), "public")
	_, err := run(t, "--config", filepath.Join(dir, config.FILE), "dump", target)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(target, "css", "app.css"))
	require.NoDirExists(t, filepath.Join(dir, "web"))
}

func TestDumpDebug(t *testing.T) {
	dir := project(t)
	out, err := run(t, "--config", filepath.Join(dir, config.FILE), "dump", "--debug")
	require.NoError(t, err)
	require.Contains(t, out, "Debug mode is on.")
	require.FileExists(t, filepath.Join(dir, "web", "css", "app_part_1_a.css"))
}

func TestDumpMissingConfig(t *testing.T) {
	out, err := run(t, "--config", filepath.Join(t.TempDir(), config.FILE), "dump")
	require.True(t, config.ErrRead.Is(err))
	require.Contains(t, out, "✗")
}

func TestInit(t *testing.T) {
	file := filepath.Join(t.TempDir(), "site", config.FILE)
	out, err := run(t, "--config", file, "init")
	require.NoError(t, err)
	require.Contains(t, out, "suggestion")

	o, err := config.Load(file)
	require.NoError(t, err)
	require.DirExists(t, o.ReadFrom)
	require.Equal(t, filepath.Join(filepath.Dir(file), config.WRITE_TO), o.WriteTo)

	_, err = run(t, "--config", file, "init")
	require.True(t, vinit.ErrExists.Is(err))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, version.VERSION)
}
