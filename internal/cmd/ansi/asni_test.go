package ansi

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixed() time.Time {
	return time.Date(2024, 3, 1, 9, 5, 7, 0, time.Local)
}

func TestNotices(t *testing.T) {
	var b bytes.Buffer
	w := New(&b, true).WithClock(fixed)
	require.True(t, w.Verbose())
	w.Dir("/out/css")
	w.File("/out/css/app.css")
	w.Source("/src", "css/a.css")
	w.Source("", "")
	w.Error(errors.New("boom"))
	require.Equal(t, "09:05:07 [dir+] /out/css\n"+
		"09:05:07 [file+] /out/css/app.css\n"+
		"        /src/css/a.css\n"+
		"        [unknown root]/[unknown path]\n"+
		"09:05:07 [error] boom\n", b.String())
}

func TestComplete(t *testing.T) {
	var b bytes.Buffer
	w := New(&b, false)
	require.False(t, w.Verbose())
	err := w.Step("dumping %d assets", 2).KV("debug", "off").Complete(nil)
	require.NoError(t, err)
	require.Contains(t, b.String(), "dumping 2 assets\n")
	require.Contains(t, b.String(), "debug")

	b.Reset()
	err = w.Complete(errors.New("failed"))
	require.Error(t, err)
	require.Contains(t, b.String(), "failed\n")
}
