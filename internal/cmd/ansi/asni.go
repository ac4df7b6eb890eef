package ansi

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
)

const (
	ok   = "✓"
	step = "→"
	x    = "✗"
)

const clock = "15:04:05"

// W writes human readable progress. Dump notices are flushed as soon as they
// are written.
type W struct {
	*tabwriter.Writer
	verbose bool
	now     func() time.Time
}

func New(out io.Writer, verbose bool) *W {
	if out == nil {
		out = os.Stdout
	}
	return &W{
		Writer: tabwriter.NewWriter(
			out, 0, 0, 1, ' ', 0,
		),
		verbose: verbose,
		now:     time.Now,
	}
}

// WithClock replaces the source of timestamps.
func (w *W) WithClock(now func() time.Time) *W {
	w.now = now
	return w
}

func (w *W) Verbose() bool { return w.verbose }

func (w *W) Step(msg string, a ...any) *W {
	fmt.Fprintf(w, "%s \t%s\n", step, fmt.Sprintf(msg, a...))
	return w
}

func (w *W) Ok(msg string, a ...any) *W {
	fmt.Fprintf(w, "%s \t%s\n", ok, fmt.Sprintf(msg, a...))
	return w
}

func (w *W) Err(msg string, a ...any) *W {
	fmt.Fprintf(w, "%s \t%s\n", x, fmt.Sprintf(msg, a...))
	return w
}

func (w *W) KV(key, value string, args ...any) *W {
	fmt.Fprintf(w, "%s \t%s\n", key, fmt.Sprintf(value, args...))
	return w
}

func (w *W) Suggest(msg ...string) *W {
	fmt.Fprintln(w, "suggestion \t ")
	for _, m := range msg {
		fmt.Fprintf(w, " \t%s\n", m)
	}
	return w
}

// Dir records the creation of a directory.
func (w *W) Dir(path string) {
	w.notice("[dir+]", path)
}

// File records the write of a file.
func (w *W) File(path string) {
	w.notice("[file+]", path)
}

// Error records a failure without stopping the caller.
func (w *W) Error(err error) {
	w.notice("[error]", err.Error())
}

// Source records one input that contributed to the last written file.
func (w *W) Source(root, path string) {
	if root == "" {
		root = "[unknown root]"
	}
	if path == "" {
		path = "[unknown path]"
	}
	fmt.Fprintf(w, "        %s/%s\n", root, path)
	w.Flush()
}

func (w *W) notice(tag, msg string) {
	fmt.Fprintf(w, "%s %s %s\n", w.now().Format(clock), tag, msg)
	w.Flush()
}

func (w *W) Complete(err error) error {
	if err != nil {
		w.Err(err.Error())
		w.Flush()
		return err
	}
	return w.Flush()
}
