package vinit

import (
	"context"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"github.com/vinceanalytics/assetdump/internal/cmd/ansi"
	"github.com/vinceanalytics/assetdump/internal/config"
	"gopkg.in/src-d/go-errors.v1"
)

var ErrExists = errors.NewKind("%s already exists")

func CMD() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Writes a default configuration file",
		Action: func(ctx context.Context, c *cli.Command) error {
			w := ansi.New(c.Root().Writer, false)
			w.Step("setting up assetdump project").Flush()
			file, err := filepath.Abs(c.String("config"))
			if err != nil {
				return w.Complete(err)
			}
			return w.Complete(Init(w, file))
		},
	}
}

// Init writes the default configuration to file and creates the source
// directory next to it.
func Init(w *ansi.W, file string) error {
	if _, err := os.Stat(file); err == nil {
		return ErrExists.New(file)
	}
	o := config.Defaults()
	b, err := o.Encode()
	if err != nil {
		return err
	}
	root := filepath.Dir(file)
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	src := filepath.Join(root, o.ReadFrom)
	if err := os.MkdirAll(src, 0755); err != nil {
		return err
	}
	w.KV("read_from", src)
	if err := os.WriteFile(file, b, 0600); err != nil {
		return err
	}
	w.KV("config file", file)
	w.Suggest(
		"add assets to "+filepath.Base(file)+" then run: assetdump dump",
		`quote inputs with placeholders: inputs: ["js/lang_{locale}.js"]`,
	)
	return nil
}
