package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/vinceanalytics/assetdump/internal/cmd/ansi"
	"github.com/vinceanalytics/assetdump/internal/config"
	"github.com/vinceanalytics/assetdump/internal/dump"
	"github.com/vinceanalytics/assetdump/internal/watch"
)

func dumpCMD() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Dumps all assets to the filesystem",
		ArgsUsage: "[write_to]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Check for changes every period and dump changed assets",
			},
			&cli.DurationFlag{
				Name:    "period",
				Usage:   "Time between watch passes",
				Value:   watch.DefaultPeriod,
				Sources: cli.EnvVars("ASSETDUMP_WATCH_PERIOD"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "List the source files of every written asset",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Overrides the configured debug mode",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			log := setup(c)
			src := &watch.File{
				Path: c.String("config"),
				Override: func(o *config.Options) {
					if c.IsSet("debug") {
						o.Debug = c.Bool("debug")
					}
				},
			}
			w := ansi.New(c.Root().Writer, c.Bool("verbose"))
			o, err := src.Options()
			if err != nil {
				return w.Complete(err)
			}
			base := o.WriteTo
			if a := c.Args().First(); a != "" {
				base = a
			}
			mode := "off"
			if o.Debug {
				mode = "on"
			}
			s := watch.Build(o)
			w.Step("Dumping all %d assets.", len(s.Names)).
				Step("Debug mode is %s.", mode).
				KV("write_to", base).
				Flush()

			d := &dump.Dumper{
				Manager:   s.Manager,
				BasePath:  base,
				Variables: s.Variables,
				Output:    w,
			}
			if !c.Bool("watch") {
				if err := d.DumpAll(s.Names, dump.NewVisits()); err != nil {
					return w.Complete(err)
				}
				w.Ok("dumped %d assets", len(s.Names))
				return w.Complete(nil)
			}
			ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
			defer cancel()
			log.Info("watching assets", "config", src.Path, "period", c.Duration("period"))
			return w.Complete(watch.New(watch.Options{
				Dumper: d,
				Source: src,
				Out:    w,
				Roots:  s.Roots,
				Period: c.Duration("period"),
			}).Run(ctx))
		},
	}
}
