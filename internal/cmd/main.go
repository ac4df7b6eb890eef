package cmd

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/vinceanalytics/assetdump/internal/cmd/vinit"
	"github.com/vinceanalytics/assetdump/internal/config"
	"github.com/vinceanalytics/assetdump/internal/version"
)

func App() *cli.Command {
	return &cli.Command{
		Name:        "assetdump",
		Usage:       "Dumps web assets to the filesystem",
		Description: description,
		Version:     version.VERSION,
		Writer:      os.Stdout,
		Commands: []*cli.Command{
			dumpCMD(),
			vinit.CMD(),
			version.VersionCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to configuration file",
				Value:   config.FILE,
				Sources: cli.EnvVars("ASSETDUMP_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "logLevel",
				Value:   "INFO",
				Sources: cli.EnvVars("ASSETDUMP_LOG_LEVEL"),
			},
		},
	}
}

func setup(c *cli.Command) *slog.Logger {
	log := config.Logger(c.String("logLevel"))
	slog.SetDefault(log)
	return log
}

const description = `assetdump writes the assets declared in a configuration file to the
output directory. Each asset is written once for every combination of the
variables it declares. In debug mode the inputs of every asset are written as
separate files as well.

With --watch the command keeps running and rewrites assets whose sources or
formulas change.
`
