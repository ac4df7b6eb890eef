package version

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/urfave/cli/v3"
)

//go:embed VERSION.txt
var BuildVersion []byte

var VERSION = string(bytes.TrimSpace(BuildVersion))

type Version struct {
	Commit string
	Date   string
	Dirty  bool
	Valid  bool
}

func (v Version) String() string {
	var s strings.Builder
	s.WriteString(VERSION)
	if !v.Valid {
		s.WriteString("-ERR-BuildInfo")
	} else {
		if v.Date != "" {
			s.WriteString("-" + v.Date)
		}
		commit := v.Commit
		if len(commit) > 9 {
			commit = commit[:9]
		}
		if commit != "" {
			s.WriteString("-" + commit)
		}
		if v.Dirty {
			s.WriteString("-dirty")
		}
	}
	return s.String()
}

func Build() Version {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Version{}
	}
	return fromSettings(bi.Settings)
}

func fromSettings(settings []debug.BuildSetting) Version {
	v := Version{Valid: true}
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			v.Commit = s.Value
		case "vcs.time":
			if len(s.Value) >= len("yyyy-mm-dd") {
				v.Date = s.Value[:len("yyyy-mm-dd")]
				v.Date = strings.ReplaceAll(v.Date, "-", "")
			}
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}
	return v
}

func VersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "prints version information",
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := fmt.Fprintln(c.Root().Writer, Build().String())
			return err
		},
	}
}
