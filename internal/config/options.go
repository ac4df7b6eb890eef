package config

import (
	"os"

	"log/slog"
)

const (
	FILE      = "assetdump.yml"
	READ_FROM = "assets"
	WRITE_TO  = "web"
)

// Options is the decoded configuration file.
type Options struct {
	// ReadFrom is the root every asset input is relative to.
	ReadFrom string `yaml:"read_from"`
	// WriteTo is the base output directory.
	WriteTo string `yaml:"write_to"`
	Debug   bool   `yaml:"debug"`
	// Variables maps a variable name to the values assets are dumped for.
	Variables map[string][]string `yaml:"variables,omitempty"`
	Assets    map[string]Asset    `yaml:"assets,omitempty"`
}

// Asset is a formula as written in the configuration file.
type Asset struct {
	Inputs  []string `yaml:"inputs"`
	Filters []string `yaml:"filters,omitempty"`
	Output  string   `yaml:"output,omitempty"`
	Vars    []string `yaml:"vars,omitempty"`
	Debug   *bool    `yaml:"debug,omitempty"`
	Name    string   `yaml:"name,omitempty"`
}

func Defaults() *Options {
	return &Options{
		ReadFrom:  READ_FROM,
		WriteTo:   WRITE_TO,
		Variables: map[string][]string{},
		Assets:    map[string]Asset{},
	}
}

func Logger(level string) *slog.Logger {
	var lvl slog.Level
	lvl.UnmarshalText([]byte(level))
	return slog.New(slog.NewTextHandler(
		os.Stderr, &slog.HandlerOptions{
			Level: lvl,
		},
	))
}
