package main

import (
	"context"
	"os"

	"github.com/vinceanalytics/assetdump/internal/cmd"
	"github.com/vinceanalytics/assetdump/internal/must"
)

func main() {
	must.One(cmd.App().Run(context.Background(), os.Args))(
		"command failed",
	)
}
