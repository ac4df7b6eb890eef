package must

import (
	"log/slog"
	"os"
)

// One exits the process when err is not nil, logging msg and args.
func One(err error) func(msg string, args ...any) {
	return func(msg string, args ...any) {
		if err != nil {
			slog.Error(msg, append([]any{slog.String("err", err.Error())}, args...)...)
			os.Exit(1)
		}
	}
}
