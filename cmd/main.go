package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/dasdy/multitile/cmd/multitile"
	"github.com/dasdy/multitile/logging"
	"gitlab.com/greyxor/slogor"
)

func main() {
	slog.SetDefault(slog.New(
		logging.ContextHandler{Handler: slogor.NewHandler(os.Stderr,
			slogor.SetLevel(slog.LevelInfo),
			slogor.SetTimeFormat(time.DateTime))},
	))

	multitile.Execute()
}
