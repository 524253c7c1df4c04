// Command export writes the derived "Latest Ratings" and "2 star and above"
// sheets into the contest workbook.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/contestdash/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := newApp().Run(ctx, os.Args); err != nil {
		logger.Get().Error(ctx, "export failed", logger.Error(err))
		os.Exit(1)
	}
}
