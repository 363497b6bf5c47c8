// Command image-converter converts image files through the conversion service
// without the desktop UI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/image-converter/internal/logger"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.WithError(err).Debug("Command failed")
		os.Exit(1)
	}
}
