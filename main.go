package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/iwat/randseq/internal/cmd"
	"github.com/iwat/randseq/internal/infrastructure/tui"
)

func main() {
	logger := tui.NewLogger(os.Stderr, slog.LevelInfo)
	slog.SetDefault(logger)

	rootCmd := cmd.RootCmd(cmd.NewAppBuilder().WithLogger(logger))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Write failures are reported by the app itself; the exit status stays 0.
		logger.Error("command failed", "err", err)
	}
}
