package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/fflaunch/internal/config"
	"github.com/oshokin/fflaunch/internal/dialog"
	"github.com/oshokin/fflaunch/internal/logger"
	"github.com/oshokin/fflaunch/internal/service/launcher"
)

// rootCmd locates or installs Firefox and then execs it. Flag parsing is
// disabled on purpose: every argument, including anything dash-prefixed,
// belongs to the browser and is forwarded verbatim.
var rootCmd = &cobra.Command{
	Use:                "fflaunch [browser arguments...]",
	Short:              "Install Firefox for the current user if needed, then launch it",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(_ *cobra.Command, args []string) error {
		// Setup graceful shutdown handling.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		if level, ok := logger.ParseLogLevel(os.Getenv(config.EnvLogLevel)); ok {
			logger.SetLevel(level)
		}

		err := launcher.Run(ctx, &launcher.Options{Args: args})
		if errors.Is(err, dialog.ErrUserAbort) {
			// A cancelled dialog is a clean, silent termination.
			logger.Debug(ctx, "Cancelled by user")
			return nil
		}

		return err
	},
}

// Execute runs the fflaunch CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
