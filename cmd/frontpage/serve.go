package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/frontpage"
	"github.com/eringen/frontpage/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Serves the site until SIGINT or SIGTERM, then shuts down gracefully.
FRONTPAGE_ADMIN_PASSWORD and FRONTPAGE_SESSION_SECRET are required.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := frontpage.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := frontpage.New(cfg, views.New(cfg), frontpage.WithLogger(logger))
	defer app.Close()

	logger.Info("starting frontpage",
		zap.String("version", version),
		zap.String("database", cfg.DatabasePath),
		zap.Duration("rotation_interval", cfg.RotationInterval),
	)
	if err := app.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// cmdContext returns the command context, falling back to Background when
// the command is invoked directly in tests.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
