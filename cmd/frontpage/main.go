// Command frontpage serves and manages a frontpage site.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eringen/frontpage"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "frontpage",
	Short: "frontpage - an editorial site built with Go, Echo, and templ",
	Long: `frontpage serves a magazine-style site: a rotating image showcase,
keyword-labeled columns, section pages and related-post panels, all
derived from post tags.

Configuration comes from frontpage.toml (or FRONTPAGE_CONFIG) and
FRONTPAGE_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the frontpage version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "frontpage %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	importCmd.AddCommand(importDirCmd)
	importCmd.AddCommand(importFeedCmd)
	importFeedCmd.Flags().IntVar(&feedLimit, "limit", 20, "Maximum feed items to import")
	importFeedCmd.Flags().DurationVar(&feedTimeout, "timeout", 30*time.Second, "Feed fetch timeout")
	importCmd.PersistentFlags().BoolVar(&importDrafts, "drafts", false, "Import posts unpublished")
	classifyCmd.Flags().BoolVar(&classifyDrafts, "drafts", false, "Include unpublished posts")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore loads the configuration and opens its database.
func openStore() (frontpage.SiteConfig, *frontpage.Store, error) {
	cfg, err := frontpage.LoadConfig()
	if err != nil {
		return cfg, nil, err
	}
	store, err := frontpage.NewStore(cfg.DatabasePath)
	if err != nil {
		return cfg, nil, fmt.Errorf("open store %s: %w", cfg.DatabasePath, err)
	}
	return cfg, store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
