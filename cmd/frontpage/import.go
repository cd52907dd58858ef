package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/frontpage/content"
	"github.com/eringen/frontpage/curation"
	"github.com/eringen/frontpage/ingest"
)

var (
	feedLimit    int
	feedTimeout  time.Duration
	importDrafts bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import posts into the store",
}

var importDirCmd = &cobra.Command{
	Use:   "dir <path>",
	Short: "Import markdown files with YAML front matter",
	Long: `Reads every .md, .mdx and .markdown file in <path>. Front matter
supplies title, slug, date, tags, images, summary and draft; the body
becomes the post content. Existing posts with the same slug are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := ingest.LoadDir(args[0])
		if err != nil {
			return err
		}
		return savePosts(cmd, posts)
	},
}

var importFeedCmd = &cobra.Command{
	Use:   "feed <url>",
	Short: "Import the items of an RSS or Atom feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmdContext(cmd), feedTimeout)
		defer cancel()
		posts, err := ingest.FetchFeed(ctx, args[0], feedLimit)
		if err != nil {
			return err
		}
		return savePosts(cmd, posts)
	},
}

func savePosts(cmd *cobra.Command, posts []content.Post) error {
	_, store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if importDrafts {
		for i := range posts {
			posts[i].Published = false
		}
	}
	if err := store.SavePosts(posts); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}
	for _, p := range posts {
		logger.Debug("imported",
			zap.String("slug", p.Slug),
			zap.String("primary", string(curation.PrimaryCategory(p))),
		)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d posts\n", len(posts))
	return nil
}
