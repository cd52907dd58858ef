package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/frontpage"
	"github.com/eringen/frontpage/curation"
)

var classifyDrafts bool

var classifyCmd = &cobra.Command{
	Use:   "classify <slug>",
	Short: "Show the labels and primary category derived for a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		lookup := store.GetPost
		if classifyDrafts {
			lookup = store.GetPostAny
		}
		post, err := lookup(args[0])
		if err != nil {
			return fmt.Errorf("post %q: %w", args[0], err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "slug:    %s\n", post.Slug)
		fmt.Fprintf(out, "tags:    %s\n", frontpage.JoinTags(post.Tags))
		fmt.Fprintf(out, "labels:  %s\n", frontpage.JoinTags(frontpage.LabelNames(curation.Classify(post).Labels())))
		fmt.Fprintf(out, "primary: %s\n", curation.PrimaryCategory(post))
		return nil
	},
}
