package main

import (
	"fmt"
	"sort"
	"strings"

	"newsreel/article"

	"github.com/spf13/cobra"
)

// NewFeedCmd creates the feed command. It runs the pipeline on the newest
// item of a feed.
func NewFeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "feed <preset|feed-url>",
		Short: "Make a video from the newest article of an RSS/Atom feed",
		Long: fmt.Sprintf(`Resolve the newest item of a feed and process its link like a single
article URL. Presets: %s.`, presetNames()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feedURL := article.ResolveFeedURL(args[0])
			link, err := article.LatestFromFeed(cmd.Context(), nil, feedURL)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Latest article: %s\n", link)
			return runArticle(cmd.Context(), cmd, opts, link)
		},
	}
}

func presetNames() string {
	names := make([]string, 0, len(article.FeedPresets))
	for name := range article.FeedPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
