package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/eringen/frontpage/content"
)

// FetchFeed downloads an RSS/Atom feed and converts up to limit items into
// posts. limit <= 0 means no limit.
func FetchFeed(ctx context.Context, feedURL string, limit int) ([]content.Post, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: fetch feed: %w", err)
	}
	return feedPosts(feed, limit), nil
}

// ParseFeed converts a feed document read from r.
func ParseFeed(r io.Reader, limit int) ([]content.Post, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: parse feed: %w", err)
	}
	return feedPosts(feed, limit), nil
}

func feedPosts(feed *gofeed.Feed, limit int) []content.Post {
	count := len(feed.Items)
	if limit > 0 {
		count = min(count, limit)
	}
	posts := make([]content.Post, 0, count)
	for _, item := range feed.Items[:count] {
		slug := content.Slugify(item.Title)
		if slug == "" {
			continue
		}

		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		} else {
			published = time.Now()
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		posts = append(posts, content.Post{
			Slug:      slug,
			Date:      published.UTC().Format(content.DateLayout),
			Title:     strings.TrimSpace(item.Title),
			Summary:   strings.TrimSpace(summary),
			Tags:      cleanList(trimAll(item.Categories)),
			Images:    cleanList(itemImages(item)),
			Link:      content.PostLink(slug),
			Content:   item.Content,
			Published: true,
		})
	}
	SortPosts(posts)
	return posts
}

// itemImages collects the item image first, then image enclosures.
func itemImages(item *gofeed.Item) []string {
	var images []string
	if item.Image != nil && item.Image.URL != "" {
		images = append(images, item.Image.URL)
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			images = append(images, enc.URL)
		}
	}
	return images
}
