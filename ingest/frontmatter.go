package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eringen/frontpage/content"
)

// ErrNoFrontMatter is returned for documents that do not open with a
// "---" delimited YAML block.
var ErrNoFrontMatter = errors.New("ingest: missing front matter")

// frontMatter mirrors the header of a post document.
type frontMatter struct {
	Title   string   `yaml:"title"`
	Slug    string   `yaml:"slug"`
	Date    string   `yaml:"date"`
	Tags    []string `yaml:"tags"`
	Images  []string `yaml:"images"`
	Summary string   `yaml:"summary"`
	Draft   bool     `yaml:"draft"`
}

var postExtensions = map[string]bool{".md": true, ".mdx": true, ".markdown": true}

// LoadDir parses every markdown document directly under dir and returns the
// posts sorted newest first. Drafts are returned unpublished. A document
// without a slug in its front matter takes its file name.
func LoadDir(dir string) ([]content.Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ingest: read dir: %w", err)
	}
	var posts []content.Post
	for _, e := range entries {
		if e.IsDir() || !postExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("ingest: read %s: %w", e.Name(), err)
		}
		p, err := ParseDocument(data)
		if err != nil {
			return nil, fmt.Errorf("ingest: %s: %w", e.Name(), err)
		}
		if p.Slug == "" {
			p.Slug = content.Slugify(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
			p.Link = content.PostLink(p.Slug)
		}
		posts = append(posts, p)
	}
	SortPosts(posts)
	return posts, nil
}

// ParseDocument splits a markdown document into its YAML header and body.
func ParseDocument(data []byte) (content.Post, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return content.Post{}, ErrNoFrontMatter
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return content.Post{}, ErrNoFrontMatter
	}
	header := rest[:end]
	body := strings.TrimPrefix(rest[end+len("\n---"):], "\n")

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return content.Post{}, fmt.Errorf("front matter: %w", err)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return content.Post{}, errors.New("front matter: title is required")
	}
	date, err := content.NormalizeDate(fm.Date)
	if err != nil {
		return content.Post{}, fmt.Errorf("front matter: date %q: %w", fm.Date, err)
	}
	slug := strings.TrimSpace(fm.Slug)
	p := content.Post{
		Slug:      slug,
		Date:      date,
		Title:     strings.TrimSpace(fm.Title),
		Summary:   strings.TrimSpace(fm.Summary),
		Tags:      cleanList(trimAll(fm.Tags)),
		Images:    cleanList(trimAll(fm.Images)),
		Content:   body,
		Published: !fm.Draft,
	}
	if slug != "" {
		p.Link = content.PostLink(slug)
	}
	return p, nil
}

func trimAll(vals []string) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
