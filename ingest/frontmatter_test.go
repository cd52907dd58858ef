package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const celebDoc = `---
title: Red Carpet Recap
date: 2024-05-02
tags: [Celebrity, Hollywood]
images:
  - /static/images/red-carpet.jpg
summary: Who wore what.
---
Body text here.
`

const travelDoc = `---
title: "Canada by Train"
slug: canada-by-train
date: "2024-06-10T08:30:00Z"
tags:
  - Travel
  - travel
summary: Coast to coast.
---
# Day one
`

const draftDoc = `---
title: Unfinished
date: 2024-01-01
draft: true
---
`

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "red-carpet.md", celebDoc)
	writeFile(t, dir, "train.mdx", travelDoc)
	writeFile(t, dir, "Unfinished Post.md", draftDoc)
	writeFile(t, dir, "notes.txt", "not a post")

	posts, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// newest first
	assert.Equal(t, "canada-by-train", posts[0].Slug)
	assert.Equal(t, "red-carpet", posts[1].Slug)
	assert.Equal(t, "unfinished-post", posts[2].Slug)

	train := posts[0]
	assert.Equal(t, "2024-06-10", train.Date)
	assert.Equal(t, []string{"Travel", "travel"}, train.Tags)
	assert.Equal(t, "/blog/canada-by-train/", train.Link)
	assert.True(t, train.Published)
	assert.Equal(t, "# Day one\n", train.Content)

	carpet := posts[1]
	assert.Equal(t, "Red Carpet Recap", carpet.Title)
	assert.Equal(t, "2024-05-02", carpet.Date)
	assert.Equal(t, []string{"/static/images/red-carpet.jpg"}, carpet.Images)
	assert.Equal(t, "Who wore what.", carpet.Summary)

	assert.False(t, posts[2].Published)
	assert.Empty(t, posts[2].Tags)
}

func TestParseDocumentErrors(t *testing.T) {
	_, err := ParseDocument([]byte("# just markdown\n"))
	assert.ErrorIs(t, err, ErrNoFrontMatter)

	_, err = ParseDocument([]byte("---\ntitle: x\n"))
	assert.ErrorIs(t, err, ErrNoFrontMatter)

	_, err = ParseDocument([]byte("---\ntitle: x\ndate: someday\n---\n"))
	assert.Error(t, err)

	_, err = ParseDocument([]byte("---\ndate: 2024-01-01\n---\n"))
	assert.Error(t, err, "title is required")
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
