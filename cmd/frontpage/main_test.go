package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func executeErr(t *testing.T, args ...string) error {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestImportDirAndClassify(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("FRONTPAGE_DATABASE_PATH", filepath.Join(tmp, "data", "site.db"))

	posts := filepath.Join(tmp, "posts")
	require.NoError(t, os.MkdirAll(posts, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(posts, "buzz.md"), []byte(`---
title: Weekend Buzz
date: 2024-05-02
tags: [Hollywood, Entertainment]
---
Body.
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(posts, "late.md"), []byte(`---
title: Late Edition
slug: late-edition
date: 2024-05-01
tags: [Scandal]
draft: true
---
Body.
`), 0o644))

	out := execute(t, "import", "dir", posts)
	assert.Contains(t, out, "imported 2 posts")

	// No slug in the front matter: the file name is used, not the title.
	out = execute(t, "classify", "buzz")
	assert.Contains(t, out, "slug:    buzz\n")
	assert.Contains(t, out, "labels:  Hollywood, Celebverse, Gossips")
	assert.Contains(t, out, "primary: Celebverse")
	require.Error(t, executeErr(t, "classify", "weekend-buzz"))

	require.Error(t, executeErr(t, "classify", "late-edition"), "drafts are hidden by default")
	out = execute(t, "classify", "--drafts", "late-edition")
	assert.Contains(t, out, "slug:    late-edition\n")
	assert.Contains(t, out, "primary: Gossips")
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "frontpage dev\n", execute(t, "version"))
}
