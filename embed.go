package frontpage

import "embed"

// EmbeddedAssets contains static assets shipped with the framework:
// showcase.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
