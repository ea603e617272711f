package pubadmin

import "embed"

// EmbeddedAssets contains static assets shipped with the console (admin.css).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
