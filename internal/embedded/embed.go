// Package embedded holds the compiled-in tool catalog.
package embedded

import (
	"embed"
)

// FS embeds the seed catalog at build time.
//
//go:embed catalog/*
var FS embed.FS
