// Package constants provides shared constants used throughout the aitools
// codebase: simulated latencies, and display limits.
package constants

import "time"

// Simulated latency profile of the catalog service. Clients default to zero
// latency; these values are applied only when latency simulation is enabled.
const (
	// ToolsLatency is the delay before a tools listing completes
	ToolsLatency = 500 * time.Millisecond

	// FavoritesLatency is the delay before a favorites listing completes
	FavoritesLatency = 300 * time.Millisecond

	// AddFavoriteLatency is the delay before adding a favorite completes
	AddFavoriteLatency = 200 * time.Millisecond

	// RemoveFavoriteLatency is the delay before removing a favorite completes
	RemoveFavoriteLatency = 200 * time.Millisecond
)

// Display limits
const (
	// FeaturePreviewLength is how many features a tool card shows
	FeaturePreviewLength = 3

	// DescriptionWidth truncates descriptions in table output
	DescriptionWidth = 60
)

// Embedded catalog location
const (
	// EmbeddedCatalogPath is the seed file inside the embedded filesystem
	EmbeddedCatalogPath = "catalog/tools.yaml"
)
