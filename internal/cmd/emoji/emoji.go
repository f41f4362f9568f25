// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: favorites added or removed.
	Success = "✓"

	// Error represents failures.
	// Used for: unknown tool ids, canceled operations, bad input.
	Error = "✗"

	// Info represents informational messages.
	// Used for: duplicate favorites, empty results, tips.
	Info = "i"

	// Favorite marks a tool the user has favorited.
	Favorite = "★"

	// NotFavorite marks a tool that is not a favorite.
	NotFavorite = "☆"
)
