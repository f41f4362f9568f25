package errors_test

import (
	"fmt"

	"github.com/agentstation/aitools/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := &errors.NotFoundError{
		Resource: "tool",
		ID:       "13",
	}

	if errors.IsNotFound(err) {
		fmt.Println("Resource not found")
	}

	// Output: Resource not found
}

// Example_alreadyExists shows how a caller separates an informational
// duplicate from a real failure.
func Example_alreadyExists() {
	var err error = errors.NewAlreadyExistsError("favorite", "3")

	switch {
	case errors.IsAlreadyExists(err):
		fmt.Println("This tool is already in your favorites!")
	case err != nil:
		fmt.Println("Failed to add to favorites.")
	}

	// Output: This tool is already in your favorites!
}
