package catalogs_test

import (
	"fmt"

	"github.com/agentstation/aitools/pkg/catalogs"
)

func ExampleCatalog_ByCategory() {
	cat, _ := catalogs.NewEmbedded()
	for _, tool := range cat.ByCategory("video generation") {
		fmt.Println(tool.Name)
	}
	// Output:
	// Runway ML
	// Loom AI
	// Synthesia
}

func ExampleAggregate() {
	tools := []catalogs.Tool{
		{ID: 1, Name: "a", Category: "A"},
		{ID: 2, Name: "b", Category: "B"},
		{ID: 3, Name: "c", Category: "A"},
	}
	for _, c := range catalogs.Aggregate(tools) {
		fmt.Printf("%s=%d\n", c.Category, c.Count)
	}
	// Output:
	// A=2
	// B=1
}
