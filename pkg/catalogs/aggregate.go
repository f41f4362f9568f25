package catalogs

// CategoryCount is the number of tools in one category.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// Aggregate counts tools per category. Grouping uses exact string equality,
// unlike ByCategory which folds case. Results follow the order in which each
// category first appears in tools.
func Aggregate(tools []Tool) []CategoryCount {
	counts := make([]CategoryCount, 0)
	pos := make(map[string]int)

	for _, t := range tools {
		if i, ok := pos[t.Category]; ok {
			counts[i].Count++
			continue
		}
		pos[t.Category] = len(counts)
		counts = append(counts, CategoryCount{Category: t.Category, Count: 1})
	}

	return counts
}

// Total sums the counts.
func Total(counts []CategoryCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}
