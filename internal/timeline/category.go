package timeline

// Categories returns the distinct categories of events in first-occurrence
// order. The order is deliberately not alphabetical: filter options follow
// the order in which their categories first appear on the timeline.
//
// Categories is pure and returns an empty, non-nil slice for empty input.
func Categories(events []Event) []string {
	seen := make(map[string]struct{}, len(events))
	categories := make([]string, 0, len(events))
	for _, e := range events {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}
	return categories
}
