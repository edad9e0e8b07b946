package timeline

// Event is a single historical event on the timeline. It is a comparable
// value; two events are the same event when every field matches.
type Event struct {
	// Year is the display label and the unique key within a collection.
	// It is not necessarily numeric or sortable.
	Year string `json:"year" yaml:"year"`
	// Title is the short headline shown on the marker and in the modal.
	Title string `json:"title" yaml:"title"`
	// Description is the long-form text shown in the modal.
	Description string `json:"description" yaml:"description"`
	// ImageURL may be unreachable; presenters substitute a placeholder.
	ImageURL string `json:"imageURL" yaml:"imageURL"`
	// Category is a free-form label used for filtering.
	Category string `json:"category" yaml:"category"`
}

// IndexOf returns the position of the event with the given year in events,
// or -1 if no event carries that year.
func IndexOf(events []Event, year string) int {
	for i, e := range events {
		if e.Year == year {
			return i
		}
	}
	return -1
}

// DuplicateYears returns every year that appears more than once in events,
// in first-duplicate order. A well-formed collection returns nil.
func DuplicateYears(events []Event) []string {
	seen := make(map[string]int, len(events))
	var dups []string
	for _, e := range events {
		seen[e.Year]++
		if seen[e.Year] == 2 {
			dups = append(dups, e.Year)
		}
	}
	return dups
}
