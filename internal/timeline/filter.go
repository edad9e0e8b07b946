package timeline

// Filter is the active category filter: either All or one category name.
// A category literally named "All" cannot be isolated, since the sentinel
// always wins.
type Filter string

// All is the sentinel filter that keeps every event. It is the default.
const All Filter = "All"

// IsAll reports whether f is the All sentinel. The empty Filter is not All:
// it isolates events whose category is the empty string.
func (f Filter) IsAll() bool {
	return f == All
}

// String returns the filter label shown on its button.
func (f Filter) String() string {
	return string(f)
}

// Matches reports whether e passes the filter. Comparison is exact and
// case-sensitive, with no trimming.
func (f Filter) Matches(e Event) bool {
	return f.IsAll() || e.Category == string(f)
}

// Apply returns the events visible under filter. For All the input is
// returned unchanged; otherwise the result is the ordered subsequence of
// events whose category equals the filter, which is empty (not an error)
// when no event carries that category.
//
// Apply keeps no state, so repeated calls with the same arguments return
// equal results.
func Apply(events []Event, filter Filter) []Event {
	if filter.IsAll() {
		return events
	}

	visible := make([]Event, 0, len(events))
	for _, e := range events {
		if filter.Matches(e) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Options returns the filter choices in display order: All first, then each
// category in first-occurrence order.
func Options(categories []string) []Filter {
	options := make([]Filter, 0, len(categories)+1)
	options = append(options, All)
	for _, c := range categories {
		options = append(options, Filter(c))
	}
	return options
}

// Next returns the option after current, wrapping back to All. A current
// filter that is not among the options also moves to All.
func Next(categories []string, current Filter) Filter {
	return step(categories, current, 1)
}

// Prev returns the option before current, wrapping to the last category.
func Prev(categories []string, current Filter) Filter {
	return step(categories, current, -1)
}

func step(categories []string, current Filter, delta int) Filter {
	options := Options(categories)
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return All
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}
