package shared

// Filter represents query filter options shared by all list repositories.
// StartIndex/Limit are offset pagination as exposed by the HTTP layer;
// OrderDir applies to each repository's natural sort column.
type Filter struct {
	StartIndex int
	Limit      int
	OrderDir   string // "asc" or "desc"
	Search     string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		StartIndex: 0,
		Limit:      9,
		OrderDir:   "desc",
	}
}

// Normalize clamps the filter to sane values
func (f Filter) Normalize() Filter {
	if f.StartIndex < 0 {
		f.StartIndex = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultFilter().Limit
	}
	if f.OrderDir != "asc" {
		f.OrderDir = "desc"
	}
	return f
}
