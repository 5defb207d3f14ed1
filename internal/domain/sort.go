package domain

type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByPriority SortKey = "priority"
)

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByDate, SortByPriority:
		return SortKey(s), true
	default:
		return "", false
	}
}

// SortState is the single sort setting shared by the active and completed lists.
type SortState struct {
	Key   SortKey
	Order SortOrder
}

func DefaultSortState() SortState {
	return SortState{Key: SortByDate, Order: Ascending}
}

// Select applies a click on the sort control for key.
// The same key flips the order; another key switches to it in ascending order.
func (s SortState) Select(key SortKey) SortState {
	if s.Key == key {
		if s.Order == Ascending {
			s.Order = Descending
		} else {
			s.Order = Ascending
		}
		return s
	}

	return SortState{Key: key, Order: Ascending}
}

// Indicator returns the direction glyph shown next to key's control,
// or "" when key is not the active one.
func (s SortState) Indicator(key SortKey) string {
	if s.Key != key {
		return ""
	}
	if s.Order == Descending {
		return "↓"
	}
	return "↑"
}
