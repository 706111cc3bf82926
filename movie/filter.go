package movie

// FilterKind names the single filter honored by a search.
type FilterKind string

const (
	FilterNone  FilterKind = ""
	FilterText  FilterKind = "text"
	FilterCast  FilterKind = "cast"
	FilterGenre FilterKind = "genre"
)

// FilterPriority is the order in which request keys are considered when
// more than one filter is supplied. The first one present wins.
var FilterPriority = []FilterKind{FilterText, FilterCast, FilterGenre}

// Filter selects movies by one filter kind. Values always holds at least one
// entry for a non-empty filter; Single records that the caller supplied a
// bare value rather than a list.
type Filter struct {
	Kind   FilterKind
	Values []string
	Single bool
}

func TextFilter(text string) Filter {
	return Filter{Kind: FilterText, Values: []string{text}, Single: true}
}

func CastFilter(names ...string) Filter {
	return listFilter(FilterCast, names)
}

func GenreFilter(genres ...string) Filter {
	return listFilter(FilterGenre, genres)
}

func listFilter(kind FilterKind, values []string) Filter {
	if len(values) == 0 {
		return Filter{}
	}
	return Filter{Kind: kind, Values: values, Single: len(values) == 1}
}

// NewFilter builds a filter of the given kind from raw request values.
// Unknown kinds and empty value lists yield the empty filter.
func NewFilter(kind FilterKind, values []string) Filter {
	switch kind {
	case FilterText:
		if len(values) == 0 {
			return Filter{}
		}
		return TextFilter(values[0])
	case FilterCast, FilterGenre:
		return listFilter(kind, values)
	}
	return Filter{}
}

func (f Filter) IsEmpty() bool {
	return f.Kind == FilterNone || len(f.Values) == 0
}

// Text returns the search text of a text filter.
func (f Filter) Text() string {
	if len(f.Values) == 0 {
		return ""
	}
	return f.Values[0]
}

// Params renders the filter the way it was requested: a bare string for a
// single value, a list otherwise.
func (f Filter) Params() map[string]interface{} {
	params := map[string]interface{}{}
	if f.IsEmpty() {
		return params
	}
	if f.Single {
		params[string(f.Kind)] = f.Values[0]
	} else {
		params[string(f.Kind)] = f.Values
	}
	return params
}
