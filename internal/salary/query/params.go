package query

import (
	"net/url"
	"strconv"
)

// Shareable-link parameter keys. These are the public contract for
// bookmarkable table state; absence of a key implies its documented default.
const (
	ParamSearch        = "recherche"
	ParamLocation      = "localisation"
	ParamLevel         = "niveau"
	ParamMinExperience = "exp"
	ParamSortColumn    = "tri"
	ParamSortDirection = "sens"
	ParamPage          = "page"
)

const (
	directionAsc  = "asc"
	directionDesc = "desc"
)

// ParseParams derives a Filter from a shareable parameter map. Unknown sort
// columns and malformed numbers degrade to their defaults; shared links are
// hand-editable and should never hard-fail.
func ParseParams(values url.Values) Filter {
	f := DefaultFilter()
	f.Search = values.Get(ParamSearch)
	f.Location = values.Get(ParamLocation)
	f.Level = values.Get(ParamLevel)

	if raw := values.Get(ParamMinExperience); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			f.MinExperience = &n
		}
	}

	if col := values.Get(ParamSortColumn); ValidSortColumn(col) {
		f.SortColumn = col
		// An explicit sort column defaults to ascending unless sens says
		// otherwise; the default date sort stays descending.
		f.SortDesc = false
	}
	switch values.Get(ParamSortDirection) {
	case directionAsc:
		f.SortDesc = false
	case directionDesc:
		f.SortDesc = true
	}

	if raw := values.Get(ParamPage); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			f.Page = n
		}
	}
	return f
}

// Params maps the filter back to its canonical shareable representation.
// Fields at their empty or default value contribute no key, keeping links
// short and canonical.
func (f Filter) Params() url.Values {
	f = f.Normalize()
	values := url.Values{}

	setNonEmpty(values, ParamSearch, f.Search)
	setNonEmpty(values, ParamLocation, f.Location)
	setNonEmpty(values, ParamLevel, f.Level)
	if f.MinExperience != nil {
		values.Set(ParamMinExperience, strconv.Itoa(*f.MinExperience))
	}

	def := DefaultFilter()
	if f.SortColumn != def.SortColumn || f.SortDesc != def.SortDesc {
		values.Set(ParamSortColumn, f.SortColumn)
		if f.SortDesc {
			values.Set(ParamSortDirection, directionDesc)
		} else {
			values.Set(ParamSortDirection, directionAsc)
		}
	}

	if f.Page > 0 {
		values.Set(ParamPage, strconv.Itoa(f.Page))
	}
	return values
}

// WithPage moves to another page, keeping the sort and every other filter
// untouched.
func (f Filter) WithPage(page int) Filter {
	f.Page = page
	return f.Normalize()
}

// Reset returns the canonical empty state: page 0, default sort, no filters.
func Reset() Filter {
	return DefaultFilter()
}

func setNonEmpty(values url.Values, key, v string) {
	if v != "" {
		values.Set(key, v)
	}
}
