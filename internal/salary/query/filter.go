// Package query implements the filtered page/count engine for the public
// salary table and the mapping between filter state and shareable links.
package query

// PageSize is the fixed number of rows per page of the public table.
const PageSize = 30

// Sort columns the backend will accept. Anything else falls back to the
// default so a crafted link cannot inject arbitrary order-by expressions.
const (
	SortCompany        = "entreprise"
	SortTitle          = "poste"
	SortLocation       = "localisation"
	SortCompensation   = "remuneration"
	SortYearsAtCompany = "exp_entreprise"
	SortYearsTotal     = "exp_totale"
	SortLevel          = "niveau"
	SortPublishedAt    = "date_ajout"
)

var sortColumns = map[string]struct{}{
	SortCompany:        {},
	SortTitle:          {},
	SortLocation:       {},
	SortCompensation:   {},
	SortYearsAtCompany: {},
	SortYearsTotal:     {},
	SortLevel:          {},
	SortPublishedAt:    {},
}

// ValidSortColumn reports whether col is on the allow-list.
func ValidSortColumn(col string) bool {
	_, ok := sortColumns[col]
	return ok
}

// Filter is the server-evaluated search/filter/sort/page specification.
// Zero values impose no predicate; Page is always meaningful (zero-based).
type Filter struct {
	// Search matches company-or-title, contains, case-insensitive.
	Search string
	// Location and Level are exact-match.
	Location string
	Level    string
	// MinExperience is a lower bound on total experience; nil means no bound.
	MinExperience *int
	// SortColumn must pass ValidSortColumn; SortDesc flips the direction.
	SortColumn string
	SortDesc   bool
	// Page is the zero-based page index.
	Page int
}

// DefaultFilter is the canonical empty state: newest entries first, page 0.
func DefaultFilter() Filter {
	return Filter{SortColumn: SortPublishedAt, SortDesc: true}
}

// Normalize clamps out-of-range values instead of erroring: an invalid sort
// column reverts to the default and a negative page becomes 0. Shared links
// are user-editable input and should degrade, not 400.
func (f Filter) Normalize() Filter {
	if !ValidSortColumn(f.SortColumn) {
		f.SortColumn = SortPublishedAt
		f.SortDesc = true
	}
	if f.Page < 0 {
		f.Page = 0
	}
	if f.MinExperience != nil && *f.MinExperience < 0 {
		f.MinExperience = nil
	}
	return f
}
