package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams_Defaults(t *testing.T) {
	f := ParseParams(url.Values{})

	assert.Equal(t, DefaultFilter(), f)
	assert.Equal(t, SortPublishedAt, f.SortColumn)
	assert.True(t, f.SortDesc)
	assert.Equal(t, 0, f.Page)
	assert.Nil(t, f.MinExperience)
}

func TestParseParams_AllKeys(t *testing.T) {
	values := url.Values{}
	values.Set(ParamSearch, "backend")
	values.Set(ParamLocation, "Abidjan")
	values.Set(ParamLevel, "Senior")
	values.Set(ParamMinExperience, "3")
	values.Set(ParamSortColumn, SortCompensation)
	values.Set(ParamSortDirection, "desc")
	values.Set(ParamPage, "2")

	f := ParseParams(values)
	assert.Equal(t, "backend", f.Search)
	assert.Equal(t, "Abidjan", f.Location)
	assert.Equal(t, "Senior", f.Level)
	if assert.NotNil(t, f.MinExperience) {
		assert.Equal(t, 3, *f.MinExperience)
	}
	assert.Equal(t, SortCompensation, f.SortColumn)
	assert.True(t, f.SortDesc)
	assert.Equal(t, 2, f.Page)
}

func TestParseParams_DegradesGarbage(t *testing.T) {
	values := url.Values{}
	values.Set(ParamSortColumn, "; DROP TABLE salaires")
	values.Set(ParamMinExperience, "lots")
	values.Set(ParamPage, "-3")

	f := ParseParams(values)
	assert.Equal(t, SortPublishedAt, f.SortColumn, "unknown sort column reverts to default")
	assert.True(t, f.SortDesc)
	assert.Nil(t, f.MinExperience)
	assert.Equal(t, 0, f.Page)
}

func TestParams_OmitsDefaults(t *testing.T) {
	values := DefaultFilter().Params()
	assert.Empty(t, values, "the canonical empty state contributes zero keys")
}

func TestParams_RoundTrip(t *testing.T) {
	min := 5
	f := Filter{
		Search:        "wave",
		Location:      "Abidjan",
		Level:         "Senior",
		MinExperience: &min,
		SortColumn:    SortCompany,
		SortDesc:      false,
		Page:          3,
	}

	got := ParseParams(f.Params())
	assert.Equal(t, f, got)
}

func TestParams_PageZeroOmitted(t *testing.T) {
	f := DefaultFilter()
	f.Search = "wave"
	f.Page = 0

	values := f.Params()
	assert.Equal(t, "wave", values.Get(ParamSearch))
	assert.False(t, values.Has(ParamPage), "default page contributes no key")
}

func TestWithPage_KeepsOtherFilters(t *testing.T) {
	f := DefaultFilter()
	f.Search = "wave"
	f.Location = "Abidjan"

	paged := f.WithPage(4)
	assert.Equal(t, 4, paged.Page)
	assert.Equal(t, "wave", paged.Search)
	assert.Equal(t, "Abidjan", paged.Location)
	assert.Equal(t, f.SortColumn, paged.SortColumn, "page change leaves the sort alone")
}

func TestReset_ReturnsCanonicalEmptyState(t *testing.T) {
	assert.Equal(t, DefaultFilter(), Reset())
	assert.Empty(t, Reset().Params())
}

func TestValidSortColumn(t *testing.T) {
	for _, col := range []string{SortCompany, SortTitle, SortLocation, SortCompensation, SortYearsAtCompany, SortYearsTotal, SortLevel, SortPublishedAt} {
		assert.True(t, ValidSortColumn(col), col)
	}
	assert.False(t, ValidSortColumn("email"))
	assert.False(t, ValidSortColumn(""))
}
