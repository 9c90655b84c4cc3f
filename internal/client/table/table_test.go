package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id   int
	name string
	city string
}

func columns() []Column[row] {
	return []Column[row]{
		{Name: "id", Value: func(r row) string { return strconv.Itoa(r.id) }},
		{Name: "name", Value: func(r row) string { return r.name }},
		{Name: "city", Value: func(r row) string { return r.city }},
	}
}

func sample() []row {
	return []row{
		{id: 10, name: "Sara", city: "Kuwait"},
		{id: 2, name: "ali", city: "Riyadh"},
		{id: 33, name: "Omar", city: "Doha"},
		{id: 4, name: "Huda", city: "Kuwait"},
	}
}

func ids(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}
	return out
}

func TestDataSource_Filter(t *testing.T) {
	d := New(columns(), 0)
	d.SetData(sample())

	d.SetFilter("  KUWAIT ")
	assert.Equal(t, "kuwait", d.Filter())
	assert.Equal(t, []int{10, 4}, ids(d.Rows()))

	d.SetFilter("3")
	assert.Equal(t, []int{33}, ids(d.Rows()))

	d.SetFilter("")
	assert.Len(t, d.Rows(), 4)
}

func TestDataSource_FilterDoesNotSpanColumns(t *testing.T) {
	d := New(columns(), 0)
	d.SetData([]row{{id: 1, name: "ab", city: "cd"}})

	d.SetFilter("bc")
	assert.Empty(t, d.Rows())
}

func TestDataSource_NoMatchResetsPage(t *testing.T) {
	d := New(columns(), 2)
	d.SetData(sample())
	d.SetPage(1)
	require.Equal(t, 1, d.Paginator.PageIndex)

	d.SetFilter("zzz")
	assert.Equal(t, 0, d.Paginator.PageIndex)
	assert.Equal(t, 0, d.FilteredLen())
	assert.Empty(t, d.Rows())
	assert.Equal(t, 1, d.PageCount())
}

func TestDataSource_Sort(t *testing.T) {
	d := New(columns(), 0)
	d.SetData(sample())

	require.True(t, d.SortBy("id", Asc))
	assert.Equal(t, []int{2, 4, 10, 33}, ids(d.Rows()), "numeric, not lexical")

	require.True(t, d.SortBy("id", Desc))
	assert.Equal(t, []int{33, 10, 4, 2}, ids(d.Rows()))

	require.True(t, d.SortBy("name", Asc))
	assert.Equal(t, []int{2, 4, 33, 10}, ids(d.Rows()), "case-insensitive")

	col, dir := d.Sort()
	assert.Equal(t, "name", col)
	assert.Equal(t, Asc, dir)

	require.True(t, d.SortBy("name", None))
	assert.Equal(t, []int{10, 2, 33, 4}, ids(d.Rows()))

	assert.False(t, d.SortBy("missing", Asc))
}

func TestDataSource_SortAndFilterCombine(t *testing.T) {
	d := New(columns(), 0)
	d.SetData(sample())
	d.SortBy("id", Desc)
	d.SetFilter("kuwait")

	assert.Equal(t, []int{10, 4}, ids(d.Rows()))
}

func TestDataSource_Paging(t *testing.T) {
	d := New(columns(), 3)
	d.SetData(sample())

	assert.Equal(t, 2, d.PageCount())
	assert.Len(t, d.Rows(), 3)

	d.SetPage(1)
	assert.Equal(t, []int{4}, ids(d.Rows()))

	d.SetPage(9)
	assert.Equal(t, 1, d.Paginator.PageIndex)

	d.SetPage(-1)
	assert.Equal(t, 0, d.Paginator.PageIndex)
}

func TestDataSource_SetDataClampsPage(t *testing.T) {
	d := New(columns(), 2)
	d.SetData(sample())
	d.SetPage(1)

	d.SetData(sample()[:1])
	assert.Equal(t, 0, d.Paginator.PageIndex)
	assert.Len(t, d.Rows(), 1)
}

func TestParseDirection(t *testing.T) {
	dir, ok := ParseDirection("DESC")
	assert.True(t, ok)
	assert.Equal(t, Desc, dir)

	dir, ok = ParseDirection("")
	assert.True(t, ok)
	assert.Equal(t, Asc, dir)

	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, compare("2", "10"))
	assert.Equal(t, 1, compare("b", "A"))
	assert.Equal(t, 0, compare("1.0", "1"))
	assert.Equal(t, -1, compare("10", "9a"))
}
