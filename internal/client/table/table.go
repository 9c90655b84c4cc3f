// Package table is an in-memory data source for one page of records: it
// filters, sorts and paginates locally, the way a UI table widget would.
package table

import (
	"sort"
	"strconv"
	"strings"
)

// Direction of a sort.
type Direction int

const (
	None Direction = iota
	Asc
	Desc
)

// ParseDirection accepts "asc", "desc" and "" (ascending).
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, true
	case "desc":
		return Desc, true
	case "none":
		return None, true
	}
	return None, false
}

// Column extracts the display text of one column from a record.
type Column[T any] struct {
	Name  string
	Value func(T) string
}

// Paginator is the local pager. PageIndex is 0-based.
type Paginator struct {
	PageIndex int
	PageSize  int
}

// DataSource holds records and the current filter, sort and page. It is
// not safe for concurrent use.
type DataSource[T any] struct {
	columns []Column[T]
	data    []T

	filter  string
	sortCol int
	sortDir Direction

	Paginator Paginator
}

// New builds a data source with the given columns and local page size. A
// non-positive page size disables local paging.
func New[T any](columns []Column[T], pageSize int) *DataSource[T] {
	return &DataSource[T]{columns: columns, sortCol: -1, Paginator: Paginator{PageSize: pageSize}}
}

// Columns returns the column names in order.
func (d *DataSource[T]) Columns() []string {
	out := make([]string, len(d.columns))
	for i, c := range d.columns {
		out[i] = c.Name
	}
	return out
}

// SetData replaces the records. Filter and sort stay in effect.
func (d *DataSource[T]) SetData(data []T) {
	d.data = append([]T(nil), data...)
	d.clampPage()
}

// Data returns the unfiltered records.
func (d *DataSource[T]) Data() []T {
	return d.data
}

// SetFilter sets the filter text: trimmed and lower-cased, then matched as
// a substring against every column of a row. Changing it resets the local
// paginator to the first page.
func (d *DataSource[T]) SetFilter(text string) {
	d.filter = strings.ToLower(strings.TrimSpace(text))
	d.FirstPage()
}

// Filter returns the normalized filter text.
func (d *DataSource[T]) Filter() string {
	return d.filter
}

// SortBy orders rows by the named column. It reports false for an unknown
// column. Direction None restores the original order.
func (d *DataSource[T]) SortBy(column string, dir Direction) bool {
	for i, c := range d.columns {
		if c.Name == column {
			d.sortCol, d.sortDir = i, dir
			return true
		}
	}
	return false
}

// Sort returns the current sort column and direction.
func (d *DataSource[T]) Sort() (string, Direction) {
	if d.sortCol < 0 || d.sortDir == None {
		return "", None
	}
	return d.columns[d.sortCol].Name, d.sortDir
}

// FirstPage moves the local paginator to its first page.
func (d *DataSource[T]) FirstPage() {
	d.Paginator.PageIndex = 0
}

// filtered returns the rows passing the filter, sorted.
func (d *DataSource[T]) filtered() []T {
	out := make([]T, 0, len(d.data))
	for _, row := range d.data {
		if d.matches(row) {
			out = append(out, row)
		}
	}

	if d.sortCol >= 0 && d.sortDir != None {
		col := d.columns[d.sortCol]
		sort.SliceStable(out, func(i, j int) bool {
			c := compare(col.Value(out[i]), col.Value(out[j]))
			if d.sortDir == Desc {
				return c > 0
			}
			return c < 0
		})
	}
	return out
}

func (d *DataSource[T]) matches(row T) bool {
	if d.filter == "" {
		return true
	}
	var b strings.Builder
	for _, c := range d.columns {
		b.WriteString(strings.ToLower(c.Value(row)))
		b.WriteRune('◬') // keeps matches from spanning columns
	}
	return strings.Contains(b.String(), d.filter)
}

// FilteredLen is the number of rows passing the filter.
func (d *DataSource[T]) FilteredLen() int {
	return len(d.filtered())
}

// PageCount is the number of local pages, at least 1.
func (d *DataSource[T]) PageCount() int {
	n := d.FilteredLen()
	if d.Paginator.PageSize <= 0 || n == 0 {
		return 1
	}
	return (n + d.Paginator.PageSize - 1) / d.Paginator.PageSize
}

// Rows returns the rows displayed on the current local page.
func (d *DataSource[T]) Rows() []T {
	rows := d.filtered()
	size := d.Paginator.PageSize
	if size <= 0 {
		return rows
	}

	start := d.Paginator.PageIndex * size
	if start >= len(rows) {
		return []T{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// SetPage moves the local paginator, clamped to the available pages.
func (d *DataSource[T]) SetPage(index int) {
	d.Paginator.PageIndex = index
	d.clampPage()
}

func (d *DataSource[T]) clampPage() {
	if d.Paginator.PageIndex < 0 {
		d.Paginator.PageIndex = 0
	}
	if last := d.PageCount() - 1; d.Paginator.PageIndex > last {
		d.Paginator.PageIndex = last
	}
}

// compare orders two cell values numerically when both parse as numbers,
// otherwise case-insensitively as text.
func compare(a, b string) int {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
