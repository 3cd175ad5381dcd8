package table

import (
	"github.com/google/btree"

	"github.com/fulldump/countrytable/country"
)

type sortItem struct {
	key      string
	position int
	country  country.Country
}

// Sort orders the active collection by column. Sorting twice in a row by the
// same column flips the direction, any other column starts ascending.
// Unknown columns leave the state untouched.
func Sort(s State, column country.Column) State {

	if !column.Valid() {
		return s
	}

	if s.SortColumn == column {
		if s.SortDirection == Ascending {
			s.SortDirection = Descending
		} else {
			s.SortDirection = Ascending
		}
	} else {
		s.SortDirection = Ascending
	}
	s.SortColumn = column

	s.Filtered = sortRows(s.Active(), column, s.SortDirection)
	s.Touched = true

	return s
}

func sortRows(rows []country.Country, column country.Column, direction Direction) []country.Country {

	descending := direction == Descending

	// position breaks ties, so equal keys keep the order they had before
	index := btree.NewG(32, func(a, b sortItem) bool {
		if a.key != b.key {
			if descending {
				return a.key > b.key
			}
			return a.key < b.key
		}
		return a.position < b.position
	})

	for i, c := range rows {
		index.ReplaceOrInsert(sortItem{
			key:      fold(column.Value(c)),
			position: i,
			country:  c,
		})
	}

	result := make([]country.Country, 0, len(rows))
	index.Ascend(func(item sortItem) bool {
		result = append(result, item.country)
		return true
	})

	return result
}
