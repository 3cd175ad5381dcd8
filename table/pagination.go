package table

import (
	"github.com/fulldump/countrytable/country"
)

type Indicator struct {
	Page   int  `json:"page"`
	Active bool `json:"active"`
}

func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + RowsPerPage - 1) / RowsPerPage
}

// Window returns the rows shown on page. The last page may be shorter and
// pages past the end are empty.
func Window(rows []country.Country, page int) []country.Country {

	if page < 1 {
		page = 1
	}

	start := (page - 1) * RowsPerPage
	if start >= len(rows) {
		return []country.Country{}
	}

	end := start + RowsPerPage
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end]
}

func Indicators(pageCount, current int) []Indicator {
	result := make([]Indicator, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		result = append(result, Indicator{
			Page:   i,
			Active: i == current,
		})
	}
	return result
}

// SelectPage moves to page, clamped to the pages of the active collection.
func SelectPage(s State, page int) State {

	pageCount := PageCount(len(s.Active()))
	if page > pageCount {
		page = pageCount
	}
	if page < 1 {
		page = 1
	}

	s.CurrentPage = page

	return s
}
