package table

import (
	"github.com/fulldump/countrytable/country"
)

const RowsPerPage = 20

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// State is the view state of one table. Operations never modify a State in
// place, they return a new one.
type State struct {
	Full     []country.Country
	Filtered []country.Country

	// Touched is set once a filter or a sort has been applied, from then on
	// Filtered is the active collection even when it is empty. Filtered is
	// nil until then.
	Touched bool

	CurrentPage   int
	SortColumn    country.Column
	SortDirection Direction
}

func NewState(full []country.Country) State {
	return State{
		Full:          full,
		CurrentPage:   1,
		SortDirection: Ascending,
	}
}

func (s State) Active() []country.Country {
	if s.Touched {
		return s.Filtered
	}
	return s.Full
}

type View struct {
	Rows          []country.Country `json:"rows"`
	Total         int               `json:"total"`
	PageCount     int               `json:"page_count"`
	CurrentPage   int               `json:"current_page"`
	Pages         []Indicator       `json:"pages"`
	SortColumn    country.Column    `json:"sort_column"`
	SortDirection Direction         `json:"sort_direction"`
}

func (s State) View() View {
	active := s.Active()
	pageCount := PageCount(len(active))
	return View{
		Rows:          Window(active, s.CurrentPage),
		Total:         len(active),
		PageCount:     pageCount,
		CurrentPage:   s.CurrentPage,
		Pages:         Indicators(pageCount, s.CurrentPage),
		SortColumn:    s.SortColumn,
		SortDirection: s.SortDirection,
	}
}
