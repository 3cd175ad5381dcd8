package table

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/fulldump/countrytable/country"
)

// Terms are the four search fragments, an empty fragment matches everything.
type Terms struct {
	Country  string `json:"country"`
	Capital  string `json:"capital"`
	Currency string `json:"currency"`
	Language string `json:"language"`
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func contains(text, fragment string) bool {
	if fragment == "" {
		return true
	}
	return strings.Contains(fold(text), fold(fragment))
}

func Match(c country.Country, terms Terms) bool {
	return contains(c.Name, terms.Country) &&
		contains(c.Capital, terms.Capital) &&
		contains(c.Currency.Name, terms.Currency) &&
		contains(c.Language.Name, terms.Language)
}

// Filter recomputes the filtered collection from the full one and goes back
// to the first page.
func Filter(s State, terms Terms) State {

	filtered := []country.Country{}
	for _, c := range s.Full {
		if Match(c, terms) {
			filtered = append(filtered, c)
		}
	}

	s.Filtered = filtered
	s.Touched = true
	s.CurrentPage = 1

	return s
}
