package service

import (
	"errors"

	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/table"
)

var ErrUnavailable = errors.New("unavailable")

type Servicer interface {
	Status() string
	Countries() []country.Country
	View(id string) (string, table.View, table.Terms)
	Search(id string, terms table.Terms) (string, table.View)
	Sort(id string, column country.Column) (string, table.View)
	SelectPage(id string, page int) (string, table.View)
}
