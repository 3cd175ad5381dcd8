package country

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fulldump/countrytable/utils"
)

var ErrUnknownColumn = errors.New("unknown column")

// Column identifies one of the sortable fields of a Country.
type Column string

const (
	ColumnName     Column = "name"
	ColumnCapital  Column = "capital"
	ColumnCurrency Column = "currency"
	ColumnLanguage Column = "language"
)

var accessors = map[Column]func(c Country) string{
	ColumnName:     func(c Country) string { return c.Name },
	ColumnCapital:  func(c Country) string { return c.Capital },
	ColumnCurrency: func(c Country) string { return c.Currency.Name },
	ColumnLanguage: func(c Country) string { return c.Language.Name },
}

// Columns returns the closed set of columns sorted by identifier.
func Columns() []Column {
	return utils.GetKeys(accessors)
}

// ParseColumn returns the column named s or an ErrUnknownColumn error.
func ParseColumn(s string) (Column, error) {
	column := Column(s)
	if _, exist := accessors[column]; !exist {
		names := []string{}
		for _, c := range Columns() {
			names = append(names, string(c))
		}
		return "", fmt.Errorf("%w '%s', must be [%s]", ErrUnknownColumn, s, strings.Join(names, "|"))
	}
	return column, nil
}

// Value returns the text the column reads from c. Unknown columns read an
// empty string.
func (column Column) Value(c Country) string {
	f, exist := accessors[column]
	if !exist {
		return ""
	}
	return f(c)
}

// Valid reports whether column belongs to the closed set.
func (column Column) Valid() bool {
	_, exist := accessors[column]
	return exist
}
