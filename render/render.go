package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/table"
)

//go:embed templates/*.html
var templates embed.FS

type Header struct {
	ID        string
	Column    country.Column
	Label     string
	Direction table.Direction // empty unless the table is sorted by Column
}

type PageData struct {
	Title string
	Terms table.Terms
	View  table.View
}

// Headers lists the sortable column headers in display order.
func (p PageData) Headers() []Header {
	headers := []Header{
		{ID: "sort-country", Column: country.ColumnName, Label: "Country"},
		{ID: "sort-capital", Column: country.ColumnCapital, Label: "Capital"},
		{ID: "sort-currency", Column: country.ColumnCurrency, Label: "Currency"},
		{ID: "sort-language", Column: country.ColumnLanguage, Label: "Language"},
	}
	for i, h := range headers {
		if h.Column == p.View.SortColumn {
			headers[i].Direction = p.View.SortDirection
		}
	}
	return headers
}

type Renderer struct {
	t *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

// Rows writes one table row per country, in order.
func (r *Renderer) Rows(w io.Writer, rows []country.Country) error {
	return r.t.ExecuteTemplate(w, "rows", rows)
}

// PageControls writes one indicator per page, marking currentPage as active.
func (r *Renderer) PageControls(w io.Writer, pageCount, currentPage int) error {
	return r.t.ExecuteTemplate(w, "pagination", table.Indicators(pageCount, currentPage))
}

func (r *Renderer) Page(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "Countries"
	}
	return r.t.ExecuteTemplate(w, "page", data)
}
