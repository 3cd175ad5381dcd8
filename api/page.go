package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fulldump/countrytable/api/apitablev1"
	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/render"
	"github.com/fulldump/countrytable/table"
)

// servePage renders the table on "/" and delegates anything else to
// statics.
func servePage(renderer *render.Renderer, statics http.HandlerFunc) interface{} {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			statics(w, r)
			return nil
		}

		s := apitablev1.GetServicer(ctx)

		_, view, terms := s.View(apitablev1.GetSessionID(r))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		return renderer.Page(w, render.PageData{
			Terms: terms,
			View:  view,
		})
	}
}

func backToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Missing form fields are empty terms.
func searchForm(ctx context.Context, w http.ResponseWriter, r *http.Request) {

	s := apitablev1.GetServicer(ctx)

	id, _ := s.Search(apitablev1.GetSessionID(r), table.Terms{
		Country:  r.FormValue("search-country"),
		Capital:  r.FormValue("search-capital"),
		Currency: r.FormValue("search-currency"),
		Language: r.FormValue("search-language"),
	})
	apitablev1.SetSessionID(w, r, id)

	backToPage(w, r)
}

func sortForm(ctx context.Context, w http.ResponseWriter, r *http.Request) {

	column, err := country.ParseColumn(r.FormValue("column"))
	if err == nil {
		s := apitablev1.GetServicer(ctx)
		id, _ := s.Sort(apitablev1.GetSessionID(r), column)
		apitablev1.SetSessionID(w, r, id)
	}

	backToPage(w, r)
}

func pageForm(ctx context.Context, w http.ResponseWriter, r *http.Request) {

	page, err := strconv.Atoi(r.FormValue("page"))
	if err == nil {
		s := apitablev1.GetServicer(ctx)
		id, _ := s.SelectPage(apitablev1.GetSessionID(r), page)
		apitablev1.SetSessionID(w, r, id)
	}

	backToPage(w, r)
}
