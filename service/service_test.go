package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fulldump/biff"

	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/database"
	"github.com/fulldump/countrytable/loader"
	"github.com/fulldump/countrytable/logger"
	"github.com/fulldump/countrytable/table"
)

func newDatabase(countries []country.Country, err error) *database.Database {
	return database.NewDatabase(&database.Config{
		Loader: loader.Func(func(ctx context.Context) ([]country.Country, error) {
			return countries, err
		}),
		Logger: logger.New("error", &bytes.Buffer{}),
	})
}

func generateCountries(n int) []country.Country {
	result := []country.Country{}
	for i := 1; i <= n; i++ {
		result = append(result, country.Country{
			Name:     fmt.Sprintf("Country %02d", i),
			Capital:  fmt.Sprintf("Capital %02d", i),
			Currency: country.Currency{Name: fmt.Sprintf("Currency %02d", n-i)},
			Language: country.Language{Name: "Language"},
		})
	}
	return result
}

func TestService(t *testing.T) {

	biff.Alternative("Operating", func(a *biff.A) {
		db := newDatabase(generateCountries(25), nil)
		biff.AssertNil(db.Load())
		s := NewService(db, time.Hour)

		id, view := s.SelectPage("", 1)
		biff.AssertNotEqual(id, "")
		biff.AssertEqual(view.Total, 25)
		biff.AssertEqual(view.PageCount, 2)
		biff.AssertEqual(s.Sessions(), 1)

		a.Alternative("Views without session store nothing", func(a *biff.A) {
			for i := 0; i < 100; i++ {
				id, view, terms := s.View("")
				biff.AssertEqual(id, "")
				biff.AssertEqual(view.Total, 25)
				biff.AssertEqual(view.CurrentPage, 1)
				biff.AssertEqual(terms, table.Terms{})
			}
			biff.AssertEqual(s.Sessions(), 1)
		})

		a.Alternative("Same session keeps state", func(a *biff.A) {
			id2, view := s.SelectPage(id, 2)
			biff.AssertEqual(id2, id)
			biff.AssertEqual(view.CurrentPage, 2)
			biff.AssertEqual(len(view.Rows), 5)

			id3, view, _ := s.View(id)
			biff.AssertEqual(id3, id)
			biff.AssertEqual(view.CurrentPage, 2)
		})

		a.Alternative("Sessions are independent", func(a *biff.A) {
			s.SelectPage(id, 2)

			other, view := s.SelectPage("", 1)
			biff.AssertNotEqual(other, id)
			biff.AssertEqual(view.CurrentPage, 1)
			biff.AssertEqual(s.Sessions(), 2)
		})

		a.Alternative("Unknown session gets a new one", func(a *biff.A) {
			other, _ := s.SelectPage("forged-id", 1)
			biff.AssertNotEqual(other, "forged-id")
			biff.AssertEqual(s.Sessions(), 2)
		})

		a.Alternative("Search", func(a *biff.A) {
			s.SelectPage(id, 2)
			terms := table.Terms{Country: "country 1"}

			_, view := s.Search(id, terms)
			biff.AssertEqual(view.Total, 10)
			biff.AssertEqual(view.CurrentPage, 1)

			_, view, obtained := s.View(id)
			biff.AssertEqual(obtained, terms)
			biff.AssertEqual(view.Total, 10)

			a.Alternative("Sort descending", func(a *biff.A) {
				s.Sort(id, country.ColumnName)
				_, view := s.Sort(id, country.ColumnName)
				biff.AssertEqual(view.SortDirection, table.Descending)
				biff.AssertEqual(view.Rows[0].Name, "Country 19")
			})
		})

		a.Alternative("Expired sessions are purged", func(a *biff.A) {
			now := time.Now()
			s.now = func() time.Time { return now.Add(2 * time.Hour) }

			other, _, _ := s.View(id)
			biff.AssertEqual(other, "")

			other, _ = s.SelectPage(id, 1)
			biff.AssertNotEqual(other, id)
			biff.AssertEqual(s.Sessions(), 1)
		})
	})

	biff.Alternative("Opening", func(a *biff.A) {
		s := NewService(newDatabase(generateCountries(25), nil), time.Hour)

		id, view, _ := s.View("")
		biff.AssertEqual(id, "")
		biff.AssertEqual(view.Total, 0)
		biff.AssertEqual(len(view.Pages), 0)
		biff.AssertEqual(s.Sessions(), 0)
	})

	biff.Alternative("Failed", func(a *biff.A) {
		db := newDatabase(nil, errors.New("boom"))
		db.Load()
		s := NewService(db, time.Hour)

		_, view := s.Search("", table.Terms{Country: "a"})
		biff.AssertEqual(view.Total, 0)
		biff.AssertEqual(s.Status(), database.StatusFailed)
	})
}
