package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/fulldump/biff"

	"github.com/fulldump/countrytable/country"
)

const document1 = `{
	"countries": [
		{"name": "Chad", "capital": "N'Djamena", "currency": {"name": "Central African CFA franc", "code": "XAF"}, "language": {"name": "French"}},
		{"name": "Benin", "capital": "Porto-Novo", "currency": {"name": "West African CFA franc"}, "language": {"name": "French"}}
	]
}`

var expected1 = []country.Country{
	{
		Name:     "Chad",
		Capital:  "N'Djamena",
		Currency: country.Currency{Name: "Central African CFA franc"},
		Language: country.Language{Name: "French"},
	},
	{
		Name:     "Benin",
		Capital:  "Porto-Novo",
		Currency: country.Currency{Name: "West African CFA franc"},
		Language: country.Language{Name: "French"},
	},
}

func TestFile(t *testing.T) {

	dir := t.TempDir()

	biff.Alternative("Load file", func(a *biff.A) {
		filename := filepath.Join(dir, "countries.json")
		biff.AssertNil(os.WriteFile(filename, []byte(document1), 0666))

		countries, err := New(filename).Load(context.Background())
		biff.AssertNil(err)
		biff.AssertEqual(countries, expected1)
	})

	biff.Alternative("Missing file", func(a *biff.A) {
		_, err := New(filepath.Join(dir, "missing.json")).Load(context.Background())

		fetchErr := &FetchError{}
		biff.AssertTrue(errors.As(err, &fetchErr))
		biff.AssertTrue(errors.Is(err, os.ErrNotExist))
	})

	biff.Alternative("Malformed json", func(a *biff.A) {
		filename := filepath.Join(dir, "broken.json")
		biff.AssertNil(os.WriteFile(filename, []byte(`{"countries": [`), 0666))

		_, err := New(filename).Load(context.Background())
		fetchErr := &FetchError{}
		biff.AssertTrue(errors.As(err, &fetchErr))
		biff.AssertEqual(fetchErr.Source, filename)
	})

	biff.Alternative("Document without countries", func(a *biff.A) {
		filename := filepath.Join(dir, "empty.json")
		biff.AssertNil(os.WriteFile(filename, []byte(`{}`), 0666))

		countries, err := New(filename).Load(context.Background())
		biff.AssertNil(err)
		biff.AssertEqual(countries, []country.Country{})
	})
}

func TestHTTP(t *testing.T) {

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assets/countries.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(document1))
	}))
	defer s.Close()

	biff.Alternative("Load url", func(a *biff.A) {
		l := New(s.URL + "/assets/countries.json")
		_, isHTTP := l.(*HTTP)
		biff.AssertTrue(isHTTP)

		countries, err := l.Load(context.Background())
		biff.AssertNil(err)
		biff.AssertEqual(countries, expected1)
	})

	biff.Alternative("Not found", func(a *biff.A) {
		_, err := New(s.URL + "/missing.json").Load(context.Background())
		fetchErr := &FetchError{}
		biff.AssertTrue(errors.As(err, &fetchErr))
		biff.AssertEqual(fetchErr.Error(), "fetch '"+s.URL+"/missing.json': unexpected status 404 Not Found")
	})

	biff.Alternative("Canceled context", func(a *biff.A) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(s.URL + "/assets/countries.json").Load(ctx)
		biff.AssertTrue(errors.Is(err, context.Canceled))
	})
}

func TestFS(t *testing.T) {

	biff.Alternative("Bundled asset", func(a *biff.A) {
		countries, err := New("").Load(context.Background())
		biff.AssertNil(err)
		biff.AssertTrue(len(countries) > 40)
	})

	biff.Alternative("Map fs", func(a *biff.A) {
		l := &FS{
			FS: fstest.MapFS{
				"data.json": &fstest.MapFile{Data: []byte(document1)},
			},
			Path: "data.json",
		}
		countries, err := l.Load(context.Background())
		biff.AssertNil(err)
		biff.AssertEqual(countries, expected1)
	})
}

func TestFunc(t *testing.T) {

	failure := errors.New("boom")
	l := Func(func(ctx context.Context) ([]country.Country, error) {
		return nil, failure
	})

	_, err := l.Load(context.Background())
	biff.AssertEqual(err, failure)
}
