package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/statics"
)

// Loader retrieves the whole collection of countries in one go.
type Loader interface {
	Load(ctx context.Context) ([]country.Country, error)
}

type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch '%s': %s", e.Source, e.Err.Error())
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// New picks a loader for source: the bundled asset when empty, HTTP for
// http(s) URLs and a local file otherwise.
func New(source string) Loader {
	if source == "" {
		return &FS{FS: statics.Assets(), Path: statics.CountriesAsset}
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return &HTTP{URL: source, Client: http.DefaultClient}
	}
	return &File{Path: source}
}

type document struct {
	Countries []country.Country `json:"countries"`
}

func decode(r io.Reader) ([]country.Country, error) {
	doc := document{}
	err := json2.UnmarshalDecode(jsontext.NewDecoder(r), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if doc.Countries == nil {
		doc.Countries = []country.Country{}
	}
	return doc.Countries, nil
}

type File struct {
	Path string
}

func (l *File) Load(ctx context.Context) ([]country.Country, error) {

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, &FetchError{Source: l.Path, Err: err}
	}
	defer f.Close()

	countries, err := decode(f)
	if err != nil {
		return nil, &FetchError{Source: l.Path, Err: err}
	}

	return countries, nil
}

type FS struct {
	FS   fs.FS
	Path string
}

func (l *FS) Load(ctx context.Context) ([]country.Country, error) {

	f, err := l.FS.Open(l.Path)
	if err != nil {
		return nil, &FetchError{Source: l.Path, Err: err}
	}
	defer f.Close()

	countries, err := decode(f)
	if err != nil {
		return nil, &FetchError{Source: l.Path, Err: err}
	}

	return countries, nil
}

type HTTP struct {
	URL    string
	Client *http.Client
}

func (l *HTTP) Load(ctx context.Context) ([]country.Country, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, &FetchError{Source: l.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: l.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: l.URL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	countries, err := decode(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: l.URL, Err: err}
	}

	return countries, nil
}

// Func adapts a plain function to Loader.
type Func func(ctx context.Context) ([]country.Country, error)

func (f Func) Load(ctx context.Context) ([]country.Country, error) {
	return f(ctx)
}
