package statics

import (
	"embed"
	"io/fs"
	"net/http"
)

const CountriesAsset = "assets/countries.json"

//go:embed www/*
var www embed.FS

// Assets returns the bundled files rooted at www.
func Assets() fs.FS {
	sub, err := fs.Sub(www, "www")
	if err != nil {
		panic(err) // www is embedded, it always exists
	}
	return sub
}

// Serve static files, from staticsDir if present or the bundled ones otherwise
func ServeStatics(staticsDir string) http.HandlerFunc {
	if staticsDir == "" {
		return http.FileServer(http.FS(Assets())).ServeHTTP
	}
	return http.FileServer(http.Dir(staticsDir)).ServeHTTP
}
