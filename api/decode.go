package api

import (
	"bytes"
	"context"
	"io"

	json2 "github.com/go-json-experiment/json"
)

// DecodeBody reads action inputs. An empty body leaves v untouched so
// handlers with pointer inputs receive nil.
func DecodeBody(ctx context.Context, r io.Reader, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json2.Unmarshal(data, v)
}
