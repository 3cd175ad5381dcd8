package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/database"
	"github.com/fulldump/countrytable/service"
)

var (
	ErrOpening    = fmt.Errorf("temporary %w: opening", service.ErrUnavailable)
	ErrClosing    = fmt.Errorf("temporary %w: closing", service.ErrUnavailable)
	ErrLoadFailed = fmt.Errorf("%w: load failed", service.ErrUnavailable)
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func InterceptorUnavailable(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			switch s.Status() {
			case database.StatusOpening:
				box.SetError(ctx, ErrOpening)
				return
			case database.StatusClosing:
				box.SetError(ctx, ErrClosing)
				return
			case database.StatusFailed:
				box.SetError(ctx, ErrLoadFailed)
				return
			}
			next(ctx)
		}
	}
}

func writePrettyError(w http.ResponseWriter, status int, message, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(PrettyError{
		Message:     message,
		Description: description,
	})
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		if err == box.ErrResourceNotFound {
			writePrettyError(w, http.StatusNotFound, err.Error(),
				fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			writePrettyError(w, http.StatusMethodNotAllowed, err.Error(),
				fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if errors.Is(err, service.ErrUnavailable) {
			writePrettyError(w, http.StatusServiceUnavailable, err.Error(), "countries are not available")
			return
		}

		if errors.Is(err, country.ErrUnknownColumn) {
			writePrettyError(w, http.StatusBadRequest, err.Error(), "Bad column")
			return
		}

		var syntacticError *jsontext.SyntacticError
		var semanticError *json2.SemanticError
		if errors.As(err, &syntacticError) || errors.As(err, &semanticError) || errors.Is(err, io.ErrUnexpectedEOF) {
			writePrettyError(w, http.StatusBadRequest, err.Error(), "Malformed JSON")
			return
		}

		writePrettyError(w, http.StatusInternalServerError, err.Error(), "Unexpected error")
	}
}
