package apitablev1

import (
	"context"
	"net/http"

	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/table"
)

type sortRequest struct {
	Column string `json:"column"`
}

func sort(ctx context.Context, w http.ResponseWriter, r *http.Request, input *sortRequest) (*table.View, error) {

	if input == nil {
		input = &sortRequest{}
	}

	column, err := country.ParseColumn(input.Column)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)

	id, view := s.Sort(GetSessionID(r), column)
	SetSessionID(w, r, id)

	return &view, nil
}
