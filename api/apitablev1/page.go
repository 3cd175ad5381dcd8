package apitablev1

import (
	"context"
	"net/http"

	"github.com/fulldump/countrytable/table"
)

type pageRequest struct {
	Page int `json:"page"`
}

func page(ctx context.Context, w http.ResponseWriter, r *http.Request, input *pageRequest) table.View {

	if input == nil {
		input = &pageRequest{Page: 1}
	}

	s := GetServicer(ctx)

	id, view := s.SelectPage(GetSessionID(r), input.Page)
	SetSessionID(w, r, id)

	return view
}
