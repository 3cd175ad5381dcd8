package apitablev1

import (
	"context"
	"net/http"

	"github.com/fulldump/countrytable/table"
)

func search(ctx context.Context, w http.ResponseWriter, r *http.Request, input *table.Terms) table.View {

	s := GetServicer(ctx)

	terms := table.Terms{}
	if input != nil {
		terms = *input
	}

	id, view := s.Search(GetSessionID(r), terms)
	SetSessionID(w, r, id)

	return view
}
