package apitablev1

import (
	"context"
	"net/http"

	"github.com/fulldump/countrytable/table"
)

func getTable(ctx context.Context, r *http.Request) table.View {

	s := GetServicer(ctx)

	_, view, _ := s.View(GetSessionID(r))

	return view
}
