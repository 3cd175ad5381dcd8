package apitablev1

import (
	"context"

	"github.com/fulldump/countrytable/country"
)

func listCountries(ctx context.Context) []country.Country {
	return GetServicer(ctx).Countries()
}
