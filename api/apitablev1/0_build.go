package apitablev1

import (
	"github.com/fulldump/box"
)

func BuildV1Table(v1 *box.R) *box.R {

	v1.Resource("/countries").
		WithActions(
			box.Get(listCountries).WithName("listCountries"),
		)

	t := v1.Resource("/table").
		WithActions(
			box.Get(getTable).WithName("getTable"),
			box.ActionPost(search).WithName("search"),
			box.ActionPost(sort).WithName("sort"),
			box.ActionPost(page).WithName("page"),
		)

	return t
}
