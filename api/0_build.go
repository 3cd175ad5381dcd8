package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/countrytable/api/apitablev1"
	"github.com/fulldump/countrytable/render"
	"github.com/fulldump/countrytable/service"
	"github.com/fulldump/countrytable/statics"
)

func Build(s service.Servicer, renderer *render.Renderer, staticsDir, version string) *box.B {

	b := box.NewBox()
	b.Deserializer = DecodeBody

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		InterceptorUnavailable(s),
		injectServicer(s),
	)
	apitablev1.BuildV1Table(v1)

	b.Resource("/v1/*").
		WithActions(box.AnyMethod(func(w http.ResponseWriter) interface{} {
			w.WriteHeader(http.StatusNotImplemented)
			return PrettyError{
				Message:     "not implemented",
				Description: "this endpoint does not exist, please check the documentation",
			}
		}))

	// HTML surface
	b.Resource("/table").
		WithInterceptors(injectServicer(s)).
		WithActions(
			box.ActionPost(searchForm).WithName("search"),
			box.ActionPost(sortForm).WithName("sort"),
			box.ActionPost(pageForm).WithName("page"),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "countrytable"
	spec.Info.Description = "Searchable, sortable and paginated table of countries."
	b.Handle("GET", "/openapi.json", func(r *http.Request) any {

		spec.Servers = []boxopenapi.Server{
			{
				Url: "https://" + r.Host,
			},
			{
				Url: "http://" + r.Host,
			},
		}

		return spec
	})

	// Mount page and statics
	b.Resource("/*").
		WithInterceptors(injectServicer(s)).
		WithActions(
			box.Get(servePage(renderer, statics.ServeStatics(staticsDir))).WithName("serveStatics"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apitablev1.SetServicer(ctx, s))
		}
	}
}
