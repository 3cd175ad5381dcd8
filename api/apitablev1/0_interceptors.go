package apitablev1

import (
	"context"

	"github.com/fulldump/countrytable/service"
)

const ContextServicerKey = "5f4d8a1e-3b1c-11f0-9a0e-6b2f0c1d7e42"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}
