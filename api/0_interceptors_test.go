package api

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"

	"github.com/fulldump/countrytable/logger"
)

func TestRecoverFromPanic(t *testing.T) {

	logs := &bytes.Buffer{}

	b := box.NewBox()
	b.WithInterceptors(
		PrettyErrorInterceptor,
		RecoverFromPanic(logger.New("error", logs)),
	)
	b.Resource("/boom").WithActions(box.Get(func() string {
		panic("boom")
	}))
	b.Resource("/fine").WithActions(box.Get(func() string {
		return "fine"
	}))

	api := apitest.NewWithHandler(b)
	defer api.Destroy()

	biff.Alternative("Panic is answered with 500", func(a *biff.A) {
		resp := api.Request("GET", "/boom").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
		biff.AssertEqualJson(resp.BodyJson(), map[string]interface{}{
			"error": map[string]interface{}{
				"message":     "panic: boom",
				"description": "Unexpected error",
			},
		})
		biff.AssertTrue(strings.Contains(logs.String(), "Recovered from panic"))

		a.Alternative("Server keeps serving", func(a *biff.A) {
			resp := api.Request("GET", "/fine").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJson(), "fine")
		})
	})
}

func TestAccessLog(t *testing.T) {

	logs := &bytes.Buffer{}

	b := box.NewBox()
	b.WithInterceptors(AccessLog(logger.New("info", logs)))
	b.Resource("/hello").WithActions(box.Get(func() string {
		return "hello"
	}))

	api := apitest.NewWithHandler(b)
	defer api.Destroy()

	api.Request("GET", "/hello").WithHeader("X-Forwarded-For", "10.0.0.1, 10.0.0.2").Do()

	line := logs.String()
	biff.AssertTrue(strings.Contains(line, "ACCESS"))
	biff.AssertTrue(strings.Contains(line, "remote=10.0.0.1"))
	biff.AssertTrue(strings.Contains(line, "url=/hello"))
}
