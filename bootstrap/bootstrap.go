package bootstrap

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fulldump/box"

	"github.com/fulldump/countrytable/api"
	"github.com/fulldump/countrytable/configuration"
	"github.com/fulldump/countrytable/database"
	"github.com/fulldump/countrytable/loader"
	"github.com/fulldump/countrytable/logger"
	"github.com/fulldump/countrytable/render"
	"github.com/fulldump/countrytable/service"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	l := logger.New(c.LogLevel, nil)

	db := database.NewDatabase(&database.Config{
		Loader: loader.New(c.Source),
		Logger: l,
	})

	renderer, err := render.NewRenderer()
	if err != nil {
		l.Fatal().Err(err).Msg("Parse templates")
	}

	b := api.Build(service.NewService(db, c.SessionTTL), renderer, c.Statics, VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(l),
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic(l),
	)

	s := &http.Server{
		Addr:              c.HttpAddr,
		Handler:           box.Box2Http(b),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		l.Error().Err(err).Msg("Listen")
		os.Exit(-1)
	}
	l.Info().Str("addr", c.HttpAddr).Msg("Listening")

	stop = func() {
		db.Stop()
		s.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			l.Info().Str("signal", sig.String()).Msg("Signal received")
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				l.Error().Err(err).Msg("Database")
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Serve(ln)
			if err != nil && err != http.ErrServerClosed {
				l.Error().Err(err).Msg("Serve")
			}
		}()

		wg.Wait()
	}

	return
}
