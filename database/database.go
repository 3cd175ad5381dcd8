package database

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/loader"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusFailed    = "failed"
	StatusClosing   = "closing"
)

type Config struct {
	Loader loader.Loader
	Logger zerolog.Logger
}

// Database keeps the full collection of countries in memory. It is loaded
// once and never modified afterwards.
type Database struct {
	config    *Config
	status    string
	countries []country.Country
	mutex     sync.RWMutex
	loadOnce  sync.Once
	loadErr   error
	ctx       context.Context
	cancel    context.CancelFunc
	exit      chan struct{}
	stopOnce  sync.Once
}

func NewDatabase(config *Config) *Database {
	ctx, cancel := context.WithCancel(context.Background())
	return &Database{
		config:    config,
		status:    StatusOpening,
		countries: []country.Country{},
		ctx:       ctx,
		cancel:    cancel,
		exit:      make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.status
}

// Countries returns the full collection, callers must not modify it.
func (db *Database) Countries() []country.Country {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.countries
}

// Load fetches the collection. Only the first call does the work, the rest
// return its result.
func (db *Database) Load() error {
	db.loadOnce.Do(func() {
		db.loadErr = db.load()
	})
	return db.loadErr
}

func (db *Database) load() error {

	l := db.config.Logger
	l.Info().Msg("Loading countries...")

	t0 := time.Now()
	countries, err := db.config.Loader.Load(db.ctx)
	if err != nil {
		l.Error().Err(err).Msg("Error fetching countries")
		db.mutex.Lock()
		if db.status == StatusOpening {
			db.status = StatusFailed
		}
		db.mutex.Unlock()
		return err
	}

	db.mutex.Lock()
	db.countries = countries
	if db.status == StatusOpening {
		db.status = StatusOperating
	}
	db.mutex.Unlock()

	l.Info().Int("countries", len(countries)).Dur("elapsed", time.Since(t0)).Msg("Countries loaded")

	return nil
}

func (db *Database) Start() error {

	go db.Load()

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	db.stopOnce.Do(func() {
		db.mutex.Lock()
		db.status = StatusClosing
		db.mutex.Unlock()
		db.cancel()
		close(db.exit)
	})

	return nil
}
