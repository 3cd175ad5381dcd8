package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/countrytable/country"
	"github.com/fulldump/countrytable/database"
	"github.com/fulldump/countrytable/table"
)

type session struct {
	state    table.State
	terms    table.Terms
	lastSeen time.Time
}

// Service keeps one table state per visitor session. All transitions happen
// under mutex, so a session sees them one at a time.
type Service struct {
	db       *database.Database
	ttl      time.Duration
	now      func() time.Time
	mutex    sync.Mutex
	sessions map[string]*session
	purgedAt time.Time
}

func NewService(db *database.Database, ttl time.Duration) *Service {
	return &Service{
		db:       db,
		ttl:      ttl,
		now:      time.Now,
		sessions: map[string]*session{},
		purgedAt: time.Now(),
	}
}

func (s *Service) Status() string {
	return s.db.GetStatus()
}

func (s *Service) Countries() []country.Country {
	return s.db.Countries()
}

// View returns the table of session id together with its search terms.
// Unknown sessions see the initial table and nothing is stored for them, so
// the returned id is empty.
func (s *Service) View(id string) (string, table.View, table.Terms) {

	if s.db.GetStatus() != database.StatusOperating {
		return "", table.NewState(nil).View(), table.Terms{}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()

	sess, exist := s.sessions[id]
	if !exist || s.expired(sess, now) {
		return "", table.NewState(s.db.Countries()).View(), table.Terms{}
	}
	sess.lastSeen = now

	return id, sess.state.View(), sess.terms
}

func (s *Service) Search(id string, terms table.Terms) (string, table.View) {
	return s.update(id, func(sess *session) {
		sess.state = table.Filter(sess.state, terms)
		sess.terms = terms
	})
}

func (s *Service) Sort(id string, column country.Column) (string, table.View) {
	return s.update(id, func(sess *session) {
		sess.state = table.Sort(sess.state, column)
	})
}

func (s *Service) SelectPage(id string, page int) (string, table.View) {
	return s.update(id, func(sess *session) {
		sess.state = table.SelectPage(sess.state, page)
	})
}

func (s *Service) Sessions() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.sessions)
}

func (s *Service) update(id string, f func(sess *session)) (string, table.View) {

	if s.db.GetStatus() != database.StatusOperating {
		// nothing to show yet, do not keep sessions over an empty collection
		return id, table.NewState(nil).View()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()

	sess, exist := s.sessions[id]
	if !exist || s.expired(sess, now) {
		delete(s.sessions, id)
		s.purge(now)
		id = uuid.New().String()
		sess = &session{
			state: table.NewState(s.db.Countries()),
		}
		s.sessions[id] = sess
	}

	f(sess)
	sess.lastSeen = now

	return id, sess.state.View()
}

func (s *Service) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}

// purge drops expired sessions, at most once per ttl.
func (s *Service) purge(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.purgedAt) < s.ttl {
		return
	}
	s.purgedAt = now
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
}
