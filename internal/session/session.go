// Package session keeps the per-visitor UI state: the project detail modal
// and the résumé viewer.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/snackashi/portfolio/internal/portfolio"
	"github.com/snackashi/portfolio/internal/resume"
)

// ErrNotFound is returned for an unknown or expired session id.
var ErrNotFound = errors.New("session not found")

// Session is one visitor's UI state.
type Session struct {
	ID     string
	Detail *portfolio.Detail
	Resume *resume.Viewer

	lastSeen time.Time
}

// teardown closes the modal so scrolling is never left locked and drops
// any résumé load still in flight.
func (s *Session) teardown() {
	s.Detail.Close()
	s.Resume.Close()
}

// Manager owns all live sessions.
type Manager struct {
	loader resume.Loader
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a manager whose sessions load the résumé with loader
// and expire after ttl without activity.
func NewManager(loader resume.Loader, ttl time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		loader:   loader,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session and kicks off its résumé load.
func (m *Manager) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Detail:   &portfolio.Detail{},
		Resume:   resume.NewViewer(m.logger),
		lastSeen: m.now(),
	}
	s.Resume.Start(context.Background(), m.loader)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Debug("session created", "session", s.ID)
	return s
}

// Get returns the session for id and marks it active.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.lastSeen = m.now()
	return s, nil
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Reap tears down sessions idle for longer than the ttl and returns how
// many were removed.
func (m *Manager) Reap() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.teardown()
	}
	if len(expired) > 0 {
		m.logger.Info("reaped idle sessions", "count", len(expired))
	}
	return len(expired)
}

// Run reaps idle sessions every interval until ctx is done, then tears
// every remaining session down.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Close()
			return
		case <-ticker.C:
			m.Reap()
		}
	}
}

// Close tears down every session.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.teardown()
	}
}
