package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/terraincognita07/rangepicker/internal/security"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionLimit      = errors.New("session limit reached")
	ErrSessionIDGenerate = errors.New("generate session id failed")
)

const (
	sessionIDLength   = 24
	sessionIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 1000
)

type storedSession struct {
	session  *PickerSession
	lastSeen time.Time
}

// SessionStore keeps picker sessions in memory. It never persists them.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*storedSession
	grids       *MonthGridCache
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

func NewSessionStore(ttl time.Duration, maxSessions int) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &SessionStore{
		sessions:    make(map[string]*storedSession),
		grids:       NewMonthGridCache(),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

func (store *SessionStore) TTL() time.Duration {
	return store.ttl
}

func (store *SessionStore) Create(options SessionOptions) (string, *PickerSession, error) {
	session, err := NewPickerSession(options, store.grids)
	if err != nil {
		return "", nil, err
	}

	id, err := security.NewIdentifier(sessionIDLength, sessionIDAlphabet)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrSessionIDGenerate, err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if len(store.sessions) >= store.maxSessions {
		return "", nil, ErrSessionLimit
	}
	store.sessions[id] = &storedSession{session: session, lastSeen: store.now()}
	return id, session, nil
}

// Get returns the session and marks it as recently used.
func (store *SessionStore) Get(id string) (*PickerSession, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, ok := store.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.lastSeen = store.now()
	return entry.session, nil
}

func (store *SessionStore) Delete(id string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.sessions[id]; !ok {
		return false
	}
	delete(store.sessions, id)
	return true
}

func (store *SessionStore) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many went.
func (store *SessionStore) Sweep(now time.Time) int {
	store.mu.Lock()
	defer store.mu.Unlock()

	threshold := now.Add(-store.ttl)
	removed := 0
	for id, entry := range store.sessions {
		if entry.lastSeen.Before(threshold) {
			delete(store.sessions, id)
			removed++
		}
	}
	return removed
}
