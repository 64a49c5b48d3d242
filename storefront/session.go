package storefront

import (
	"sync"
	"time"

	"github.com/google/uuid"

	cart "storefront/cart/logic"
	catalog "storefront/catalog/logic"
	"storefront/commerce"
)

// ErrMsgSessionNotFound is returned for unknown or ended session ids.
const ErrMsgSessionNotFound = "Session not found"

// session is one shopper's state. All access goes through mu.
type session struct {
	mu        sync.Mutex
	id        string
	ledger    *cart.Ledger
	promo     *cart.Promo
	criteria  catalog.Criteria
	createdAt time.Time
}

// SessionStore maps session ids to sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*session)}
}

func (s *SessionStore) create(logic cart.CartLogic) *session {
	sess := &session{
		id:        uuid.New().String(),
		ledger:    cart.NewLedger(logic),
		criteria:  catalog.DefaultCriteria(),
		createdAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess
}

func (s *SessionStore) get(id string) (*session, error) {
	if err := commerce.RequireExists(id, ErrMsgSessionNotFound); err != nil {
		return nil, err
	}
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, commerce.NewNotFound(ErrMsgSessionNotFound)
	}
	return sess, nil
}

func (s *SessionStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len returns the number of open sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
