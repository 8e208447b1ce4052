package store

import (
	"fmt"
	"sync"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

var _ domain.CustomerRegistry = (*Registry)(nil)

// Registry is the in-memory customer store. Keys are lower-cased emails;
// registration order is preserved so listings are deterministic.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]*domain.Customer
	order []string
}

func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*domain.Customer)}
}

func (s *Registry) Register(email, firstName, lastName string) (*domain.Customer, error) {
	key := domain.NormalizeEmail(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byKey[key]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateCustomer, email)
	}
	c, err := domain.NewCustomer(firstName, lastName, email)
	if err != nil {
		return nil, err
	}
	s.byKey[key] = c
	s.order = append(s.order, key)
	return c, nil
}

func (s *Registry) Lookup(email string) (*domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byKey[domain.NormalizeEmail(email)]
	return c, ok
}

func (s *Registry) All() []*domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Customer, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k])
	}
	return out
}

func (s *Registry) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byKey)
}
