package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

var _ domain.RoomInventory = (*Inventory)(nil)

// Inventory is the in-memory room store, keyed by room number. Registering
// an already-known number fails with ErrDuplicateRoom: silently replacing a
// room would leave committed reservations citing a room the inventory no
// longer holds.
type Inventory struct {
	mu       sync.RWMutex
	byNumber map[string]*domain.Room
}

func NewInventory() *Inventory {
	return &Inventory{byNumber: make(map[string]*domain.Room)}
}

func (s *Inventory) Register(room *domain.Room) error {
	if room == nil {
		return domain.ErrNilRoom
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byNumber[room.Number]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateRoom, room.Number)
	}
	s.byNumber[room.Number] = room
	return nil
}

func (s *Inventory) Lookup(number string) (*domain.Room, bool, error) {
	if strings.TrimSpace(number) == "" {
		return nil, false, domain.ErrEmptyRoomNumber
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byNumber[number]
	return r, ok, nil
}

func (s *Inventory) Exists(number string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byNumber[number]
	return ok
}

// All returns rooms sorted by room number.
func (s *Inventory) All() []*domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Room, 0, len(s.byNumber))
	for _, r := range s.byNumber {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (s *Inventory) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byNumber)
}
