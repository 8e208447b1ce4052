package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

var _ domain.BookingLedger = (*Ledger)(nil)

// Ledger is the booking engine: it owns all committed reservations and
// decides availability. Reservations are indexed per room number so an
// overlap check only scans that room's stays.
//
// Book is the single write path. It holds a per-room mutex across the whole
// availability-check-then-insert sequence, so two concurrent bookings for
// overlapping ranges on one room can never both commit, while bookings for
// distinct rooms proceed independently. The inner RWMutex guards the index
// itself; readers take it and therefore serialize against an in-flight
// insert without blocking each other.
type Ledger struct {
	inventory *Inventory

	mu        sync.RWMutex
	byRoom    map[string][]*domain.Reservation
	roomLocks map[string]*sync.Mutex
	total     int
}

func NewLedger(inv *Inventory) *Ledger {
	return &Ledger{
		inventory: inv,
		byRoom:    make(map[string][]*domain.Reservation),
		roomLocks: make(map[string]*sync.Mutex),
	}
}

func (l *Ledger) lockFor(number string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.roomLocks[number]
	if !ok {
		m = &sync.Mutex{}
		l.roomLocks[number] = m
	}
	return m
}

// IsAvailable reports whether the room has no committed stay overlapping
// [checkIn, checkOut). Adjacent stays (check-out day equals the next
// check-in day) do not conflict.
func (l *Ledger) IsAvailable(room *domain.Room, checkIn, checkOut time.Time) bool {
	if room == nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.availableLocked(room.Number, checkIn, checkOut)
}

func (l *Ledger) availableLocked(number string, checkIn, checkOut time.Time) bool {
	for _, res := range l.byRoom[number] {
		if res.Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}

// Book validates, checks availability and commits atomically.
func (l *Ledger) Book(customer *domain.Customer, room *domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if room == nil {
		return nil, domain.ErrNilRoom
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, domain.ErrInvalidDateRange
	}
	if !domain.DateOf(checkOut).After(domain.DateOf(checkIn)) {
		return nil, domain.ErrInvalidDateRange
	}
	if !l.inventory.Exists(room.Number) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRoom, room.Number)
	}

	// Serialize check-then-insert per room.
	roomLock := l.lockFor(room.Number)
	roomLock.Lock()
	defer roomLock.Unlock()

	l.mu.RLock()
	free := l.availableLocked(room.Number, checkIn, checkOut)
	l.mu.RUnlock()
	if !free {
		return nil, fmt.Errorf("%w: room %s from %s to %s", domain.ErrRoomUnavailable,
			room.Number, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
	}

	res, err := domain.NewReservation(customer, room, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.byRoom[room.Number] = append(l.byRoom[room.Number], res)
	l.total++
	l.mu.Unlock()
	return res, nil
}

// FindAvailable filters the full inventory by availability for the range.
// Results are sorted by room number.
func (l *Ledger) FindAvailable(checkIn, checkOut time.Time) ([]*domain.Room, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, domain.ErrInvalidDateRange
	}
	if !domain.DateOf(checkOut).After(domain.DateOf(checkIn)) {
		return nil, domain.ErrInvalidDateRange
	}
	rooms := l.inventory.All() // already sorted
	out := make([]*domain.Room, 0, len(rooms))
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, r := range rooms {
		if l.availableLocked(r.Number, checkIn, checkOut) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *Ledger) ReservationsFor(customer *domain.Customer) []*domain.Reservation {
	if customer == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*domain.Reservation
	for _, list := range l.byRoom {
		for _, res := range list {
			if res.Customer.Equal(customer) {
				out = append(out, res)
			}
		}
	}
	sortReservations(out)
	return out
}

func (l *Ledger) All() []*domain.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*domain.Reservation, 0, l.total)
	for _, list := range l.byRoom {
		out = append(out, list...)
	}
	sortReservations(out)
	return out
}

// Map iteration order is random; sort for reproducible listings.
func sortReservations(rs []*domain.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Room.Number != rs[j].Room.Number {
			return rs[i].Room.Number < rs[j].Room.Number
		}
		return rs[i].CheckIn.Before(rs[j].CheckIn)
	})
}

func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.total
}

func (l *Ledger) RoomExists(number string) bool {
	return l.inventory.Exists(number)
}
