package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

type seedCustomer struct {
	email, first, last string
}

type seedRoom struct {
	number  string
	price   float64
	typ     domain.RoomType
	floor   int
	balcony bool
	seaView bool
}

var demoCustomers = []seedCustomer{
	{"john@email.com", "John", "Doe"},
	{"jane@email.com", "Jane", "Smith"},
	{"admin@hotel.com", "Admin", "User"},
}

var demoRooms = []seedRoom{
	{"101", 99.99, domain.Double, 1, false, false},
	{"102", 79.99, domain.Single, 1, false, false},
	{"103", 129.99, domain.Double, 1, false, true},
	{"201", 0, domain.Single, 2, false, false},
	{"202", 0, domain.Double, 2, true, false},
	{"301", 299.99, domain.Suite, 3, true, true},
	{"302", 219.99, domain.Deluxe, 3, false, true},
}

// Seeder loads demo data through the facade with a bounded worker pool.
// Registrations are independent of each other, so they fan out; the sample
// reservation waits for all of them.
type Seeder struct {
	hotel   *Hotel
	workers int64
}

func NewSeeder(h *Hotel, workers int) *Seeder {
	if workers <= 0 {
		workers = 4
	}
	return &Seeder{hotel: h, workers: int64(workers)}
}

func (s *Seeder) Run(ctx context.Context) error {
	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup

	for _, c := range demoCustomers {
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func(c seedCustomer) {
			defer wg.Done()
			defer sem.Release(1)
			if _, err := s.hotel.CreateCustomer(c.email, c.first, c.last); err != nil {
				log.Warn().Str("email", c.email).Err(err).Msg("seed customer failed")
			}
		}(c)
	}

	for _, r := range demoRooms {
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func(r seedRoom) {
			defer wg.Done()
			defer sem.Release(1)
			room, err := domain.NewRoom(r.number, r.price, r.typ, r.floor, r.balcony, r.seaView)
			if err == nil {
				err = s.hotel.AddRoom(ctx, room)
			}
			if err != nil {
				log.Warn().Str("room", r.number).Err(err).Msg("seed room failed")
			}
		}(r)
	}

	wg.Wait()

	// One sample reservation: tonight and tomorrow night in 101.
	room, ok, err := s.hotel.GetRoom("101")
	if err != nil || !ok {
		log.Warn().Err(err).Msg("seed reservation skipped, room 101 missing")
		return nil
	}
	checkIn := domain.DateOf(time.Now())
	if _, err := s.hotel.BookRoom(ctx, "john@email.com", room, checkIn, checkIn.AddDate(0, 0, 2)); err != nil {
		log.Warn().Err(err).Msg("seed reservation failed")
		return nil
	}
	log.Info().
		Int("customers", s.hotel.registry.Count()).
		Int("rooms", s.hotel.inventory.Count()).
		Int("reservations", s.hotel.ledger.Count()).
		Msg("demo data loaded")
	return nil
}
