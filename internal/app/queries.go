package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

// Queries is the cached read side. Availability keys carry a generation
// number that every committed booking (and every new room) bumps, so a
// search after a booking can never hit a stale snapshot; superseded entries
// just age out on TTL. Cache failures are treated as misses.
type Queries struct {
	registry  domain.CustomerRegistry
	inventory domain.RoomInventory
	ledger    domain.BookingLedger
	cache     domain.Cache
	cacheTTL  time.Duration
	availGen  atomic.Int64
}

func NewQueries(reg domain.CustomerRegistry, inv domain.RoomInventory, led domain.BookingLedger, c domain.Cache, ttl time.Duration) *Queries {
	return &Queries{registry: reg, inventory: inv, ledger: led, cache: c, cacheTTL: ttl}
}

func (q *Queries) FindRooms(ctx context.Context, checkIn, checkOut time.Time) ([]RoomView, error) {
	key := fmt.Sprintf("avail:%d:%s:%s",
		q.availGen.Load(), checkIn.Format(dateLayout), checkOut.Format(dateLayout))
	var views []RoomView
	if ok, _ := q.cache.Get(ctx, key, &views); ok {
		return views, nil
	}
	rooms, err := q.ledger.FindAvailable(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	views = NewRoomViews(rooms)
	_ = q.cache.Set(ctx, key, views, int(q.cacheTTL.Seconds()))
	return views, nil
}

func (q *Queries) GetRoom(ctx context.Context, number string) (RoomView, error) {
	key := "room:" + number
	var view RoomView
	if ok, _ := q.cache.Get(ctx, key, &view); ok {
		return view, nil
	}
	room, ok, err := q.inventory.Lookup(number)
	if err != nil {
		return RoomView{}, err
	}
	if !ok {
		return RoomView{}, fmt.Errorf("%w: %s", domain.ErrUnknownRoom, number)
	}
	view = NewRoomView(room)
	_ = q.cache.Set(ctx, key, view, int(q.cacheTTL.Seconds()))
	return view, nil
}

// CustomerReservations mirrors the facade's asymmetry: an unknown customer
// yields an empty list, not an error.
func (q *Queries) CustomerReservations(ctx context.Context, email string) ([]ReservationView, error) {
	customer, ok := q.registry.Lookup(email)
	if !ok {
		return []ReservationView{}, nil
	}
	key := "resv:" + customer.Key()
	var views []ReservationView
	if ok, _ := q.cache.Get(ctx, key, &views); ok {
		return views, nil
	}
	views = NewReservationViews(q.ledger.ReservationsFor(customer))
	_ = q.cache.Set(ctx, key, views, int(q.cacheTTL.Seconds()))
	return views, nil
}

// InvalidateAvailability starts a new availability generation; all cached
// searches from earlier generations become unreachable.
func (q *Queries) InvalidateAvailability() { q.availGen.Add(1) }

func (q *Queries) InvalidateRoom(ctx context.Context, number string) {
	_ = q.cache.Del(ctx, "room:"+number)
}

func (q *Queries) InvalidateCustomer(ctx context.Context, email string) {
	_ = q.cache.Del(ctx, "resv:"+domain.NormalizeEmail(email))
}
