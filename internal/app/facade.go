package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

// BookingObserver records booking outcomes (confirmed, conflict, rejected).
// Nil disables instrumentation; the wiring layer plugs in the Prometheus
// counter so this package stays free of adapter imports.
type BookingObserver func(outcome string)

// Hotel is the facade callers go through: it resolves cross-entity
// references (customer exists, room exists) and delegates to the stores.
// It never masks store errors; callers branch on the domain sentinels.
type Hotel struct {
	registry  domain.CustomerRegistry
	inventory domain.RoomInventory
	ledger    domain.BookingLedger
	queries   *Queries // optional; nil disables cache invalidation
	observe   BookingObserver
}

func NewHotel(reg domain.CustomerRegistry, inv domain.RoomInventory, led domain.BookingLedger, q *Queries, obs BookingObserver) *Hotel {
	return &Hotel{registry: reg, inventory: inv, ledger: led, queries: q, observe: obs}
}

func (h *Hotel) record(outcome string) {
	if h.observe != nil {
		h.observe(outcome)
	}
}

func (h *Hotel) CreateCustomer(email, firstName, lastName string) (*domain.Customer, error) {
	return h.registry.Register(email, firstName, lastName)
}

func (h *Hotel) GetCustomer(email string) (*domain.Customer, bool) {
	return h.registry.Lookup(email)
}

func (h *Hotel) ListCustomers() []*domain.Customer { return h.registry.All() }

// AddRoom registers a room. A new room widens every availability search, so
// cached searches are invalidated.
func (h *Hotel) AddRoom(ctx context.Context, room *domain.Room) error {
	if err := h.inventory.Register(room); err != nil {
		return err
	}
	if h.queries != nil {
		h.queries.InvalidateAvailability()
	}
	return nil
}

func (h *Hotel) GetRoom(number string) (*domain.Room, bool, error) {
	return h.inventory.Lookup(number)
}

func (h *Hotel) ListRooms() []*domain.Room { return h.inventory.All() }

// BookRoom resolves the customer by email and commits the booking through
// the ledger. An unknown email fails with ErrCustomerNotFound; everything
// else is the ledger's validation order.
func (h *Hotel) BookRoom(ctx context.Context, customerEmail string, room *domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	customer, ok := h.registry.Lookup(customerEmail)
	if !ok {
		h.record("rejected")
		return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customerEmail)
	}
	if room == nil {
		h.record("rejected")
		return nil, domain.ErrNilRoom
	}
	res, err := h.ledger.Book(customer, room, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, domain.ErrRoomUnavailable) {
			h.record("conflict")
		} else {
			h.record("rejected")
		}
		return nil, err
	}
	h.record("confirmed")
	if h.queries != nil {
		h.queries.InvalidateAvailability()
		h.queries.InvalidateCustomer(ctx, customerEmail)
	}
	return res, nil
}

// CustomerReservations returns the customer's reservations, or an empty
// slice when the email is unknown. Unlike BookRoom this is not an error:
// a fresh customer simply has nothing booked yet.
func (h *Hotel) CustomerReservations(customerEmail string) []*domain.Reservation {
	customer, ok := h.registry.Lookup(customerEmail)
	if !ok {
		return []*domain.Reservation{}
	}
	return h.ledger.ReservationsFor(customer)
}

func (h *Hotel) FindRooms(checkIn, checkOut time.Time) ([]*domain.Room, error) {
	return h.ledger.FindAvailable(checkIn, checkOut)
}

func (h *Hotel) ListReservations() []*domain.Reservation { return h.ledger.All() }

// UpdateRoomStatus applies an operational transition (housekeeping,
// maintenance). Booking never changes status; this is the explicit path.
func (h *Hotel) UpdateRoomStatus(ctx context.Context, number string, status domain.RoomStatus) (*domain.Room, error) {
	room, ok, err := h.inventory.Lookup(number)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRoom, number)
	}
	if err := room.SetStatus(status); err != nil {
		return nil, err
	}
	if h.queries != nil {
		h.queries.InvalidateRoom(ctx, number)
	}
	return room, nil
}
