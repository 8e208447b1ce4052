package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateOf strips the time component; all stay dates are UTC midnights.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Reservation is a committed stay: nights [CheckIn, CheckOut), check-out day
// excluded. Customer and Room are shared references owned by their stores.
// Identity is the (customer, room, check-in, check-out) tuple; Confirmation
// is an opaque code for external reference and never part of equality.
type Reservation struct {
	Confirmation string
	Customer     *Customer
	Room         *Room
	CheckIn      time.Time
	CheckOut     time.Time
}

func NewReservation(customer *Customer, room *Room, checkIn, checkOut time.Time) (*Reservation, error) {
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	if room == nil {
		return nil, ErrNilRoom
	}
	checkIn, checkOut = DateOf(checkIn), DateOf(checkOut)
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	return &Reservation{
		Confirmation: uuid.NewString(),
		Customer:     customer,
		Room:         room,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	}, nil
}

func (r *Reservation) Equal(o *Reservation) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Customer.Equal(o.Customer) &&
		r.Room.Equal(o.Room) &&
		r.CheckIn.Equal(o.CheckIn) &&
		r.CheckOut.Equal(o.CheckOut)
}

// Overlaps reports whether the stay intersects [checkIn, checkOut).
// Half-open ranges: a stay ending on checkIn (or starting on checkOut)
// does not overlap, so back-to-back bookings share a turnover day.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return DateOf(checkIn).Before(r.CheckOut) && DateOf(checkOut).After(r.CheckIn)
}

func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r *Reservation) TotalPrice() float64 {
	return float64(r.Nights()) * r.Room.Price
}
