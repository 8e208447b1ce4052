package domain

import (
	"context"
	"time"
)

// CustomerRegistry owns every Customer; customers are registered once and
// live for the process lifetime.
type CustomerRegistry interface {
	Register(email, firstName, lastName string) (*Customer, error)
	// Lookup is case-insensitive. A missing customer is a normal branch for
	// callers, hence the bool instead of an error.
	Lookup(email string) (*Customer, bool)
	All() []*Customer
	Count() int
}

// RoomInventory owns every Room, keyed by room number.
type RoomInventory interface {
	Register(room *Room) error
	Lookup(number string) (*Room, bool, error)
	All() []*Room
	Count() int
}

// BookingLedger owns every Reservation. It references customers and rooms
// but never creates them: booking an unregistered room fails.
type BookingLedger interface {
	IsAvailable(room *Room, checkIn, checkOut time.Time) bool
	Book(customer *Customer, room *Room, checkIn, checkOut time.Time) (*Reservation, error)
	FindAvailable(checkIn, checkOut time.Time) ([]*Room, error)
	ReservationsFor(customer *Customer) []*Reservation
	All() []*Reservation
	Count() int
	RoomExists(number string) bool
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
