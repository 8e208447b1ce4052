package domain

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// 3 digits plus an optional uppercase letter, e.g. "101" or "101A".
var roomNumberPattern = regexp.MustCompile(`^[0-9]{3}[A-Z]?$`)

type RoomType string

const (
	Single RoomType = "SINGLE"
	Double RoomType = "DOUBLE"
	Suite  RoomType = "SUITE"
	Deluxe RoomType = "DELUXE"
)

type roomTypeSpec struct {
	description string
	maxAdults   int
	maxChildren int
}

var roomTypeSpecs = map[RoomType]roomTypeSpec{
	Single: {"Single Bed", 1, 2},
	Double: {"Double Bed", 2, 2},
	Suite:  {"Suite", 4, 3},
	Deluxe: {"Deluxe", 3, 2},
}

func ParseRoomType(s string) (RoomType, error) {
	rt := RoomType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roomTypeSpecs[rt]; !ok {
		return "", fmt.Errorf("hotel: unknown room type %q", s)
	}
	return rt, nil
}

func (t RoomType) Description() string { return roomTypeSpecs[t].description }
func (t RoomType) MaxAdults() int      { return roomTypeSpecs[t].maxAdults }
func (t RoomType) MaxChildren() int    { return roomTypeSpecs[t].maxChildren }
func (t RoomType) MaxOccupancy() int {
	s := roomTypeSpecs[t]
	return s.maxAdults + s.maxChildren
}

type RoomStatus string

const (
	StatusAvailable   RoomStatus = "AVAILABLE"
	StatusOccupied    RoomStatus = "OCCUPIED"
	StatusCleaning    RoomStatus = "CLEANING"
	StatusMaintenance RoomStatus = "MAINTENANCE"
)

func ParseRoomStatus(s string) (RoomStatus, error) {
	st := RoomStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Room identity is the room number alone: two rooms with the same number are
// the same room regardless of price or type. Number, price, type, floor and
// the two feature flags are fixed at construction; status, last-cleaned and
// the amenity list are the only mutable state and are safe for concurrent use.
type Room struct {
	Number  string
	Price   float64
	Type    RoomType
	Floor   int
	Balcony bool
	SeaView bool

	mu          sync.Mutex
	amenities   []string
	status      RoomStatus
	lastCleaned time.Time
}

func NewRoom(number string, price float64, roomType RoomType, floor int, balcony, seaView bool) (*Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, ErrEmptyRoomNumber
	}
	if !roomNumberPattern.MatchString(number) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomNumber, number)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrNegativePrice, price)
	}
	if _, ok := roomTypeSpecs[roomType]; !ok {
		return nil, fmt.Errorf("hotel: unknown room type %q", roomType)
	}
	r := &Room{
		Number:      number,
		Price:       price,
		Type:        roomType,
		Floor:       floor,
		Balcony:     balcony,
		SeaView:     seaView,
		status:      StatusAvailable,
		lastCleaned: time.Now(),
	}
	r.amenities = defaultAmenities(roomType, floor, balcony, seaView)
	return r, nil
}

// NewFreeRoom builds a complimentary room; the zero price is what marks a
// room as free, there is no separate variant.
func NewFreeRoom(number string, roomType RoomType, floor int, balcony, seaView bool) (*Room, error) {
	return NewRoom(number, 0, roomType, floor, balcony, seaView)
}

func defaultAmenities(t RoomType, floor int, balcony, seaView bool) []string {
	a := []string{"Free WiFi", "Flat-screen TV", "Air Conditioning", "Private Bathroom"}
	if t == Double {
		a = append(a, "King Size Bed", "Mini Refrigerator", "Work Desk")
	} else {
		a = append(a, "Queen Size Bed")
	}
	if floor >= 3 {
		a = append(a, "Premium Toiletries", "Coffee/Tea Maker", "Bathrobe & Slippers")
	}
	if balcony {
		a = append(a, "Private Balcony", "Outdoor Seating")
	}
	if seaView {
		a = append(a, "Ocean View", "Binoculars")
	}
	return a
}

func (r *Room) IsFree() bool { return r.Price == 0 }

func (r *Room) Equal(o *Room) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Number == o.Number
}

// Amenities returns a copy; callers cannot mutate the room through it.
func (r *Room) Amenities() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.amenities))
	copy(out, r.amenities)
	return out
}

// AddAmenity appends a custom amenity. Blank and duplicate entries are ignored.
func (r *Room) AddAmenity(amenity string) {
	amenity = strings.TrimSpace(amenity)
	if amenity == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.amenities {
		if a == amenity {
			return
		}
	}
	r.amenities = append(r.amenities, amenity)
}

func (r *Room) Status() RoomStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// SetStatus records an operational transition. Returning a room to AVAILABLE
// implies housekeeping finished, so it refreshes the last-cleaned timestamp.
func (r *Room) SetStatus(s RoomStatus) error {
	switch s {
	case StatusAvailable, StatusOccupied, StatusCleaning, StatusMaintenance:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
	if s == StatusAvailable {
		r.lastCleaned = time.Now()
	}
	return nil
}

func (r *Room) MarkCleaned() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastCleaned = time.Now()
	r.status = StatusAvailable
}

func (r *Room) LastCleaned() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastCleaned
}

func (r *Room) NeedsCleaning() bool {
	return r.LastCleaned().Before(time.Now().Add(-24 * time.Hour))
}

// CleaningPriority ranks rooms for housekeeping rounds; higher runs first.
func (r *Room) CleaningPriority() int {
	p := r.Floor
	if r.Type == Double {
		p += 2
	}
	if r.SeaView {
		p++
	}
	if r.Balcony {
		p++
	}
	return p
}

// Rating derives a 1-5 star score from the room's fixed features.
func (r *Room) Rating() int {
	rating := 3
	if r.Floor >= 3 {
		rating++
	}
	if r.SeaView {
		rating++
	}
	if r.Balcony {
		rating++
	}
	if r.Type == Double {
		rating++
	}
	if rating > 5 {
		rating = 5
	}
	return rating
}

type RoomCategory string

const (
	CategoryEconomy  RoomCategory = "Economy"
	CategoryBasic    RoomCategory = "Basic"
	CategoryStandard RoomCategory = "Standard"
	CategoryPremium  RoomCategory = "Premium"
)

func (r *Room) Category() RoomCategory {
	if r.IsFree() {
		return CategoryEconomy
	}
	score := 0
	if r.SeaView {
		score += 2
	}
	if r.Balcony {
		score++
	}
	if r.Floor >= 3 {
		score++
	}
	if r.Type == Double {
		score++
	}
	switch {
	case score >= 4:
		return CategoryPremium
	case score >= 2:
		return CategoryStandard
	}
	return CategoryBasic
}
