package domain_test

import (
	"errors"
	"testing"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

func TestNewRoom_NumberValidation(t *testing.T) {
	for _, n := range []string{"101", "999", "101A", "305Z"} {
		if _, err := domain.NewRoom(n, 50, domain.Single, 1, false, false); err != nil {
			t.Fatalf("expected %q to be valid, got %v", n, err)
		}
	}
	for _, n := range []string{"1", "10", "1011", "101a", "A101", "10B"} {
		if _, err := domain.NewRoom(n, 50, domain.Single, 1, false, false); err == nil {
			t.Fatalf("expected %q to be rejected", n)
		}
	}
	if _, err := domain.NewRoom("", 50, domain.Single, 1, false, false); !errors.Is(err, domain.ErrEmptyRoomNumber) {
		t.Fatalf("expected ErrEmptyRoomNumber, got %v", err)
	}
	if _, err := domain.NewRoom("101", -1, domain.Single, 1, false, false); !errors.Is(err, domain.ErrNegativePrice) {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
}

func TestRoom_EqualityByNumberOnly(t *testing.T) {
	a, _ := domain.NewRoom("101", 100, domain.Double, 1, false, false)
	b, _ := domain.NewRoom("101", 150, domain.Single, 3, true, true)
	if !a.Equal(b) {
		t.Fatalf("rooms with the same number must be equal regardless of attributes")
	}
	c, _ := domain.NewRoom("102", 100, domain.Double, 1, false, false)
	if a.Equal(c) {
		t.Fatalf("different numbers must not be equal")
	}
}

func TestRoom_FreeRoom(t *testing.T) {
	r, err := domain.NewFreeRoom("201", domain.Single, 2, false, false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !r.IsFree() || r.Price != 0 {
		t.Fatalf("free room must have zero price")
	}
	paid, _ := domain.NewRoom("202", 80, domain.Single, 2, false, false)
	if paid.IsFree() {
		t.Fatalf("paid room must not be free")
	}
}

func TestRoom_DerivedAmenities(t *testing.T) {
	basic, _ := domain.NewRoom("101", 89.99, domain.Single, 1, false, false)
	got := basic.Amenities()
	want := []string{"Free WiFi", "Flat-screen TV", "Air Conditioning", "Private Bathroom", "Queen Size Bed"}
	if len(got) != len(want) {
		t.Fatalf("amenities: %v", got)
	}

	premium, _ := domain.NewRoom("301", 299.99, domain.Double, 3, true, true)
	has := func(a string) bool {
		for _, x := range premium.Amenities() {
			if x == a {
				return true
			}
		}
		return false
	}
	for _, a := range []string{"King Size Bed", "Premium Toiletries", "Private Balcony", "Ocean View"} {
		if !has(a) {
			t.Fatalf("expected premium room to include %q, got %v", a, premium.Amenities())
		}
	}

	// returned slice is a copy
	list := premium.Amenities()
	list[0] = "mutated"
	if premium.Amenities()[0] == "mutated" {
		t.Fatalf("Amenities must return a copy")
	}
}

func TestRoom_AddAmenity(t *testing.T) {
	r, _ := domain.NewRoom("101", 50, domain.Single, 1, false, false)
	before := len(r.Amenities())
	r.AddAmenity("Piano")
	r.AddAmenity("Piano") // duplicate ignored
	r.AddAmenity("  ")    // blank ignored
	if got := len(r.Amenities()); got != before+1 {
		t.Fatalf("amenity count: %d, want %d", got, before+1)
	}
}

func TestRoom_StatusLifecycle(t *testing.T) {
	r, _ := domain.NewRoom("101", 50, domain.Single, 1, false, false)
	if r.Status() != domain.StatusAvailable {
		t.Fatalf("new room must be available")
	}
	if err := r.SetStatus(domain.StatusMaintenance); err != nil {
		t.Fatalf("err: %v", err)
	}
	if r.Status() != domain.StatusMaintenance {
		t.Fatalf("status: %v", r.Status())
	}
	if err := r.SetStatus("BROKEN"); !errors.Is(err, domain.ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}

	was := r.LastCleaned()
	r.MarkCleaned()
	if r.Status() != domain.StatusAvailable {
		t.Fatalf("cleaned room must be available")
	}
	if r.LastCleaned().Before(was) {
		t.Fatalf("last cleaned must move forward")
	}
	if r.NeedsCleaning() {
		t.Fatalf("freshly cleaned room must not need cleaning")
	}
}

func TestRoomType_Occupancy(t *testing.T) {
	if domain.Suite.MaxOccupancy() != 7 {
		t.Fatalf("suite occupancy: %d", domain.Suite.MaxOccupancy())
	}
	if domain.Single.MaxAdults() != 1 || domain.Single.MaxChildren() != 2 {
		t.Fatalf("single occupancy: %d/%d", domain.Single.MaxAdults(), domain.Single.MaxChildren())
	}
	if _, err := domain.ParseRoomType("deluxe"); err != nil {
		t.Fatalf("parse should be case-insensitive: %v", err)
	}
	if _, err := domain.ParseRoomType("PENTHOUSE"); err == nil {
		t.Fatalf("unknown type must be rejected")
	}
}

func TestRoom_CategoryAndRating(t *testing.T) {
	free, _ := domain.NewFreeRoom("201", domain.Single, 2, false, false)
	if free.Category() != domain.CategoryEconomy {
		t.Fatalf("free room category: %v", free.Category())
	}
	premium, _ := domain.NewRoom("301", 299.99, domain.Double, 3, true, true)
	if premium.Category() != domain.CategoryPremium {
		t.Fatalf("premium category: %v", premium.Category())
	}
	if premium.Rating() != 5 {
		t.Fatalf("premium rating: %d", premium.Rating())
	}
	basic, _ := domain.NewRoom("101", 89.99, domain.Single, 1, false, false)
	if basic.Category() != domain.CategoryBasic {
		t.Fatalf("basic category: %v", basic.Category())
	}
	if basic.Rating() != 3 {
		t.Fatalf("basic rating: %d", basic.Rating())
	}
}
