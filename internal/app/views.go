package app

import (
	"time"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

const dateLayout = "2006-01-02"

// Read models. The domain types carry locks and unexported state; these flat
// views are what gets cached and serialized.

type CustomerView struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RoomView struct {
	Number       string            `json:"number"`
	Price        float64           `json:"price"`
	Free         bool              `json:"free"`
	Type         domain.RoomType   `json:"type"`
	Description  string            `json:"description"`
	MaxOccupancy int               `json:"max_occupancy"`
	Floor        int               `json:"floor"`
	Balcony      bool              `json:"balcony"`
	SeaView      bool              `json:"sea_view"`
	Category     string            `json:"category"`
	Rating       int               `json:"rating"`
	Amenities    []string          `json:"amenities"`
	Status       domain.RoomStatus `json:"status"`
	LastCleaned  time.Time         `json:"last_cleaned"`
}

type ReservationView struct {
	Confirmation  string  `json:"confirmation"`
	CustomerEmail string  `json:"customer_email"`
	CustomerName  string  `json:"customer_name"`
	RoomNumber    string  `json:"room_number"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
}

func NewCustomerView(c *domain.Customer) CustomerView {
	return CustomerView{Email: c.Email, FirstName: c.FirstName, LastName: c.LastName}
}

func NewRoomView(r *domain.Room) RoomView {
	return RoomView{
		Number:       r.Number,
		Price:        r.Price,
		Free:         r.IsFree(),
		Type:         r.Type,
		Description:  r.Type.Description(),
		MaxOccupancy: r.Type.MaxOccupancy(),
		Floor:        r.Floor,
		Balcony:      r.Balcony,
		SeaView:      r.SeaView,
		Category:     string(r.Category()),
		Rating:       r.Rating(),
		Amenities:    r.Amenities(),
		Status:       r.Status(),
		LastCleaned:  r.LastCleaned(),
	}
}

func NewReservationView(res *domain.Reservation) ReservationView {
	return ReservationView{
		Confirmation:  res.Confirmation,
		CustomerEmail: res.Customer.Email,
		CustomerName:  res.Customer.FullName(),
		RoomNumber:    res.Room.Number,
		CheckIn:       res.CheckIn.Format(dateLayout),
		CheckOut:      res.CheckOut.Format(dateLayout),
		Nights:        res.Nights(),
		TotalPrice:    res.TotalPrice(),
	}
}

func NewRoomViews(rs []*domain.Room) []RoomView {
	out := make([]RoomView, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewRoomView(r))
	}
	return out
}

func NewReservationViews(rs []*domain.Reservation) []ReservationView {
	out := make([]ReservationView, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewReservationView(r))
	}
	return out
}
