package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sharanyanjs/Hotel-management-system/internal/app"
	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
)

const dateLayout = "2006-01-02"

type Handlers struct {
	Hotel *app.Hotel
	Q     *app.Queries
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Post("/v1/customers", h.createCustomer)
	s.mux.Get("/v1/customers", h.listCustomers)
	s.mux.Get("/v1/customers/{email}/reservations", h.customerReservations)

	s.mux.Post("/v1/rooms", h.addRoom)
	s.mux.Get("/v1/rooms", h.listRooms)
	s.mux.Get("/v1/rooms/available", h.findAvailable)
	s.mux.Get("/v1/rooms/{number}", h.getRoom)
	s.mux.Put("/v1/rooms/{number}/status", h.updateRoomStatus)

	s.mux.Post("/v1/bookings", h.createBooking)
	s.mux.Get("/v1/bookings", h.listBookings)
}

// Maps domain sentinels onto HTTP statuses; anything unrecognized is a 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrEmptyRoomNumber),
		errors.Is(err, domain.ErrInvalidRoomNumber),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrNilRoom),
		errors.Is(err, domain.ErrUnknownStatus):
		return http.StatusBadRequest, "Invalid Request"
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrUnknownRoom),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, domain.ErrDuplicateCustomer),
		errors.Is(err, domain.ErrDuplicateRoom),
		errors.Is(err, domain.ErrRoomUnavailable):
		return http.StatusConflict, "Conflict"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

func writeDomainErr(w http.ResponseWriter, err error) {
	status, title := statusFor(err)
	writeProblem(w, status, title, err.Error())
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// ---- customers ----

type createCustomerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *Handlers) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	c, err := h.Hotel.CreateCustomer(req.Email, req.FirstName, req.LastName)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.NewCustomerView(c))
}

func (h *Handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers := h.Hotel.ListCustomers()
	views := make([]app.CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, app.NewCustomerView(c))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handlers) customerReservations(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	views, err := h.Q.CustomerReservations(r.Context(), email)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// ---- rooms ----

type addRoomRequest struct {
	Number  string  `json:"number"`
	Price   float64 `json:"price"`
	Type    string  `json:"type"`
	Floor   int     `json:"floor"`
	Balcony bool    `json:"balcony"`
	SeaView bool    `json:"sea_view"`
	Free    bool    `json:"free"`
}

func (h *Handlers) addRoom(w http.ResponseWriter, r *http.Request) {
	var req addRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}
	var room *domain.Room
	if req.Free {
		room, err = domain.NewFreeRoom(req.Number, roomType, req.Floor, req.Balcony, req.SeaView)
	} else {
		room, err = domain.NewRoom(req.Number, req.Price, roomType, req.Floor, req.Balcony, req.SeaView)
	}
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if err := h.Hotel.AddRoom(r.Context(), room); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.NewRoomView(room))
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.NewRoomViews(h.Hotel.ListRooms()))
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	view, err := h.Q.GetRoom(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeWithETag(w, r, view)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) updateRoomStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	status, err := domain.ParseRoomStatus(req.Status)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	room, err := h.Hotel.UpdateRoomStatus(r.Context(), chi.URLParam(r, "number"), status)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.NewRoomView(room))
}

func (h *Handlers) findAvailable(w http.ResponseWriter, r *http.Request) {
	checkIn, err := parseDate(r.URL.Query().Get("check_in"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(r.URL.Query().Get("check_out"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "check_out must be YYYY-MM-DD")
		return
	}
	views, err := h.Q.FindRooms(r.Context(), checkIn, checkOut)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeWithETag(w, r, views)
}

// ---- bookings ----

type createBookingRequest struct {
	CustomerEmail string `json:"customer_email"`
	RoomNumber    string `json:"room_number"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "check_out must be YYYY-MM-DD")
		return
	}
	room, ok, err := h.Hotel.GetRoom(req.RoomNumber)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if !ok {
		writeDomainErr(w, domain.ErrUnknownRoom)
		return
	}
	res, err := h.Hotel.BookRoom(r.Context(), req.CustomerEmail, room, checkIn, checkOut)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app.NewReservationView(res))
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.NewReservationViews(h.Hotel.ListReservations()))
}
