package create_booking

import (
	"time"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/domain"
	createBooking "github.com/m04kA/holidaze-gateway/internal/usecase/create_booking"
)

// CreateBookingRequest тело запроса, даты в формате YYYY-MM-DD
type CreateBookingRequest struct {
	VenueID  string `json:"venueId"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

// BookingResponse созданное бронирование
type BookingResponse struct {
	ID         string    `json:"id"`
	VenueID    string    `json:"venueId"`
	VenueName  string    `json:"venueName"`
	DateFrom   string    `json:"dateFrom"`
	DateTo     string    `json:"dateTo"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"created"`
}

// ToUseCaseRequest конвертирует тело запроса, пустая дата остается нулевой
func (c *CreateBookingRequest) ToUseCaseRequest(session *domain.Session) (*createBooking.Request, error) {
	checkIn, err := handlers.ParseOptionalDate(c.DateFrom, "dateFrom")
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseOptionalDate(c.DateTo, "dateTo")
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Session:  session,
		VenueID:  c.VenueID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   c.Guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ usecase в DTO
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		VenueID:    resp.VenueID,
		VenueName:  resp.VenueName,
		DateFrom:   resp.DateFrom.Format(domain.DateFormat),
		DateTo:     resp.DateTo.Format(domain.DateFormat),
		Guests:     resp.Guests,
		Nights:     resp.Nights,
		TotalPrice: resp.TotalPrice,
		CreatedAt:  resp.CreatedAt,
	}
}
