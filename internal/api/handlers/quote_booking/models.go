package quote_booking

import (
	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/domain"
	quoteBooking "github.com/m04kA/holidaze-gateway/internal/usecase/quote_booking"
)

// QuoteRequest тело запроса расчета, даты в формате YYYY-MM-DD
type QuoteRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

// ConflictResponse пересекающееся бронирование
type ConflictResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// QuoteResponse результат расчета
type QuoteResponse struct {
	VenueID       string            `json:"venueId"`
	Valid         bool              `json:"valid"`
	Code          string            `json:"code"`
	Field         string            `json:"field,omitempty"`
	Message       string            `json:"message,omitempty"`
	Conflict      *ConflictResponse `json:"conflict,omitempty"`
	Nights        int               `json:"nights"`
	PricePerNight float64           `json:"pricePerNight"`
	TotalPrice    float64           `json:"totalPrice"`
	MaxGuests     int               `json:"maxGuests"`
}

// ToUseCaseRequest конвертирует тело запроса, пустая дата остается нулевой
func (q *QuoteRequest) ToUseCaseRequest(venueID string) (*quoteBooking.Request, error) {
	checkIn, err := handlers.ParseOptionalDate(q.CheckIn, "checkIn")
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseOptionalDate(q.CheckOut, "checkOut")
	if err != nil {
		return nil, err
	}

	return &quoteBooking.Request{
		VenueID:  venueID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   q.Guests,
	}, nil
}

// FromUseCaseResponse конвертирует результат расчета в DTO
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	out := &QuoteResponse{
		VenueID:       resp.VenueID,
		Valid:         resp.Valid,
		Code:          resp.Code,
		Field:         resp.Field,
		Message:       resp.Message,
		Nights:        resp.Nights,
		PricePerNight: resp.PricePerNight,
		TotalPrice:    resp.TotalPrice,
		MaxGuests:     resp.MaxGuests,
	}
	if resp.Conflict != nil {
		out.Conflict = &ConflictResponse{
			From: resp.Conflict.From.Format(domain.DateFormat),
			To:   resp.Conflict.To.Format(domain.DateFormat),
		}
	}
	return out
}
