package get_availability

import (
	"net/url"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/domain"
	getAvailability "github.com/m04kA/holidaze-gateway/internal/usecase/get_availability"
)

// RangeResponse забронированный диапазон, обе даты включительно
type RangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AvailabilityResponse календарь занятости площадки
type AvailabilityResponse struct {
	VenueID       string          `json:"venueId"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Today         string          `json:"today"`
	MaxGuests     int             `json:"maxGuests"`
	PricePerNight float64         `json:"pricePerNight"`
	BookedRanges  []RangeResponse `json:"bookedRanges"`
	DisabledDates []string        `json:"disabledDates"`
	TotalDays     int             `json:"totalDays"`
	AvailableDays int             `json:"availableDays"`
	OccupancyRate float64         `json:"occupancyRate"`
}

// ToUseCaseRequest разбирает query параметры from и to (YYYY-MM-DD)
func ToUseCaseRequest(venueID string, query url.Values) (*getAvailability.Request, error) {
	req := &getAvailability.Request{VenueID: venueID}

	var err error
	if req.From, err = handlers.ParseOptionalDate(query.Get("from"), "from"); err != nil {
		return nil, err
	}
	if req.To, err = handlers.ParseOptionalDate(query.Get("to"), "to"); err != nil {
		return nil, err
	}
	return req, nil
}

// FromUseCaseResponse конвертирует календарь в DTO
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	a := resp.Availability

	ranges := make([]RangeResponse, 0, len(a.BookedRanges))
	for _, r := range a.BookedRanges {
		ranges = append(ranges, RangeResponse{
			From: r.From.Format(domain.DateFormat),
			To:   r.To.Format(domain.DateFormat),
		})
	}

	disabled := make([]string, 0, len(a.DisabledDates))
	for _, d := range a.DisabledDates {
		disabled = append(disabled, d.Format(domain.DateFormat))
	}

	return &AvailabilityResponse{
		VenueID:       a.VenueID,
		From:          a.Window.From.Format(domain.DateFormat),
		To:            a.Window.To.Format(domain.DateFormat),
		Today:         a.Today.Format(domain.DateFormat),
		MaxGuests:     a.MaxGuests,
		PricePerNight: a.PricePerNight,
		BookedRanges:  ranges,
		DisabledDates: disabled,
		TotalDays:     a.TotalDays(),
		AvailableDays: a.AvailableDays(),
		OccupancyRate: a.OccupancyRate(),
	}
}
