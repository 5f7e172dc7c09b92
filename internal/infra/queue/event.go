package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// EventType тип события, используется как routing key
type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingCancelled EventType = "booking.cancelled"
)

// BookingEvent событие жизненного цикла бронирования
type BookingEvent struct {
	EventID     string    `json:"eventId"`
	Type        EventType `json:"type"`
	OccurredAt  time.Time `json:"occurredAt"`
	BookingID   string    `json:"bookingId"`
	VenueID     string    `json:"venueId,omitempty"`
	VenueName   string    `json:"venueName,omitempty"`
	ProfileName string    `json:"profileName"`
	DateFrom    string    `json:"dateFrom,omitempty"` // YYYY-MM-DD
	DateTo      string    `json:"dateTo,omitempty"`
	Guests      int       `json:"guests,omitempty"`
	Nights      int       `json:"nights,omitempty"`
	TotalPrice  float64   `json:"totalPrice,omitempty"`
}

// NewBookingCreated собирает событие о созданном бронировании
func NewBookingCreated(b *domain.Booking, venue *domain.Venue, profileName string, nights int, total float64, at time.Time) BookingEvent {
	event := BookingEvent{
		EventID:     uuid.NewString(),
		Type:        EventBookingCreated,
		OccurredAt:  at.UTC(),
		BookingID:   b.ID,
		VenueID:     b.VenueID,
		ProfileName: profileName,
		DateFrom:    b.DateFrom.Format(domain.DateFormat),
		DateTo:      b.DateTo.Format(domain.DateFormat),
		Guests:      b.Guests,
		Nights:      nights,
		TotalPrice:  total,
	}
	if venue != nil {
		event.VenueID = venue.ID
		event.VenueName = venue.Name
	}
	return event
}

// NewBookingCancelled собирает событие об отмененном бронировании
// venueID может быть пустым, если площадка неизвестна
func NewBookingCancelled(bookingID, venueID, profileName string, at time.Time) BookingEvent {
	return BookingEvent{
		EventID:     uuid.NewString(),
		Type:        EventBookingCancelled,
		OccurredAt:  at.UTC(),
		BookingID:   bookingID,
		VenueID:     venueID,
		ProfileName: profileName,
	}
}
