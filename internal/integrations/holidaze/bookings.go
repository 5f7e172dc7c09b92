package holidaze

import (
	"context"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// CreateBooking создает бронирование площадки от имени пользователя
// Пересечение с чужими бронированиями окончательно проверяет API (ErrRejected)
func (c *Client) CreateBooking(ctx context.Context, token, venueID string, proposal domain.BookingProposal) (*domain.Booking, error) {
	var dto BookingDTO
	_, err := c.do(ctx, request{
		operation: "create_booking",
		method:    http.MethodPost,
		path:      "/holidaze/bookings",
		token:     token,
		body: createBookingRequest{
			DateFrom: formatDate(proposal.CheckIn),
			DateTo:   formatDate(proposal.CheckOut),
			Guests:   proposal.Guests,
			VenueID:  venueID,
		},
	}, &dto)
	if err != nil {
		return nil, err
	}

	return toDomainBooking(&dto, venueID)
}

// CancelBooking удаляет бронирование (API отвечает 204)
func (c *Client) CancelBooking(ctx context.Context, token, bookingID string) error {
	_, err := c.do(ctx, request{
		operation: "cancel_booking",
		method:    http.MethodDelete,
		path:      "/holidaze/bookings/" + escape(bookingID),
		token:     token,
	}, nil)
	return err
}
