package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// GetProfile получает профиль пользователя со счетчиками площадок и бронирований
func (c *Client) GetProfile(ctx context.Context, token, name string) (*domain.Profile, error) {
	var dto ProfileDTO
	_, err := c.do(ctx, request{
		operation: "get_profile",
		method:    http.MethodGet,
		path:      "/holidaze/profiles/" + escape(name),
		token:     token,
	}, &dto)
	if err != nil {
		return nil, err
	}

	return toDomainProfile(&dto)
}

// UpdateAvatar обновляет аватар пользователя
func (c *Client) UpdateAvatar(ctx context.Context, token, name string, avatar domain.Media) (*domain.Profile, error) {
	var dto ProfileDTO
	_, err := c.do(ctx, request{
		operation: "update_profile",
		method:    http.MethodPut,
		path:      "/holidaze/profiles/" + escape(name),
		token:     token,
		body:      updateProfileRequest{Avatar: &MediaDTO{URL: avatar.URL, Alt: avatar.Alt}},
	}, &dto)
	if err != nil {
		return nil, err
	}

	return toDomainProfile(&dto)
}

// GetProfileBookings получает все бронирования пользователя вместе с площадками
func (c *Client) GetProfileBookings(ctx context.Context, token, name string) ([]domain.Booking, error) {
	dtos, err := listAll[BookingDTO](ctx, c, request{
		operation: "get_profile_bookings",
		method:    http.MethodGet,
		path:      "/holidaze/profiles/" + escape(name) + "/bookings",
		query:     url.Values{"_venue": []string{"true"}},
		token:     token,
	}, domain.MaxPageSize)
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(dtos))
	for i := range dtos {
		booking, err := toDomainBooking(&dtos[i], "")
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}

	return bookings, nil
}

// GetProfileVenues получает все площадки менеджера вместе с их бронированиями
func (c *Client) GetProfileVenues(ctx context.Context, token, name string) ([]domain.Venue, error) {
	dtos, err := listAll[VenueDTO](ctx, c, request{
		operation: "get_profile_venues",
		method:    http.MethodGet,
		path:      "/holidaze/profiles/" + escape(name) + "/venues",
		query:     url.Values{"_bookings": []string{"true"}},
		token:     token,
	}, domain.MaxPageSize)
	if err != nil {
		return nil, err
	}

	return toDomainVenues(dtos)
}
