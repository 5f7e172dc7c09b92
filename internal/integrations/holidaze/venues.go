package holidaze

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// VenuePage страница списка площадок
type VenuePage struct {
	Venues []domain.Venue
	Meta   PageMeta
}

// ListVenues получает страницу площадок с бронированиями
func (c *Client) ListVenues(ctx context.Context, page, limit int) (*VenuePage, error) {
	var dtos []VenueDTO
	meta, err := c.do(ctx, request{
		operation: "list_venues",
		method:    http.MethodGet,
		path:      "/holidaze/venues",
		query: url.Values{
			"page":      []string{strconv.Itoa(page)},
			"limit":     []string{strconv.Itoa(limit)},
			"_bookings": []string{"true"},
			"sort":      []string{"created"},
			"sortOrder": []string{"desc"},
		},
	}, &dtos)
	if err != nil {
		return nil, err
	}

	venues, err := toDomainVenues(dtos)
	if err != nil {
		return nil, err
	}

	result := &VenuePage{Venues: venues}
	if meta != nil {
		result.Meta = *meta
	}
	return result, nil
}

// SearchVenues ищет площадки по имени и описанию
func (c *Client) SearchVenues(ctx context.Context, query string) ([]domain.Venue, error) {
	dtos, err := listAll[VenueDTO](ctx, c, request{
		operation: "search_venues",
		method:    http.MethodGet,
		path:      "/holidaze/venues/search",
		query: url.Values{
			"q":         []string{query},
			"_bookings": []string{"true"},
		},
	}, domain.MaxPageSize)
	if err != nil {
		return nil, err
	}

	return toDomainVenues(dtos)
}

// GetVenue получает площадку с бронированиями и владельцем
func (c *Client) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	var dto VenueDTO
	_, err := c.do(ctx, request{
		operation: "get_venue",
		method:    http.MethodGet,
		path:      "/holidaze/venues/" + escape(id),
		query: url.Values{
			"_bookings": []string{"true"},
			"_owner":    []string{"true"},
		},
	}, &dto)
	if err != nil {
		return nil, err
	}

	return toDomainVenue(&dto)
}

// CreateVenue создает площадку от имени менеджера
func (c *Client) CreateVenue(ctx context.Context, token string, draft domain.VenueDraft) (*domain.Venue, error) {
	var dto VenueDTO
	_, err := c.do(ctx, request{
		operation: "create_venue",
		method:    http.MethodPost,
		path:      "/holidaze/venues",
		token:     token,
		body:      fromDomainDraft(draft),
	}, &dto)
	if err != nil {
		return nil, err
	}

	return toDomainVenue(&dto)
}

// UpdateVenue обновляет площадку
func (c *Client) UpdateVenue(ctx context.Context, token, id string, draft domain.VenueDraft) (*domain.Venue, error) {
	var dto VenueDTO
	_, err := c.do(ctx, request{
		operation: "update_venue",
		method:    http.MethodPut,
		path:      "/holidaze/venues/" + escape(id),
		token:     token,
		body:      fromDomainDraft(draft),
	}, &dto)
	if err != nil {
		return nil, err
	}

	return toDomainVenue(&dto)
}

// DeleteVenue удаляет площадку (API отвечает 204)
func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, request{
		operation: "delete_venue",
		method:    http.MethodDelete,
		path:      "/holidaze/venues/" + escape(id),
		token:     token,
	}, nil)
	return err
}
