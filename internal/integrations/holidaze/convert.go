package holidaze

import (
	"fmt"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/pkg/ptr"
)

// Конвертация DTO -> domain с проверкой обязательных полей

func toDomainMedia(m *MediaDTO) *domain.Media {
	if m == nil || m.URL == "" {
		return nil
	}
	return &domain.Media{URL: m.URL, Alt: m.Alt}
}

func toDomainProfile(p *ProfileDTO) (*domain.Profile, error) {
	if p == nil || p.Name == "" {
		return nil, fmt.Errorf("%w: profile without name", ErrInvalidResponse)
	}

	profile := &domain.Profile{
		Name:         p.Name,
		Email:        p.Email,
		Bio:          ptr.Value(p.Bio),
		Avatar:       toDomainMedia(p.Avatar),
		Banner:       toDomainMedia(p.Banner),
		VenueManager: p.VenueManager,
	}
	if p.Count != nil {
		profile.VenuesCount = p.Count.Venues
		profile.BookingsCount = p.Count.Bookings
	}

	return profile, nil
}

func toDomainBooking(b *BookingDTO, venueID string) (*domain.Booking, error) {
	if b.ID == "" {
		return nil, fmt.Errorf("%w: booking without id", ErrInvalidResponse)
	}

	from, err := domain.ParseDate(b.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%s dateFrom: %v", ErrInvalidResponse, b.ID, err)
	}
	to, err := domain.ParseDate(b.DateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%s dateTo: %v", ErrInvalidResponse, b.ID, err)
	}

	booking := &domain.Booking{
		ID:        b.ID,
		DateFrom:  from,
		DateTo:    to,
		Guests:    b.Guests,
		VenueID:   venueID,
		CreatedAt: parseTimestamp(b.Created),
		UpdatedAt: parseTimestamp(b.Updated),
	}

	if b.Venue != nil {
		venue, err := toDomainVenue(b.Venue)
		if err != nil {
			return nil, err
		}
		booking.Venue = venue
		booking.VenueID = venue.ID
	}

	if b.Customer != nil {
		customer, err := toDomainProfile(b.Customer)
		if err != nil {
			return nil, err
		}
		booking.Customer = customer
	}

	return booking, nil
}

func toDomainVenue(v *VenueDTO) (*domain.Venue, error) {
	if v == nil || v.ID == "" {
		return nil, fmt.Errorf("%w: venue without id", ErrInvalidResponse)
	}

	venue := &domain.Venue{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Media:       make([]domain.Media, 0, len(v.Media)),
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Meta: domain.VenueMeta{
			Wifi:      v.Meta.Wifi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
		Location: domain.Location{
			Address:   ptr.Value(v.Location.Address),
			City:      ptr.Value(v.Location.City),
			Zip:       ptr.Value(v.Location.Zip),
			Country:   ptr.Value(v.Location.Country),
			Continent: ptr.Value(v.Location.Continent),
			Lat:       ptr.Value(v.Location.Lat),
			Lng:       ptr.Value(v.Location.Lng),
		},
		Bookings:  make([]domain.Booking, 0, len(v.Bookings)),
		CreatedAt: parseTimestamp(v.Created),
		UpdatedAt: parseTimestamp(v.Updated),
	}

	for _, m := range v.Media {
		if m.URL == "" {
			continue
		}
		venue.Media = append(venue.Media, domain.Media{URL: m.URL, Alt: m.Alt})
	}

	if v.Owner != nil {
		owner, err := toDomainProfile(v.Owner)
		if err != nil {
			return nil, err
		}
		venue.Owner = owner
	}

	for i := range v.Bookings {
		booking, err := toDomainBooking(&v.Bookings[i], v.ID)
		if err != nil {
			return nil, err
		}
		venue.Bookings = append(venue.Bookings, *booking)
	}

	return venue, nil
}

func toDomainVenues(dtos []VenueDTO) ([]domain.Venue, error) {
	venues := make([]domain.Venue, 0, len(dtos))
	for i := range dtos {
		venue, err := toDomainVenue(&dtos[i])
		if err != nil {
			return nil, err
		}
		venues = append(venues, *venue)
	}
	return venues, nil
}

// Конвертация domain -> DTO

func fromDomainDraft(d domain.VenueDraft) venueRequest {
	req := venueRequest{
		Name:        d.Name,
		Description: d.Description,
		Media:       make([]MediaDTO, 0, len(d.Media)),
		Price:       d.Price,
		MaxGuests:   d.MaxGuests,
		Rating:      d.Rating,
		Meta: VenueMetaDTO{
			Wifi:      d.Meta.Wifi,
			Parking:   d.Meta.Parking,
			Breakfast: d.Meta.Breakfast,
			Pets:      d.Meta.Pets,
		},
		Location: LocationDTO{
			Address:   nullableString(d.Location.Address),
			City:      nullableString(d.Location.City),
			Zip:       nullableString(d.Location.Zip),
			Country:   nullableString(d.Location.Country),
			Continent: nullableString(d.Location.Continent),
			Lat:       ptr.Ptr(d.Location.Lat),
			Lng:       ptr.Ptr(d.Location.Lng),
		},
	}

	for _, m := range d.Media {
		req.Media = append(req.Media, MediaDTO{URL: m.URL, Alt: m.Alt})
	}

	return req
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.Ptr(s)
}

// formatDate форматирует календарный день для API (полночь UTC, ISO 8601)
func formatDate(t time.Time) string {
	return domain.DateOnly(t).Format(time.RFC3339)
}

// parseTimestamp разбирает служебные метки времени; некорректные дают нулевое время
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
