package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/holidaze-gateway/internal/availability"
	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/infra/queue"
	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
	"github.com/m04kA/holidaze-gateway/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeClient struct {
	venue     *domain.Venue
	venueErr  error
	createErr error
	created   *domain.BookingProposal
}

func (f *fakeClient) GetVenue(_ context.Context, _ string) (*domain.Venue, error) {
	return f.venue, f.venueErr
}

func (f *fakeClient) CreateBooking(_ context.Context, _, venueID string, p domain.BookingProposal) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &p
	return &domain.Booking{ID: "b-new", VenueID: venueID, DateFrom: p.CheckIn, DateTo: p.CheckOut, Guests: p.Guests}, nil
}

type fakeCache struct{ invalidated []string }

func (c *fakeCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	return nil
}

type fakePublisher struct {
	events []queue.BookingEvent
	err    error
}

func (p *fakePublisher) PublishBookingEvent(_ context.Context, e queue.BookingEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

type fakeMetrics struct{ results []string }

func (m *fakeMetrics) ObserveValidation(result string) { m.results = append(m.results, result) }

var now = time.Date(2025, 6, 10, 21, 45, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:        "v1",
		Name:      "Fjord cabin",
		Price:     150,
		MaxGuests: 4,
		Bookings: []domain.Booking{
			{ID: "existing", DateFrom: day("2025-06-20"), DateTo: day("2025-06-25")},
		},
	}
}

type fixture struct {
	uc        *UseCase
	client    *fakeClient
	cache     *fakeCache
	publisher *fakePublisher
	metrics   *fakeMetrics
}

func newFixture() *fixture {
	f := &fixture{
		client:    &fakeClient{venue: testVenue()},
		cache:     &fakeCache{},
		publisher: &fakePublisher{},
		metrics:   &fakeMetrics{},
	}
	f.uc = NewUseCase(f.client, f.cache, f.publisher, f.metrics, logger.NewNop()).
		WithTimeProvider(&fixedTime{now: now})
	return f
}

func request(checkIn, checkOut string, guests int) *Request {
	req := &Request{
		Session: &domain.Session{ID: "sid", Profile: domain.Profile{Name: "kari"}, AccessToken: "token"},
		VenueID: "v1",
		Guests:  guests,
	}
	if checkIn != "" {
		req.CheckIn = day(checkIn)
	}
	if checkOut != "" {
		req.CheckOut = day(checkOut)
	}
	return req
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), request("2025-06-10", "2025-06-13", 2))
	require.NoError(t, err)

	assert.Equal(t, "b-new", resp.ID)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 450.0, resp.TotalPrice)
	assert.Equal(t, "Fjord cabin", resp.VenueName)

	require.NotNil(t, f.client.created)
	assert.Equal(t, []string{"v1"}, f.cache.invalidated)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, queue.EventBookingCreated, f.publisher.events[0].Type)
	assert.Equal(t, 450.0, f.publisher.events[0].TotalPrice)
	assert.Equal(t, []string{"ok"}, f.metrics.results)
}

func TestExecute_EngineRejections(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		wantErr  error
		wantCode string
	}{
		{name: "missing check-out", req: request("2025-06-12", "", 2), wantErr: availability.ErrMissingDates, wantCode: "missing_dates"},
		{name: "same day", req: request("2025-06-12", "2025-06-12", 2), wantErr: availability.ErrInvalidRange, wantCode: "invalid_range"},
		{name: "too many guests", req: request("2025-06-12", "2025-06-14", 5), wantErr: availability.ErrGuestCountOutOfBounds, wantCode: "guest_count_out_of_bounds"},
		{name: "zero guests", req: request("2025-06-12", "2025-06-14", 0), wantErr: availability.ErrGuestCountOutOfBounds, wantCode: "guest_count_out_of_bounds"},
		{name: "checkout on booked check-in", req: request("2025-06-18", "2025-06-20", 2), wantErr: availability.ErrDateRangeConflict, wantCode: "date_range_conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.uc.Execute(context.Background(), tt.req)

			assert.True(t, errors.Is(err, ErrInvalidProposal))
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Nil(t, f.client.created)
			assert.Empty(t, f.publisher.events)
			assert.Equal(t, []string{tt.wantCode}, f.metrics.results)
		})
	}
}

func TestExecute_CheckInInPast(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), request("2025-06-09", "2025-06-12", 2))

	assert.True(t, errors.Is(err, ErrDateInPast))
	assert.Nil(t, f.client.created)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	req := request("2025-06-12", "2025-06-14", 2)
	req.VenueID = "  "
	_, err := f.uc.Execute(context.Background(), req)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	req = request("2025-06-12", "2025-06-14", 2)
	req.Session = nil
	_, err = f.uc.Execute(context.Background(), req)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestExecute_VenueNotFound(t *testing.T) {
	f := newFixture()
	f.client.venueErr = holidaze.ErrNotFound

	_, err := f.uc.Execute(context.Background(), request("2025-06-12", "2025-06-14", 2))

	assert.True(t, errors.Is(err, ErrVenueNotFound))
}

func TestExecute_RemoteRejectionKeepsMessage(t *testing.T) {
	f := newFixture()
	f.client.createErr = holidaze.NewAPIError(409, "The selected dates are not available")

	_, err := f.uc.Execute(context.Background(), request("2025-06-12", "2025-06-14", 2))

	assert.True(t, errors.Is(err, ErrRejected))
	var apiErr *holidaze.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "The selected dates are not available", apiErr.Message())
	assert.Empty(t, f.cache.invalidated)
}

func TestExecute_PublishFailureIsNotReturned(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("broker down")

	resp, err := f.uc.Execute(context.Background(), request("2025-06-12", "2025-06-14", 2))

	require.NoError(t, err)
	assert.Equal(t, "b-new", resp.ID)
}
