package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/availability"
	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
	createBooking "github.com/m04kA/holidaze-gateway/internal/usecase/create_booking"
	"github.com/m04kA/holidaze-gateway/pkg/logger"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

var testSession = &domain.Session{ID: "sid", Profile: domain.Profile{Name: "kari"}, AccessToken: "token"}

func serve(uc *fakeUseCase, body string, withSession bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withSession {
		req = req.WithContext(middleware.WithSession(req.Context(), testSession))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:         "b1",
		VenueID:    "v1",
		VenueName:  "Fjord cabin",
		DateFrom:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		Nights:     3,
		TotalPrice: 450,
	}}

	rec := serve(uc, `{"venueId":"v1","dateFrom":"2025-07-01","dateTo":"2025-07-04","guests":2}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "b1", body.ID)
	assert.Equal(t, "2025-07-01", body.DateFrom)
	assert.Equal(t, 450.0, body.TotalPrice)

	require.NotNil(t, uc.got)
	assert.Equal(t, testSession, uc.got.Session)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), uc.got.CheckOut)
}

func TestHandle_EmptyDatesReachUseCase(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: %w", createBooking.ErrInvalidProposal, availability.ErrMissingDates)}

	rec := serve(uc, `{"venueId":"v1","dateFrom":"","guests":1}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, uc.got)
	assert.True(t, uc.got.CheckIn.IsZero())
	assert.True(t, uc.got.CheckOut.IsZero())
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantDetails string
	}{
		{name: "date conflict", err: fmt.Errorf("%w: %w", createBooking.ErrInvalidProposal, availability.ErrDateRangeConflict), wantStatus: http.StatusConflict},
		{name: "guest count", err: fmt.Errorf("%w: %w", createBooking.ErrInvalidProposal, availability.ErrGuestCountOutOfBounds), wantStatus: http.StatusBadRequest},
		{name: "date in past", err: createBooking.ErrDateInPast, wantStatus: http.StatusBadRequest},
		{name: "venue not found", err: createBooking.ErrVenueNotFound, wantStatus: http.StatusNotFound},
		{name: "token rejected", err: createBooking.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{
			name:        "remote rejection",
			err:         fmt.Errorf("%w: %w", createBooking.ErrRejected, holidaze.NewAPIError(409, "Dates taken")),
			wantStatus:  http.StatusUnprocessableEntity,
			wantDetails: "Dates taken",
		},
		{name: "upstream down", err: createBooking.ErrUpstreamUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, `{"venueId":"v1","dateFrom":"2025-07-01","dateTo":"2025-07-04","guests":2}`, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetails != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantDetails, body.Details)
			}
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &fakeUseCase{}

	assert.Equal(t, http.StatusBadRequest, serve(uc, `{"venueId":`, true).Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, `{"venueId":"v1","extra":1}`, true).Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, `{"venueId":"v1","dateFrom":"01/07/2025"}`, true).Code)
	assert.Nil(t, uc.got)
}

func TestHandle_NoSession(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, `{"venueId":"v1"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}
