package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	getAvailability "github.com/m04kA/holidaze-gateway/internal/usecase/get_availability"
	"github.com/m04kA/holidaze-gateway/pkg/logger"
)

type fakeUseCase struct {
	resp *getAvailability.Response
	err  error
	got  *getAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.got = req
	return f.resp, f.err
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, target, nil), map[string]string{"venueId": "v1"})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Calendar(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{Availability: domain.Availability{
		VenueID:       "v1",
		Window:        domain.NewDateRange(day("2025-06-10"), day("2025-06-13")),
		Today:         day("2025-06-10"),
		MaxGuests:     4,
		PricePerNight: 100,
		BookedRanges:  []domain.DateRange{domain.NewDateRange(day("2025-06-12"), day("2025-06-13"))},
		DisabledDates: []time.Time{day("2025-06-12"), day("2025-06-13")},
	}}}

	rec := serve(uc, "/api/v1/venues/v1/availability?from=2025-06-10&to=2025-06-13")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", uc.got.VenueID)
	assert.Equal(t, day("2025-06-10"), uc.got.From)
	assert.Equal(t, day("2025-06-13"), uc.got.To)

	var body AvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"2025-06-12", "2025-06-13"}, body.DisabledDates)
	assert.Equal(t, []RangeResponse{{From: "2025-06-12", To: "2025-06-13"}}, body.BookedRanges)
	assert.Equal(t, 4, body.TotalDays)
	assert.Equal(t, 2, body.AvailableDays)
	assert.Equal(t, 50.0, body.OccupancyRate)
}

func TestHandle_Errors(t *testing.T) {
	uc := &fakeUseCase{}
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/venues/v1/availability?from=June").Code)
	assert.Nil(t, uc.got)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: getAvailability.ErrInvalidWindow}, "/api/v1/venues/v1/availability").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeUseCase{err: getAvailability.ErrVenueNotFound}, "/api/v1/venues/v1/availability").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(&fakeUseCase{err: getAvailability.ErrUpstreamUnavailable}, "/api/v1/venues/v1/availability").Code)
}
