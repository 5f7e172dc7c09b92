package delete_venue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/service/venues"
	"github.com/m04kA/holidaze-gateway/pkg/logger"
)

type fakeService struct {
	err    error
	called bool
	gotID  string
}

func (f *fakeService) Delete(_ context.Context, _ *domain.Session, id string) error {
	f.called = true
	f.gotID = id
	return f.err
}

var managerSession = &domain.Session{
	ID:          "sid",
	Profile:     domain.Profile{Name: "ola", VenueManager: true},
	AccessToken: "token",
}

func serve(svc *fakeService, withSession bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/manager/venues/v1", nil)
	req = mux.SetURLVars(req, map[string]string{"venueId": "v1"})
	if withSession {
		req = req.WithContext(middleware.WithSession(req.Context(), managerSession))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Deleted(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "v1", svc.gotID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid id", err: venues.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "not a manager", err: venues.ErrNotVenueManager, wantStatus: http.StatusForbidden},
		{name: "another manager's venue", err: venues.ErrNotOwner, wantStatus: http.StatusForbidden},
		{name: "not found", err: venues.ErrVenueNotFound, wantStatus: http.StatusNotFound},
		{name: "token rejected", err: venues.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "remote rejection", err: venues.ErrRejected, wantStatus: http.StatusUnprocessableEntity},
		{name: "upstream down", err: venues.ErrUpstreamUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", err: venues.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_NoSession(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, svc.called)
}
