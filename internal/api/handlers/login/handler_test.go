package login

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/holidaze-gateway/internal/service/auth"
	"github.com/m04kA/holidaze-gateway/internal/service/auth/models"
	"github.com/m04kA/holidaze-gateway/pkg/logger"
)

type fakeService struct {
	resp *models.LoginResponse
	err  error
	got  *models.LoginRequest
}

func (f *fakeService) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	f.got = req
	return f.resp, f.err
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{resp: &models.LoginResponse{SessionID: "sid-1", Profile: models.ProfileResponse{Name: "kari"}}}

	rec := serve(svc, `{"email":"kari@stud.noroff.no","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kari@stud.noroff.no", svc.got.Email)

	var body models.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "sid-1", body.SessionID)
	assert.Equal(t, "kari", body.Profile.Name)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: auth.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "wrong password", err: auth.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "upstream down", err: auth.ErrUpstreamUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "session storage", err: auth.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, `{"email":"kari@stud.noroff.no","password":"secret123"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}
