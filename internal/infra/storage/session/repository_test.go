package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s := &domain.Session{
		ID:          "5f1c0c9e-0000-4000-8000-000000000001",
		Profile:     domain.Profile{Name: "kari", Email: "kari@stud.noroff.no", VenueManager: true},
		AccessToken: "token-1",
		CreatedAt:   now,
		ExpiresAt:   now.Add(24 * time.Hour),
	}

	mock.ExpectExec(`INSERT INTO sessions \(id,profile_name,profile,access_token,created_at,expires_at\)`).
		WithArgs(s.ID, "kari", sqlmock.AnyArg(), "token-1", s.CreatedAt, s.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO sessions`).WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), &domain.Session{ID: "id", Profile: domain.Profile{Name: "kari"}})

	assert.True(t, errors.Is(err, ErrExecQuery))
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	revoked := created.Add(time.Hour)

	rows := sqlmock.NewRows([]string{"id", "profile", "access_token", "created_at", "expires_at", "revoked_at"}).
		AddRow("sid", []byte(`{"name":"kari","email":"kari@stud.noroff.no","avatar":{"url":"https://img/a.jpg"},"venueManager":true}`),
			"token-1", created, created.Add(24*time.Hour), revoked)

	mock.ExpectQuery(`SELECT id, profile, access_token, created_at, expires_at, revoked_at FROM sessions WHERE id = \$1`).
		WithArgs("sid").
		WillReturnRows(rows)

	s, err := repo.GetByID(context.Background(), "sid")
	require.NoError(t, err)

	assert.Equal(t, "sid", s.ID)
	assert.Equal(t, "kari", s.Profile.Name)
	assert.True(t, s.Profile.VenueManager)
	require.NotNil(t, s.Profile.Avatar)
	assert.Equal(t, "https://img/a.jpg", s.Profile.Avatar.URL)
	assert.Nil(t, s.Profile.Banner)
	assert.Equal(t, "token-1", s.AccessToken)
	require.NotNil(t, s.RevokedAt)
	assert.True(t, s.IsRevoked())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM sessions`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile", "access_token", "created_at", "expires_at", "revoked_at"}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestRepository_Revoke(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE sessions SET revoked_at = \$1 WHERE id = \$2 AND revoked_at IS NULL`).
		WithArgs(at, "sid").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Revoke(context.Background(), "sid", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Revoke_AlreadyRevoked(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE sessions SET revoked_at`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Revoke(context.Background(), "sid", time.Now())

	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestRepository_UpdateProfile(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE sessions SET profile = \$1 WHERE id = \$2 AND revoked_at IS NULL`).
		WithArgs(sqlmock.AnyArg(), "sid").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(context.Background(), "sid", domain.Profile{
		Name:   "kari",
		Avatar: &domain.Media{URL: "https://img/new.jpg", Alt: "me"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM sessions WHERE \(expires_at <= \$1 OR revoked_at IS NOT NULL\)`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRoundTrip(t *testing.T) {
	p := domain.Profile{
		Name:          "kari",
		Email:         "kari@stud.noroff.no",
		Bio:           "hi",
		Avatar:        &domain.Media{URL: "https://img/a.jpg", Alt: "a"},
		Banner:        &domain.Media{URL: "https://img/b.jpg"},
		VenueManager:  true,
		VenuesCount:   2,
		BookingsCount: 5,
	}

	data, err := encodeProfile(p)
	require.NoError(t, err)

	decoded, err := decodeProfile(data)
	require.NoError(t, err)
	assert.Equal(t, p, *decoded)
}
