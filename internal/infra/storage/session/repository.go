package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/pkg/psqlbuilder"
)

const table = "sessions"

// Repository репозиторий сессий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// profileRecord профиль в колонке profile (jsonb)
type profileRecord struct {
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Bio           string       `json:"bio,omitempty"`
	Avatar        *mediaRecord `json:"avatar,omitempty"`
	Banner        *mediaRecord `json:"banner,omitempty"`
	VenueManager  bool         `json:"venueManager"`
	VenuesCount   int          `json:"venuesCount,omitempty"`
	BookingsCount int          `json:"bookingsCount,omitempty"`
}

type mediaRecord struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, s *domain.Session) error {
	profile, err := encodeProfile(s.Profile)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"profile_name",
			"profile",
			"access_token",
			"created_at",
			"expires_at",
		).
		Values(
			s.ID,
			s.Profile.Name,
			profile,
			s.AccessToken,
			s.CreatedAt,
			s.ExpiresAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает сессию по ID (включая отозванные и истекшие)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"profile",
		"access_token",
		"created_at",
		"expires_at",
		"revoked_at",
	).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s         domain.Session
		profile   []byte
		revokedAt sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&profile,
		&s.AccessToken,
		&s.CreatedAt,
		&s.ExpiresAt,
		&revokedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	decoded, err := decodeProfile(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode profile: %v", ErrScanRow, err)
	}
	s.Profile = *decoded

	s.CreatedAt = s.CreatedAt.UTC()
	s.ExpiresAt = s.ExpiresAt.UTC()
	if revokedAt.Valid {
		t := revokedAt.Time.UTC()
		s.RevokedAt = &t
	}

	return &s, nil
}

// UpdateProfile обновляет сохраненный в сессии профиль (например, после смены аватара)
func (r *Repository) UpdateProfile(ctx context.Context, id string, profile domain.Profile) error {
	encoded, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update(table).
		Set("profile", encoded).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "UpdateProfile", query, args)
}

// Revoke отзывает активную сессию
func (r *Repository) Revoke(ctx context.Context, id string, at time.Time) error {
	query, args, err := psqlbuilder.Update(table).
		Set("revoked_at", at).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Revoke - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Revoke", query, args)
}

// DeleteExpired удаляет истекшие и отозванные сессии, возвращает количество удаленных
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Or{
			squirrel.LtOrEq{"expires_at": now},
			squirrel.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, op, query string, args []interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func encodeProfile(p domain.Profile) ([]byte, error) {
	rec := profileRecord{
		Name:          p.Name,
		Email:         p.Email,
		Bio:           p.Bio,
		VenueManager:  p.VenueManager,
		VenuesCount:   p.VenuesCount,
		BookingsCount: p.BookingsCount,
	}
	if p.Avatar != nil {
		rec.Avatar = &mediaRecord{URL: p.Avatar.URL, Alt: p.Avatar.Alt}
	}
	if p.Banner != nil {
		rec.Banner = &mediaRecord{URL: p.Banner.URL, Alt: p.Banner.Alt}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeProfile, err)
	}
	return data, nil
}

func decodeProfile(data []byte) (*domain.Profile, error) {
	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	p := &domain.Profile{
		Name:          rec.Name,
		Email:         rec.Email,
		Bio:           rec.Bio,
		VenueManager:  rec.VenueManager,
		VenuesCount:   rec.VenuesCount,
		BookingsCount: rec.BookingsCount,
	}
	if rec.Avatar != nil {
		p.Avatar = &domain.Media{URL: rec.Avatar.URL, Alt: rec.Avatar.Alt}
	}
	if rec.Banner != nil {
		p.Banner = &domain.Media{URL: rec.Banner.URL, Alt: rec.Banner.Alt}
	}

	return p, nil
}
