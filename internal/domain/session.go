package domain

import "time"

// Session is an authenticated client session.
// It is created at login, revoked at logout and expires after its TTL.
// The remote access token never leaves the gateway.
type Session struct {
	ID          string
	Profile     Profile
	AccessToken string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	RevokedAt   *time.Time
}

// IsRevoked returns true if the session was explicitly revoked (logout)
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session TTL has passed
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsActive returns true if the session can authenticate requests
func (s *Session) IsActive(now time.Time) bool {
	return !s.IsRevoked() && !s.IsExpired(now)
}

// IsVenueManager returns true if the session user manages venues
func (s *Session) IsVenueManager() bool {
	return s.Profile.VenueManager
}
