package models

import (
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAvatarRequest запрос на смену аватара
type UpdateAvatarRequest struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Response модели

// MediaResponse изображение
type MediaResponse struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ProfileResponse профиль пользователя
type ProfileResponse struct {
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Bio           string         `json:"bio,omitempty"`
	Avatar        *MediaResponse `json:"avatar,omitempty"`
	Banner        *MediaResponse `json:"banner,omitempty"`
	VenueManager  bool           `json:"venueManager"`
	VenuesCount   int            `json:"venuesCount"`
	BookingsCount int            `json:"bookingsCount"`
}

// LoginResponse ответ на вход: идентификатор сессии и профиль
type LoginResponse struct {
	SessionID string          `json:"sessionId"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Profile   ProfileResponse `json:"profile"`
}

// Методы конвертации

// FromDomainMedia конвертирует domain модель изображения в DTO
func FromDomainMedia(m *domain.Media) *MediaResponse {
	if m == nil {
		return nil
	}
	return &MediaResponse{URL: m.URL, Alt: m.Alt}
}

// FromDomainProfile конвертирует domain модель профиля в DTO
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		Name:          p.Name,
		Email:         p.Email,
		Bio:           p.Bio,
		Avatar:        FromDomainMedia(p.Avatar),
		Banner:        FromDomainMedia(p.Banner),
		VenueManager:  p.VenueManager,
		VenuesCount:   p.VenuesCount,
		BookingsCount: p.BookingsCount,
	}
}
