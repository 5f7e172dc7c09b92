package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// LoginResult результат входа: профиль и токен доступа к API
type LoginResult struct {
	Profile     domain.Profile
	AccessToken string
}

// Login выполняет вход пользователя
// Флаг _holidaze=true добавляет в ответ признак venueManager
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var dto LoginDTO
	_, err := c.do(ctx, request{
		operation: "login",
		method:    http.MethodPost,
		path:      "/auth/login",
		query:     url.Values{"_holidaze": []string{"true"}},
		body:      loginRequest{Email: email, Password: password},
	}, &dto)
	if err != nil {
		return nil, err
	}

	profile, err := toDomainProfile(&dto.ProfileDTO)
	if err != nil {
		return nil, err
	}
	if dto.AccessToken == "" {
		return nil, errEmptyToken
	}

	return &LoginResult{Profile: *profile, AccessToken: dto.AccessToken}, nil
}

// Register регистрирует новый профиль
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.Profile, error) {
	var dto ProfileDTO
	_, err := c.do(ctx, request{
		operation: "register",
		method:    http.MethodPost,
		path:      "/auth/register",
		body: registerRequest{
			Name:         reg.Name,
			Email:        reg.Email,
			Password:     reg.Password,
			VenueManager: reg.VenueManager,
		},
	}, &dto)
	if err != nil {
		return nil, err
	}

	return toDomainProfile(&dto)
}
