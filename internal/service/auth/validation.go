package auth

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/service/auth/models"
)

// Регистрация разрешена только с адресом @stud.noroff.no
var noroffEmailPattern = regexp.MustCompile(`(?i)^[\w.-]+@stud\.noroff\.no$`)

// Имя профиля в Holidaze API: буквы, цифры и подчеркивание
var profileNamePattern = regexp.MustCompile(`^\w+$`)

// IsValidNoroffEmail проверяет, что email принадлежит домену stud.noroff.no
func IsValidNoroffEmail(email string) bool {
	return noroffEmailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidPassword проверяет минимальную длину пароля без учета пробелов по краям
func IsValidPassword(password string) bool {
	return len([]rune(strings.TrimSpace(password))) >= domain.MinPasswordLength
}

func validateRegister(req *models.RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength || !profileNamePattern.MatchString(name) {
		return fmt.Errorf("%w: name must be up to %d letters, digits or underscores", ErrInvalidInput, domain.MaxNameLength)
	}
	if !IsValidNoroffEmail(req.Email) {
		return fmt.Errorf("%w: email must be a valid @stud.noroff.no address", ErrInvalidInput)
	}
	if !IsValidPassword(req.Password) {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	return nil
}

func validateLogin(req *models.LoginRequest) error {
	if !IsValidNoroffEmail(req.Email) {
		return fmt.Errorf("%w: email must be a valid @stud.noroff.no address", ErrInvalidInput)
	}
	if !IsValidPassword(req.Password) {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	return nil
}

func validateAvatar(req *models.UpdateAvatarRequest) error {
	u, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: avatar url must be an absolute http(s) url", ErrInvalidInput)
	}
	return nil
}
