package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	sessionRepo "github.com/m04kA/holidaze-gateway/internal/infra/storage/session"
	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
	"github.com/m04kA/holidaze-gateway/internal/service/auth/models"
)

// Service сервис аутентификации и профиля
// Токен доступа Holidaze хранится только в сессии и не отдается клиенту
type Service struct {
	client       HolidazeClient
	sessionRepo  SessionRepository
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	client HolidazeClient,
	sessionRepo SessionRepository,
	sessionTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		sessionRepo:  sessionRepo,
		sessionTTL:   sessionTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Register регистрирует новый профиль в Holidaze
// Сессия не создается: после регистрации пользователь выполняет вход
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Register: name=%s, venueManager=%t", req.Name, req.VenueManager)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	profile, err := s.client.Register(ctx, domain.Registration{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Password:     req.Password,
		VenueManager: req.VenueManager,
	})
	if err != nil {
		s.logger.Warn("Register: remote registration failed for name=%s: %v", req.Name, err)
		return nil, mapClientError("Register", err)
	}

	s.logger.Info("Register: successfully registered profile name=%s", profile.Name)
	return models.FromDomainProfile(profile), nil
}

// Login выполняет вход в Holidaze и создает сессию
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: attempt for email=%s", req.Email)

	if err := validateLogin(req); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, err
	}

	result, err := s.client.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, holidaze.ErrUnauthorized) || errors.Is(err, holidaze.ErrRejected) {
			s.logger.Warn("Login: invalid credentials for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: remote login failed for email=%s: %v", req.Email, err)
		return nil, mapClientError("Login", err)
	}

	now := s.timeProvider.Now()
	session := &domain.Session{
		ID:          uuid.NewString(),
		Profile:     result.Profile,
		AccessToken: result.AccessToken,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("Login: failed to store session for profile=%s: %v", result.Profile.Name, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session created for profile=%s, expires_at=%s",
		result.Profile.Name, session.ExpiresAt.Format(time.RFC3339))

	return &models.LoginResponse{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		Profile:   *models.FromDomainProfile(&session.Profile),
	}, nil
}

// Logout отзывает сессию
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	s.logger.Info("Logout: revoking session")

	if err := s.sessionRepo.Revoke(ctx, sessionID, s.timeProvider.Now()); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Logout: session not found or already revoked")
			return ErrSessionNotFound
		}
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Resolve возвращает активную сессию по идентификатору
func (s *Service) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Resolve: repository error: %v", err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if !session.IsActive(s.timeProvider.Now()) {
		return nil, ErrSessionExpired
	}

	return session, nil
}

// GetProfile получает актуальный профиль пользователя сессии со счетчиками
func (s *Service) GetProfile(ctx context.Context, session *domain.Session) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: profile=%s", session.Profile.Name)

	profile, err := s.client.GetProfile(ctx, session.AccessToken, session.Profile.Name)
	if err != nil {
		s.logger.Warn("GetProfile: remote error for profile=%s: %v", session.Profile.Name, err)
		return nil, mapClientError("GetProfile", err)
	}

	return models.FromDomainProfile(profile), nil
}

// UpdateAvatar обновляет аватар и профиль, сохраненный в сессии
func (s *Service) UpdateAvatar(ctx context.Context, session *domain.Session, req *models.UpdateAvatarRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateAvatar: profile=%s", session.Profile.Name)

	if err := validateAvatar(req); err != nil {
		s.logger.Warn("UpdateAvatar: validation failed: %v", err)
		return nil, err
	}

	avatar := domain.Media{URL: strings.TrimSpace(req.URL), Alt: strings.TrimSpace(req.Alt)}
	profile, err := s.client.UpdateAvatar(ctx, session.AccessToken, session.Profile.Name, avatar)
	if err != nil {
		s.logger.Warn("UpdateAvatar: remote error for profile=%s: %v", session.Profile.Name, err)
		return nil, mapClientError("UpdateAvatar", err)
	}

	// Профиль в сессии обновляется без отказа операции: аватар уже сохранен в Holidaze
	if err := s.sessionRepo.UpdateProfile(ctx, session.ID, *profile); err != nil {
		s.logger.Warn("UpdateAvatar: failed to refresh session profile=%s: %v", session.Profile.Name, err)
	}

	s.logger.Info("UpdateAvatar: successfully updated avatar for profile=%s", profile.Name)
	return models.FromDomainProfile(profile), nil
}

// CleanupExpired удаляет истекшие и отозванные сессии
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := s.sessionRepo.DeleteExpired(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("CleanupExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: CleanupExpired - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("CleanupExpired: deleted %d sessions", deleted)
	}
	return deleted, nil
}

// RunCleanup периодически удаляет истекшие сессии до отмены контекста
func (s *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.CleanupExpired(ctx)
		}
	}
}
