package create_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/availability"
	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/infra/queue"
)

// UseCase use case для создания бронирования
type UseCase struct {
	client       HolidazeClient
	cache        VenueCache
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client HolidazeClient,
	cache VenueCache,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		cache:        cache,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Окончательную проверку пересечений выполняет Holidaze API: локальная проверка
// идет по свежему снимку площадки и отсекает заведомо невозможные бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	venueID := strings.TrimSpace(req.VenueID)
	proposal := domain.BookingProposal{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
	}

	uc.logger.Info("CreateBooking: profile=%s, venue=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.Session.Profile.Name, venueID, formatDay(req.CheckIn), formatDay(req.CheckOut), req.Guests)

	// 2. Получаем площадку мимо кэша: нужны актуальные бронирования
	venue, err := uc.client.GetVenue(ctx, venueID)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to get venue id=%s: %v", venueID, err)
		return nil, mapClientError("GetVenue", err)
	}

	// 3. Дата заезда не может быть в прошлом
	today := uc.timeProvider.Now()
	if !req.CheckIn.IsZero() && availability.IsDateDisabled(req.CheckIn, nil, today) {
		uc.logger.Warn("CreateBooking: check-in %s is before today %s", formatDay(req.CheckIn), formatDay(today))
		uc.metrics.ObserveValidation("date_in_past")
		return nil, ErrDateInPast
	}

	// 4. Проверяем предложение движком доступности
	result := availability.ValidateProposal(proposal, venue, venue.BookedRanges())
	uc.metrics.ObserveValidation(string(result.Code))
	if !result.OK() {
		uc.logger.Warn("CreateBooking: proposal rejected for venue=%s: code=%s", venueID, result.Code)
		return nil, fmt.Errorf("%w: %w", ErrInvalidProposal, result.Err())
	}

	// 5. Создаем бронирование в Holidaze от имени пользователя
	booking, err := uc.client.CreateBooking(ctx, req.Session.AccessToken, venueID, proposal)
	if err != nil {
		uc.logger.Error("CreateBooking: remote create failed for venue=%s: %v", venueID, err)
		return nil, mapClientError("CreateBooking", err)
	}

	totalPrice := availability.ComputeTotalPrice(result.Nights, venue.Price)

	// 6. Снимок площадки в кэше устарел
	if err := uc.cache.Invalidate(ctx, venueID); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate cache for venue=%s: %v", venueID, err)
	}

	// 7. Публикуем событие (ошибка не отменяет бронирование)
	event := queue.NewBookingCreated(booking, venue, req.Session.Profile.Name, result.Nights, totalPrice, uc.timeProvider.Now())
	if err := uc.publisher.PublishBookingEvent(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", booking.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, nights=%d, total=%.2f",
		booking.ID, result.Nights, totalPrice)

	return &Response{
		ID:         booking.ID,
		VenueID:    venue.ID,
		VenueName:  venue.Name,
		DateFrom:   booking.DateFrom,
		DateTo:     booking.DateTo,
		Guests:     booking.Guests,
		Nights:     result.Nights,
		TotalPrice: totalPrice,
		CreatedAt:  booking.CreatedAt,
	}, nil
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(domain.DateFormat)
}
