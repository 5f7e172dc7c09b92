package quote_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/availability"
	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// UseCase use case для расчета стоимости и проверки бронирования без его создания
type UseCase struct {
	venues       VenueProvider
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(venues VenueProvider, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		venues:       venues,
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

// Execute выполняет расчет
// Ошибка возвращается только при проблемах с получением площадки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	venueID := strings.TrimSpace(req.VenueID)
	if venueID == "" {
		return nil, fmt.Errorf("%w: venueId is required", ErrInvalidInput)
	}

	// 2. Получаем площадку
	venue, err := uc.venues.Venue(ctx, venueID)
	if err != nil {
		uc.logger.Warn("QuoteBooking: failed to get venue id=%s: %v", venueID, err)
		return nil, mapVenueError(err)
	}

	proposal := domain.BookingProposal{CheckIn: req.CheckIn, CheckOut: req.CheckOut, Guests: req.Guests}

	// 3. Проверяем предложение движком доступности
	result := availability.ValidateProposal(proposal, venue, venue.BookedRanges())

	resp := &Response{
		VenueID:       venue.ID,
		Valid:         result.OK(),
		Code:          string(result.Code),
		Field:         result.Field,
		Conflict:      result.Conflict,
		Nights:        result.Nights,
		PricePerNight: venue.Price,
		TotalPrice:    availability.ComputeTotalPrice(result.Nights, venue.Price),
		MaxGuests:     result.MaxGuests,
	}
	if err := result.Err(); err != nil {
		resp.Message = err.Error()
	}

	// 4. Дата заезда в прошлом проверяется раньше движка, как при создании бронирования
	if !req.CheckIn.IsZero() && availability.IsDateDisabled(req.CheckIn, nil, uc.timeProvider.Now()) {
		resp.Valid = false
		resp.Code = CodeDateInPast
		resp.Field = availability.FieldDates
		resp.Conflict = nil
		resp.Message = "check-in date is in the past"
	}

	uc.metrics.ObserveValidation(resp.Code)
	uc.logger.Info("QuoteBooking: venue=%s, code=%s, nights=%d, total=%.2f",
		venueID, resp.Code, resp.Nights, resp.TotalPrice)

	return resp, nil
}
