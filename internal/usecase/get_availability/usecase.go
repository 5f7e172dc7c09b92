package get_availability

import (
	"context"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/availability"
	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// UseCase use case для получения календаря занятости площадки
type UseCase struct {
	venues       VenueProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(venues VenueProvider, logger Logger) *UseCase {
	return &UseCase{
		venues:       venues,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения календаря
// Возвращает занятые периоды и дни окна, которые нельзя выбрать
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно календаря
	today := domain.DateOnly(uc.timeProvider.Now())
	window, err := resolveWindow(req.From, req.To, today)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid window for venue=%s: %v", req.VenueID, err)
		return nil, err
	}

	venueID := strings.TrimSpace(req.VenueID)
	uc.logger.Info("GetAvailability: venue=%s, window=%s", venueID, window.String())

	// 3. Получаем площадку
	venue, err := uc.venues.Venue(ctx, venueID)
	if err != nil {
		uc.logger.Warn("GetAvailability: failed to get venue id=%s: %v", venueID, err)
		return nil, mapVenueError(err)
	}

	// 4. Занятые периоды и недоступные дни окна
	booked := venue.BookedRanges()
	disabled := availability.DisabledDates(window, booked, today)

	result := domain.Availability{
		VenueID:       venue.ID,
		Window:        window,
		Today:         today,
		MaxGuests:     venue.MaxGuests,
		PricePerNight: venue.Price,
		BookedRanges:  booked,
		DisabledDates: disabled,
	}

	uc.logger.Info("GetAvailability: venue=%s, booked=%d, disabled=%d of %d days",
		venueID, len(booked), len(disabled), result.TotalDays())

	return &Response{Availability: result}, nil
}
