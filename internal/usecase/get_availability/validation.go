package get_availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueId is required", ErrInvalidInput)
	}
	return nil
}

// resolveWindow подставляет окно по умолчанию и проверяет ограничения
// По умолчанию окно начинается сегодня и длится два месяца
func resolveWindow(from, to, today time.Time) (domain.DateRange, error) {
	if from.IsZero() {
		from = today
	}
	from = domain.DateOnly(from)

	if to.IsZero() {
		to = from.AddDate(0, domain.DefaultCalendarMonths, 0)
	}

	window := domain.NewDateRange(from, to)
	if !window.IsValid() {
		return window, fmt.Errorf("%w: to must not be before from", ErrInvalidWindow)
	}
	if window.Days() > domain.MaxCalendarDays {
		return window, fmt.Errorf("%w: window must not exceed %d days", ErrInvalidWindow, domain.MaxCalendarDays)
	}
	return window, nil
}
