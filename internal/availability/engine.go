// Package availability decides whether a stay can be booked against a venue's
// known bookings and guest cap, and which calendar days must be disabled.
//
// All functions are pure: no I/O, no clock access, no shared state. The caller
// supplies "today" and the booked ranges snapshot. Dates are compared as UTC
// calendar days.
//
// Boundary policy: booked ranges are inclusive on both ends. A check-in on the
// checkout day of an existing booking conflicts with it (no same-day turnover).
package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// Code классифицирует результат валидации предложения бронирования
type Code string

const (
	CodeOK                    Code = "ok"
	CodeMissingDates          Code = "missing_dates"
	CodeInvalidRange          Code = "invalid_range"
	CodeGuestCountOutOfBounds Code = "guest_count_out_of_bounds"
	CodeDateRangeConflict     Code = "date_range_conflict"
)

// Поля формы, к которым относится ошибка
const (
	FieldDates  = "dates"
	FieldGuests = "guests"
)

// Result результат валидации предложения бронирования
type Result struct {
	Code      Code
	Field     string            // поле формы для отображения ошибки (пусто при CodeOK)
	Nights    int               // количество ночей (0, если даты не выбраны или некорректны)
	Conflict  *domain.DateRange // первое пересекающееся бронирование (только для CodeDateRangeConflict)
	MaxGuests int               // ограничение площадки по гостям
}

// OK возвращает true, если предложение можно отправлять
func (r Result) OK() bool {
	return r.Code == CodeOK
}

// Err конвертирует результат в sentinel-ошибку пакета (nil для CodeOK)
func (r Result) Err() error {
	switch r.Code {
	case CodeOK:
		return nil
	case CodeMissingDates:
		return ErrMissingDates
	case CodeInvalidRange:
		return ErrInvalidRange
	case CodeGuestCountOutOfBounds:
		return fmt.Errorf("%w: guests must be between %d and %d", ErrGuestCountOutOfBounds, domain.MinGuests, r.MaxGuests)
	case CodeDateRangeConflict:
		if r.Conflict != nil {
			return fmt.Errorf("%w: booked %s", ErrDateRangeConflict, r.Conflict.String())
		}
		return ErrDateRangeConflict
	default:
		return fmt.Errorf("availability: unknown result code %q", r.Code)
	}
}

// IsDateDisabled возвращает true, если день нельзя выбрать в календаре:
// день раньше today или попадает в [from, to] любого бронирования (включительно)
func IsDateDisabled(date time.Time, bookedRanges []domain.DateRange, today time.Time) bool {
	d := domain.DateOnly(date)
	if d.Before(domain.DateOnly(today)) {
		return true
	}

	for _, r := range bookedRanges {
		if r.Contains(d) {
			return true
		}
	}

	return false
}

// ComputeNights возвращает количество ночей между датами заезда и выезда
// Для перевернутых или равных дат возвращает 0
func ComputeNights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	nights := domain.DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0
	}
	return nights
}

// ComputeNightsISO как ComputeNights, но для строк YYYY-MM-DD или RFC 3339
// Нераспознанная дата дает 0
func ComputeNightsISO(checkIn, checkOut string) int {
	in, err := domain.ParseDate(checkIn)
	if err != nil {
		return 0
	}
	out, err := domain.ParseDate(checkOut)
	if err != nil {
		return 0
	}
	return ComputeNights(in, out)
}

// ComputeTotalPrice возвращает стоимость проживания
// Округление не выполняется: точность определяется ценой за ночь
func ComputeTotalPrice(nights int, pricePerNight float64) float64 {
	if nights <= 0 {
		return 0
	}
	return float64(nights) * pricePerNight
}

// FindConflict возвращает первое бронирование, пересекающееся с proposed
// Пересечение: proposed.From <= existing.To && proposed.To >= existing.From
func FindConflict(proposed domain.DateRange, bookedRanges []domain.DateRange) (domain.DateRange, bool) {
	for _, existing := range bookedRanges {
		if proposed.Overlaps(existing) {
			return existing, true
		}
	}
	return domain.DateRange{}, false
}

// ValidateProposal проверяет предложение бронирования по порядку:
// даты выбраны, период не пустой, количество гостей в [1, maxGuests], нет пересечений.
// Никогда не возвращает ошибку: результат описывает первую найденную проблему
func ValidateProposal(proposal domain.BookingProposal, venue *domain.Venue, bookedRanges []domain.DateRange) Result {
	maxGuests := 0
	if venue != nil {
		maxGuests = venue.MaxGuests
	}

	if !proposal.HasDates() {
		return Result{Code: CodeMissingDates, Field: FieldDates, MaxGuests: maxGuests}
	}

	nights := ComputeNights(proposal.CheckIn, proposal.CheckOut)
	if nights == 0 {
		return Result{Code: CodeInvalidRange, Field: FieldDates, MaxGuests: maxGuests}
	}

	if proposal.Guests < domain.MinGuests || proposal.Guests > maxGuests {
		return Result{Code: CodeGuestCountOutOfBounds, Field: FieldGuests, Nights: nights, MaxGuests: maxGuests}
	}

	if conflict, ok := FindConflict(proposal.Range(), bookedRanges); ok {
		return Result{
			Code:      CodeDateRangeConflict,
			Field:     FieldDates,
			Nights:    nights,
			Conflict:  &conflict,
			MaxGuests: maxGuests,
		}
	}

	return Result{Code: CodeOK, Nights: nights, MaxGuests: maxGuests}
}

// DisabledDates перечисляет дни окна window, для которых IsDateDisabled == true
func DisabledDates(window domain.DateRange, bookedRanges []domain.DateRange, today time.Time) []time.Time {
	disabled := make([]time.Time, 0)
	if !window.IsValid() {
		return disabled
	}

	for d := window.From; !d.After(window.To); d = d.AddDate(0, 0, 1) {
		if IsDateDisabled(d, bookedRanges, today) {
			disabled = append(disabled, d)
		}
	}

	return disabled
}
