package availability

import "errors"

var (
	// ErrMissingDates возвращается, когда не выбрана дата заезда или выезда
	ErrMissingDates = errors.New("availability: check-in or check-out date is missing")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("availability: check-out must be after check-in")

	// ErrGuestCountOutOfBounds возвращается, когда количество гостей вне [1, maxGuests]
	ErrGuestCountOutOfBounds = errors.New("availability: guest count out of bounds")

	// ErrDateRangeConflict возвращается, когда период пересекается с существующим бронированием
	ErrDateRangeConflict = errors.New("availability: date range conflicts with an existing booking")
)
