package quote_booking

import (
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// CodeDateInPast код результата, когда дата заезда раньше сегодняшнего дня
const CodeDateInPast = "date_in_past"

// Request модель запроса расчета бронирования
type Request struct {
	VenueID  string    // ID площадки
	CheckIn  time.Time // дата заезда (нулевая, если не выбрана)
	CheckOut time.Time // дата выезда (нулевая, если не выбрана)
	Guests   int       // количество гостей
}

// Response результат расчета: стоимость и итог проверки предложения
// Невалидное предложение не является ошибкой
type Response struct {
	VenueID       string
	Valid         bool
	Code          string            // код движка доступности или CodeDateInPast
	Field         string            // поле формы, к которому относится проблема
	Message       string            // описание проблемы (пусто, если Valid)
	Conflict      *domain.DateRange // пересекающееся бронирование
	Nights        int
	PricePerNight float64
	TotalPrice    float64
	MaxGuests     int
}
