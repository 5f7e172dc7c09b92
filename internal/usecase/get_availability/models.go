package get_availability

import (
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// Request модель запроса календаря занятости площадки
type Request struct {
	VenueID string    // ID площадки
	From    time.Time // начало окна (нулевое - сегодня)
	To      time.Time // конец окна включительно (нулевой - From + 2 месяца)
}

// Response модель ответа с календарем занятости
type Response struct {
	Availability domain.Availability // Today внутри: дни до него недоступны
}
