package create_booking

import (
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Session  *domain.Session // сессия пользователя (токен Holidaze внутри)
	VenueID  string          // ID площадки
	CheckIn  time.Time       // дата заезда (нулевая, если не выбрана)
	CheckOut time.Time       // дата выезда (нулевая, если не выбрана)
	Guests   int             // количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string    // ID бронирования в Holidaze
	VenueID    string    // ID площадки
	VenueName  string    // название площадки
	DateFrom   time.Time // дата заезда
	DateTo     time.Time // дата выезда
	Guests     int       // количество гостей
	Nights     int       // количество ночей
	TotalPrice float64   // стоимость проживания
	CreatedAt  time.Time // время создания
}
