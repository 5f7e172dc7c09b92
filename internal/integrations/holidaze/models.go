package holidaze

import "encoding/json"

// envelope обертка всех ответов Holidaze API
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Meta   *PageMeta       `json:"meta,omitempty"`
	Errors []apiMessage    `json:"errors,omitempty"`
}

type apiMessage struct {
	Message string `json:"message"`
}

// PageMeta метаданные пагинации списков
type PageMeta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

// MediaDTO изображение
type MediaDTO struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ProfileDTO профиль пользователя
type ProfileDTO struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bio          *string   `json:"bio"`
	Avatar       *MediaDTO `json:"avatar"`
	Banner       *MediaDTO `json:"banner"`
	VenueManager bool      `json:"venueManager"`
	Count        *countDTO `json:"_count,omitempty"`
}

type countDTO struct {
	Venues   int `json:"venues"`
	Bookings int `json:"bookings"`
}

// LoginDTO ответ на вход: профиль и токен доступа
type LoginDTO struct {
	ProfileDTO
	AccessToken string `json:"accessToken"`
}

// VenueMetaDTO удобства площадки
type VenueMetaDTO struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// LocationDTO расположение площадки
// Поля nullable в API
type LocationDTO struct {
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	Zip       *string  `json:"zip"`
	Country   *string  `json:"country"`
	Continent *string  `json:"continent"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}

// VenueDTO площадка
type VenueDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Media       []MediaDTO   `json:"media"`
	Price       float64      `json:"price"`
	MaxGuests   int          `json:"maxGuests"`
	Rating      float64      `json:"rating"`
	Created     string       `json:"created"`
	Updated     string       `json:"updated"`
	Meta        VenueMetaDTO `json:"meta"`
	Location    LocationDTO  `json:"location"`
	Owner       *ProfileDTO  `json:"owner,omitempty"`
	Bookings    []BookingDTO `json:"bookings,omitempty"`
}

// BookingDTO бронирование
type BookingDTO struct {
	ID       string      `json:"id"`
	DateFrom string      `json:"dateFrom"`
	DateTo   string      `json:"dateTo"`
	Guests   int         `json:"guests"`
	Created  string      `json:"created"`
	Updated  string      `json:"updated"`
	Venue    *VenueDTO   `json:"venue,omitempty"`
	Customer *ProfileDTO `json:"customer,omitempty"`
}

// Request модели

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

type updateProfileRequest struct {
	Avatar *MediaDTO `json:"avatar,omitempty"`
}

type venueRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Media       []MediaDTO   `json:"media"`
	Price       float64      `json:"price"`
	MaxGuests   int          `json:"maxGuests"`
	Rating      float64      `json:"rating"`
	Meta        VenueMetaDTO `json:"meta"`
	Location    LocationDTO  `json:"location"`
}

type createBookingRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
	VenueID  string `json:"venueId"`
}
