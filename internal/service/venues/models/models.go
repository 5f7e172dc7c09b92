package models

import (
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// Request модели

// ListVenuesRequest запрос списка площадок
type ListVenuesRequest struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Region string `json:"region,omitempty"` // нормализованный континент или "All"
	Guests int    `json:"guests,omitempty"` // минимальная вместимость
}

// SearchVenuesRequest запрос поиска площадок
type SearchVenuesRequest struct {
	Query  string `json:"q"`
	Guests int    `json:"guests,omitempty"`
}

// MediaRequest изображение
type MediaRequest struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// MetaRequest удобства
type MetaRequest struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// LocationRequest расположение
type LocationRequest struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// VenueRequest запрос на создание или обновление площадки
type VenueRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Media       []MediaRequest  `json:"media"`
	Price       float64         `json:"price"`
	MaxGuests   int             `json:"maxGuests"`
	Rating      float64         `json:"rating"`
	Meta        MetaRequest     `json:"meta"`
	Location    LocationRequest `json:"location"`
}

// ToDomainDraft конвертирует запрос в domain модель
func (r *VenueRequest) ToDomainDraft() domain.VenueDraft {
	draft := domain.VenueDraft{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Media:       make([]domain.Media, 0, len(r.Media)),
		Price:       r.Price,
		MaxGuests:   r.MaxGuests,
		Rating:      r.Rating,
		Meta: domain.VenueMeta{
			Wifi:      r.Meta.Wifi,
			Parking:   r.Meta.Parking,
			Breakfast: r.Meta.Breakfast,
			Pets:      r.Meta.Pets,
		},
		Location: domain.Location{
			Address:   strings.TrimSpace(r.Location.Address),
			City:      strings.TrimSpace(r.Location.City),
			Zip:       strings.TrimSpace(r.Location.Zip),
			Country:   strings.TrimSpace(r.Location.Country),
			Continent: strings.TrimSpace(r.Location.Continent),
			Lat:       r.Location.Lat,
			Lng:       r.Location.Lng,
		},
	}

	for _, m := range r.Media {
		draft.Media = append(draft.Media, domain.Media{URL: strings.TrimSpace(m.URL), Alt: strings.TrimSpace(m.Alt)})
	}

	return draft
}

// Response модели

// MediaResponse изображение
type MediaResponse struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// MetaResponse удобства
type MetaResponse struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// LocationResponse расположение
type LocationResponse struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// OwnerResponse владелец площадки
type OwnerResponse struct {
	Name   string         `json:"name"`
	Avatar *MediaResponse `json:"avatar,omitempty"`
}

// DateRangeResponse занятый период (включительно)
type DateRangeResponse struct {
	From string `json:"from"` // "2025-07-01"
	To   string `json:"to"`
}

// VenueBookingResponse бронирование площадки (только для владельца)
type VenueBookingResponse struct {
	ID       string `json:"id"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
	Customer string `json:"customer,omitempty"`
}

// VenueResponse площадка
type VenueResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Media        []MediaResponse        `json:"media"`
	Price        float64                `json:"price"`
	MaxGuests    int                    `json:"maxGuests"`
	Rating       float64                `json:"rating"`
	Meta         MetaResponse           `json:"meta"`
	Location     LocationResponse       `json:"location"`
	Region       string                 `json:"region"`
	Owner        *OwnerResponse         `json:"owner,omitempty"`
	BookedRanges []DateRangeResponse    `json:"bookedRanges"`
	Bookings     []VenueBookingResponse `json:"bookings,omitempty"`
}

// VenueListResponse страница площадок после фильтрации
type VenueListResponse struct {
	Venues     []VenueResponse `json:"venues"`
	Count      int             `json:"count"`
	Page       int             `json:"page"`
	PageCount  int             `json:"pageCount"`
	TotalCount int             `json:"totalCount"`
	IsLastPage bool            `json:"isLastPage"`
}

// RegionsResponse список регионов для фильтра
type RegionsResponse struct {
	Regions []string `json:"regions"`
}

// Методы конвертации

// FromDomainDateRange конвертирует период в DTO
func FromDomainDateRange(r domain.DateRange) DateRangeResponse {
	return DateRangeResponse{
		From: r.From.Format(domain.DateFormat),
		To:   r.To.Format(domain.DateFormat),
	}
}

// FromDomainVenue конвертирует площадку в DTO
// withBookings добавляет бронирования с именами гостей (для владельца)
func FromDomainVenue(v *domain.Venue, withBookings bool) *VenueResponse {
	if v == nil {
		return nil
	}

	resp := &VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Media:       make([]MediaResponse, 0, len(v.Media)),
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Meta: MetaResponse{
			Wifi:      v.Meta.Wifi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
		Location: LocationResponse{
			Address:   v.Location.Address,
			City:      v.Location.City,
			Zip:       v.Location.Zip,
			Country:   v.Location.Country,
			Continent: v.Location.Continent,
			Lat:       v.Location.Lat,
			Lng:       v.Location.Lng,
		},
		Region:       v.Region(),
		BookedRanges: make([]DateRangeResponse, 0, len(v.Bookings)),
	}

	for _, m := range v.Media {
		resp.Media = append(resp.Media, MediaResponse{URL: m.URL, Alt: m.Alt})
	}

	if v.Owner != nil {
		resp.Owner = &OwnerResponse{Name: v.Owner.Name}
		if v.Owner.Avatar != nil {
			resp.Owner.Avatar = &MediaResponse{URL: v.Owner.Avatar.URL, Alt: v.Owner.Avatar.Alt}
		}
	}

	for _, r := range v.BookedRanges() {
		resp.BookedRanges = append(resp.BookedRanges, FromDomainDateRange(r))
	}

	if withBookings {
		resp.Bookings = make([]VenueBookingResponse, 0, len(v.Bookings))
		for _, b := range v.Bookings {
			item := VenueBookingResponse{
				ID:       b.ID,
				DateFrom: b.DateFrom.Format(domain.DateFormat),
				DateTo:   b.DateTo.Format(domain.DateFormat),
				Guests:   b.Guests,
			}
			if b.Customer != nil {
				item.Customer = b.Customer.Name
			}
			resp.Bookings = append(resp.Bookings, item)
		}
	}

	return resp
}

// FromDomainVenueList конвертирует список площадок в DTO
func FromDomainVenueList(venues []domain.Venue, withBookings bool) []VenueResponse {
	list := make([]VenueResponse, 0, len(venues))
	for i := range venues {
		list = append(list, *FromDomainVenue(&venues[i], withBookings))
	}
	return list
}
