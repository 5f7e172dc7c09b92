package models

import (
	"github.com/m04kA/holidaze-gateway/internal/availability"
	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// Request модели

// GetManagerBookingsRequest запрос бронирований по площадкам менеджера
type GetManagerBookingsRequest struct {
	Sort string `json:"sort,omitempty"` // "soonest" (по умолчанию) или "latest"
}

// Response модели

// VenueSummaryResponse краткие данные площадки бронирования
type VenueSummaryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"` // первое изображение
	Price     float64 `json:"price"`
	MaxGuests int     `json:"maxGuests"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
}

// BookingResponse бронирование
type BookingResponse struct {
	ID         string                `json:"id"`
	DateFrom   string                `json:"dateFrom"` // "2025-07-01"
	DateTo     string                `json:"dateTo"`
	Guests     int                   `json:"guests"`
	Nights     int                   `json:"nights"`
	TotalPrice float64               `json:"totalPrice"`
	Venue      *VenueSummaryResponse `json:"venue,omitempty"`
	Customer   string                `json:"customer,omitempty"`
}

// BookingListResponse бронирования, разделенные на предстоящие и прошедшие
type BookingListResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

// Методы конвертации

// FromDomainVenueSummary конвертирует площадку в краткий DTO
func FromDomainVenueSummary(v *domain.Venue) *VenueSummaryResponse {
	if v == nil {
		return nil
	}

	summary := &VenueSummaryResponse{
		ID:        v.ID,
		Name:      v.Name,
		Price:     v.Price,
		MaxGuests: v.MaxGuests,
		City:      v.Location.City,
		Country:   v.Location.Country,
	}
	if len(v.Media) > 0 {
		summary.Image = v.Media[0].URL
	}
	return summary
}

// FromDomainBooking конвертирует бронирование в DTO
// venue может быть nil, тогда стоимость не рассчитывается
func FromDomainBooking(b *domain.Booking, venue *domain.Venue) BookingResponse {
	nights := availability.ComputeNights(b.DateFrom, b.DateTo)

	resp := BookingResponse{
		ID:       b.ID,
		DateFrom: b.DateFrom.Format(domain.DateFormat),
		DateTo:   b.DateTo.Format(domain.DateFormat),
		Guests:   b.Guests,
		Nights:   nights,
		Venue:    FromDomainVenueSummary(venue),
	}
	if venue != nil {
		resp.TotalPrice = availability.ComputeTotalPrice(nights, venue.Price)
	}
	if b.Customer != nil {
		resp.Customer = b.Customer.Name
	}
	return resp
}

// FromDomainBookingList конвертирует бронирования с развернутой площадкой
func FromDomainBookingList(bookings []domain.Booking) []BookingResponse {
	list := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		list = append(list, FromDomainBooking(&bookings[i], bookings[i].Venue))
	}
	return list
}

// FromDomainBookingsWithVenue конвертирует пары бронирование-площадка
func FromDomainBookingsWithVenue(items []domain.BookingWithVenue) []BookingResponse {
	list := make([]BookingResponse, 0, len(items))
	for i := range items {
		list = append(list, FromDomainBooking(&items[i].Booking, &items[i].Venue))
	}
	return list
}
