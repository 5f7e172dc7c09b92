package bookings

import (
	"context"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/infra/queue"
	"github.com/m04kA/holidaze-gateway/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями пользователя и менеджера
type Service struct {
	client       HolidazeClient
	cache        VenueCache
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	client HolidazeClient,
	cache VenueCache,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		cache:        cache,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetProfileBookings получает бронирования пользователя сессии
// Бронирование, заканчивающееся сегодня, считается предстоящим
func (s *Service) GetProfileBookings(ctx context.Context, session *domain.Session) (*models.BookingListResponse, error) {
	s.logger.Info("GetProfileBookings: fetching bookings for profile=%s", session.Profile.Name)

	bookings, err := s.client.GetProfileBookings(ctx, session.AccessToken, session.Profile.Name)
	if err != nil {
		s.logger.Error("GetProfileBookings: remote error for profile=%s: %v", session.Profile.Name, err)
		return nil, mapClientError("GetProfileBookings", err)
	}

	upcoming, past := domain.SplitBookings(bookings, s.timeProvider.Now())

	s.logger.Info("GetProfileBookings: profile=%s, upcoming=%d, past=%d",
		session.Profile.Name, len(upcoming), len(past))

	return &models.BookingListResponse{
		Upcoming: models.FromDomainBookingList(upcoming),
		Past:     models.FromDomainBookingList(past),
	}, nil
}

// Cancel отменяет бронирование пользователя
// Бронирование ищется среди бронирований профиля: чужое бронирование не найдется
func (s *Service) Cancel(ctx context.Context, session *domain.Session, bookingID string) error {
	s.logger.Info("Cancel: cancelling booking id=%s by profile=%s", bookingID, session.Profile.Name)

	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return ErrInvalidInput
	}

	bookings, err := s.client.GetProfileBookings(ctx, session.AccessToken, session.Profile.Name)
	if err != nil {
		s.logger.Error("Cancel: failed to load bookings for profile=%s: %v", session.Profile.Name, err)
		return mapClientError("Cancel", err)
	}

	var booking *domain.Booking
	for i := range bookings {
		if bookings[i].ID == bookingID {
			booking = &bookings[i]
			break
		}
	}
	if booking == nil {
		s.logger.Warn("Cancel: booking id=%s not found for profile=%s", bookingID, session.Profile.Name)
		return ErrBookingNotFound
	}

	if err := s.client.CancelBooking(ctx, session.AccessToken, bookingID); err != nil {
		s.logger.Error("Cancel: remote error for booking id=%s: %v", bookingID, err)
		return mapClientError("Cancel", err)
	}

	venueID := booking.VenueID
	if venueID == "" && booking.Venue != nil {
		venueID = booking.Venue.ID
	}

	// Освободившиеся даты должны сразу стать доступны в календаре
	if err := s.cache.Invalidate(ctx, venueID); err != nil {
		s.logger.Warn("Cancel: failed to invalidate cache for venue_id=%s: %v", venueID, err)
	}

	event := queue.NewBookingCancelled(bookingID, venueID, session.Profile.Name, s.timeProvider.Now())
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		s.logger.Warn("Cancel: failed to publish event for booking id=%s: %v", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// GetManagerBookings собирает бронирования гостей по всем площадкам менеджера
// Обе группы сортируются по дате заезда в порядке req.Sort
func (s *Service) GetManagerBookings(ctx context.Context, session *domain.Session, req *models.GetManagerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetManagerBookings: profile=%s, sort=%s", session.Profile.Name, req.Sort)

	if !session.IsVenueManager() {
		s.logger.Warn("GetManagerBookings: profile=%s is not a venue manager", session.Profile.Name)
		return nil, ErrNotVenueManager
	}

	order := domain.SortSoonest
	if req.Sort != "" {
		order = domain.SortOrder(strings.ToLower(strings.TrimSpace(req.Sort)))
	}
	if !order.IsValid() {
		s.logger.Warn("GetManagerBookings: invalid sort=%s", req.Sort)
		return nil, ErrInvalidInput
	}

	venues, err := s.client.GetProfileVenues(ctx, session.AccessToken, session.Profile.Name)
	if err != nil {
		s.logger.Error("GetManagerBookings: remote error for profile=%s: %v", session.Profile.Name, err)
		return nil, mapClientError("GetManagerBookings", err)
	}

	now := s.timeProvider.Now()
	upcoming := make([]domain.BookingWithVenue, 0)
	past := make([]domain.BookingWithVenue, 0)

	for _, venue := range venues {
		bookings := venue.Bookings
		venue.Bookings = nil

		for _, b := range bookings {
			item := domain.BookingWithVenue{Booking: b, Venue: venue}
			if b.IsUpcoming(now) {
				upcoming = append(upcoming, item)
			} else {
				past = append(past, item)
			}
		}
	}

	domain.SortBookingsWithVenue(upcoming, order)
	domain.SortBookingsWithVenue(past, order)

	s.logger.Info("GetManagerBookings: profile=%s, venues=%d, upcoming=%d, past=%d",
		session.Profile.Name, len(venues), len(upcoming), len(past))

	return &models.BookingListResponse{
		Upcoming: models.FromDomainBookingsWithVenue(upcoming),
		Past:     models.FromDomainBookingsWithVenue(past),
	}, nil
}
