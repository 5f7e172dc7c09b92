package venues

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	venueCache "github.com/m04kA/holidaze-gateway/internal/infra/cache/venue"
	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

// Service сервис каталога площадок и управления площадками менеджера
type Service struct {
	client HolidazeClient
	cache  VenueCache
	logger Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(client HolidazeClient, cache VenueCache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// List получает страницу площадок и фильтрует ее по региону и вместимости
// Фильтры применяются к загруженной странице, метаданные страницы берутся из API
func (s *Service) List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error) {
	if err := validateListRequest(req); err != nil {
		s.logger.Warn("List: validation failed: %v", err)
		return nil, err
	}

	page, limit := req.Page, req.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = domain.DefaultPageSize
	}

	list, err := s.loadPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	venues := FilterByGuests(FilterByRegion(list.Venues, req.Region), req.Guests)

	return &models.VenueListResponse{
		Venues:     models.FromDomainVenueList(venues, false),
		Count:      len(venues),
		Page:       list.Page,
		PageCount:  list.PageCount,
		TotalCount: list.TotalCount,
		IsLastPage: list.IsLastPage,
	}, nil
}

// Search ищет площадки по тексту и фильтрует по вместимости
func (s *Service) Search(ctx context.Context, req *models.SearchVenuesRequest) (*models.VenueListResponse, error) {
	query := normalizeQuery(req.Query)
	if query == "" {
		s.logger.Warn("Search: empty query")
		return nil, ErrInvalidInput
	}
	if err := validateGuestsFilter(req.Guests); err != nil {
		s.logger.Warn("Search: validation failed: %v", err)
		return nil, err
	}

	key := venueCache.ListKey("search", query)
	list, err := s.cache.GetList(ctx, key)
	if err != nil {
		s.logCacheError("Search", key, err)

		venues, clientErr := s.client.SearchVenues(ctx, query)
		if clientErr != nil {
			s.logger.Error("Search: remote error for q=%s: %v", query, clientErr)
			return nil, mapClientError("Search", clientErr)
		}

		list = &venueCache.List{Venues: venues, Page: 1, PageCount: 1, TotalCount: len(venues), IsLastPage: true}
		if err := s.cache.SetList(ctx, key, list); err != nil {
			s.logger.Warn("Search: failed to cache result for q=%s: %v", query, err)
		}
	}

	venues := FilterByGuests(list.Venues, req.Guests)
	s.logger.Info("Search: q=%s, found=%d, after guests filter=%d", query, len(list.Venues), len(venues))

	return &models.VenueListResponse{
		Venues:     models.FromDomainVenueList(venues, false),
		Count:      len(venues),
		Page:       list.Page,
		PageCount:  list.PageCount,
		TotalCount: list.TotalCount,
		IsLastPage: list.IsLastPage,
	}, nil
}

// Regions возвращает регионы площадок первой страницы каталога
func (s *Service) Regions(ctx context.Context) (*models.RegionsResponse, error) {
	list, err := s.loadPage(ctx, 1, domain.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return &models.RegionsResponse{Regions: Regions(list.Venues)}, nil
}

// Get получает площадку по ID
func (s *Service) Get(ctx context.Context, id string) (*models.VenueResponse, error) {
	venue, err := s.Venue(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainVenue(venue, false), nil
}

// Venue получает снимок площадки, сначала из кэша
func (s *Service) Venue(ctx context.Context, id string) (*domain.Venue, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidInput
	}

	venue, err := s.cache.Get(ctx, id)
	if err == nil {
		return venue, nil
	}
	s.logCacheError("Venue", id, err)

	venue, err = s.client.GetVenue(ctx, id)
	if err != nil {
		s.logger.Warn("Venue: remote error for venue_id=%s: %v", id, err)
		return nil, mapClientError("Venue", err)
	}

	if err := s.cache.Set(ctx, venue); err != nil {
		s.logger.Warn("Venue: failed to cache venue_id=%s: %v", id, err)
	}
	return venue, nil
}

// ManagerVenues получает площадки менеджера вместе с бронированиями гостей
func (s *Service) ManagerVenues(ctx context.Context, session *domain.Session) ([]models.VenueResponse, error) {
	if !session.IsVenueManager() {
		s.logger.Warn("ManagerVenues: profile=%s is not a venue manager", session.Profile.Name)
		return nil, ErrNotVenueManager
	}

	venues, err := s.client.GetProfileVenues(ctx, session.AccessToken, session.Profile.Name)
	if err != nil {
		s.logger.Error("ManagerVenues: remote error for profile=%s: %v", session.Profile.Name, err)
		return nil, mapClientError("ManagerVenues", err)
	}

	s.logger.Info("ManagerVenues: profile=%s, venues=%d", session.Profile.Name, len(venues))
	return models.FromDomainVenueList(venues, true), nil
}

// Create создает площадку от имени менеджера
func (s *Service) Create(ctx context.Context, session *domain.Session, req *models.VenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: profile=%s, name=%s", session.Profile.Name, req.Name)

	if !session.IsVenueManager() {
		s.logger.Warn("Create: profile=%s is not a venue manager", session.Profile.Name)
		return nil, ErrNotVenueManager
	}

	draft := req.ToDomainDraft()
	if err := validateDraft(draft); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	venue, err := s.client.CreateVenue(ctx, session.AccessToken, draft)
	if err != nil {
		s.logger.Error("Create: remote error for profile=%s: %v", session.Profile.Name, err)
		return nil, mapClientError("Create", err)
	}

	// Новая площадка должна появиться в закэшированных списках
	s.invalidate(ctx, "Create", "")

	s.logger.Info("Create: successfully created venue_id=%s", venue.ID)
	return models.FromDomainVenue(venue, true), nil
}

// Update обновляет площадку, принадлежащую менеджеру
func (s *Service) Update(ctx context.Context, session *domain.Session, id string, req *models.VenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Update: profile=%s, venue_id=%s", session.Profile.Name, id)

	if err := s.checkOwnership(ctx, "Update", session, id); err != nil {
		return nil, err
	}

	draft := req.ToDomainDraft()
	if err := validateDraft(draft); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	venue, err := s.client.UpdateVenue(ctx, session.AccessToken, id, draft)
	if err != nil {
		s.logger.Error("Update: remote error for venue_id=%s: %v", id, err)
		return nil, mapClientError("Update", err)
	}

	s.invalidate(ctx, "Update", id)

	s.logger.Info("Update: successfully updated venue_id=%s", id)
	return models.FromDomainVenue(venue, true), nil
}

// Delete удаляет площадку, принадлежащую менеджеру
func (s *Service) Delete(ctx context.Context, session *domain.Session, id string) error {
	s.logger.Info("Delete: profile=%s, venue_id=%s", session.Profile.Name, id)

	if err := s.checkOwnership(ctx, "Delete", session, id); err != nil {
		return err
	}

	if err := s.client.DeleteVenue(ctx, session.AccessToken, id); err != nil {
		s.logger.Error("Delete: remote error for venue_id=%s: %v", id, err)
		return mapClientError("Delete", err)
	}

	s.invalidate(ctx, "Delete", id)

	s.logger.Info("Delete: successfully deleted venue_id=%s", id)
	return nil
}

// checkOwnership проверяет роль менеджера и владельца по свежему снимку площадки
func (s *Service) checkOwnership(ctx context.Context, op string, session *domain.Session, id string) error {
	if !session.IsVenueManager() {
		s.logger.Warn("%s: profile=%s is not a venue manager", op, session.Profile.Name)
		return ErrNotVenueManager
	}
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}

	venue, err := s.client.GetVenue(ctx, id)
	if err != nil {
		s.logger.Warn("%s: failed to load venue_id=%s: %v", op, id, err)
		return mapClientError(op, err)
	}

	if !venue.IsOwnedBy(session.Profile.Name) {
		s.logger.Warn("%s: venue_id=%s does not belong to profile=%s", op, id, session.Profile.Name)
		return ErrNotOwner
	}
	return nil
}

// loadPage получает страницу каталога, сначала из кэша
func (s *Service) loadPage(ctx context.Context, page, limit int) (*venueCache.List, error) {
	key := venueCache.ListKey("page", strconv.Itoa(page), strconv.Itoa(limit))

	list, err := s.cache.GetList(ctx, key)
	if err == nil {
		return list, nil
	}
	s.logCacheError("loadPage", key, err)

	result, err := s.client.ListVenues(ctx, page, limit)
	if err != nil {
		s.logger.Error("loadPage: remote error for page=%d, limit=%d: %v", page, limit, err)
		return nil, mapClientError("List", err)
	}

	list = &venueCache.List{
		Venues:     result.Venues,
		Page:       result.Meta.CurrentPage,
		PageCount:  result.Meta.PageCount,
		TotalCount: result.Meta.TotalCount,
		IsLastPage: result.Meta.IsLastPage,
	}
	if list.Page == 0 {
		list.Page = page
	}

	if err := s.cache.SetList(ctx, key, list); err != nil {
		s.logger.Warn("loadPage: failed to cache page=%d: %v", page, err)
	}
	return list, nil
}

func (s *Service) invalidate(ctx context.Context, op, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("%s: failed to invalidate cache for venue_id=%s: %v", op, id, err)
	}
}

// logCacheError промах кэша не логируется, сбой Redis логируется как предупреждение
func (s *Service) logCacheError(op, key string, err error) {
	if errors.Is(err, venueCache.ErrCacheMiss) {
		return
	}
	s.logger.Warn("%s: cache failure for key=%s: %v", op, key, err)
}
