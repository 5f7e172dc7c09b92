package venues

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	venueCache "github.com/m04kA/holidaze-gateway/internal/infra/cache/venue"
	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
	"github.com/m04kA/holidaze-gateway/pkg/logger"
)

type fakeClient struct {
	venues      []domain.Venue
	meta        holidaze.PageMeta
	listCalls   int
	getCalls    int
	searchCalls int
	err         error
	created     *domain.VenueDraft
	deleted     string
}

func (f *fakeClient) ListVenues(_ context.Context, page, _ int) (*holidaze.VenuePage, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	meta := f.meta
	meta.CurrentPage = page
	return &holidaze.VenuePage{Venues: f.venues, Meta: meta}, nil
}

func (f *fakeClient) SearchVenues(_ context.Context, _ string) ([]domain.Venue, error) {
	f.searchCalls++
	return f.venues, f.err
}

func (f *fakeClient) GetVenue(_ context.Context, id string) (*domain.Venue, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.venues {
		if f.venues[i].ID == id {
			v := f.venues[i]
			return &v, nil
		}
	}
	return nil, holidaze.ErrNotFound
}

func (f *fakeClient) GetProfileVenues(_ context.Context, _, name string) ([]domain.Venue, error) {
	owned := make([]domain.Venue, 0)
	for _, v := range f.venues {
		if v.IsOwnedBy(name) {
			owned = append(owned, v)
		}
	}
	return owned, f.err
}

func (f *fakeClient) CreateVenue(_ context.Context, _ string, draft domain.VenueDraft) (*domain.Venue, error) {
	f.created = &draft
	return &domain.Venue{ID: "new", Name: draft.Name, MaxGuests: draft.MaxGuests}, nil
}

func (f *fakeClient) UpdateVenue(_ context.Context, _, id string, draft domain.VenueDraft) (*domain.Venue, error) {
	return &domain.Venue{ID: id, Name: draft.Name, MaxGuests: draft.MaxGuests}, nil
}

func (f *fakeClient) DeleteVenue(_ context.Context, _, id string) error {
	f.deleted = id
	return nil
}

type fakeCache struct {
	venues      map[string]*domain.Venue
	lists       map[string]*venueCache.List
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{venues: map[string]*domain.Venue{}, lists: map[string]*venueCache.List{}}
}

func (c *fakeCache) Get(_ context.Context, id string) (*domain.Venue, error) {
	if v, ok := c.venues[id]; ok {
		return v, nil
	}
	return nil, venueCache.ErrCacheMiss
}

func (c *fakeCache) Set(_ context.Context, v *domain.Venue) error {
	c.venues[v.ID] = v
	return nil
}

func (c *fakeCache) GetList(_ context.Context, key string) (*venueCache.List, error) {
	if l, ok := c.lists[key]; ok {
		return l, nil
	}
	return nil, venueCache.ErrCacheMiss
}

func (c *fakeCache) SetList(_ context.Context, key string, l *venueCache.List) error {
	c.lists[key] = l
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.venues, id)
	c.lists = map[string]*venueCache.List{}
	return nil
}

func catalog() []domain.Venue {
	return []domain.Venue{
		{ID: "v1", Name: "Fjord cabin", MaxGuests: 4, Location: domain.Location{Continent: "europe"}, Owner: &domain.Profile{Name: "host"}},
		{ID: "v2", Name: "Beach villa", MaxGuests: 10, Location: domain.Location{Continent: " Asia "}, Owner: &domain.Profile{Name: "other"}},
		{ID: "v3", Name: "Tiny room", MaxGuests: 1, Location: domain.Location{Continent: ""}, Owner: &domain.Profile{Name: "host"}},
	}
}

func managerSession() *domain.Session {
	return &domain.Session{
		ID:          "sid",
		Profile:     domain.Profile{Name: "host", VenueManager: true},
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func validRequest() *models.VenueRequest {
	return &models.VenueRequest{
		Name:        " Lake house ",
		Description: "Quiet place",
		Media:       []models.MediaRequest{{URL: "https://img/lake.jpg", Alt: "lake"}},
		Price:       120,
		MaxGuests:   6,
		Rating:      4.5,
	}
}

func TestFilters(t *testing.T) {
	venues := catalog()

	assert.Len(t, FilterByRegion(venues, ""), 3)
	assert.Len(t, FilterByRegion(venues, "all"), 3)

	europe := FilterByRegion(venues, " EUROPE")
	require.Len(t, europe, 1)
	assert.Equal(t, "v1", europe[0].ID)

	unknown := FilterByRegion(venues, domain.RegionUnknown)
	require.Len(t, unknown, 1)
	assert.Equal(t, "v3", unknown[0].ID)

	assert.Len(t, FilterByGuests(venues, 0), 3)
	assert.Len(t, FilterByGuests(venues, 1), 3)
	assert.Len(t, FilterByGuests(venues, 4), 2)
	assert.Len(t, FilterByGuests(venues, 11), 0)

	assert.Equal(t, []string{"All", "Asia", "Europe"}, Regions(venues))
}

func TestRegions_SkipsUnknown(t *testing.T) {
	onlyUnknown := []domain.Venue{{ID: "x1"}, {ID: "x2"}}
	assert.Equal(t, []string{domain.RegionAll}, Regions(onlyUnknown))
	assert.Equal(t, []string{domain.RegionAll}, Regions(nil))
}

func TestList_UsesCache(t *testing.T) {
	client := &fakeClient{venues: catalog(), meta: holidaze.PageMeta{PageCount: 3, TotalCount: 250}}
	cache := newFakeCache()
	svc := NewService(client, cache, logger.NewNop())
	ctx := context.Background()

	resp, err := svc.List(ctx, &models.ListVenuesRequest{Guests: 4})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 3, resp.PageCount)
	assert.Equal(t, 250, resp.TotalCount)

	resp, err = svc.List(ctx, &models.ListVenuesRequest{Region: "Asia"})
	require.NoError(t, err)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "v2", resp.Venues[0].ID)

	assert.Equal(t, 1, client.listCalls, "second request is served from cache")
}

func TestList_Validation(t *testing.T) {
	svc := NewService(&fakeClient{}, newFakeCache(), logger.NewNop())

	_, err := svc.List(context.Background(), &models.ListVenuesRequest{Limit: 101})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.List(context.Background(), &models.ListVenuesRequest{Guests: -1})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestList_UpstreamDown(t *testing.T) {
	svc := NewService(&fakeClient{err: holidaze.ErrUnavailable}, newFakeCache(), logger.NewNop())

	_, err := svc.List(context.Background(), &models.ListVenuesRequest{})

	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestSearch(t *testing.T) {
	client := &fakeClient{venues: catalog()}
	svc := NewService(client, newFakeCache(), logger.NewNop())
	ctx := context.Background()

	_, err := svc.Search(ctx, &models.SearchVenuesRequest{Query: "   "})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	resp, err := svc.Search(ctx, &models.SearchVenuesRequest{Query: "Cabin", Guests: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)

	_, err = svc.Search(ctx, &models.SearchVenuesRequest{Query: "  cabin "})
	require.NoError(t, err)
	assert.Equal(t, 1, client.searchCalls, "normalized query hits the cache")
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&fakeClient{venues: catalog()}, newFakeCache(), logger.NewNop())

	_, err := svc.Get(context.Background(), "missing")

	assert.True(t, errors.Is(err, ErrVenueNotFound))
}

func TestGet_CachesSnapshot(t *testing.T) {
	client := &fakeClient{venues: catalog()}
	cache := newFakeCache()
	svc := NewService(client, cache, logger.NewNop())

	resp, err := svc.Get(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "Europe", resp.Region)

	_, err = svc.Get(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, 1, client.getCalls)
}

func TestManagerVenues(t *testing.T) {
	svc := NewService(&fakeClient{venues: catalog()}, newFakeCache(), logger.NewNop())

	list, err := svc.ManagerVenues(context.Background(), managerSession())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	customer := &domain.Session{Profile: domain.Profile{Name: "guest"}}
	_, err = svc.ManagerVenues(context.Background(), customer)
	assert.True(t, errors.Is(err, ErrNotVenueManager))
}

func TestCreate(t *testing.T) {
	client := &fakeClient{}
	cache := newFakeCache()
	svc := NewService(client, cache, logger.NewNop())

	resp, err := svc.Create(context.Background(), managerSession(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "new", resp.ID)
	require.NotNil(t, client.created)
	assert.Equal(t, "Lake house", client.created.Name)
	assert.Equal(t, []string{""}, cache.invalidated)
}

func TestCreate_InvalidDraft(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.VenueRequest)
	}{
		{name: "empty name", mutate: func(r *models.VenueRequest) { r.Name = " " }},
		{name: "empty description", mutate: func(r *models.VenueRequest) { r.Description = "" }},
		{name: "negative price", mutate: func(r *models.VenueRequest) { r.Price = -1 }},
		{name: "zero guests", mutate: func(r *models.VenueRequest) { r.MaxGuests = 0 }},
		{name: "too many guests", mutate: func(r *models.VenueRequest) { r.MaxGuests = 101 }},
		{name: "rating above five", mutate: func(r *models.VenueRequest) { r.Rating = 5.5 }},
		{name: "relative media url", mutate: func(r *models.VenueRequest) { r.Media[0].URL = "/img.jpg" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			svc := NewService(client, newFakeCache(), logger.NewNop())
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), managerSession(), req)

			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Nil(t, client.created)
		})
	}
}

func TestUpdateAndDelete_Ownership(t *testing.T) {
	client := &fakeClient{venues: catalog()}
	cache := newFakeCache()
	svc := NewService(client, cache, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Update(ctx, managerSession(), "v2", validRequest())
	assert.True(t, errors.Is(err, ErrNotOwner))

	err = svc.Delete(ctx, managerSession(), "v2")
	assert.True(t, errors.Is(err, ErrNotOwner))
	assert.Empty(t, client.deleted)

	resp, err := svc.Update(ctx, managerSession(), "v1", validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Lake house", resp.Name)

	require.NoError(t, svc.Delete(ctx, managerSession(), "v3"))
	assert.Equal(t, "v3", client.deleted)
	assert.Equal(t, []string{"v1", "v3"}, cache.invalidated)
}

func TestDelete_RemoteRejection(t *testing.T) {
	client := &fakeClient{err: holidaze.NewAPIError(401, "Invalid token")}
	svc := NewService(client, newFakeCache(), logger.NewNop())

	err := svc.Delete(context.Background(), managerSession(), "v1")

	assert.True(t, errors.Is(err, ErrUnauthorized))
}
