package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reservation-system/internal/entities"
	apperrors "reservation-system/pkg/errors"
)

type fakeCatalogAPI struct {
	fetches    map[string]int
	venues     []entities.Venue
	vehicles   []entities.Vehicle
	equipments []entities.Equipment
	users      []entities.User
	personnel  []entities.Personnel
}

func newFakeCatalogAPI() *fakeCatalogAPI {
	return &fakeCatalogAPI{fetches: make(map[string]int)}
}

func (a *fakeCatalogAPI) FetchVenues(context.Context) ([]entities.Venue, error) {
	a.fetches["venues"]++
	return a.venues, nil
}

func (a *fakeCatalogAPI) FetchVehicles(context.Context) ([]entities.Vehicle, error) {
	a.fetches["vehicles"]++
	return a.vehicles, nil
}

func (a *fakeCatalogAPI) FetchEquipments(context.Context) ([]entities.Equipment, error) {
	a.fetches["equipments"]++
	return a.equipments, nil
}

func (a *fakeCatalogAPI) FetchUsers(context.Context) ([]entities.User, error) {
	a.fetches["users"]++
	return a.users, nil
}

func (a *fakeCatalogAPI) FetchPersonnel(context.Context) ([]entities.Personnel, error) {
	a.fetches["personnel"]++
	return a.personnel, nil
}

func TestVenues_SecondReadIsServedFromCache(t *testing.T) {
	api := newFakeCatalogAPI()
	api.venues = []entities.Venue{{ID: 5, Name: "Main Hall"}}
	svc := NewCatalogService(api, newFakeCache(), time.Minute, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Venues(ctx, false)
	require.NoError(t, err)
	second, err := svc.Venues(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.fetches["venues"])
}

func TestVenues_RefreshBypassesCache(t *testing.T) {
	api := newFakeCatalogAPI()
	api.venues = []entities.Venue{{ID: 5, Name: "Main Hall"}}
	svc := NewCatalogService(api, newFakeCache(), time.Minute, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Venues(ctx, false)
	require.NoError(t, err)

	api.venues = append(api.venues, entities.Venue{ID: 6, Name: "Annex"})
	refreshed, err := svc.Venues(ctx, true)
	require.NoError(t, err)

	assert.Len(t, refreshed, 2)
	assert.Equal(t, 2, api.fetches["venues"])
}

func TestFindEquipment_UnknownIDIs404(t *testing.T) {
	api := newFakeCatalogAPI()
	api.equipments = []entities.Equipment{{ID: 7, Name: "Projector", Quantity: 10}}
	svc := NewCatalogService(api, newFakeCache(), time.Minute, zap.NewNop())

	found, err := svc.FindEquipment(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), found.Quantity)

	_, err = svc.FindEquipment(context.Background(), 999)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestCatalog_CorruptCacheEntryFallsBackToBackend(t *testing.T) {
	api := newFakeCatalogAPI()
	api.personnel = []entities.Personnel{{ID: 21, FullName: "R. Cruz"}}
	cache := newFakeCache()
	svc := NewCatalogService(api, cache, time.Minute, zap.NewNop())
	ctx := context.Background()

	cache.store["catalog:personnel"] = "{not json"

	personnel, err := svc.Personnel(ctx, false)
	require.NoError(t, err)
	assert.Len(t, personnel, 1)
	assert.Equal(t, 1, api.fetches["personnel"])
}
