package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"reservation-system/internal/entities"
	"reservation-system/internal/integrations/gsd"
	"reservation-system/internal/repositories"
	apperrors "reservation-system/pkg/errors"

	"go.uber.org/zap"
)

type CatalogServiceInterface interface {
	Venues(ctx context.Context, refresh bool) ([]entities.Venue, error)
	Vehicles(ctx context.Context, refresh bool) ([]entities.Vehicle, error)
	Equipments(ctx context.Context, refresh bool) ([]entities.Equipment, error)
	Users(ctx context.Context, refresh bool) ([]entities.User, error)
	Personnel(ctx context.Context, refresh bool) ([]entities.Personnel, error)
	FindVenue(ctx context.Context, id uint64) (*entities.Venue, error)
	FindVehicle(ctx context.Context, id uint64) (*entities.Vehicle, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindPersonnel(ctx context.Context, id uint64) (*entities.Personnel, error)
}

// CatalogService serves the candidate lists every screen selects from.
// Cache-aside over Redis; freshness is operator-triggered (refresh flag)
// or TTL expiry, never background polling.
type CatalogService struct {
	api    gsd.CatalogAPI
	cache  repositories.CacheRepositoryInterface
	ttl    time.Duration
	logger *zap.Logger
}

func NewCatalogService(
	api gsd.CatalogAPI,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		api:    api,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// fetchCached is the cache-aside path shared by every list. A cache
// failure is logged and degraded to a direct backend fetch.
func fetchCached[T any](ctx context.Context, s *CatalogService, key string, refresh bool, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if !refresh {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var list []T
			if err := json.Unmarshal([]byte(cached), &list); err == nil {
				return list, nil
			}
			s.logger.Warn("corrupt catalog cache entry, refetching", zap.String("key", key))
		} else if !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(list); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return list, nil
}

func (s *CatalogService) Venues(ctx context.Context, refresh bool) ([]entities.Venue, error) {
	return fetchCached(ctx, s, "catalog:venues", refresh, s.api.FetchVenues)
}

func (s *CatalogService) Vehicles(ctx context.Context, refresh bool) ([]entities.Vehicle, error) {
	return fetchCached(ctx, s, "catalog:vehicles", refresh, s.api.FetchVehicles)
}

func (s *CatalogService) Equipments(ctx context.Context, refresh bool) ([]entities.Equipment, error) {
	return fetchCached(ctx, s, "catalog:equipments", refresh, s.api.FetchEquipments)
}

func (s *CatalogService) Users(ctx context.Context, refresh bool) ([]entities.User, error) {
	return fetchCached(ctx, s, "catalog:users", refresh, s.api.FetchUsers)
}

func (s *CatalogService) Personnel(ctx context.Context, refresh bool) ([]entities.Personnel, error) {
	return fetchCached(ctx, s, "catalog:personnel", refresh, s.api.FetchPersonnel)
}

func notFound(what string, id uint64) error {
	return apperrors.NewHttpError(
		http.StatusNotFound,
		fmt.Sprintf("%s %d is not in the catalog", what, id),
		apperrors.ErrNotFound,
		nil,
	)
}

func (s *CatalogService) FindVenue(ctx context.Context, id uint64) (*entities.Venue, error) {
	venues, err := s.Venues(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range venues {
		if venues[i].ID == id {
			return &venues[i], nil
		}
	}
	return nil, notFound("venue", id)
}

func (s *CatalogService) FindVehicle(ctx context.Context, id uint64) (*entities.Vehicle, error) {
	vehicles, err := s.Vehicles(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			return &vehicles[i], nil
		}
	}
	return nil, notFound("vehicle", id)
}

func (s *CatalogService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	equipments, err := s.Equipments(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range equipments {
		if equipments[i].ID == id {
			return &equipments[i], nil
		}
	}
	return nil, notFound("equipment", id)
}

func (s *CatalogService) FindPersonnel(ctx context.Context, id uint64) (*entities.Personnel, error) {
	personnel, err := s.Personnel(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range personnel {
		if personnel[i].ID == id {
			return &personnel[i], nil
		}
	}
	return nil, notFound("personnel", id)
}
