package services

import (
	"context"

	"reservation-system/internal/dto"
	"reservation-system/internal/entities"
	"reservation-system/internal/integrations/gsd"
	"reservation-system/pkg/constants"

	"go.uber.org/zap"
)

type ChecklistRegistryServiceInterface interface {
	Summary(ctx context.Context) ([]entities.ChecklistSummary, error)
	Resources(ctx context.Context, kind constants.ResourceKind) ([]entities.ResourceOption, error)
	Items(ctx context.Context, kind constants.ResourceKind, resourceID uint64) ([]entities.MasterChecklistItem, error)
	BatchAdd(ctx context.Context, payload dto.CreateChecklistBatchDTO) ([]entities.MasterChecklistItem, error)
	Rename(ctx context.Context, itemID uint64, name string) error
}

// ChecklistRegistryService maintains the named checklist templates per
// resource. Items are batch-added and rename-only; the registry exposes
// no delete.
type ChecklistRegistryService struct {
	api    gsd.ChecklistAPI
	logger *zap.Logger
}

func NewChecklistRegistryService(api gsd.ChecklistAPI, logger *zap.Logger) *ChecklistRegistryService {
	return &ChecklistRegistryService{api: api, logger: logger}
}

func (s *ChecklistRegistryService) Summary(ctx context.Context) ([]entities.ChecklistSummary, error) {
	summaries, err := s.api.FetchChecklistSummary(ctx)
	if err != nil {
		return nil, mapBackendError(err)
	}
	return summaries, nil
}

func (s *ChecklistRegistryService) Resources(ctx context.Context, kind constants.ResourceKind) ([]entities.ResourceOption, error) {
	resources, err := s.api.FetchAllResources(ctx, kind)
	if err != nil {
		return nil, mapBackendError(err)
	}
	return resources, nil
}

func (s *ChecklistRegistryService) Items(ctx context.Context, kind constants.ResourceKind, resourceID uint64) ([]entities.MasterChecklistItem, error) {
	items, err := s.api.FetchChecklistByID(ctx, kind, resourceID)
	if err != nil {
		return nil, mapBackendError(err)
	}
	return items, nil
}

// BatchAdd persists all accumulated item names against one resource in
// a single save, then re-reads just that resource's items. The targeted
// refetch replaces the old full-page reload.
func (s *ChecklistRegistryService) BatchAdd(ctx context.Context, payload dto.CreateChecklistBatchDTO) ([]entities.MasterChecklistItem, error) {
	kind, err := constants.ParseResourceKind(payload.Type)
	if err != nil {
		return nil, err
	}

	save := gsd.MasterChecklistPayload{
		Type:       payload.Type,
		ResourceID: payload.ResourceID,
		Items:      payload.Items,
	}
	if err := s.api.SaveMasterChecklist(ctx, save); err != nil {
		return nil, mapBackendError(err)
	}

	s.logger.Info("master checklist saved",
		zap.String("type", payload.Type),
		zap.Uint64("resource_id", payload.ResourceID),
		zap.Int("items", len(payload.Items)),
	)

	return s.Items(ctx, kind, payload.ResourceID)
}

func (s *ChecklistRegistryService) Rename(ctx context.Context, itemID uint64, name string) error {
	if err := s.api.UpdateChecklist(ctx, itemID, name); err != nil {
		return mapBackendError(err)
	}
	return nil
}
