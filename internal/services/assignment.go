package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"reservation-system/internal/dto"
	"reservation-system/internal/entities"
	"reservation-system/internal/integrations/gsd"
	"reservation-system/internal/repositories"
	"reservation-system/pkg/constants"
	apperrors "reservation-system/pkg/errors"

	"go.uber.org/zap"
)

// How long an interrupted assignment (release inserted, checklist save
// failed) stays retryable.
const pendingChecklistTTL = time.Hour * 24

type AssignmentServiceInterface interface {
	List(ctx context.Context, partition string) ([]entities.Reservation, error)
	Detail(ctx context.Context, reservationID uint64, typ constants.ReservationType) (*dto.AssignmentDetailDTO, error)
	Assign(ctx context.Context, reservationID uint64, payload dto.AssignDTO) (*dto.AssignResultDTO, error)
	RetryChecklist(ctx context.Context, reservationID uint64) error
	Complete(ctx context.Context, reservationID uint64, typ constants.ReservationType) error
}

// AssignmentService drives the release workflow: picking personnel and
// checklist items for a reservation, and marking the release complete
// once every item has been checked off. Statuses only ever move
// forward; the backend is the durable record of each transition.
type AssignmentService struct {
	api     gsd.AssignmentAPI
	catalog CatalogServiceInterface
	cache   repositories.CacheRepositoryInterface
	logger  *zap.Logger

	statusMu          sync.Mutex
	completedStatusID uint64
}

func NewAssignmentService(
	api gsd.AssignmentAPI,
	catalog CatalogServiceInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		api:     api,
		catalog: catalog,
		cache:   cache,
		logger:  logger,
	}
}

// Assignment list partitions, named after the tabs they back.
const (
	PartitionNotAssigned = "not_assigned"
	PartitionAssigned    = "assigned"
	PartitionCompleted   = "completed"
)

func (s *AssignmentService) List(ctx context.Context, partition string) ([]entities.Reservation, error) {
	switch partition {
	case PartitionNotAssigned:
		return s.api.FetchNoAssignedReservations(ctx)
	case PartitionAssigned:
		return s.api.FetchAssignedReleases(ctx)
	case PartitionCompleted:
		return s.api.FetchCompletedReleases(ctx)
	default:
		return nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			fmt.Sprintf("unknown partition %q", partition),
			nil,
			nil,
		)
	}
}

func allCompleted(items []entities.ChecklistItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.Status != constants.ChecklistItemCompleted {
			return false
		}
	}
	return true
}

func (s *AssignmentService) Detail(ctx context.Context, reservationID uint64, typ constants.ReservationType) (*dto.AssignmentDetailDTO, error) {
	items, err := s.api.GetReservedByID(ctx, reservationID, typ)
	if err != nil {
		return nil, mapBackendError(err)
	}
	return &dto.AssignmentDetailDTO{
		ReservationID: reservationID,
		Type:          string(typ),
		Items:         items,
		CanComplete:   allCompleted(items),
	}, nil
}

func pendingChecklistKey(reservationID uint64) string {
	return fmt.Sprintf("assignment:pending_checklist:%d", reservationID)
}

// buildRelease routes each checklist item by its resource kind: venue
// and equipment items land in the venue_equipment array, vehicle items
// in the vehicle array. The switch is exhaustive on purpose.
func buildRelease(reservationID, personnelID uint64, items []dto.AssignChecklistItemDTO) (gsd.ReleasePayload, error) {
	payload := gsd.ReleasePayload{
		ReservationID:  reservationID,
		PersonnelID:    personnelID,
		VenueEquipment: []gsd.ReleaseItem{},
		Vehicle:        []gsd.ReleaseItem{},
	}
	for _, item := range items {
		kind, err := constants.ParseResourceKind(item.Kind)
		if err != nil {
			return gsd.ReleasePayload{}, err
		}
		releaseItem := gsd.ReleaseItem{ChecklistID: item.ChecklistID, Name: item.Name}
		switch kind {
		case constants.KindVenue, constants.KindEquipment:
			payload.VenueEquipment = append(payload.VenueEquipment, releaseItem)
		case constants.KindVehicle:
			payload.Vehicle = append(payload.Vehicle, releaseItem)
		default:
			return gsd.ReleasePayload{}, fmt.Errorf("unroutable resource kind %q", kind)
		}
	}
	return payload, nil
}

// Assign transitions a reservation from Not Assigned to Assigned. All
// input is checked before the first backend call: an invalid request
// must cost zero network traffic. The two writes (release insert, then
// checklist save) are not atomic on the backend; if the second fails
// the result says so and the saved payload stays retryable.
func (s *AssignmentService) Assign(ctx context.Context, reservationID uint64, payload dto.AssignDTO) (*dto.AssignResultDTO, error) {
	if len(payload.Checklists) == 0 {
		return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "at least one checklist item is required", nil, nil)
	}
	for i, item := range payload.Checklists {
		if strings.TrimSpace(item.Name) == "" {
			return nil, apperrors.NewHttpError(
				http.StatusUnprocessableEntity,
				fmt.Sprintf("checklist item %d has an empty name", i+1),
				nil,
				nil,
			)
		}
	}

	release, err := buildRelease(reservationID, payload.PersonnelID, payload.Checklists)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, err.Error(), err, nil)
	}

	if _, err := s.catalog.FindPersonnel(ctx, payload.PersonnelID); err != nil {
		return nil, err
	}

	if err := s.api.InsertRelease(ctx, release); err != nil {
		return nil, mapBackendError(err)
	}

	checklistSave := gsd.ChecklistSavePayload{
		ReservationID: reservationID,
		Items:         make([]gsd.ChecklistSaveItem, 0, len(payload.Checklists)),
	}
	for _, item := range payload.Checklists {
		checklistSave.Items = append(checklistSave.Items, gsd.ChecklistSaveItem{
			ChecklistID: item.ChecklistID,
			Name:        item.Name,
		})
	}

	// Record the second write before attempting it, so an interrupted
	// assignment is visible and replayable instead of silently half-done.
	if data, err := json.Marshal(checklistSave); err == nil {
		if err := s.cache.Set(ctx, pendingChecklistKey(reservationID), data, pendingChecklistTTL); err != nil {
			s.logger.Warn("failed to record pending checklist save", zap.Uint64("reservation_id", reservationID), zap.Error(err))
		}
	}

	if err := s.api.SaveChecklist(ctx, checklistSave); err != nil {
		s.logger.Error("release inserted but checklist save failed",
			zap.Uint64("reservation_id", reservationID),
			zap.Error(err),
		)
		return &dto.AssignResultDTO{
			ReservationID: reservationID,
			State:         dto.AssignStatePendingChecklist,
			Message:       "release recorded, checklist save failed; retry the checklist save",
		}, nil
	}

	if err := s.cache.Del(ctx, pendingChecklistKey(reservationID)); err != nil {
		s.logger.Warn("failed to clear pending checklist marker", zap.Uint64("reservation_id", reservationID), zap.Error(err))
	}

	return &dto.AssignResultDTO{
		ReservationID: reservationID,
		State:         dto.AssignStateAssigned,
	}, nil
}

// RetryChecklist replays the checklist save of an interrupted
// assignment. Only the second write is repeated; the release record
// already exists.
func (s *AssignmentService) RetryChecklist(ctx context.Context, reservationID uint64) error {
	data, err := s.cache.Get(ctx, pendingChecklistKey(reservationID))
	if err != nil {
		if errors.Is(err, repositories.ErrCacheMiss) {
			return apperrors.NewHttpError(http.StatusNotFound, apperrors.ErrNoPendingChecklist.Error(), apperrors.ErrNoPendingChecklist, nil)
		}
		return err
	}

	var checklistSave gsd.ChecklistSavePayload
	if err := json.Unmarshal([]byte(data), &checklistSave); err != nil {
		return fmt.Errorf("corrupt pending checklist record: %w", err)
	}

	if err := s.api.SaveChecklist(ctx, checklistSave); err != nil {
		return mapBackendError(err)
	}

	if err := s.cache.Del(ctx, pendingChecklistKey(reservationID)); err != nil {
		s.logger.Warn("failed to clear pending checklist marker", zap.Uint64("reservation_id", reservationID), zap.Error(err))
	}
	return nil
}

// completedStatus resolves the backend's id for the Completed status
// from its own status table, once, instead of trusting a hard-coded
// number to survive a renumbering.
func (s *AssignmentService) completedStatus(ctx context.Context) (uint64, error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	if s.completedStatusID != 0 {
		return s.completedStatusID, nil
	}

	options, err := s.api.FetchStatusAvailability(ctx)
	if err != nil {
		return 0, mapBackendError(err)
	}
	for _, opt := range options {
		if opt.Name == constants.StatusCompleted {
			s.completedStatusID = opt.ID
			return opt.ID, nil
		}
	}
	return 0, apperrors.NewHttpError(
		http.StatusBadGateway,
		fmt.Sprintf("backend status table does not define %q", constants.StatusCompleted),
		nil,
		nil,
	)
}

// Complete moves an Assigned reservation to Completed. Both the
// lifecycle position and the checklist state are re-read from the
// backend here; the caller's view is not trusted.
func (s *AssignmentService) Complete(ctx context.Context, reservationID uint64, typ constants.ReservationType) error {
	assigned, err := s.api.FetchAssignedReleases(ctx)
	if err != nil {
		return mapBackendError(err)
	}
	var release *entities.Reservation
	for i := range assigned {
		if assigned[i].ID == reservationID {
			release = &assigned[i]
			break
		}
	}
	if release == nil {
		return apperrors.NewHttpError(http.StatusConflict, "reservation is not awaiting completion", nil, nil)
	}
	if !constants.IsForwardTransition(release.Status, constants.StatusCompleted) {
		return apperrors.NewHttpError(
			http.StatusConflict,
			fmt.Sprintf("cannot move a release from %q to %q", release.Status, constants.StatusCompleted),
			nil,
			nil,
		)
	}

	items, err := s.api.GetReservedByID(ctx, reservationID, typ)
	if err != nil {
		return mapBackendError(err)
	}
	if !allCompleted(items) {
		return apperrors.NewHttpError(
			http.StatusConflict,
			apperrors.ErrChecklistIncomplete.Error(),
			apperrors.ErrChecklistIncomplete,
			nil,
		)
	}

	statusID, err := s.completedStatus(ctx)
	if err != nil {
		return err
	}

	if err := s.api.UpdateReleaseStatus(ctx, reservationID, statusID); err != nil {
		return mapBackendError(err)
	}
	return nil
}

// mapBackendError keeps the backend's own message when it reported the
// failure, and degrades transport errors to a generic gateway message.
func mapBackendError(err error) error {
	var backendErr *gsd.BackendError
	if errors.As(err, &backendErr) {
		return apperrors.NewHttpError(http.StatusBadGateway, backendErr.Message, err, nil)
	}
	return apperrors.NewHttpError(http.StatusBadGateway, "could not reach the reservation backend", err, nil)
}
