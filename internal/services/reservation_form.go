package services

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"reservation-system/internal/dto"
	"reservation-system/internal/entities"
	"reservation-system/internal/integrations/gsd"
	"reservation-system/internal/repositories"
	apperrors "reservation-system/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Names reported when required fields are missing at submit. The
// validation collects every omission, not just the first.
var requiredDraftFields = []struct {
	name    string
	present func(d entities.ReservationDraft) bool
}{
	{"reservation_name", func(d entities.ReservationDraft) bool { return strings.TrimSpace(d.ReservationName) != "" }},
	{"event_title", func(d entities.ReservationDraft) bool { return strings.TrimSpace(d.EventTitle) != "" }},
	{"venue", func(d entities.ReservationDraft) bool { return d.VenueID != 0 }},
	{"user", func(d entities.ReservationDraft) bool { return d.UserID != 0 }},
	{"start_date", func(d entities.ReservationDraft) bool { return d.StartDate != "" }},
	{"end_date", func(d entities.ReservationDraft) bool { return d.EndDate != "" }},
}

type ReservationFormServiceInterface interface {
	Create(ctx context.Context) (*dto.FormSessionDTO, error)
	Get(ctx context.Context, id string) (*dto.FormSessionDTO, error)
	UpdateDraft(ctx context.Context, id string, payload dto.UpdateDraftDTO) (*dto.FormSessionDTO, error)
	SelectVenue(ctx context.Context, id string, venueID uint64) (*dto.FormSessionDTO, error)
	ToggleVehicle(ctx context.Context, id string, vehicleID uint64) (*dto.FormSessionDTO, error)
	ToggleEquipment(ctx context.Context, id string, equipmentID uint64) (*dto.FormSessionDTO, error)
	SetEquipmentQuantity(ctx context.Context, id string, equipmentID, quantity uint64) (*dto.FormSessionDTO, error)
	Submit(ctx context.Context, id string) error
}

// ReservationFormService owns the draft and resource selections of an
// in-progress reservation. Pickers are thin views over this state:
// closing one discards nothing, only submit or expiry resets the form.
type ReservationFormService struct {
	sessions repositories.FormSessionRepositoryInterface
	catalog  CatalogServiceInterface
	api      gsd.ReservationAPI
	logger   *zap.Logger
}

func NewReservationFormService(
	sessions repositories.FormSessionRepositoryInterface,
	catalog CatalogServiceInterface,
	api gsd.ReservationAPI,
	logger *zap.Logger,
) *ReservationFormService {
	return &ReservationFormService{
		sessions: sessions,
		catalog:  catalog,
		api:      api,
		logger:   logger,
	}
}

func toSessionDTO(s *entities.FormSession) *dto.FormSessionDTO {
	equipments := make([]dto.EquipmentSelectionDTO, 0, len(s.Equipment))
	for id, qty := range s.Equipment {
		equipments = append(equipments, dto.EquipmentSelectionDTO{EquipID: id, Quantity: qty})
	}
	sort.Slice(equipments, func(i, j int) bool { return equipments[i].EquipID < equipments[j].EquipID })

	vehicleIDs := s.VehicleIDs
	if vehicleIDs == nil {
		vehicleIDs = []uint64{}
	}

	return &dto.FormSessionDTO{
		ID:         s.ID,
		Draft:      s.Draft,
		VehicleIDs: vehicleIDs,
		Equipments: equipments,
	}
}

func (s *ReservationFormService) Create(ctx context.Context) (*dto.FormSessionDTO, error) {
	session := &entities.FormSession{
		ID:        uuid.NewString(),
		Equipment: make(map[uint64]uint64),
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("reservation form session created", zap.String("session_id", session.ID))
	return toSessionDTO(session), nil
}

func (s *ReservationFormService) load(ctx context.Context, id string) (*entities.FormSession, error) {
	session, err := s.sessions.Find(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFormSessionNotFound) {
			return nil, apperrors.NewHttpError(http.StatusNotFound, err.Error(), err, nil)
		}
		return nil, err
	}
	if session.Equipment == nil {
		session.Equipment = make(map[uint64]uint64)
	}
	return session, nil
}

func (s *ReservationFormService) Get(ctx context.Context, id string) (*dto.FormSessionDTO, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

func (s *ReservationFormService) UpdateDraft(ctx context.Context, id string, payload dto.UpdateDraftDTO) (*dto.FormSessionDTO, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := session.Draft
	if payload.ReservationName != nil {
		draft.ReservationName = *payload.ReservationName
	}
	if payload.EventTitle != nil {
		draft.EventTitle = *payload.EventTitle
	}
	if payload.Description != nil {
		draft.Description = *payload.Description
	}
	if payload.UserID != nil {
		draft.UserID = *payload.UserID
	}
	if payload.StartDate != nil {
		draft.StartDate = *payload.StartDate
	}
	if payload.EndDate != nil {
		draft.EndDate = *payload.EndDate
	}

	// The calendar rule: end must not precede start, compared on date
	// portions only. The whole update is rejected, nothing is applied.
	if draft.StartDate != "" && draft.EndDate != "" {
		start, err1 := time.Parse("2006-01-02", draft.StartDate)
		end, err2 := time.Parse("2006-01-02", draft.EndDate)
		if err1 != nil || err2 != nil {
			return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "dates must be in YYYY-MM-DD format", nil, nil)
		}
		if end.Before(start) {
			return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "end date must not precede start date", nil, nil)
		}
	}

	session.Draft = draft
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

// SelectVenue is exclusive: picking a venue replaces the previous pick.
func (s *ReservationFormService) SelectVenue(ctx context.Context, id string, venueID uint64) (*dto.FormSessionDTO, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.catalog.FindVenue(ctx, venueID); err != nil {
		return nil, err
	}
	session.Draft.VenueID = venueID
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

func (s *ReservationFormService) ToggleVehicle(ctx context.Context, id string, vehicleID uint64) (*dto.FormSessionDTO, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.HasVehicle(vehicleID) {
		if _, err := s.catalog.FindVehicle(ctx, vehicleID); err != nil {
			return nil, err
		}
	}
	session.ToggleVehicle(vehicleID)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

// ToggleEquipment is the checkbox: absent -> selected with quantity 1,
// present -> removed.
func (s *ReservationFormService) ToggleEquipment(ctx context.Context, id string, equipmentID uint64) (*dto.FormSessionDTO, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, selected := session.Equipment[equipmentID]; selected {
		delete(session.Equipment, equipmentID)
	} else {
		equipment, err := s.catalog.FindEquipment(ctx, equipmentID)
		if err != nil {
			return nil, err
		}
		if equipment.Quantity < 1 {
			return nil, apperrors.NewHttpError(
				http.StatusUnprocessableEntity,
				"equipment has no available units",
				nil,
				map[string]interface{}{"equip_id": equipmentID},
			)
		}
		session.Equipment[equipmentID] = 1
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

// SetEquipmentQuantity bounds the request by the advertised available
// count. Out-of-range input is rejected outright, never clamped; the
// stored quantity keeps its previous value.
func (s *ReservationFormService) SetEquipmentQuantity(ctx context.Context, id string, equipmentID, quantity uint64) (*dto.FormSessionDTO, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, selected := session.Equipment[equipmentID]; !selected {
		return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "equipment is not selected", nil, nil)
	}

	equipment, err := s.catalog.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 || quantity > equipment.Quantity {
		return nil, apperrors.NewHttpErrorWithDetails(
			http.StatusUnprocessableEntity,
			"requested quantity exceeds the available stock",
			nil,
			map[string]uint64{"requested": quantity, "available": equipment.Quantity},
		)
	}

	session.Equipment[equipmentID] = quantity
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

func missingFields(draft entities.ReservationDraft) []string {
	var missing []string
	for _, f := range requiredDraftFields {
		if !f.present(draft) {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func buildPayload(session *entities.FormSession) gsd.ReservationPayload {
	vehicles := make([]gsd.VehicleRef, 0, len(session.VehicleIDs))
	for _, id := range session.VehicleIDs {
		vehicles = append(vehicles, gsd.VehicleRef{VehicleID: id})
	}

	equipIDs := make([]uint64, 0, len(session.Equipment))
	for id := range session.Equipment {
		equipIDs = append(equipIDs, id)
	}
	sort.Slice(equipIDs, func(i, j int) bool { return equipIDs[i] < equipIDs[j] })
	equipments := make([]gsd.EquipmentRef, 0, len(equipIDs))
	for _, id := range equipIDs {
		equipments = append(equipments, gsd.EquipmentRef{EquipID: id, Quantity: session.Equipment[id]})
	}

	return gsd.ReservationPayload{
		Reservation: gsd.ReservationBody{
			ReservationName: session.Draft.ReservationName,
			EventTitle:      session.Draft.EventTitle,
			Description:     session.Draft.Description,
			UserID:          session.Draft.UserID,
			StartDate:       session.Draft.StartDate,
			EndDate:         session.Draft.EndDate,
		},
		Vehicles:   vehicles,
		Venues:     []gsd.VenueRef{{VenueID: session.Draft.VenueID}},
		Equipments: equipments,
	}
}

// Submit validates the whole draft, sends the one completeReservation
// POST and, only on backend success, destroys the session (the full
// form reset). A failed submission leaves everything in place so the
// operator can resubmit.
func (s *ReservationFormService) Submit(ctx context.Context, id string) error {
	session, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if missing := missingFields(session.Draft); len(missing) > 0 {
		return apperrors.NewHttpErrorWithDetails(
			http.StatusUnprocessableEntity,
			"missing required fields: "+strings.Join(missing, ", "),
			nil,
			map[string]interface{}{"missing_fields": missing},
		)
	}

	if err := s.api.CompleteReservation(ctx, buildPayload(session)); err != nil {
		var backendErr *gsd.BackendError
		if errors.As(err, &backendErr) {
			return apperrors.NewHttpError(http.StatusBadGateway, backendErr.Message, err, nil)
		}
		s.logger.Error("completeReservation failed", zap.String("session_id", id), zap.Error(err))
		return apperrors.NewHttpError(http.StatusBadGateway, "could not reach the reservation backend", err, nil)
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		// The reservation is already accepted; an undeleted session only
		// costs its TTL.
		s.logger.Warn("failed to delete submitted form session", zap.String("session_id", id), zap.Error(err))
	}

	s.logger.Info("reservation submitted", zap.String("session_id", id))
	return nil
}
