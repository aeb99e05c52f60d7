package gsd

import (
	"context"
	"fmt"

	"reservation-system/internal/entities"
	"reservation-system/pkg/constants"
)

// Per-concern views over the provider. Services depend on these instead
// of the full client.

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*entities.User, error)
}

type CatalogAPI interface {
	FetchVenues(ctx context.Context) ([]entities.Venue, error)
	FetchVehicles(ctx context.Context) ([]entities.Vehicle, error)
	FetchEquipments(ctx context.Context) ([]entities.Equipment, error)
	FetchUsers(ctx context.Context) ([]entities.User, error)
	FetchPersonnel(ctx context.Context) ([]entities.Personnel, error)
}

type ReservationAPI interface {
	CompleteReservation(ctx context.Context, payload ReservationPayload) error
}

type AssignmentAPI interface {
	FetchNoAssignedReservations(ctx context.Context) ([]entities.Reservation, error)
	FetchAssignedReleases(ctx context.Context) ([]entities.Reservation, error)
	FetchCompletedReleases(ctx context.Context) ([]entities.Reservation, error)
	GetReservedByID(ctx context.Context, reservationID uint64, typ constants.ReservationType) ([]entities.ChecklistItem, error)
	InsertRelease(ctx context.Context, payload ReleasePayload) error
	SaveChecklist(ctx context.Context, payload ChecklistSavePayload) error
	UpdateReleaseStatus(ctx context.Context, reservationID, statusID uint64) error
	FetchStatusAvailability(ctx context.Context) ([]entities.StatusOption, error)
}

type ChecklistAPI interface {
	FetchChecklistSummary(ctx context.Context) ([]entities.ChecklistSummary, error)
	FetchAllResources(ctx context.Context, kind constants.ResourceKind) ([]entities.ResourceOption, error)
	FetchChecklistByID(ctx context.Context, kind constants.ResourceKind, resourceID uint64) ([]entities.MasterChecklistItem, error)
	SaveMasterChecklist(ctx context.Context, payload MasterChecklistPayload) error
	UpdateChecklist(ctx context.Context, itemID uint64, name string) error
}

// --- auth ---

func (p *Provider) Login(ctx context.Context, username, password string) (*entities.User, error) {
	payload := map[string]string{"username": username, "password": password}
	var raw rawLoginUser
	if err := p.call(ctx, "login", payload, &raw); err != nil {
		return nil, err
	}
	return &entities.User{ID: uint64(raw.UsersID), FullName: raw.FullName}, nil
}

// --- catalog ---

func (p *Provider) FetchVenues(ctx context.Context) ([]entities.Venue, error) {
	var raws []rawVenue
	if err := p.call(ctx, "fetchVenue", nil, &raws); err != nil {
		return nil, err
	}
	venues := make([]entities.Venue, 0, len(raws))
	for _, r := range raws {
		venues = append(venues, mapVenue(r))
	}
	return venues, nil
}

func (p *Provider) FetchVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	var raws []rawVehicle
	if err := p.call(ctx, "fetchVehicles", nil, &raws); err != nil {
		return nil, err
	}
	vehicles := make([]entities.Vehicle, 0, len(raws))
	for _, r := range raws {
		vehicles = append(vehicles, mapVehicle(r))
	}
	return vehicles, nil
}

func (p *Provider) FetchEquipments(ctx context.Context) ([]entities.Equipment, error) {
	var raws []rawEquipment
	if err := p.call(ctx, "fetchEquipments", nil, &raws); err != nil {
		return nil, err
	}
	equipments := make([]entities.Equipment, 0, len(raws))
	for _, r := range raws {
		equipments = append(equipments, mapEquipment(r))
	}
	return equipments, nil
}

func (p *Provider) FetchUsers(ctx context.Context) ([]entities.User, error) {
	var raws []rawUser
	if err := p.call(ctx, "fetchUsers", nil, &raws); err != nil {
		return nil, err
	}
	users := make([]entities.User, 0, len(raws))
	for _, r := range raws {
		users = append(users, mapUser(r))
	}
	return users, nil
}

func (p *Provider) FetchPersonnel(ctx context.Context) ([]entities.Personnel, error) {
	var raws []rawPersonnel
	if err := p.call(ctx, "fetchPersonnel", nil, &raws); err != nil {
		return nil, err
	}
	personnel := make([]entities.Personnel, 0, len(raws))
	for _, r := range raws {
		personnel = append(personnel, mapPersonnel(r))
	}
	return personnel, nil
}

// --- reservation ---

func (p *Provider) CompleteReservation(ctx context.Context, payload ReservationPayload) error {
	return p.call(ctx, "completeReservation", payload, nil)
}

// --- assignment ---

func (p *Provider) fetchReservationList(ctx context.Context, operation string) ([]entities.Reservation, error) {
	var raws []rawReservation
	if err := p.call(ctx, operation, nil, &raws); err != nil {
		return nil, err
	}
	reservations := make([]entities.Reservation, 0, len(raws))
	for _, r := range raws {
		res, err := mapReservation(r)
		if err != nil {
			// Skip rows the backend tagged with a kind this gateway does
			// not know; the remaining rows are still usable.
			p.logger.Warn(fmt.Sprintf("skipping malformed row from %s: %v", operation, err))
			continue
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (p *Provider) FetchNoAssignedReservations(ctx context.Context) ([]entities.Reservation, error) {
	return p.fetchReservationList(ctx, "fetchNoAssignedReservation")
}

func (p *Provider) FetchAssignedReleases(ctx context.Context) ([]entities.Reservation, error) {
	return p.fetchReservationList(ctx, "fetchAssignedRelease")
}

func (p *Provider) FetchCompletedReleases(ctx context.Context) ([]entities.Reservation, error) {
	return p.fetchReservationList(ctx, "fetchCompletedRelease")
}

func (p *Provider) GetReservedByID(ctx context.Context, reservationID uint64, typ constants.ReservationType) ([]entities.ChecklistItem, error) {
	payload := map[string]interface{}{
		"reservation_id": reservationID,
		"type":           string(typ),
	}
	var raw rawReservedDetail
	if err := p.call(ctx, "getReservedById", payload, &raw); err != nil {
		return nil, err
	}
	return flattenReservedDetail(raw), nil
}

func (p *Provider) InsertRelease(ctx context.Context, payload ReleasePayload) error {
	return p.call(ctx, "insertRelease", payload, nil)
}

func (p *Provider) SaveChecklist(ctx context.Context, payload ChecklistSavePayload) error {
	return p.call(ctx, "saveChecklist", payload, nil)
}

func (p *Provider) UpdateReleaseStatus(ctx context.Context, reservationID, statusID uint64) error {
	payload := map[string]uint64{
		"reservation_id": reservationID,
		"status_id":      statusID,
	}
	return p.call(ctx, "updateReleaseStatus", payload, nil)
}

func (p *Provider) FetchStatusAvailability(ctx context.Context) ([]entities.StatusOption, error) {
	var raws []rawStatusOption
	if err := p.call(ctx, "fetchStatusAvailability", nil, &raws); err != nil {
		return nil, err
	}
	options := make([]entities.StatusOption, 0, len(raws))
	for _, r := range raws {
		options = append(options, entities.StatusOption{ID: uint64(r.StatusID), Name: r.StatusName})
	}
	return options, nil
}

// --- checklist registry ---

func (p *Provider) FetchChecklistSummary(ctx context.Context) ([]entities.ChecklistSummary, error) {
	var raws []rawChecklistSummary
	if err := p.call(ctx, "fetchChecklist", nil, &raws); err != nil {
		return nil, err
	}
	summaries := make([]entities.ChecklistSummary, 0, len(raws))
	for _, r := range raws {
		s, err := mapChecklistSummary(r)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func (p *Provider) FetchAllResources(ctx context.Context, kind constants.ResourceKind) ([]entities.ResourceOption, error) {
	payload := map[string]string{"type": string(kind)}
	var raws []rawResourceOption
	if err := p.call(ctx, "fetchAllResources", payload, &raws); err != nil {
		return nil, err
	}
	resources := make([]entities.ResourceOption, 0, len(raws))
	for _, r := range raws {
		resources = append(resources, entities.ResourceOption{ID: uint64(r.ID), Name: r.Name})
	}
	return resources, nil
}

func (p *Provider) FetchChecklistByID(ctx context.Context, kind constants.ResourceKind, resourceID uint64) ([]entities.MasterChecklistItem, error) {
	payload := map[string]interface{}{
		"type":        string(kind),
		"resource_id": resourceID,
	}
	var raws []rawMasterItem
	if err := p.call(ctx, "fetchChecklistById", payload, &raws); err != nil {
		return nil, err
	}
	items := make([]entities.MasterChecklistItem, 0, len(raws))
	for _, r := range raws {
		items = append(items, entities.MasterChecklistItem{ID: uint64(r.ChecklistID), Name: r.Name})
	}
	return items, nil
}

func (p *Provider) SaveMasterChecklist(ctx context.Context, payload MasterChecklistPayload) error {
	return p.call(ctx, "saveMasterChecklist", payload, nil)
}

func (p *Provider) UpdateChecklist(ctx context.Context, itemID uint64, name string) error {
	payload := map[string]interface{}{
		"checklist_id":   itemID,
		"checklist_name": name,
	}
	return p.call(ctx, "updateChecklist", payload, nil)
}
