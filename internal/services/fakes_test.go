package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"reservation-system/internal/entities"
	"reservation-system/internal/integrations/gsd"
	"reservation-system/internal/repositories"
	"reservation-system/pkg/constants"
	apperrors "reservation-system/pkg/errors"
)

// --- in-memory form session repository ---

type fakeSessionRepo struct {
	store map[string][]byte
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{store: make(map[string][]byte)}
}

func (r *fakeSessionRepo) Save(_ context.Context, session *entities.FormSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	r.store[session.ID] = data
	return nil
}

func (r *fakeSessionRepo) Find(_ context.Context, id string) (*entities.FormSession, error) {
	data, ok := r.store[id]
	if !ok {
		return nil, apperrors.ErrFormSessionNotFound
	}
	var session entities.FormSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.store, id)
	return nil
}

var _ repositories.FormSessionRepositoryInterface = (*fakeSessionRepo)(nil)

// --- in-memory cache ---

type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]string)}
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case string:
		c.store[key] = v
	case []byte:
		c.store[key] = string(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		c.store[key] = string(data)
	}
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	value, ok := c.store[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return value, nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	return nil
}

var _ repositories.CacheRepositoryInterface = (*fakeCache)(nil)

// --- static catalog ---

type fakeCatalog struct {
	venues     []entities.Venue
	vehicles   []entities.Vehicle
	equipments []entities.Equipment
	users      []entities.User
	personnel  []entities.Personnel

	lookups int // Find* calls, to prove validation order
}

func (c *fakeCatalog) Venues(context.Context, bool) ([]entities.Venue, error) {
	return c.venues, nil
}

func (c *fakeCatalog) Vehicles(context.Context, bool) ([]entities.Vehicle, error) {
	return c.vehicles, nil
}

func (c *fakeCatalog) Equipments(context.Context, bool) ([]entities.Equipment, error) {
	return c.equipments, nil
}

func (c *fakeCatalog) Users(context.Context, bool) ([]entities.User, error) {
	return c.users, nil
}

func (c *fakeCatalog) Personnel(context.Context, bool) ([]entities.Personnel, error) {
	return c.personnel, nil
}

func catalogNotFound(what string, id uint64) error {
	return apperrors.NewHttpError(http.StatusNotFound, what+" is not in the catalog", apperrors.ErrNotFound, map[string]interface{}{"id": id})
}

func (c *fakeCatalog) FindVenue(_ context.Context, id uint64) (*entities.Venue, error) {
	c.lookups++
	for i := range c.venues {
		if c.venues[i].ID == id {
			return &c.venues[i], nil
		}
	}
	return nil, catalogNotFound("venue", id)
}

func (c *fakeCatalog) FindVehicle(_ context.Context, id uint64) (*entities.Vehicle, error) {
	c.lookups++
	for i := range c.vehicles {
		if c.vehicles[i].ID == id {
			return &c.vehicles[i], nil
		}
	}
	return nil, catalogNotFound("vehicle", id)
}

func (c *fakeCatalog) FindEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	c.lookups++
	for i := range c.equipments {
		if c.equipments[i].ID == id {
			return &c.equipments[i], nil
		}
	}
	return nil, catalogNotFound("equipment", id)
}

func (c *fakeCatalog) FindPersonnel(_ context.Context, id uint64) (*entities.Personnel, error) {
	c.lookups++
	for i := range c.personnel {
		if c.personnel[i].ID == id {
			return &c.personnel[i], nil
		}
	}
	return nil, catalogNotFound("personnel", id)
}

var _ CatalogServiceInterface = (*fakeCatalog)(nil)

// --- reservation write API ---

type fakeReservationAPI struct {
	payloads []gsd.ReservationPayload
	err      error
}

func (a *fakeReservationAPI) CompleteReservation(_ context.Context, payload gsd.ReservationPayload) error {
	if a.err != nil {
		return a.err
	}
	a.payloads = append(a.payloads, payload)
	return nil
}

var _ gsd.ReservationAPI = (*fakeReservationAPI)(nil)

// --- assignment API with a call log ---

type fakeAssignmentAPI struct {
	calls []string

	notAssigned []entities.Reservation
	assigned    []entities.Reservation
	completed   []entities.Reservation
	items       []entities.ChecklistItem
	statuses    []entities.StatusOption

	releases       []gsd.ReleasePayload
	checklistSaves []gsd.ChecklistSavePayload
	statusUpdates  [][2]uint64

	insertReleaseErr error
	saveChecklistErr error
	updateStatusErr  error
}

func (a *fakeAssignmentAPI) FetchNoAssignedReservations(context.Context) ([]entities.Reservation, error) {
	a.calls = append(a.calls, "fetchNoAssignedReservation")
	return a.notAssigned, nil
}

func (a *fakeAssignmentAPI) FetchAssignedReleases(context.Context) ([]entities.Reservation, error) {
	a.calls = append(a.calls, "fetchAssignedRelease")
	return a.assigned, nil
}

func (a *fakeAssignmentAPI) FetchCompletedReleases(context.Context) ([]entities.Reservation, error) {
	a.calls = append(a.calls, "fetchCompletedRelease")
	return a.completed, nil
}

func (a *fakeAssignmentAPI) GetReservedByID(context.Context, uint64, constants.ReservationType) ([]entities.ChecklistItem, error) {
	a.calls = append(a.calls, "getReservedById")
	return a.items, nil
}

func (a *fakeAssignmentAPI) InsertRelease(_ context.Context, payload gsd.ReleasePayload) error {
	a.calls = append(a.calls, "insertRelease")
	if a.insertReleaseErr != nil {
		return a.insertReleaseErr
	}
	a.releases = append(a.releases, payload)
	return nil
}

func (a *fakeAssignmentAPI) SaveChecklist(_ context.Context, payload gsd.ChecklistSavePayload) error {
	a.calls = append(a.calls, "saveChecklist")
	if a.saveChecklistErr != nil {
		return a.saveChecklistErr
	}
	a.checklistSaves = append(a.checklistSaves, payload)
	return nil
}

func (a *fakeAssignmentAPI) UpdateReleaseStatus(_ context.Context, reservationID, statusID uint64) error {
	a.calls = append(a.calls, "updateReleaseStatus")
	if a.updateStatusErr != nil {
		return a.updateStatusErr
	}
	a.statusUpdates = append(a.statusUpdates, [2]uint64{reservationID, statusID})
	return nil
}

func (a *fakeAssignmentAPI) FetchStatusAvailability(context.Context) ([]entities.StatusOption, error) {
	a.calls = append(a.calls, "fetchStatusAvailability")
	return a.statuses, nil
}

var _ gsd.AssignmentAPI = (*fakeAssignmentAPI)(nil)

// --- checklist registry API ---

type fakeChecklistAPI struct {
	summaries []entities.ChecklistSummary
	resources []entities.ResourceOption
	items     map[uint64][]entities.MasterChecklistItem

	saved   []gsd.MasterChecklistPayload
	renames map[uint64]string
	saveErr error
}

func newFakeChecklistAPI() *fakeChecklistAPI {
	return &fakeChecklistAPI{
		items:   make(map[uint64][]entities.MasterChecklistItem),
		renames: make(map[uint64]string),
	}
}

func (a *fakeChecklistAPI) FetchChecklistSummary(context.Context) ([]entities.ChecklistSummary, error) {
	return a.summaries, nil
}

func (a *fakeChecklistAPI) FetchAllResources(context.Context, constants.ResourceKind) ([]entities.ResourceOption, error) {
	return a.resources, nil
}

func (a *fakeChecklistAPI) FetchChecklistByID(_ context.Context, _ constants.ResourceKind, resourceID uint64) ([]entities.MasterChecklistItem, error) {
	return a.items[resourceID], nil
}

func (a *fakeChecklistAPI) SaveMasterChecklist(_ context.Context, payload gsd.MasterChecklistPayload) error {
	if a.saveErr != nil {
		return a.saveErr
	}
	a.saved = append(a.saved, payload)
	next := a.items[payload.ResourceID]
	for _, name := range payload.Items {
		next = append(next, entities.MasterChecklistItem{ID: uint64(len(next) + 1), Name: name})
	}
	a.items[payload.ResourceID] = next
	return nil
}

func (a *fakeChecklistAPI) UpdateChecklist(_ context.Context, itemID uint64, name string) error {
	a.renames[itemID] = name
	return nil
}

var _ gsd.ChecklistAPI = (*fakeChecklistAPI)(nil)
