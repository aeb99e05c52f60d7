package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reservation-system/internal/dto"
	"reservation-system/internal/entities"
	"reservation-system/internal/integrations/gsd"
	apperrors "reservation-system/pkg/errors"
)

func strPtr(s string) *string { return &s }

func uintPtr(n uint64) *uint64 { return &n }

func newFormFixture() (*ReservationFormService, *fakeSessionRepo, *fakeCatalog, *fakeReservationAPI) {
	sessions := newFakeSessionRepo()
	catalog := &fakeCatalog{
		venues:     []entities.Venue{{ID: 5, Name: "Main Hall", Occupancy: 150}},
		vehicles:   []entities.Vehicle{{ID: 3, License: "ABC-123"}, {ID: 4, License: "XYZ-987"}},
		equipments: []entities.Equipment{{ID: 7, Name: "Projector", Quantity: 10}},
	}
	api := &fakeReservationAPI{}
	svc := NewReservationFormService(sessions, catalog, api, zap.NewNop())
	return svc, sessions, catalog, api
}

func createSession(t *testing.T, svc *ReservationFormService) string {
	t.Helper()
	created, err := svc.Create(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestGet_UnknownSessionIs404(t *testing.T) {
	svc, _, _, _ := newFormFixture()

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestUpdateDraft_MergesOnlyProvidedFields(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)

	_, err := svc.UpdateDraft(ctx, id, dto.UpdateDraftDTO{
		ReservationName: strPtr("Sports Fest"),
		UserID:          uintPtr(2),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDraft(ctx, id, dto.UpdateDraftDTO{EventTitle: strPtr("Opening")})
	require.NoError(t, err)

	assert.Equal(t, "Sports Fest", updated.Draft.ReservationName)
	assert.Equal(t, "Opening", updated.Draft.EventTitle)
	assert.Equal(t, uint64(2), updated.Draft.UserID)
}

func TestUpdateDraft_EndBeforeStartRejectsWholeUpdate(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)

	_, err := svc.UpdateDraft(ctx, id, dto.UpdateDraftDTO{
		StartDate: strPtr("2026-09-10"),
		EndDate:   strPtr("2026-09-05"),
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)

	// Nothing from the rejected update may stick.
	current, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, current.Draft.StartDate)
	assert.Empty(t, current.Draft.EndDate)
}

func TestUpdateDraft_SameDayIsAllowed(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	id := createSession(t, svc)

	updated, err := svc.UpdateDraft(context.Background(), id, dto.UpdateDraftDTO{
		StartDate: strPtr("2026-09-10"),
		EndDate:   strPtr("2026-09-10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", updated.Draft.EndDate)
}

func TestSelectVenue_ReplacesPreviousPick(t *testing.T) {
	svc, _, catalog, _ := newFormFixture()
	catalog.venues = append(catalog.venues, entities.Venue{ID: 6, Name: "Annex"})
	ctx := context.Background()
	id := createSession(t, svc)

	_, err := svc.SelectVenue(ctx, id, 5)
	require.NoError(t, err)

	updated, err := svc.SelectVenue(ctx, id, 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), updated.Draft.VenueID)
}

func TestSelectVenue_UnknownVenueIs404(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	id := createSession(t, svc)

	_, err := svc.SelectVenue(context.Background(), id, 999)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestToggleVehicle_TwiceRestoresSelection(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)

	once, err := svc.ToggleVehicle(ctx, id, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, once.VehicleIDs)

	twice, err := svc.ToggleVehicle(ctx, id, 3)
	require.NoError(t, err)
	assert.Empty(t, twice.VehicleIDs)
}

func TestToggleEquipment_DefaultsQuantityToOne(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)

	selected, err := svc.ToggleEquipment(ctx, id, 7)
	require.NoError(t, err)
	require.Len(t, selected.Equipments, 1)
	assert.Equal(t, uint64(7), selected.Equipments[0].EquipID)
	assert.Equal(t, uint64(1), selected.Equipments[0].Quantity)

	removed, err := svc.ToggleEquipment(ctx, id, 7)
	require.NoError(t, err)
	assert.Empty(t, removed.Equipments)
}

func TestSetEquipmentQuantity_OutOfRangeKeepsPreviousValue(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)

	_, err := svc.ToggleEquipment(ctx, id, 7)
	require.NoError(t, err)

	// 15 exceeds the 10 advertised units: reject, never clamp.
	_, err = svc.SetEquipmentQuantity(ctx, id, 7, 15)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
	assert.Equal(t, map[string]uint64{"requested": 15, "available": 10}, httpErr.Details)

	current, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, current.Equipments, 1)
	assert.Equal(t, uint64(1), current.Equipments[0].Quantity)
}

func TestSetEquipmentQuantity_WithinBoundsApplies(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)

	_, err := svc.ToggleEquipment(ctx, id, 7)
	require.NoError(t, err)

	updated, err := svc.SetEquipmentQuantity(ctx, id, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), updated.Equipments[0].Quantity)
}

func TestSetEquipmentQuantity_UnselectedEquipmentIsRejected(t *testing.T) {
	svc, _, _, _ := newFormFixture()
	id := createSession(t, svc)

	_, err := svc.SetEquipmentQuantity(context.Background(), id, 7, 2)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
}

func TestSubmit_EnumeratesEveryMissingField(t *testing.T) {
	svc, _, _, api := newFormFixture()
	id := createSession(t, svc)

	err := svc.Submit(context.Background(), id)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)

	details, ok := httpErr.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t,
		[]string{"reservation_name", "event_title", "venue", "user", "start_date", "end_date"},
		details["missing_fields"],
	)
	assert.Empty(t, api.payloads, "an incomplete form must not reach the backend")
}

func fillDraft(t *testing.T, svc *ReservationFormService, id string) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.UpdateDraft(ctx, id, dto.UpdateDraftDTO{
		ReservationName: strPtr("Sports Fest"),
		EventTitle:      strPtr("Opening"),
		Description:     strPtr("Annual opening ceremony"),
		UserID:          uintPtr(2),
		StartDate:       strPtr("2026-09-10"),
		EndDate:         strPtr("2026-09-12"),
	})
	require.NoError(t, err)
	_, err = svc.SelectVenue(ctx, id, 5)
	require.NoError(t, err)
}

func TestSubmit_BuildsCompositePayloadAndResetsSession(t *testing.T) {
	svc, sessions, _, api := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)
	fillDraft(t, svc, id)

	_, err := svc.ToggleVehicle(ctx, id, 3)
	require.NoError(t, err)
	_, err = svc.ToggleVehicle(ctx, id, 4)
	require.NoError(t, err)
	_, err = svc.ToggleEquipment(ctx, id, 7)
	require.NoError(t, err)
	_, err = svc.SetEquipmentQuantity(ctx, id, 7, 3)
	require.NoError(t, err)

	require.NoError(t, svc.Submit(ctx, id))

	require.Len(t, api.payloads, 1)
	payload := api.payloads[0]
	assert.Equal(t, "Sports Fest", payload.Reservation.ReservationName)
	assert.Equal(t, uint64(2), payload.Reservation.UserID)
	assert.Equal(t, []gsd.VenueRef{{VenueID: 5}}, payload.Venues, "venue travels as a single-element list")
	assert.Equal(t, []gsd.VehicleRef{{VehicleID: 3}, {VehicleID: 4}}, payload.Vehicles)
	assert.Equal(t, []gsd.EquipmentRef{{EquipID: 7, Quantity: 3}}, payload.Equipments)

	// Successful submit is the full reset.
	_, err = sessions.Find(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrFormSessionNotFound)
}

func TestSubmit_BackendRejectionKeepsSession(t *testing.T) {
	svc, sessions, _, api := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)
	fillDraft(t, svc, id)

	api.err = &gsd.BackendError{Operation: "completeReservation", Message: "venue is double booked"}

	err := svc.Submit(ctx, id)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Equal(t, "venue is double booked", httpErr.Message)

	_, err = sessions.Find(ctx, id)
	assert.NoError(t, err, "a failed submit must leave the form intact")
}

func TestSubmit_TransportFailureUsesGenericMessage(t *testing.T) {
	svc, _, _, api := newFormFixture()
	ctx := context.Background()
	id := createSession(t, svc)
	fillDraft(t, svc, id)

	api.err = errors.New("dial tcp: connection refused")

	err := svc.Submit(ctx, id)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Equal(t, "could not reach the reservation backend", httpErr.Message)
}
