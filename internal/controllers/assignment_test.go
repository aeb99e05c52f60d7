package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reservation-system/internal/dto"
	"reservation-system/internal/entities"
	"reservation-system/internal/services"
	"reservation-system/pkg/constants"
	"reservation-system/pkg/validation"
)

type stubAssignmentService struct {
	result *dto.AssignResultDTO
	calls  int
}

func (s *stubAssignmentService) List(context.Context, string) ([]entities.Reservation, error) {
	return nil, nil
}

func (s *stubAssignmentService) Detail(context.Context, uint64, constants.ReservationType) (*dto.AssignmentDetailDTO, error) {
	return &dto.AssignmentDetailDTO{}, nil
}

func (s *stubAssignmentService) Assign(_ context.Context, reservationID uint64, _ dto.AssignDTO) (*dto.AssignResultDTO, error) {
	s.calls++
	result := *s.result
	result.ReservationID = reservationID
	return &result, nil
}

func (s *stubAssignmentService) RetryChecklist(context.Context, uint64) error { return nil }

func (s *stubAssignmentService) Complete(context.Context, uint64, constants.ReservationType) error {
	return nil
}

var _ services.AssignmentServiceInterface = (*stubAssignmentService)(nil)

func postAssign(t *testing.T, svc services.AssignmentServiceInterface, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validation.New()
	ctrl := NewAssignmentController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/reservations/42/assign", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/reservations/:id/assign")
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, ctrl.Assign(c))
	return rec
}

func TestAssignEndpoint_InvalidPayloadIs400AndNeverHitsService(t *testing.T) {
	svc := &stubAssignmentService{result: &dto.AssignResultDTO{State: dto.AssignStateAssigned}}

	// personnel_id missing, checklist kind unknown
	rec := postAssign(t, svc, `{
		"type": "Venue",
		"checklists": [{"checklist_id": 1, "name": "Check projector", "kind": "drone"}]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestAssignEndpoint_AssignedIs200(t *testing.T) {
	svc := &stubAssignmentService{result: &dto.AssignResultDTO{State: dto.AssignStateAssigned}}

	rec := postAssign(t, svc, `{
		"type": "Venue",
		"personnel_id": 21,
		"checklists": [{"checklist_id": 1, "name": "Check projector", "kind": "venue"}]
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status bool `json:"status"`
		Body   struct {
			State string `json:"state"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, dto.AssignStateAssigned, resp.Body.State)
}

func TestAssignEndpoint_PendingChecklistIs202(t *testing.T) {
	svc := &stubAssignmentService{result: &dto.AssignResultDTO{
		State:   dto.AssignStatePendingChecklist,
		Message: "release recorded, checklist save failed; retry the checklist save",
	}}

	rec := postAssign(t, svc, `{
		"type": "Venue",
		"personnel_id": 21,
		"checklists": [{"checklist_id": 1, "name": "Check projector", "kind": "venue"}]
	}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}
