package dto

import "reservation-system/internal/entities"

type AssignChecklistItemDTO struct {
	ChecklistID uint64 `json:"checklist_id" validate:"required,gt=0"`
	Name        string `json:"name"         validate:"required,not_blank"`
	Kind        string `json:"kind"         validate:"required,oneof=venue equipment vehicle"`
}

type AssignDTO struct {
	Type        string                   `json:"type"         validate:"required,oneof=Venue Vehicle"`
	PersonnelID uint64                   `json:"personnel_id" validate:"required,gt=0"`
	Checklists  []AssignChecklistItemDTO `json:"checklists"   validate:"required,min=1,dive"`
}

type CompleteDTO struct {
	Type string `json:"type" validate:"required,oneof=Venue Vehicle"`
}

// Assignment submission outcomes. PendingChecklist means the release
// record was created but the checklist save failed; the reservation
// stays in that state until a retry succeeds.
const (
	AssignStateAssigned         = "assigned"
	AssignStatePendingChecklist = "pending_checklist"
)

type AssignResultDTO struct {
	ReservationID uint64 `json:"reservation_id"`
	State         string `json:"state"`
	Message       string `json:"message,omitempty"`
}

type AssignmentDetailDTO struct {
	ReservationID uint64                   `json:"reservation_id"`
	Type          string                   `json:"type"`
	Items         []entities.ChecklistItem `json:"items"`
	CanComplete   bool                     `json:"can_complete"`
}
