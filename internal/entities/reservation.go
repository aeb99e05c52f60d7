package entities

import (
	"time"

	"reservation-system/pkg/constants"

	"github.com/aarondl/null/v8"
)

// Reservation is a row of the status-partitioned assignment lists.
type Reservation struct {
	ID        uint64                    `json:"id"`
	Type      constants.ReservationType `json:"type"`
	Name      string                    `json:"name"`
	Details   string                    `json:"details"`
	Personnel null.String               `json:"personnel,omitempty"`
	Status    string                    `json:"status"`
	CreatedAt string                    `json:"created_at"`
}

// ChecklistItem is one inspection point tied to one resource instance
// within one reservation. Kind routes the item when the release record
// is built.
type ChecklistItem struct {
	ID     uint64                 `json:"id"`
	Name   string                 `json:"name"`
	Kind   constants.ResourceKind `json:"kind"`
	LinkID uint64                 `json:"link_id"`
	Status string                 `json:"status"`
}

// StatusOption is a row of the backend status table. The completion
// write resolves its status id from here instead of hard-coding it.
type StatusOption struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ReservationDraft holds the metadata fields of an in-progress form.
// Dates are date portions only; the pickers never capture wall-clock
// time.
type ReservationDraft struct {
	ReservationName string `json:"reservation_name"`
	EventTitle      string `json:"event_title"`
	Description     string `json:"description"`
	VenueID         uint64 `json:"venue_id"`
	UserID          uint64 `json:"user_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

// FormSession owns one operator's draft and resource selections from
// first keystroke to submit. It lives in Redis under a TTL; expiry is
// the navigation-away reset.
type FormSession struct {
	ID         string            `json:"id"`
	Draft      ReservationDraft  `json:"draft"`
	VehicleIDs []uint64          `json:"vehicle_ids"`
	Equipment  map[uint64]uint64 `json:"equipment"` // equip id -> requested quantity
	CreatedAt  time.Time         `json:"created_at"`
}

// HasVehicle reports whether the vehicle is currently selected.
func (s *FormSession) HasVehicle(id uint64) bool {
	for _, v := range s.VehicleIDs {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleVehicle adds the vehicle to the selection, or removes it when
// already present. Toggling twice restores the original set.
func (s *FormSession) ToggleVehicle(id uint64) {
	for i, v := range s.VehicleIDs {
		if v == id {
			s.VehicleIDs = append(s.VehicleIDs[:i], s.VehicleIDs[i+1:]...)
			return
		}
	}
	s.VehicleIDs = append(s.VehicleIDs, id)
}
