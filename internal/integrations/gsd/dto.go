package gsd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aarondl/null/v8"
)

// flexUint tolerates the PHP backend's habit of sending numeric ids as
// either numbers or strings.
type flexUint uint64

func (f *flexUint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("numeric string expected, got %q: %w", s, err)
		}
		*f = flexUint(n)
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexUint(n)
	return nil
}

// --- raw read shapes, field names as the backend sends them ---

type rawVenue struct {
	VenID        flexUint    `json:"ven_id"`
	VenName      string      `json:"ven_name"`
	VenOccupancy flexUint    `json:"ven_occupancy"`
	VenLocation  null.String `json:"ven_location"`
}

type rawVehicle struct {
	VehicleID flexUint    `json:"vehicle_id"`
	License   string      `json:"vehicle_license"`
	Model     string      `json:"vehicle_model"`
	Make      null.String `json:"vehicle_make"`
}

type rawEquipment struct {
	EquipID       flexUint `json:"equip_id"`
	EquipName     string   `json:"equip_name"`
	EquipQuantity flexUint `json:"equip_quantity"`
}

type rawPersonnel struct {
	JoPersonelID flexUint    `json:"jo_personel_id"`
	FullName     string      `json:"full_name"`
	Position     null.String `json:"position"`
}

type rawUser struct {
	UsersID    flexUint    `json:"users_id"`
	FullName   string      `json:"full_name"`
	Department null.String `json:"department"`
}

type rawReservation struct {
	ReservationID flexUint    `json:"reservation_id"`
	Type          string      `json:"type"`
	Name          string      `json:"name"`
	Details       string      `json:"details"`
	Personnel     null.String `json:"personnel"`
	Status        string      `json:"status"`
	CreatedAt     string      `json:"created_at"`
}

// rawReservedDetail is the nested checklist structure returned by
// getReservedById; one array per resource kind.
type rawReservedDetail struct {
	Venue     []rawChecklistEntry `json:"venue"`
	Equipment []rawChecklistEntry `json:"equipment"`
	Vehicle   []rawChecklistEntry `json:"vehicle"`
}

type rawChecklistEntry struct {
	ChecklistID flexUint `json:"checklist_id"`
	Name        string   `json:"checklist_name"`
	LinkID      flexUint `json:"reservation_link_id"`
	Status      string   `json:"status"`
}

type rawStatusOption struct {
	StatusID   flexUint `json:"status_availability_id"`
	StatusName string   `json:"status_availability_name"`
}

type rawChecklistSummary struct {
	Type  string   `json:"type"`
	Count flexUint `json:"count"`
}

type rawResourceOption struct {
	ID   flexUint `json:"id"`
	Name string   `json:"name"`
}

type rawMasterItem struct {
	ChecklistID flexUint `json:"checklist_id"`
	Name        string   `json:"checklist_name"`
}

type rawLoginUser struct {
	UsersID  flexUint `json:"users_id"`
	FullName string   `json:"full_name"`
}

// --- write payloads, exactly as the backend expects them ---

type ReservationBody struct {
	ReservationName string `json:"reservation_name"`
	EventTitle      string `json:"event_title"`
	Description     string `json:"description"`
	UserID          uint64 `json:"user_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

type VenueRef struct {
	VenueID uint64 `json:"venue_id"`
}

type VehicleRef struct {
	VehicleID uint64 `json:"vehicle_id"`
}

type EquipmentRef struct {
	EquipID  uint64 `json:"equip_id"`
	Quantity uint64 `json:"quantity"`
}

// ReservationPayload is the composite completeReservation body: draft
// metadata, the vehicle list, a single-element venue list and the
// equipment quantity entries.
type ReservationPayload struct {
	Reservation ReservationBody `json:"reservation"`
	Vehicles    []VehicleRef    `json:"vehicles"`
	Venues      []VenueRef      `json:"venues"`
	Equipments  []EquipmentRef  `json:"equipments"`
}

type ReleaseItem struct {
	ChecklistID uint64 `json:"checklist_id"`
	Name        string `json:"checklist_name"`
}

// ReleasePayload is the insertRelease body. Items are bifurcated into
// venue_equipment vs vehicle arrays by the reservation's type.
type ReleasePayload struct {
	ReservationID  uint64        `json:"reservation_id"`
	PersonnelID    uint64        `json:"jo_personel_id"`
	VenueEquipment []ReleaseItem `json:"venue_equipment"`
	Vehicle        []ReleaseItem `json:"vehicle"`
}

type ChecklistSaveItem struct {
	ChecklistID uint64 `json:"checklist_id"`
	Name        string `json:"checklist_name"`
}

type ChecklistSavePayload struct {
	ReservationID uint64              `json:"reservation_id"`
	Items         []ChecklistSaveItem `json:"checklists"`
}

type MasterChecklistPayload struct {
	Type       string   `json:"type"`
	ResourceID uint64   `json:"resource_id"`
	Items      []string `json:"items"`
}
