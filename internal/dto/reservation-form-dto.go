package dto

import "reservation-system/internal/entities"

// UpdateDraftDTO carries a partial update of the form's metadata
// fields; nil means "leave unchanged".
type UpdateDraftDTO struct {
	ReservationName *string `json:"reservation_name,omitempty" validate:"omitempty"`
	EventTitle      *string `json:"event_title,omitempty"      validate:"omitempty"`
	Description     *string `json:"description,omitempty"      validate:"omitempty"`
	UserID          *uint64 `json:"user_id,omitempty"          validate:"omitempty,gt=0"`
	StartDate       *string `json:"start_date,omitempty"       validate:"omitempty,date_only"`
	EndDate         *string `json:"end_date,omitempty"         validate:"omitempty,date_only"`
}

type SelectVenueDTO struct {
	VenueID uint64 `json:"venue_id" validate:"required,gt=0"`
}

type SetEquipmentQuantityDTO struct {
	Quantity uint64 `json:"quantity" validate:"required,gte=1"`
}

type EquipmentSelectionDTO struct {
	EquipID  uint64 `json:"equip_id"`
	Quantity uint64 `json:"quantity"`
}

type FormSessionDTO struct {
	ID         string                    `json:"id"`
	Draft      entities.ReservationDraft `json:"draft"`
	VehicleIDs []uint64                  `json:"vehicle_ids"`
	Equipments []EquipmentSelectionDTO   `json:"equipments"`
}
