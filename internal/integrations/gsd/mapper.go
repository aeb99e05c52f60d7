package gsd

import (
	"fmt"

	"reservation-system/internal/entities"
	"reservation-system/pkg/constants"
)

func mapVenue(r rawVenue) entities.Venue {
	return entities.Venue{
		ID:        uint64(r.VenID),
		Name:      r.VenName,
		Occupancy: uint64(r.VenOccupancy),
		Location:  r.VenLocation,
	}
}

func mapVehicle(r rawVehicle) entities.Vehicle {
	return entities.Vehicle{
		ID:      uint64(r.VehicleID),
		License: r.License,
		Model:   r.Model,
		Make:    r.Make,
	}
}

func mapEquipment(r rawEquipment) entities.Equipment {
	return entities.Equipment{
		ID:       uint64(r.EquipID),
		Name:     r.EquipName,
		Quantity: uint64(r.EquipQuantity),
	}
}

func mapPersonnel(r rawPersonnel) entities.Personnel {
	return entities.Personnel{
		ID:       uint64(r.JoPersonelID),
		FullName: r.FullName,
		Position: r.Position,
	}
}

func mapUser(r rawUser) entities.User {
	return entities.User{
		ID:         uint64(r.UsersID),
		FullName:   r.FullName,
		Department: r.Department,
	}
}

func mapReservation(r rawReservation) (entities.Reservation, error) {
	typ, err := constants.ParseReservationType(r.Type)
	if err != nil {
		return entities.Reservation{}, fmt.Errorf("reservation %d: %w", uint64(r.ReservationID), err)
	}
	return entities.Reservation{
		ID:        uint64(r.ReservationID),
		Type:      typ,
		Name:      r.Name,
		Details:   r.Details,
		Personnel: r.Personnel,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}, nil
}

func mapChecklistEntry(r rawChecklistEntry, kind constants.ResourceKind) entities.ChecklistItem {
	status := r.Status
	if status == "" {
		status = constants.ChecklistItemPending
	}
	return entities.ChecklistItem{
		ID:     uint64(r.ChecklistID),
		Name:   r.Name,
		Kind:   kind,
		LinkID: uint64(r.LinkID),
		Status: status,
	}
}

// flattenReservedDetail turns the backend's per-kind arrays into one
// list tagged by originating resource kind. The tag is what lets the
// assignment submission route each item later.
func flattenReservedDetail(r rawReservedDetail) []entities.ChecklistItem {
	items := make([]entities.ChecklistItem, 0, len(r.Venue)+len(r.Equipment)+len(r.Vehicle))
	for _, e := range r.Venue {
		items = append(items, mapChecklistEntry(e, constants.KindVenue))
	}
	for _, e := range r.Equipment {
		items = append(items, mapChecklistEntry(e, constants.KindEquipment))
	}
	for _, e := range r.Vehicle {
		items = append(items, mapChecklistEntry(e, constants.KindVehicle))
	}
	return items
}

func mapChecklistSummary(r rawChecklistSummary) (entities.ChecklistSummary, error) {
	kind, err := constants.ParseResourceKind(r.Type)
	if err != nil {
		return entities.ChecklistSummary{}, err
	}
	return entities.ChecklistSummary{Kind: kind, Count: uint64(r.Count)}, nil
}
