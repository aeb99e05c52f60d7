package constants

import "fmt"

// ResourceKind tags a checklist item with the resource it belongs to.
// Every switch over ResourceKind must handle all three kinds and fail on
// anything else; the backend routes release items by this tag.
type ResourceKind string

const (
	KindVenue     ResourceKind = "venue"
	KindEquipment ResourceKind = "equipment"
	KindVehicle   ResourceKind = "vehicle"
)

func ParseResourceKind(s string) (ResourceKind, error) {
	switch ResourceKind(s) {
	case KindVenue, KindEquipment, KindVehicle:
		return ResourceKind(s), nil
	default:
		return "", fmt.Errorf("unknown resource kind %q", s)
	}
}

// ReservationType is the backend's coarse split of a reservation by its
// primary resource.
type ReservationType string

const (
	ReservationTypeVenue   ReservationType = "Venue"
	ReservationTypeVehicle ReservationType = "Vehicle"
)

func ParseReservationType(s string) (ReservationType, error) {
	switch ReservationType(s) {
	case ReservationTypeVenue, ReservationTypeVehicle:
		return ReservationType(s), nil
	default:
		return "", fmt.Errorf("unknown reservation type %q", s)
	}
}
