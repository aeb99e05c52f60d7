package dto

type CreateChecklistBatchDTO struct {
	Type       string   `json:"type"        validate:"required,oneof=venue equipment vehicle"`
	ResourceID uint64   `json:"resource_id" validate:"required,gt=0"`
	Items      []string `json:"items"       validate:"required,min=1,dive,not_blank"`
}

type UpdateChecklistItemDTO struct {
	Name string `json:"name" validate:"required,not_blank"`
}
