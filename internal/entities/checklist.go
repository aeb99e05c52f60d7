package entities

import "reservation-system/pkg/constants"

// ChecklistSummary is one row of the registry table: how many template
// items exist per resource kind.
type ChecklistSummary struct {
	Kind  constants.ResourceKind `json:"kind"`
	Count uint64                 `json:"count"`
}

// ResourceOption is a selectable resource of one kind, fetched when the
// operator picks where a new checklist belongs.
type ResourceOption struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// MasterChecklistItem is a checklist template entry bound to one
// resource. Edit is rename-only; the registry exposes no delete.
type MasterChecklistItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
