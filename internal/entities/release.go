package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// ReleaseReportItem is a row of the completed-release report.
type ReleaseReportItem struct {
	ReservationID uint64      `json:"reservation_id"`
	Type          string      `json:"type"`
	ResourceName  string      `json:"resource_name"`
	Personnel     null.String `json:"personnel"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	CompletedAt   null.Time   `json:"completed_at"`
}

// ReleaseReportFilter narrows the report by creation date.
type ReleaseReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PerPage  int
}
