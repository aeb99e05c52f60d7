package services

import (
	"context"
	"time"

	"reservation-system/internal/entities"
	"reservation-system/internal/integrations/gsd"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	CompletedReleases(ctx context.Context, filter entities.ReleaseReportFilter) ([]entities.ReleaseReportItem, uint64, error)
}

// ReportService builds the completed-release report from the backend's
// completed partition. Filtering and paging happen here; the backend
// endpoint takes no parameters.
type ReportService struct {
	api    gsd.AssignmentAPI
	logger *zap.Logger
}

func NewReportService(api gsd.AssignmentAPI, logger *zap.Logger) *ReportService {
	return &ReportService{api: api, logger: logger}
}

// The backend emits timestamps in either of these layouts depending on
// the table the row came from.
var createdAtLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

func parseCreatedAt(s string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *ReportService) CompletedReleases(ctx context.Context, filter entities.ReleaseReportFilter) ([]entities.ReleaseReportItem, uint64, error) {
	reservations, err := s.api.FetchCompletedReleases(ctx)
	if err != nil {
		return nil, 0, mapBackendError(err)
	}

	items := make([]entities.ReleaseReportItem, 0, len(reservations))
	for _, r := range reservations {
		createdAt, ok := parseCreatedAt(r.CreatedAt)
		if !ok {
			s.logger.Warn("unparseable created_at in completed release",
				zap.Uint64("reservation_id", r.ID),
				zap.String("created_at", r.CreatedAt),
			)
		}
		if filter.DateFrom != nil && ok && createdAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && ok && createdAt.After(*filter.DateTo) {
			continue
		}
		items = append(items, entities.ReleaseReportItem{
			ReservationID: r.ID,
			Type:          string(r.Type),
			ResourceName:  r.Name,
			Personnel:     r.Personnel,
			Status:        r.Status,
			CreatedAt:     createdAt,
			CompletedAt:   null.Time{},
		})
	}

	total := uint64(len(items))

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filter.PerPage
		if start >= len(items) {
			return []entities.ReleaseReportItem{}, total, nil
		}
		end := start + filter.PerPage
		if end > len(items) {
			end = len(items)
		}
		items = items[start:end]
	}

	return items, total, nil
}
