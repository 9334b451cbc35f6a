package services

import (
	"context"
	"fmt"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/ports"
)

// HistoryService reads past hook runs
type HistoryService struct {
	reader ports.RunReader
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(reader ports.RunReader) *HistoryService {
	return &HistoryService{reader: reader}
}

// List returns runs matching filter, newest first
func (s *HistoryService) List(ctx context.Context, filter domain.RunFilter) ([]domain.HookRun, error) {
	if filter.Status != "" {
		switch filter.Status {
		case domain.StatusFailed, domain.StatusPassed, domain.StatusSkipped:
		default:
			return nil, fmt.Errorf("unknown status '%s'", filter.Status)
		}
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative")
	}
	return s.reader.ListRuns(ctx, filter)
}
