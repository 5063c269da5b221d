// File: services/schedule/query.go
package schedule

import (
	"context"
	"errors"
	"time"

	slotRepo "davi/database/repository/slot"
	"davi/models"
)

// DefaultNextFreeLimit is how many options the automation quotes a prospect.
const DefaultNextFreeLimit = 3

func (s *DefaultScheduleService) NextFree(ctx context.Context, tenantID string, limit int) ([]models.SlotSuggestion, error) {
	if limit <= 0 {
		limit = DefaultNextFreeLimit
	}
	slots, err := s.Slots.ListFreeUpcoming(ctx, tenantID, time.Now().UTC(), limit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.SlotSuggestion, 0, len(slots))
	for _, sl := range slots {
		suggestions = append(suggestions, models.SlotSuggestion{
			ID:       sl.ID,
			ISO:      sl.StartTime.UTC().Format(time.RFC3339),
			Readable: FormatReadable(sl.StartTime),
		})
	}
	return suggestions, nil
}

func (s *DefaultScheduleService) CheckExact(ctx context.Context, tenantID string, target time.Time) (*models.AvailabilityCheck, error) {
	slot, err := s.Slots.FindExactFree(ctx, tenantID, target.UTC())
	if err == nil {
		return &models.AvailabilityCheck{Available: true, Slot: slot}, nil
	}
	if !errors.Is(err, slotRepo.ErrNotFound) {
		return nil, err
	}

	suggestions, err := s.NextFree(ctx, tenantID, DefaultNextFreeLimit)
	if err != nil {
		return nil, err
	}
	return &models.AvailabilityCheck{Available: false, Suggestions: suggestions}, nil
}
