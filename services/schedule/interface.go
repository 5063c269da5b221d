// File: services/schedule/interface.go
package schedule

import (
	"context"
	"errors"
	"time"

	"davi/models"
)

// Generation modes.
const (
	ModeAdd    = "add"
	ModeRemove = "remove"
)

// SlotGranularity is the bookable unit size. Interpreted ranges are
// decomposed into consecutive units of this length.
const SlotGranularity = time.Hour

// ErrInvalidInput means the request shape is unusable (empty instructions,
// unknown mode, malformed date fields).
var ErrInvalidInput = errors.New("invalid schedule input")

// ScheduleService owns the availability side of the booking engine: the
// natural-language generator, the read-only discovery queries and the manual
// dashboard slot operations.
type ScheduleService interface {
	// Generate interprets instructions and applies them to the slot store as
	// insertions (mode=add) or deletions (mode=remove). Returns the number of
	// slots actually created or removed. On any interpreter failure nothing
	// is mutated.
	Generate(ctx context.Context, tenantID, instructions, mode string) (int, error)
	// NextFree returns the next limit free upcoming slots rendered for the
	// automation prompt.
	NextFree(ctx context.Context, tenantID string, limit int) ([]models.SlotSuggestion, error)
	// CheckExact reports whether a free slot starts exactly at target; when
	// not, it carries fallback suggestions.
	CheckExact(ctx context.Context, tenantID string, target time.Time) (*models.AvailabilityCheck, error)
	// ListMySlots returns every future slot for the dashboard, booked or not.
	ListMySlots(ctx context.Context, tenantID string) ([]models.AvailabilitySlot, error)
	// CreateManualSlot creates one slot from date + wall-clock time fields.
	CreateManualSlot(ctx context.Context, tenantID string, req models.ManualSlotRequest) (*models.AvailabilitySlot, error)
	// DeleteSlot removes one slot; booked slots survive (silent no-op).
	DeleteSlot(ctx context.Context, tenantID, slotID string) error
}
