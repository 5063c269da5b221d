// File: services/schedule/generator.go
package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	slotRepo "davi/database/repository/slot"
	"davi/models"
	"davi/services/intelligence"
	"davi/utils"
)

const generateLockPrefix = "schedule:generate:"
const generateLockTTL = time.Minute

// DefaultScheduleService is the production ScheduleService.
type DefaultScheduleService struct {
	Slots       slotRepo.SlotRepository
	Interpreter intelligence.ScheduleInterpreter
	// Location is the tenant civil timezone used for prompt context and
	// human-readable rendering.
	Location *time.Location
	// InterpreterTimeout bounds a single model call.
	InterpreterTimeout time.Duration
	// LockClient serializes concurrent generate calls per tenant. Optional.
	LockClient *redis.Client
}

func (s *DefaultScheduleService) Generate(ctx context.Context, tenantID, instructions, mode string) (int, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(instructions) == "" {
		return 0, fmt.Errorf("%w: instructions are required", ErrInvalidInput)
	}
	if mode != ModeAdd && mode != ModeRemove {
		return 0, fmt.Errorf("%w: mode must be %q or %q", ErrInvalidInput, ModeAdd, ModeRemove)
	}

	if release, err := s.acquireLock(ctx, tenantID); err != nil {
		return 0, err
	} else if release != nil {
		defer release()
	}

	// Interpreter call is the slow step; bound it and fail closed. No slot
	// mutation may happen before this returns clean.
	ictx := ctx
	if s.InterpreterTimeout > 0 {
		var cancel context.CancelFunc
		ictx, cancel = context.WithTimeout(ctx, s.InterpreterTimeout)
		defer cancel()
	}
	ranges, err := s.Interpreter.InterpretSchedule(ictx, instructions, time.Now())
	if err != nil {
		logger.Warn("schedule interpretation failed",
			zap.String("tenantId", tenantID),
			zap.String("mode", mode),
			zap.Error(err))
		return 0, err
	}
	if len(ranges) == 0 {
		return 0, nil
	}

	switch mode {
	case ModeAdd:
		return s.applyAdd(ctx, tenantID, ranges)
	default:
		return s.applyRemove(ctx, tenantID, ranges)
	}
}

func (s *DefaultScheduleService) applyAdd(ctx context.Context, tenantID string, ranges []models.SlotRange) (int, error) {
	units := DecomposeRanges(ranges, SlotGranularity)
	if len(units) == 0 {
		return 0, nil
	}

	// Skip units whose start collides with any existing slot. Booked slots
	// must never be shadowed by a duplicate start; free duplicates would
	// violate the one-slot-per-start invariant.
	windowStart, windowEnd := units[0].Start, units[0].End
	for _, u := range units[1:] {
		if u.Start.Before(windowStart) {
			windowStart = u.Start
		}
		if u.End.After(windowEnd) {
			windowEnd = u.End
		}
	}
	existing, err := s.Slots.ListStartsBetween(ctx, tenantID, windowStart, windowEnd)
	if err != nil {
		return 0, err
	}
	taken := make(map[int64]bool, len(existing))
	for _, t := range existing {
		taken[t.UTC().Unix()] = true
	}

	var slots []models.AvailabilitySlot
	for _, u := range units {
		if taken[u.Start.UTC().Unix()] {
			continue
		}
		taken[u.Start.UTC().Unix()] = true
		slots = append(slots, models.AvailabilitySlot{
			TenantID:  tenantID,
			StartTime: u.Start,
			EndTime:   u.End,
		})
	}
	if len(slots) == 0 {
		return 0, nil
	}
	return s.Slots.CreateMany(ctx, slots)
}

func (s *DefaultScheduleService) applyRemove(ctx context.Context, tenantID string, ranges []models.SlotRange) (int, error) {
	removed := 0
	for _, r := range ranges {
		n, err := s.Slots.DeleteRange(ctx, tenantID, r.Start, r.End)
		if err != nil {
			return removed, err
		}
		removed += n
	}
	return removed, nil
}

// acquireLock takes a short per-tenant lock so two generate calls for the same
// tenant do not interleave their read-skip-insert sequence. Returns a release
// func, or (nil, nil) when no lock client is configured.
func (s *DefaultScheduleService) acquireLock(ctx context.Context, tenantID string) (func(), error) {
	if s.LockClient == nil {
		return nil, nil
	}
	key := generateLockPrefix + tenantID
	ok, err := s.LockClient.SetNX(ctx, key, "1", generateLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire generate lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: a schedule generation is already running for this account", ErrInvalidInput)
	}
	return func() {
		s.LockClient.Del(context.Background(), key)
	}, nil
}

// DecomposeRanges splits each range into consecutive units of at most
// granularity, so "13:00 to 15:00" becomes [13,14) and [14,15). Ranges
// shorter than the granularity pass through unchanged.
func DecomposeRanges(ranges []models.SlotRange, granularity time.Duration) []models.SlotRange {
	var units []models.SlotRange
	for _, r := range ranges {
		for t := r.Start; t.Before(r.End); {
			next := t.Add(granularity)
			if next.After(r.End) {
				next = r.End
			}
			units = append(units, models.SlotRange{Start: t, End: next})
			t = next
		}
	}
	return units
}
