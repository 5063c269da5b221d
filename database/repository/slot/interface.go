// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"davi/database"
	"davi/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Typed failures callers branch on.
var (
	// ErrNotFound means no slot matched the given id for the tenant.
	ErrNotFound = errors.New("slot not found")
	// ErrAlreadyBooked means the slot exists but its booked flag was already set.
	ErrAlreadyBooked = errors.New("slot already booked")
	// ErrInvalidRange means startTime >= endTime.
	ErrInvalidRange = errors.New("invalid slot range: start must be before end")
)

// SlotRepository is the durable store of availability slots, partitioned by
// tenant in every query and mutation.
type SlotRepository interface {
	// Create inserts a single slot with IsBooked=false.
	Create(ctx context.Context, slot *models.AvailabilitySlot) error
	// CreateMany bulk-inserts slots, assigning IDs where missing.
	CreateMany(ctx context.Context, slots []models.AvailabilitySlot) (int, error)
	// DeleteByID removes one non-booked slot. Booked or absent slots are a no-op.
	DeleteByID(ctx context.Context, tenantID, slotID string) error
	// DeleteRange removes every non-booked slot whose interval falls within
	// [start, end]. Booked slots in range are left untouched. Returns the
	// number of slots removed.
	DeleteRange(ctx context.Context, tenantID string, start, end time.Time) (int, error)
	// ListFreeUpcoming returns non-booked slots with startTime >= now,
	// ascending, capped at limit (0 means no cap).
	ListFreeUpcoming(ctx context.Context, tenantID string, now time.Time, limit int) ([]models.AvailabilitySlot, error)
	// ListUpcoming returns all future slots, booked or not.
	ListUpcoming(ctx context.Context, tenantID string, now time.Time) ([]models.AvailabilitySlot, error)
	// FindExactFree returns the free slot whose startTime equals start, or
	// ErrNotFound.
	FindExactFree(ctx context.Context, tenantID string, start time.Time) (*models.AvailabilitySlot, error)
	// ListStartsBetween returns the startTime of every slot (booked or not)
	// with startTime in [start, end].
	ListStartsBetween(ctx context.Context, tenantID string, start, end time.Time) ([]time.Time, error)
	// MarkBooked flips IsBooked false->true and sets the lead reference as a
	// single compare-and-set. Exactly one of two concurrent calls succeeds;
	// the loser gets ErrAlreadyBooked.
	MarkBooked(ctx context.Context, tenantID, slotID, leadID string) (*models.AvailabilitySlot, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs the MongoDB-backed SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	repo := &mongoSlotRepo{coll: database.DB().Collection("availability_slots")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create slot indexes: %v\n", err)
	}
	return repo
}
