// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"davi/models"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot *models.AvailabilitySlot) error {
	if !slot.StartTime.Before(slot.EndTime) {
		return ErrInvalidRange
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	slot.IsBooked = false
	slot.LeadID = ""
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to insert slot: %w", err)
	}
	return nil
}

func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.AvailabilitySlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	for _, s := range slots {
		if !s.StartTime.Before(s.EndTime) {
			return 0, ErrInvalidRange
		}
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		slot.IsBooked = false
		slot.LeadID = ""
		if slot.CreatedAt.IsZero() {
			slot.CreatedAt = now
		}
		docs[i] = slot
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert slots: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// DeleteByID only matches non-booked slots, so deleting a booked slot (or a
// missing one) is a silent no-op.
func (r *mongoSlotRepo) DeleteByID(ctx context.Context, tenantID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "tenantId": tenantID, "isBooked": false}
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", slotID, err)
	}
	return nil
}

func (r *mongoSlotRepo) DeleteRange(ctx context.Context, tenantID string, start, end time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId":  tenantID,
		"isBooked":  false,
		"startTime": bson.M{"$gte": start},
		"endTime":   bson.M{"$lte": end},
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete slot range: %w", err)
	}
	return int(res.DeletedCount), nil
}
