// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"davi/models"
)

func (r *mongoSlotRepo) ListFreeUpcoming(ctx context.Context, tenantID string, now time.Time, limit int) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId":  tenantID,
		"isBooked":  false,
		"startTime": bson.M{"$gte": now},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list free slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode free slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) ListUpcoming(ctx context.Context, tenantID string, now time.Time) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId":  tenantID,
		"startTime": bson.M{"$gte": now},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) FindExactFree(ctx context.Context, tenantID string, start time.Time) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId":  tenantID,
		"isBooked":  false,
		"startTime": start,
	}
	var slot models.AvailabilitySlot
	if err := r.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find slot at %s: %w", start.Format(time.RFC3339), err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) ListStartsBetween(ctx context.Context, tenantID string, start, end time.Time) ([]time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId":  tenantID,
		"startTime": bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetProjection(bson.M{"startTime": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list slot starts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		StartTime time.Time `bson:"startTime"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode slot starts: %w", err)
	}
	starts := make([]time.Time, len(docs))
	for i, d := range docs {
		starts[i] = d.StartTime
	}
	return starts, nil
}
