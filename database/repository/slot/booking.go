// File: database/repository/slot/booking.go
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

// MarkBooked is the single atomic check-then-set of the booking path. The
// filter pins isBooked=false, so two concurrent calls against the same slot
// produce exactly one modified document; the other call finds nothing and is
// classified as ErrAlreadyBooked or ErrNotFound by a follow-up read.
func (r *mongoSlotRepo) MarkBooked(ctx context.Context, tenantID, slotID, leadID string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":       slotID,
		"tenantId": tenantID,
		"isBooked": false,
	}
	update := bson.M{"$set": bson.M{"isBooked": true, "leadId": leadID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.AvailabilitySlot
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if err == nil {
		return &slot, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to mark slot %s booked: %w", slotID, err)
	}

	// Distinguish "lost the race" from "no such slot".
	count, cerr := r.coll.CountDocuments(ctx, bson.M{"id": slotID, "tenantId": tenantID})
	if cerr != nil {
		return nil, fmt.Errorf("failed to check slot %s: %w", slotID, cerr)
	}
	if count > 0 {
		return nil, ErrAlreadyBooked
	}
	return nil, ErrNotFound
}
