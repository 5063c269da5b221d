// File: database/repository/lead/lead_mongo.go
package leadRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"davi/models"
)

func (r *mongoLeadRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "contact", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoLeadRepo) GetByContact(ctx context.Context, tenantID, contact string) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"tenantId": tenantID, "contact": contact}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead by contact: %w", err)
	}
	return &lead, nil
}

func (r *mongoLeadRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"tenantId": tenantID, "id": id}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead %s: %w", id, err)
	}
	return &lead, nil
}

func (r *mongoLeadRepo) Upsert(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"tenantId": lead.TenantID, "contact": lead.Contact}
	update := bson.M{
		"$set": bson.M{
			"name":            lead.Name,
			"productInterest": lead.ProductInterest,
			"mainNeed":        lead.MainNeed,
			"budget":          lead.Budget,
			"deadline":        lead.Deadline,
			"classification":  lead.Classification,
			"summary":         lead.Summary,
			"fullHistory":     lead.FullHistory,
			"status":          models.LeadStatusQualified,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"tenantId":  lead.TenantID,
			"contact":   lead.Contact,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.Lead
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to upsert lead: %w", err)
	}
	return &out, nil
}

func (r *mongoLeadRepo) Update(ctx context.Context, tenantID, id string, req models.UpdateLeadRequest) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.ProductInterest != nil {
		set["productInterest"] = *req.ProductInterest
	}
	if req.MainNeed != nil {
		set["mainNeed"] = *req.MainNeed
	}
	if req.Budget != nil {
		set["budget"] = *req.Budget
	}
	if req.Deadline != nil {
		set["deadline"] = *req.Deadline
	}
	if req.Classification != nil {
		set["classification"] = *req.Classification
	}
	if req.Summary != nil {
		set["summary"] = *req.Summary
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out models.Lead
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"tenantId": tenantID, "id": id}, bson.M{"$set": set}, opts).Decode(&out)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update lead %s: %w", id, err)
	}
	return &out, nil
}

func (r *mongoLeadRepo) UpdateStatus(ctx context.Context, tenantID, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"tenantId": tenantID, "id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoLeadRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tenantId": tenantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	return leads, nil
}

func (r *mongoLeadRepo) Delete(ctx context.Context, tenantID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"tenantId": tenantID, "id": id})
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
