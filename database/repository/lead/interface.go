// File: database/repository/lead/interface.go
package leadRepo

import (
	"context"
	"errors"
	"fmt"

	"davi/database"
	"davi/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound means no lead matched the given key.
var ErrNotFound = errors.New("lead not found")

// LeadRepository is the store of qualified prospects. Contact (phone) is the
// unique key the upstream automation addresses leads by.
type LeadRepository interface {
	// GetByContact retrieves a lead by its contact key, tenant-scoped.
	GetByContact(ctx context.Context, tenantID, contact string) (*models.Lead, error)
	// GetByID retrieves a lead by id, tenant-scoped.
	GetByID(ctx context.Context, tenantID, id string) (*models.Lead, error)
	// Upsert creates the lead keyed on contact, or refreshes all qualification
	// fields when it already exists. Either way the lead ends QUALIFICADO.
	Upsert(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	// Update applies a partial dashboard edit.
	Update(ctx context.Context, tenantID, id string, req models.UpdateLeadRequest) (*models.Lead, error)
	// UpdateStatus advances the pipeline status.
	UpdateStatus(ctx context.Context, tenantID, id, status string) error
	// ListByTenant returns the tenant's leads, most recent first.
	ListByTenant(ctx context.Context, tenantID string) ([]models.Lead, error)
	// Delete removes a lead.
	Delete(ctx context.Context, tenantID, id string) error
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo constructs the MongoDB-backed LeadRepository.
func NewMongoLeadRepo() LeadRepository {
	repo := &mongoLeadRepo{coll: database.DB().Collection("leads")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create lead indexes: %v\n", err)
	}
	return repo
}
