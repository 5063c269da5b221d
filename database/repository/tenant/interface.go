// File: database/repository/tenant/interface.go
package tenantRepo

import (
	"context"
	"errors"
	"fmt"

	"davi/database"
	"davi/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound means no tenant matched the given key.
var ErrNotFound = errors.New("tenant not found")

// TenantRepository stores specialist accounts and their bot configuration.
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetByEmail(ctx context.Context, email string) (*models.Tenant, error)
	// GetByPhone is the automation's specialist lookup.
	GetByPhone(ctx context.Context, phone string) (*models.Tenant, error)
	// GetByTokenHash resolves a dashboard session token back to its tenant.
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Tenant, error)
	Create(ctx context.Context, tenant *models.Tenant) error
	// UpdateTokenHash stores the hash of the currently issued session token.
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	// UpdateSettings replaces the qualification and/or classification config.
	UpdateSettings(ctx context.Context, id string, qual *models.QualificationConfig, class *models.ClassificationConfig) error
}

type mongoTenantRepo struct {
	coll *mongo.Collection
}

// NewMongoTenantRepo constructs the MongoDB-backed TenantRepository.
func NewMongoTenantRepo() TenantRepository {
	repo := &mongoTenantRepo{coll: database.DB().Collection("tenants")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create tenant indexes: %v\n", err)
	}
	return repo
}
