// File: services/tenant/tenant.go
package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	tenantRepo "davi/database/repository/tenant"
	"davi/models"
	"davi/utils"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// login response does not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

const sessionTokenTTL = 24 * time.Hour

// TenantService owns specialist authentication and bot configuration.
type TenantService interface {
	// Authenticate verifies credentials and issues a session token whose hash
	// is cached for middleware lookups.
	Authenticate(ctx context.Context, email, password string) (*models.Tenant, string, error)
	GetByPhone(ctx context.Context, phone string) (*models.Tenant, error)
	GetSettings(ctx context.Context, tenantID string) (*models.TenantSettings, error)
	UpdateSettings(ctx context.Context, tenantID string, settings models.TenantSettings) error
}

// DefaultTenantService is the production TenantService.
type DefaultTenantService struct {
	Repo tenantRepo.TenantRepository
}

func (s *DefaultTenantService) Authenticate(ctx context.Context, email, password string) (*models.Tenant, string, error) {
	t, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(t.ID, t.Email, sessionTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	hash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, t.ID, hash); err != nil {
		return nil, "", err
	}
	utils.CacheAuthToken(hash, t.ID)

	return t, token, nil
}

func (s *DefaultTenantService) GetByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	return s.Repo.GetByPhone(ctx, phone)
}

func (s *DefaultTenantService) GetSettings(ctx context.Context, tenantID string) (*models.TenantSettings, error) {
	t, err := s.Repo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	settings := &models.TenantSettings{Questions: []string{}}
	if t.Qualification != nil {
		settings.Questions = t.Qualification.Questions
	}
	if t.Classification != nil {
		settings.Classification = t.Classification
	} else {
		settings.Classification = models.DefaultClassification()
	}
	return settings, nil
}

func (s *DefaultTenantService) UpdateSettings(ctx context.Context, tenantID string, settings models.TenantSettings) error {
	var qual *models.QualificationConfig
	if settings.Questions != nil {
		cleaned := make([]string, 0, len(settings.Questions))
		for _, q := range settings.Questions {
			if q != "" {
				cleaned = append(cleaned, q)
			}
		}
		if len(cleaned) == 0 {
			return fmt.Errorf("at least one qualification question is required")
		}
		qual = &models.QualificationConfig{Questions: cleaned}
	}

	var class *models.ClassificationConfig
	if settings.Classification != nil {
		c := settings.Classification
		if c.Tier1 == "" || c.Tier2 == "" || c.Tier3 == "" || c.Tier4 == "" {
			return fmt.Errorf("all four classification tiers are required")
		}
		class = c
	}

	if qual == nil && class == nil {
		return fmt.Errorf("nothing to update")
	}
	return s.Repo.UpdateSettings(ctx, tenantID, qual, class)
}
