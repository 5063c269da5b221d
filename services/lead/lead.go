// File: services/lead/lead.go
package lead

import (
	"context"
	"fmt"

	leadRepo "davi/database/repository/lead"
	"davi/models"
)

// LeadService owns lead qualification upserts and dashboard lead management.
type LeadService interface {
	// Qualify creates or refreshes a lead from the automation's qualification
	// payload. The lead always ends up QUALIFICADO.
	Qualify(ctx context.Context, req models.QualifyLeadRequest) (*models.Lead, error)
	List(ctx context.Context, tenantID string) ([]models.Lead, error)
	Get(ctx context.Context, tenantID, id string) (*models.Lead, error)
	Update(ctx context.Context, tenantID, id string, req models.UpdateLeadRequest) (*models.Lead, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// DefaultLeadService is the production LeadService.
type DefaultLeadService struct {
	Repo leadRepo.LeadRepository
}

func (s *DefaultLeadService) Qualify(ctx context.Context, req models.QualifyLeadRequest) (*models.Lead, error) {
	lead := &models.Lead{
		TenantID:        req.TenantID,
		Name:            req.Name,
		Contact:         req.Contact,
		ProductInterest: req.ProductInterest,
		MainNeed:        req.MainNeed,
		Budget:          req.Budget,
		Deadline:        req.Deadline,
		Classification:  req.Classification,
		Summary:         req.Summary,
		FullHistory:     req.FullHistory,
	}
	return s.Repo.Upsert(ctx, lead)
}

func (s *DefaultLeadService) List(ctx context.Context, tenantID string) ([]models.Lead, error) {
	return s.Repo.ListByTenant(ctx, tenantID)
}

func (s *DefaultLeadService) Get(ctx context.Context, tenantID, id string) (*models.Lead, error) {
	return s.Repo.GetByID(ctx, tenantID, id)
}

func (s *DefaultLeadService) Update(ctx context.Context, tenantID, id string, req models.UpdateLeadRequest) (*models.Lead, error) {
	if req.Status != nil && !models.ValidLeadStatus(*req.Status) {
		return nil, fmt.Errorf("unknown lead status %q", *req.Status)
	}
	return s.Repo.Update(ctx, tenantID, id, req)
}

func (s *DefaultLeadService) Delete(ctx context.Context, tenantID, id string) error {
	return s.Repo.Delete(ctx, tenantID, id)
}
