package models

import "time"

// Tenant is a specialist account: the owner of a lead pipeline, an agenda and
// the qualification bot configuration.
type Tenant struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`

	Qualification  *QualificationConfig  `bson:"qualificationConfig,omitempty" json:"qualificationConfig,omitempty"`
	Classification *ClassificationConfig `bson:"classificationConfig,omitempty" json:"classificationConfig,omitempty"`
}

// QualificationConfig holds the questions the bot asks a prospect. The texts
// are opaque here; only the external prompt consumes them.
type QualificationConfig struct {
	Questions []string `bson:"questions" json:"questions"`
}

// ClassificationConfig holds the free-form tier descriptions used by the
// external classifier prompt. Passed through unmodified.
type ClassificationConfig struct {
	Tier1 string `bson:"tier1" json:"tier1"`
	Tier2 string `bson:"tier2" json:"tier2"`
	Tier3 string `bson:"tier3" json:"tier3"`
	Tier4 string `bson:"tier4" json:"tier4"`
}

// DefaultClassification is the fallback shown when a tenant never customized
// its tiers.
func DefaultClassification() *ClassificationConfig {
	return &ClassificationConfig{
		Tier1: "Lead Desqualificado (sem fit, baixa renda ou curioso)",
		Tier2: "Lead Pequeno (Produto de Entrada/Low Ticket)",
		Tier3: "Lead Médio (Cliente Ideal/Serviço Padrão)",
		Tier4: "Lead Grande (VIP/High Ticket/Prioridade)",
	}
}

// TenantSettings is the dashboard settings payload.
type TenantSettings struct {
	Questions      []string              `json:"questions"`
	Classification *ClassificationConfig `json:"classification"`
}

// LoginRequest authenticates a specialist on the dashboard.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
