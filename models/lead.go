package models

import "time"

// Lead pipeline statuses. A lead enters as ENTRANTE, becomes QUALIFICADO once
// the qualification flow completes, ATENDIDO when a meeting is booked, and ends
// as VENDA_REALIZADA or PERDIDO.
const (
	LeadStatusIncoming  = "ENTRANTE"
	LeadStatusQualified = "QUALIFICADO"
	LeadStatusContacted = "ATENDIDO"
	LeadStatusWon       = "VENDA_REALIZADA"
	LeadStatusLost      = "PERDIDO"
)

// Lead is a prospect funneled in by the messaging automation. Contact is the
// unique key the automation uses to address it (phone number).
type Lead struct {
	ID              string    `bson:"id" json:"id"`
	TenantID        string    `bson:"tenantId" json:"tenantId"`
	Name            string    `bson:"name" json:"name"`
	Contact         string    `bson:"contact" json:"contact"`
	ProductInterest string    `bson:"productInterest,omitempty" json:"productInterest,omitempty"`
	MainNeed        string    `bson:"mainNeed,omitempty" json:"mainNeed,omitempty"`
	Budget          string    `bson:"budget,omitempty" json:"budget,omitempty"`
	Deadline        string    `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Classification  string    `bson:"classification,omitempty" json:"classification,omitempty"`
	Summary         string    `bson:"summary,omitempty" json:"summary,omitempty"`
	FullHistory     string    `bson:"fullHistory,omitempty" json:"fullHistory,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// QualifyLeadRequest is the automation payload that creates or refreshes a
// lead after the qualification conversation.
type QualifyLeadRequest struct {
	TenantID        string `json:"tenantId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Contact         string `json:"contact" binding:"required"`
	ProductInterest string `json:"productInterest"`
	MainNeed        string `json:"mainNeed"`
	Budget          string `json:"budget"`
	Deadline        string `json:"deadline"`
	Classification  string `json:"classification"`
	Summary         string `json:"summary"`
	FullHistory     string `json:"fullHistory"`
}

// UpdateLeadRequest is the dashboard payload for editing a lead.
type UpdateLeadRequest struct {
	Name            *string `json:"name"`
	ProductInterest *string `json:"productInterest"`
	MainNeed        *string `json:"mainNeed"`
	Budget          *string `json:"budget"`
	Deadline        *string `json:"deadline"`
	Classification  *string `json:"classification"`
	Summary         *string `json:"summary"`
	Status          *string `json:"status"`
}

// ValidLeadStatus reports whether s is a known pipeline status.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusIncoming, LeadStatusQualified, LeadStatusContacted, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}
