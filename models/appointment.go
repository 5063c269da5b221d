package models

import "time"

// Appointment kinds: the standard track and the premium BPO track.
const (
	AppointmentKindStandard = "GESTAO_FINANCEIRA"
	AppointmentKindPremium  = "BPO_PREMIUM"
)

// Appointment statuses.
const (
	AppointmentStatusPending   = "PENDENTE"
	AppointmentStatusConfirmed = "CONFIRMADO"
	AppointmentStatusCancelled = "CANCELADO"
)

// Appointment is the durable record of a booked meeting. SlotID is set only
// when a matching availability slot was actually consumed; an appointment with
// an empty SlotID was booked without inventory and needs reconciliation.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	TenantID  string    `bson:"tenantId" json:"tenantId"`
	LeadID    string    `bson:"leadId" json:"leadId"`
	SlotID    string    `bson:"slotId,omitempty" json:"slotId,omitempty"`
	DateTime  time.Time `bson:"dateTime" json:"dateTime"`
	Kind      string    `bson:"kind" json:"kind"`
	Summary   string    `bson:"summary,omitempty" json:"summary,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the webhook payload the automation sends to commit a
// prospect's chosen time.
type BookingRequest struct {
	TenantID    string `json:"tenantId"`
	LeadContact string `json:"contactLead"`
	DateTimeISO string `json:"dateTimeISO"`
	Kind        string `json:"kind"`
	Summary     string `json:"summary"`
}

// BookingResult reports what the coordinator actually did. SlotConsumed is
// false when the appointment was created but no free slot matched the target
// instant (or a concurrent booking won the slot).
type BookingResult struct {
	Appointment  *Appointment      `json:"appointment"`
	SlotConsumed bool              `json:"slotConsumed"`
	Slot         *AvailabilitySlot `json:"slot,omitempty"`
}

// ReconcilePayload is the async task payload for re-checking an appointment
// that was booked without consuming a slot.
type ReconcilePayload struct {
	AppointmentID string `json:"appointmentId"`
	TenantID      string `json:"tenantId"`
}
