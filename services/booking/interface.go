// File: services/booking/interface.go
package booking

import (
	"context"
	"errors"

	"davi/models"
)

var (
	// ErrLeadNotFound means booking was attempted for a contact that never
	// went through qualification.
	ErrLeadNotFound = errors.New("lead not found for booking")
	// ErrInvalidInput means a required booking field is missing or malformed.
	ErrInvalidInput = errors.New("invalid booking input")
)

// BookingService commits a prospect's chosen time into a durable reservation.
type BookingService interface {
	// Book resolves the lead, creates the appointment record, consumes the
	// matching free slot when one exists and advances the lead's pipeline
	// status. A missing slot is not a failure: the appointment still stands
	// and the gap is flagged for reconciliation.
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
	// ListAppointments returns a tenant's appointments for the dashboard.
	ListAppointments(ctx context.Context, tenantID string) ([]models.Appointment, error)
}

// Reconciler accepts appointments that were booked without inventory so an
// async worker can retry the slot match later.
type Reconciler interface {
	EnqueueReconcile(ctx context.Context, payload models.ReconcilePayload) error
}
