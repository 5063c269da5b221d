// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"davi/database"
	"davi/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound means no appointment matched the given id.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository stores durable booking records. Appointments are
// immutable here apart from the slot link written right after consumption.
type AppointmentRepository interface {
	// Create inserts a new appointment, assigning an ID when missing.
	Create(ctx context.Context, appt *models.Appointment) error
	// LinkSlot records which availability slot the appointment consumed.
	LinkSlot(ctx context.Context, tenantID, apptID, slotID string) error
	// GetByID retrieves one appointment, tenant-scoped.
	GetByID(ctx context.Context, tenantID, id string) (*models.Appointment, error)
	// ListByTenant returns the tenant's appointments, soonest first.
	ListByTenant(ctx context.Context, tenantID string) ([]models.Appointment, error)
	// ListUnreconciled returns appointments that never consumed a slot, for
	// the reconciliation worker.
	ListUnreconciled(ctx context.Context, tenantID string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs the MongoDB-backed AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{coll: database.DB().Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
