// File: services/booking/coordinator.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	appointmentRepo "davi/database/repository/appointment"
	leadRepo "davi/database/repository/lead"
	slotRepo "davi/database/repository/slot"
	"davi/models"
	"davi/utils"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Slots        slotRepo.SlotRepository
	Leads        leadRepo.LeadRepository
	Appointments appointmentRepo.AppointmentRepository
	// Reconcile receives booked-without-inventory appointments. Optional.
	Reconcile Reconciler
}

func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	if req.TenantID == "" || req.LeadContact == "" || req.DateTimeISO == "" {
		return nil, fmt.Errorf("%w: tenantId, contactLead and dateTimeISO are required", ErrInvalidInput)
	}
	target, err := time.Parse(time.RFC3339, req.DateTimeISO)
	if err != nil {
		return nil, fmt.Errorf("%w: dateTimeISO is not a valid ISO 8601 instant", ErrInvalidInput)
	}
	target = target.UTC()

	kind := req.Kind
	if kind == "" {
		kind = models.AppointmentKindStandard
	}

	// The lead must already exist; qualification happens upstream.
	lead, err := s.Leads.GetByContact(ctx, req.TenantID, req.LeadContact)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	// The appointment is the durable record of intent; it is created before
	// and regardless of slot consumption.
	appt := &models.Appointment{
		TenantID: req.TenantID,
		LeadID:   lead.ID,
		DateTime: target,
		Kind:     kind,
		Summary:  req.Summary,
		Status:   models.AppointmentStatusPending,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	result := &models.BookingResult{Appointment: appt}
	slot := s.consumeSlot(ctx, req.TenantID, appt, lead.ID, target)
	if slot != nil {
		result.SlotConsumed = true
		result.Slot = slot
	}

	if err := s.Leads.UpdateStatus(ctx, req.TenantID, lead.ID, models.LeadStatusContacted); err != nil {
		logger.Warn("failed to advance lead status after booking",
			zap.String("tenantId", req.TenantID),
			zap.String("leadId", lead.ID),
			zap.Error(err))
	}

	return result, nil
}

// consumeSlot attempts find-and-mark on the exact target instant. Every miss
// is a slot-consistency gap: the appointment exists with no inventory behind
// it. That is logged and queued for reconciliation, never fatal.
func (s *DefaultBookingService) consumeSlot(ctx context.Context, tenantID string, appt *models.Appointment, leadID string, target time.Time) *models.AvailabilitySlot {
	logger := utils.GetLogger()

	warn := func(reason string, err error) {
		logger.Warn("appointment created without consuming a slot",
			zap.String("tenantId", tenantID),
			zap.String("appointmentId", appt.ID),
			zap.Time("target", target),
			zap.String("reason", reason),
			zap.Error(err))
		if s.Reconcile != nil {
			payload := models.ReconcilePayload{AppointmentID: appt.ID, TenantID: tenantID}
			if qerr := s.Reconcile.EnqueueReconcile(ctx, payload); qerr != nil {
				logger.Error("failed to enqueue reconciliation task", zap.Error(qerr))
			}
		}
	}

	free, err := s.Slots.FindExactFree(ctx, tenantID, target)
	if err != nil {
		if errors.Is(err, slotRepo.ErrNotFound) {
			warn("no free slot at target instant", nil)
		} else {
			warn("slot lookup failed", err)
		}
		return nil
	}

	booked, err := s.Slots.MarkBooked(ctx, tenantID, free.ID, leadID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrAlreadyBooked) {
			warn("lost booking race for slot "+free.ID, nil)
		} else {
			warn("failed to mark slot booked", err)
		}
		return nil
	}

	if err := s.Appointments.LinkSlot(ctx, tenantID, appt.ID, booked.ID); err != nil {
		logger.Error("failed to link consumed slot to appointment",
			zap.String("appointmentId", appt.ID),
			zap.String("slotId", booked.ID),
			zap.Error(err))
	} else {
		appt.SlotID = booked.ID
	}
	return booked
}

func (s *DefaultBookingService) ListAppointments(ctx context.Context, tenantID string) ([]models.Appointment, error) {
	return s.Appointments.ListByTenant(ctx, tenantID)
}
