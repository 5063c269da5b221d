package handlers

import (
	tenantRepo "davi/database/repository/tenant"
)

// HandlerBundle aggregates the HTTP handlers plus the dependencies the
// route layer needs for middleware wiring.
type HandlerBundle struct {
	Schedule     *ScheduleHandler
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Lead         *LeadHandler
	Tenant       *TenantHandler

	TenantRepo tenantRepo.TenantRepository
}
