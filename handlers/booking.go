package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"davi/middleware"
	"davi/models"
	"davi/services/booking"
	"davi/utils"
)

// BookingHandler serves the booking webhook and the dashboard agenda list.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookWebhookHandler is called by the automation pipeline to commit a
// prospect's chosen time. Always answers structured JSON.
func (h *BookingHandler) BookWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking payload", "message": err.Error()})
		return
	}

	result, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrLeadNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found for booking"})
		default:
			logger.Error("booking failed",
				zap.String("tenantId", req.TenantID),
				zap.String("contact", req.LeadContact),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// AppointmentsGetHandler lists the authenticated tenant's appointments.
func (h *BookingHandler) AppointmentsGetHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	appts, err := h.Service.ListAppointments(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}
