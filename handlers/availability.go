package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"davi/services/schedule"
)

// AvailabilityHandler serves the read-only slot discovery webhooks consumed
// by the automation pipeline.
type AvailabilityHandler struct {
	Service schedule.ScheduleService
}

func NewAvailabilityHandler(svc schedule.ScheduleService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// NextSlotsHandler quotes the next free options for a tenant.
func (h *AvailabilityHandler) NextSlotsHandler(c *gin.Context) {
	tenantID := c.Query("tenantId")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenantId is required"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	suggestions, err := h.Service.NextFree(c.Request.Context(), tenantID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch free slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": suggestions})
}

type checkAvailabilityRequest struct {
	TenantID      string `json:"tenantId" binding:"required"`
	TargetDateISO string `json:"targetDateISO" binding:"required"`
}

// CheckAvailabilityHandler answers whether a free slot starts exactly at the
// target instant, with fallback suggestions when it does not.
func (h *AvailabilityHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req checkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	target, err := time.Parse(time.RFC3339, req.TargetDateISO)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetDateISO is not a valid ISO 8601 instant"})
		return
	}

	check, err := h.Service.CheckExact(c.Request.Context(), req.TenantID, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
		return
	}
	c.JSON(http.StatusOK, check)
}
