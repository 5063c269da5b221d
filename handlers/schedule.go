package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	slotRepo "davi/database/repository/slot"
	"davi/middleware"
	"davi/models"
	"davi/services/intelligence"
	"davi/services/schedule"
	"davi/utils"
)

// ScheduleHandler serves the dashboard agenda endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GenerateHandler turns a natural-language instruction into slot mutations.
func (h *ScheduleHandler) GenerateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	count, err := h.Service.Generate(c.Request.Context(), tenantID, req.Instructions, req.Mode)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, intelligence.ErrInterpretation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to interpret the availability instruction", "message": err.Error()})
		default:
			logger.Error("schedule generation failed", zap.String("tenantId", tenantID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// MySlotsGetHandler lists every future slot for the authenticated tenant.
func (h *ScheduleHandler) MySlotsGetHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	slots, err := h.Service.ListMySlots(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agenda"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// MySlotsCreateHandler creates one slot from date + wall-clock times.
func (h *ScheduleHandler) MySlotsCreateHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.ManualSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slot, err := h.Service.CreateManualSlot(c.Request.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) || errors.Is(err, slotRepo.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slot"})
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// MySlotsDeleteHandler removes one slot; booked slots are left untouched.
func (h *ScheduleHandler) MySlotsDeleteHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	slotID := c.Query("id")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot id is required"})
		return
	}

	if err := h.Service.DeleteSlot(c.Request.Context(), tenantID, slotID); err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
