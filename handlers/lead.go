package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	leadRepo "davi/database/repository/lead"
	"davi/middleware"
	"davi/models"
	"davi/services/lead"
	"davi/utils"
)

// LeadHandler serves the lead qualification webhook and the dashboard lead
// management endpoints.
type LeadHandler struct {
	Service lead.LeadService
}

func NewLeadHandler(svc lead.LeadService) *LeadHandler {
	return &LeadHandler{Service: svc}
}

// QualifyWebhookHandler upserts a lead from the automation's qualification
// payload, keyed on contact.
func (h *LeadHandler) QualifyWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.QualifyLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenantId, name and contact are required", "message": err.Error()})
		return
	}

	result, err := h.Service.Qualify(c.Request.Context(), req)
	if err != nil {
		logger.Error("lead qualification failed",
			zap.String("tenantId", req.TenantID),
			zap.String("contact", req.Contact),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lead"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LeadsGetHandler lists the tenant's leads, most recent first.
func (h *LeadHandler) LeadsGetHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	leads, err := h.Service.List(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

// LeadGetHandler returns one lead.
func (h *LeadHandler) LeadGetHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	out, err := h.Service.Get(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lead"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// LeadUpdateHandler applies a partial dashboard edit.
func (h *LeadHandler) LeadUpdateHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	out, err := h.Service.Update(c.Request.Context(), tenantID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// LeadDeleteHandler removes a lead.
func (h *LeadHandler) LeadDeleteHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
