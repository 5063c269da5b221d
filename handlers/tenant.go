package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	tenantRepo "davi/database/repository/tenant"
	"davi/middleware"
	"davi/models"
	"davi/services/tenant"
)

// TenantHandler serves specialist login, settings and the automation's
// specialist lookup.
type TenantHandler struct {
	Service tenant.TenantService
}

func NewTenantHandler(svc tenant.TenantService) *TenantHandler {
	return &TenantHandler{Service: svc}
}

// LoginHandler authenticates a specialist and returns a session token.
func (h *TenantHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	t, token, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, tenant.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "tenant": t})
}

// ByPhoneWebhookHandler tells the automation whether a phone number belongs
// to a specialist account.
func (h *TenantHandler) ByPhoneWebhookHandler(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	t, err := h.Service.GetByPhone(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"isSpecialist": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up specialist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isSpecialist": true, "specialist": t})
}

// SettingsGetHandler returns the tenant's bot configuration.
func (h *TenantHandler) SettingsGetHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	settings, err := h.Service.GetSettings(c.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SettingsPutHandler updates qualification questions and/or classification
// tiers. Both are opaque text consumed only by the external prompt.
func (h *TenantHandler) SettingsPutHandler(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var settings models.TenantSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.UpdateSettings(c.Request.Context(), tenantID, settings); err != nil {
		if errors.Is(err, tenantRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
