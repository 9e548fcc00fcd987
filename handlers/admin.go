package handlers

import (
	"errors"
	"net/http"

	businessRepo "salonpro/database/repository/business"
	leadRepo "salonpro/database/repository/lead"
	"salonpro/models"
	"salonpro/services/admin"
	"salonpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the cross-tenant admin panel endpoints.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		utils.GetLogger().Error("Admin login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin login successful",
		"token":   resp.Token,
		"admin":   resp.Admin,
	})
}

// ListBusinessesHandler handles GET /api/admin/businesses.
func (h *AdminHandler) ListBusinessesHandler(c *gin.Context) {
	businesses, err := h.Service.ListBusinesses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load businesses"})
		return
	}
	if businesses == nil {
		businesses = []models.Business{}
	}
	c.JSON(http.StatusOK, businesses)
}

// DeleteBusinessHandler handles DELETE /api/admin/businesses/:id.
func (h *AdminHandler) DeleteBusinessHandler(c *gin.Context) {
	businessID := c.Param("id")

	if err := h.Service.DeleteBusiness(businessID); err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete business", zap.String("id", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListLeadsHandler handles GET /api/admin/leads.
func (h *AdminHandler) ListLeadsHandler(c *gin.Context) {
	leads, err := h.Service.ListLeads()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}

// UpdateLeadHandler handles PUT /api/admin/leads/:id.
func (h *AdminHandler) UpdateLeadHandler(c *gin.Context) {
	leadID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.Service.UpdateLeadStatus(leadID, req.Status)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "lead": lead})
}

// ListAppointmentsHandler handles GET /api/admin/appointments.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appointments, err := h.Service.ListAllAppointments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}
