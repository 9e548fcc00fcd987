package handlers

import (
	"errors"
	"net/http"

	businessRepo "salonpro/database/repository/business"
	"salonpro/middleware"
	"salonpro/models"
	"salonpro/services/business"
	"salonpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler exposes the salon-owner endpoints.
type BusinessHandler struct {
	Service business.BusinessService
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// RegisterHandler handles POST /api/business/register.
func (h *BusinessHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BusinessRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	biz, err := h.Service.Register(req)
	if err != nil {
		if errors.Is(err, business.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Business registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Business registered successfully",
		"businessId": biz.ID,
	})
}

// LoginHandler handles POST /api/business/login.
func (h *BusinessHandler) LoginHandler(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, business.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		utils.GetLogger().Error("Business login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Login successful",
		"token":    resp.Token,
		"business": resp.Business,
	})
}

// LogoutHandler handles POST /api/business/logout.
func (h *BusinessHandler) LogoutHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)
	if err := h.Service.RevokeAuthToken(businessID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetDataHandler handles GET /api/business/data.
func (h *BusinessHandler) GetDataHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)

	biz, err := h.Service.GetBusiness(businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		utils.GetLogger().Error("Failed to load business data", zap.String("id", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business data"})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// ListServicesHandler handles GET /api/business/services.
func (h *BusinessHandler) ListServicesHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)

	services, err := h.Service.ListServices(businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// AddServiceHandler handles POST /api/business/services.
func (h *BusinessHandler) AddServiceHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)

	var req models.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.Service.AddService(businessID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to add service", zap.String("businessId", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": svc})
}

// UpdateServiceHandler handles PUT /api/business/services/:id.
func (h *BusinessHandler) UpdateServiceHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)
	serviceID := c.Param("id")

	var req models.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(businessID, serviceID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": svc})
}

// DeleteServiceHandler handles DELETE /api/business/services/:id.
func (h *BusinessHandler) DeleteServiceHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)
	serviceID := c.Param("id")

	if err := h.Service.DeleteService(businessID, serviceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListStylistsHandler handles GET /api/business/stylists.
func (h *BusinessHandler) ListStylistsHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)

	stylists, err := h.Service.ListStylists(businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stylists"})
		return
	}
	if stylists == nil {
		stylists = []models.Stylist{}
	}
	c.JSON(http.StatusOK, stylists)
}

// AddStylistHandler handles POST /api/business/stylists.
func (h *BusinessHandler) AddStylistHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)

	var req models.StylistInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stylist, err := h.Service.AddStylist(businessID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to add stylist", zap.String("businessId", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stylist": stylist})
}

// UpdateStylistHandler handles PUT /api/business/stylists/:id.
func (h *BusinessHandler) UpdateStylistHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)
	stylistID := c.Param("id")

	var req models.StylistInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stylist, err := h.Service.UpdateStylist(businessID, stylistID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stylist": stylist})
}

// DeleteStylistHandler handles DELETE /api/business/stylists/:id.
func (h *BusinessHandler) DeleteStylistHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)
	stylistID := c.Param("id")

	if err := h.Service.DeleteStylist(businessID, stylistID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetHoursHandler handles GET /api/business/hours.
func (h *BusinessHandler) GetHoursHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)

	hours, err := h.Service.GetHours(businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business hours"})
		return
	}
	if hours == nil {
		hours = []models.BusinessHours{}
	}
	c.JSON(http.StatusOK, hours)
}

// UpdateHoursHandler handles PUT /api/business/hours.
func (h *BusinessHandler) UpdateHoursHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)

	var req struct {
		Hours []models.BusinessHours `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpdateHours(businessID, req.Hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListAppointmentsHandler handles GET /api/business/appointments.
func (h *BusinessHandler) ListAppointmentsHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)
	filter := models.AppointmentFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}

	appointments, err := h.Service.ListAppointments(businessID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentStatusHandler handles PUT /api/business/appointments/:id/status.
func (h *BusinessHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	businessID := c.GetString(middleware.CtxSubjectID)
	appointmentID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Service.UpdateAppointmentStatus(businessID, appointmentID, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}
