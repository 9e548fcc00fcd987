package handlers

import (
	"errors"
	"net/http"

	businessRepo "salonpro/database/repository/business"
	"salonpro/models"
	"salonpro/services/customer"
	"salonpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler exposes customer account and browse endpoints.
type CustomerHandler struct {
	Service customer.CustomerService
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: svc}
}

// RegisterHandler handles POST /api/customer/register.
func (h *CustomerHandler) RegisterHandler(c *gin.Context) {
	var req models.CustomerRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		if errors.Is(err, customer.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Customer registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Registration successful",
		"token":    resp.Token,
		"customer": resp.Customer,
	})
}

// LoginHandler handles POST /api/customer/login.
func (h *CustomerHandler) LoginHandler(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, customer.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		utils.GetLogger().Error("Customer login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Login successful",
		"token":    resp.Token,
		"customer": resp.Customer,
	})
}

// GetBusinessHandler handles GET /api/customer/business/:id.
func (h *CustomerHandler) GetBusinessHandler(c *gin.Context) {
	businessID := c.Param("id")

	biz, err := h.Service.GetBusinessInfo(businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business"})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// ListServicesHandler handles GET /api/customer/services/:businessId.
func (h *CustomerHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListAvailableServices(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// ListStylistsHandler handles GET /api/customer/stylists/:businessId.
func (h *CustomerHandler) ListStylistsHandler(c *gin.Context) {
	stylists, err := h.Service.ListActiveStylists(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stylists"})
		return
	}
	if stylists == nil {
		stylists = []models.Stylist{}
	}
	c.JSON(http.StatusOK, stylists)
}
