package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "salonpro/database/repository/appointment"
	serviceRepo "salonpro/database/repository/service"
	stylistRepo "salonpro/database/repository/stylist"
	"salonpro/models"
	"salonpro/services/availability"
	"salonpro/services/booking"
	"salonpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Machine-readable booking failure codes surfaced to clients.
const (
	CodePastDate             = "PAST_DATE"
	CodeBusinessClosed       = "BUSINESS_CLOSED"
	CodeOutsideBusinessHours = "OUTSIDE_BUSINESS_HOURS"
	CodeSlotConflict         = "SLOT_CONFLICT"
	CodeNotFound             = "NOT_FOUND"
)

// BookingHandler exposes the customer booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// AvailableSlotsHandler handles GET /api/customer/available-slots/:businessId.
// Query parameters: date, stylistId, serviceId.
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	businessID := c.Param("businessId")
	date := c.Query("date")
	stylistID := c.Query("stylistId")
	serviceID := c.Query("serviceId")
	if date == "" || stylistID == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, stylistId and serviceId are required"})
		return
	}
	if _, err := time.Parse(availability.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	slots, err := h.Service.GetAvailableSlots(businessID, stylistID, serviceID, date)
	if err != nil {
		if isNotFound(err) {
			utils.JSONErrorCode(c, http.StatusNotFound, CodeNotFound, err.Error())
			return
		}
		h.Logger.Error("Failed to compute available slots",
			zap.String("businessId", businessID),
			zap.String("stylistId", stylistID),
			zap.String("date", date),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load available slots"})
		return
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, slots)
}

// BookAppointmentHandler handles POST /api/customer/book-appointment.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse(availability.DateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointmentDate must be formatted YYYY-MM-DD"})
		return
	}
	if _, err := availability.ParseClock(req.StartTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointmentTime must be formatted HH:MM"})
		return
	}

	appt, err := h.Service.BookAppointment(req)
	if err != nil {
		h.respondBookingError(c, req, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, req models.BookingRequest, err error) {
	switch {
	case errors.Is(err, availability.ErrPastDate):
		utils.JSONErrorCode(c, http.StatusBadRequest, CodePastDate, "Appointments cannot be booked for past dates")
	case errors.Is(err, availability.ErrBusinessClosed):
		utils.JSONErrorCode(c, http.StatusBadRequest, CodeBusinessClosed, "The business is closed on the requested day")
	case errors.Is(err, availability.ErrOutsideBusinessHours):
		utils.JSONErrorCode(c, http.StatusBadRequest, CodeOutsideBusinessHours, "The requested time is outside business hours")
	case errors.Is(err, availability.ErrSlotConflict):
		utils.JSONErrorCode(c, http.StatusConflict, CodeSlotConflict, "The requested time is no longer available")
	case isNotFound(err):
		utils.JSONErrorCode(c, http.StatusNotFound, CodeNotFound, err.Error())
	default:
		h.Logger.Error("Failed to book appointment",
			zap.String("businessId", req.BusinessID),
			zap.String("stylistId", req.StylistID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, serviceRepo.ErrNotFound) ||
		errors.Is(err, stylistRepo.ErrNotFound) ||
		errors.Is(err, appointmentRepo.ErrNotFound) ||
		errors.Is(err, booking.ErrServiceUnavailable) ||
		errors.Is(err, booking.ErrStylistUnavailable)
}
