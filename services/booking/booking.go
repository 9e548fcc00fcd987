// Package booking drives the customer booking flow: slot queries resolved
// through the availability engine and appointment creation with its
// validation gate.
package booking

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "salonpro/database/repository/appointment"
	customerRepo "salonpro/database/repository/customer"
	serviceRepo "salonpro/database/repository/service"
	stylistRepo "salonpro/database/repository/stylist"
	"salonpro/models"
	"salonpro/services/availability"
	"salonpro/services/tasks"
	"salonpro/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ErrStylistUnavailable is returned when the requested stylist does not
// belong to the business or is not active.
var ErrStylistUnavailable = errors.New("stylist is not available for booking")

// ErrServiceUnavailable is returned when the requested service does not
// belong to the business or is not offered.
var ErrServiceUnavailable = errors.New("service is not available for booking")

// BookingService defines the customer booking operations.
type BookingService interface {
	// GetAvailableSlots resolves the service's duration and returns bookable
	// "HH:MM" start times for the stylist on the date.
	GetAvailableSlots(businessID, stylistID, serviceID, date string) ([]string, error)
	// BookAppointment validates the request and creates a pending
	// appointment, reusing or creating the customer by phone number.
	BookAppointment(req models.BookingRequest) (*models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Availability availability.AvailabilityService
	Services     serviceRepo.ServiceRepository
	Stylists     stylistRepo.StylistRepository
	Customers    customerRepo.CustomerRepository
	Appointments appointmentRepo.AppointmentRepository

	// ReminderClient enqueues appointment reminder tasks; nil disables
	// reminders.
	ReminderClient *asynq.Client
}

func (s *DefaultBookingService) GetAvailableSlots(businessID, stylistID, serviceID, date string) ([]string, error) {
	svc, err := s.lookupService(businessID, serviceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.lookupStylist(businessID, stylistID); err != nil {
		return nil, err
	}
	return s.Availability.ListAvailableSlots(businessID, stylistID, date, svc.Duration)
}

func (s *DefaultBookingService) BookAppointment(req models.BookingRequest) (*models.Appointment, error) {
	svc, err := s.lookupService(req.BusinessID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	stylist, err := s.lookupStylist(req.BusinessID, req.StylistID)
	if err != nil {
		return nil, err
	}

	if err := s.Availability.ValidateBooking(req.BusinessID, req.StylistID, req.Date, req.StartTime, svc.Duration); err != nil {
		return nil, err
	}

	cust, err := s.customerByPhone(req.CustomerName, req.CustomerPhone)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:              uuid.NewString(),
		BusinessID:      req.BusinessID,
		CustomerID:      cust.ID,
		ServiceID:       svc.ID,
		StylistID:       stylist.ID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		Duration:        svc.Duration,
		SpecialRequests: req.SpecialRequests,
		Status:          models.AppointmentPending,
		CreatedAt:       time.Now(),

		ServiceName:   svc.Name,
		ServicePrice:  svc.Price,
		StylistName:   stylist.Name,
		CustomerName:  cust.Name,
		CustomerPhone: cust.Phone,
	}
	if err := s.Appointments.Create(appt); err != nil {
		// The unique slot index caught a concurrent booking of the same
		// slot; surface it as an ordinary conflict.
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, availability.ErrSlotConflict
		}
		return nil, err
	}

	s.enqueueReminder(appt)
	return appt, nil
}

func (s *DefaultBookingService) lookupService(businessID, serviceID string) (*models.Service, error) {
	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc.BusinessID != businessID || !svc.IsAvailable {
		return nil, ErrServiceUnavailable
	}
	return svc, nil
}

func (s *DefaultBookingService) lookupStylist(businessID, stylistID string) (*models.Stylist, error) {
	stylist, err := s.Stylists.GetByID(stylistID)
	if err != nil {
		return nil, err
	}
	if stylist.BusinessID != businessID || !stylist.IsActive {
		return nil, ErrStylistUnavailable
	}
	return stylist, nil
}

func (s *DefaultBookingService) customerByPhone(name, phone string) (*models.Customer, error) {
	cust, err := s.Customers.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if cust != nil {
		return cust, nil
	}

	cust = &models.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		CreatedAt: time.Now(),
	}
	if err := s.Customers.Create(cust); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return cust, nil
}

func (s *DefaultBookingService) enqueueReminder(appt *models.Appointment) {
	if s.ReminderClient == nil {
		return
	}
	logger := utils.GetLogger()

	startAt, err := time.ParseInLocation(availability.DateLayout+" 15:04", appt.Date+" "+appt.StartTime, time.Local)
	if err != nil {
		logger.Warn("Skipping reminder for appointment with malformed schedule",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		BusinessID:    appt.BusinessID,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
	}
	task, opts, err := tasks.NewReminderTask(payload, startAt.Add(-tasks.ReminderLeadTime))
	if err != nil {
		logger.Warn("Failed to build reminder task", zap.String("appointmentId", appt.ID), zap.Error(err))
		return
	}
	if _, err := s.ReminderClient.Enqueue(task, opts...); err != nil {
		// Reminders are best effort; the booking itself already succeeded.
		logger.Warn("Failed to enqueue reminder task", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
