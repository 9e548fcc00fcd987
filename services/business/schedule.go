package business

import (
	"fmt"

	"salonpro/models"
	"salonpro/services/availability"
)

func (s *DefaultBusinessService) GetHours(businessID string) ([]models.BusinessHours, error) {
	return s.Hours.GetWeek(businessID)
}

func (s *DefaultBusinessService) UpdateHours(businessID string, hours []models.BusinessHours) error {
	for _, h := range hours {
		if h.Day < 0 || h.Day > 6 {
			return fmt.Errorf("invalid day of week %d", h.Day)
		}
		if !h.IsClosed {
			open, err := availability.ParseClock(h.OpenTime)
			if err != nil {
				return err
			}
			close, err := availability.ParseClock(h.CloseTime)
			if err != nil {
				return err
			}
			if close <= open {
				return fmt.Errorf("close time must be after open time for day %d", h.Day)
			}
		}
		h.BusinessID = businessID
		if err := s.Hours.UpdateDay(h); err != nil {
			return err
		}
	}
	return nil
}

func (s *DefaultBusinessService) ListAppointments(businessID string, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return s.Appointments.ListByBusiness(businessID, filter)
}

func (s *DefaultBusinessService) UpdateAppointmentStatus(businessID, appointmentID, status string) (*models.Appointment, error) {
	if !models.ValidAppointmentStatus(status) {
		return nil, fmt.Errorf("invalid appointment status %q", status)
	}
	return s.Appointments.UpdateStatus(businessID, appointmentID, status)
}
