// Package availability computes bookable start times for a stylist and
// validates proposed bookings against business hours and the existing
// calendar. It is a pure function of its inputs plus a point-in-time read of
// the hours and appointment collections; it holds no state of its own.
package availability

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "salonpro/database/repository/appointment"
	hoursRepo "salonpro/database/repository/hours"
)

// Booking validation failure taxonomy. All are recoverable, user-facing
// conditions surfaced as 4xx responses.
var (
	ErrPastDate             = errors.New("requested date is in the past")
	ErrBusinessClosed       = errors.New("business is closed on the requested day")
	ErrOutsideBusinessHours = errors.New("requested time is outside business hours")
	ErrSlotConflict         = errors.New("requested time conflicts with an existing appointment")
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// AvailabilityService defines the slot computation and booking validation
// operations.
type AvailabilityService interface {
	// ListAvailableSlots returns the ascending "HH:MM" start times on date at
	// which a booking of durationMinutes could begin for the stylist. A day
	// with no hours row, or marked closed, yields an empty list and no error.
	ListAvailableSlots(businessID, stylistID, date string, durationMinutes int) ([]string, error)
	// ValidateBooking checks a single proposed (date, startTime) pair and
	// returns one of the taxonomy errors above, or nil when bookable.
	ValidateBooking(businessID, stylistID, date, startTime string, durationMinutes int) error
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Hours        hoursRepo.HoursRepository
	Appointments appointmentRepo.AppointmentRepository
	StepMinutes  int
	Now          func() time.Time
}

func (s *DefaultAvailabilityService) step() int {
	if s.StepMinutes > 0 {
		return s.StepMinutes
	}
	return 30
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) ListAvailableSlots(businessID, stylistID, date string, durationMinutes int) ([]string, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	hours, err := s.Hours.GetDay(businessID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	// Missing row or closed day is the correct "no availability" answer,
	// not an error.
	if hours == nil || hours.IsClosed {
		return []string{}, nil
	}

	open, err := ParseClock(hours.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := ParseClock(hours.CloseTime)
	if err != nil {
		return nil, err
	}

	busy, err := s.busyIntervals(businessID, stylistID, date)
	if err != nil {
		return nil, err
	}

	// Stale same-day slots must not be offered.
	cutoff := -1
	now := s.now()
	if now.Format(DateLayout) == date {
		cutoff = now.Hour()*60 + now.Minute()
	}

	starts := GenerateSlots(open, close, durationMinutes, s.step(), busy, cutoff)
	slots := make([]string, 0, len(starts))
	for _, start := range starts {
		slots = append(slots, FormatClock(start))
	}
	return slots, nil
}

func (s *DefaultAvailabilityService) ValidateBooking(businessID, stylistID, date, startTime string, durationMinutes int) error {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	// Date-only comparison: booking for any earlier calendar day fails,
	// regardless of time-of-day.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return ErrPastDate
	}

	hours, err := s.Hours.GetDay(businessID, int(day.Weekday()))
	if err != nil {
		return err
	}
	if hours == nil || hours.IsClosed {
		return ErrBusinessClosed
	}

	open, err := ParseClock(hours.OpenTime)
	if err != nil {
		return err
	}
	close, err := ParseClock(hours.CloseTime)
	if err != nil {
		return err
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return err
	}

	if start < open || start+durationMinutes > close {
		return ErrOutsideBusinessHours
	}
	if now.Format(DateLayout) == date && start <= now.Hour()*60+now.Minute() {
		return ErrPastDate
	}

	busy, err := s.busyIntervals(businessID, stylistID, date)
	if err != nil {
		return err
	}
	requested := Interval{Start: start, End: start + durationMinutes}
	if overlapsAny(requested, busy) {
		return ErrSlotConflict
	}
	return nil
}

func (s *DefaultAvailabilityService) busyIntervals(businessID, stylistID, date string) ([]Interval, error) {
	appointments, err := s.Appointments.ListActiveForStylistDay(businessID, stylistID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing appointments: %w", err)
	}

	busy := make([]Interval, 0, len(appointments))
	for _, appt := range appointments {
		start, err := ParseClock(appt.StartTime)
		if err != nil {
			return nil, fmt.Errorf("appointment %s has malformed start time: %w", appt.ID, err)
		}
		busy = append(busy, Interval{Start: start, End: start + appt.Duration})
	}
	return busy, nil
}
