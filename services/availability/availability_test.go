package availability

import (
	"testing"
	"time"

	"salonpro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHoursRepo serves canned business-hours rows.
type fakeHoursRepo struct {
	days map[int]models.BusinessHours
}

func (f *fakeHoursRepo) SeedWeek(hours []models.BusinessHours) error { return nil }

func (f *fakeHoursRepo) GetWeek(businessID string) ([]models.BusinessHours, error) {
	var week []models.BusinessHours
	for _, h := range f.days {
		week = append(week, h)
	}
	return week, nil
}

func (f *fakeHoursRepo) GetDay(businessID string, day int) (*models.BusinessHours, error) {
	h, ok := f.days[day]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (f *fakeHoursRepo) UpdateDay(hours models.BusinessHours) error { return nil }
func (f *fakeHoursRepo) DeleteByBusiness(businessID string) error   { return nil }

// fakeAppointmentRepo serves canned appointments.
type fakeAppointmentRepo struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	f.appointments = append(f.appointments, *a)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) { return nil, nil }

func (f *fakeAppointmentRepo) ListActiveForStylistDay(businessID, stylistID, date string) ([]models.Appointment, error) {
	var active []models.Appointment
	for _, a := range f.appointments {
		if a.StylistID != stylistID || a.Date != date {
			continue
		}
		if a.Status == models.AppointmentPending || a.Status == models.AppointmentConfirmed {
			active = append(active, a)
		}
	}
	return active, nil
}

func (f *fakeAppointmentRepo) ListByBusiness(businessID string, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) ListAll() ([]models.Appointment, error) { return f.appointments, nil }

func (f *fakeAppointmentRepo) UpdateStatus(businessID, appointmentID, status string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) DeleteByBusiness(businessID string) error { return nil }

// allWeekHours opens every day with the given window.
func allWeekHours(open, close string) *fakeHoursRepo {
	days := make(map[int]models.BusinessHours)
	for d := 0; d < 7; d++ {
		days[d] = models.BusinessHours{BusinessID: "biz-1", Day: d, OpenTime: open, CloseTime: close}
	}
	return &fakeHoursRepo{days: days}
}

func fixedClock(value string) func() time.Time {
	return func() time.Time {
		t, _ := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
		return t
	}
}

func newService(hours *fakeHoursRepo, appts *fakeAppointmentRepo, now string) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Hours:        hours,
		Appointments: appts,
		StepMinutes:  30,
		Now:          fixedClock(now),
	}
}

func TestListAvailableSlots_OpenDayNoAppointments(t *testing.T) {
	svc := newService(allWeekHours("09:00", "17:00"), &fakeAppointmentRepo{}, "2026-09-01 08:00")

	slots, err := svc.ListAvailableSlots("biz-1", "sty-1", "2026-09-07", 60)
	require.NoError(t, err)

	require.Len(t, slots, 15)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:00", slots[len(slots)-1])
}

func TestListAvailableSlots_ExistingAppointmentPunchesHole(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", StylistID: "sty-1", Date: "2026-09-07", StartTime: "10:00", Duration: 60, Status: models.AppointmentConfirmed},
	}}
	svc := newService(allWeekHours("09:00", "17:00"), appts, "2026-09-01 08:00")

	slots, err := svc.ListAvailableSlots("biz-1", "sty-1", "2026-09-07", 60)
	require.NoError(t, err)

	assert.Contains(t, slots, "09:00") // ends exactly at 10:00, half-open
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:00")
}

func TestListAvailableSlots_CancelledAppointmentFreesSlot(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", StylistID: "sty-1", Date: "2026-09-07", StartTime: "10:00", Duration: 60, Status: models.AppointmentCancelled},
	}}
	svc := newService(allWeekHours("09:00", "17:00"), appts, "2026-09-01 08:00")

	slots, err := svc.ListAvailableSlots("biz-1", "sty-1", "2026-09-07", 60)
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
}

func TestListAvailableSlots_ClosedDay(t *testing.T) {
	hours := allWeekHours("09:00", "17:00")
	// 2026-09-07 is a Monday.
	monday := hours.days[1]
	monday.IsClosed = true
	hours.days[1] = monday

	svc := newService(hours, &fakeAppointmentRepo{}, "2026-09-01 08:00")

	slots, err := svc.ListAvailableSlots("biz-1", "sty-1", "2026-09-07", 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListAvailableSlots_NoHoursRow(t *testing.T) {
	svc := newService(&fakeHoursRepo{days: map[int]models.BusinessHours{}}, &fakeAppointmentRepo{}, "2026-09-01 08:00")

	slots, err := svc.ListAvailableSlots("biz-1", "sty-1", "2026-09-07", 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListAvailableSlots_SameDayCutoff(t *testing.T) {
	svc := newService(allWeekHours("09:00", "17:00"), &fakeAppointmentRepo{}, "2026-09-07 11:10")

	slots, err := svc.ListAvailableSlots("biz-1", "sty-1", "2026-09-07", 60)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "11:30", slots[0])
	assert.NotContains(t, slots, "09:00")
	assert.NotContains(t, slots, "11:00")
}

func TestListAvailableSlots_Idempotent(t *testing.T) {
	svc := newService(allWeekHours("09:00", "17:00"), &fakeAppointmentRepo{}, "2026-09-01 08:00")

	first, err := svc.ListAvailableSlots("biz-1", "sty-1", "2026-09-07", 45)
	require.NoError(t, err)
	second, err := svc.ListAvailableSlots("biz-1", "sty-1", "2026-09-07", 45)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateBooking_Success(t *testing.T) {
	svc := newService(allWeekHours("09:00", "17:00"), &fakeAppointmentRepo{}, "2026-09-01 08:00")

	err := svc.ValidateBooking("biz-1", "sty-1", "2026-09-07", "14:30", 60)
	assert.NoError(t, err)
}

func TestValidateBooking_PastDate(t *testing.T) {
	svc := newService(allWeekHours("09:00", "17:00"), &fakeAppointmentRepo{}, "2026-09-01 08:00")

	err := svc.ValidateBooking("biz-1", "sty-1", "2026-08-31", "14:30", 60)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestValidateBooking_BusinessClosed(t *testing.T) {
	hours := allWeekHours("09:00", "17:00")
	monday := hours.days[1]
	monday.IsClosed = true
	hours.days[1] = monday
	svc := newService(hours, &fakeAppointmentRepo{}, "2026-09-01 08:00")

	err := svc.ValidateBooking("biz-1", "sty-1", "2026-09-07", "14:30", 60)
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestValidateBooking_OutsideBusinessHours(t *testing.T) {
	svc := newService(allWeekHours("09:00", "17:00"), &fakeAppointmentRepo{}, "2026-09-01 08:00")

	err := svc.ValidateBooking("biz-1", "sty-1", "2026-09-07", "08:30", 60)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// 16:30 + 60min runs past close.
	err = svc.ValidateBooking("biz-1", "sty-1", "2026-09-07", "16:30", 60)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// 16:00 + 60min ends exactly at close: allowed.
	err = svc.ValidateBooking("biz-1", "sty-1", "2026-09-07", "16:00", 60)
	assert.NoError(t, err)
}

func TestValidateBooking_SlotConflict(t *testing.T) {
	appts := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", StylistID: "sty-1", Date: "2026-09-07", StartTime: "10:00", Duration: 60, Status: models.AppointmentPending},
	}}
	svc := newService(allWeekHours("09:00", "17:00"), appts, "2026-09-01 08:00")

	err := svc.ValidateBooking("biz-1", "sty-1", "2026-09-07", "10:30", 60)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Back-to-back after the existing appointment is fine.
	err = svc.ValidateBooking("biz-1", "sty-1", "2026-09-07", "11:00", 60)
	assert.NoError(t, err)

	// A different stylist is not blocked.
	err = svc.ValidateBooking("biz-1", "sty-2", "2026-09-07", "10:30", 60)
	assert.NoError(t, err)
}

func TestValidateBooking_SameDayPastTime(t *testing.T) {
	svc := newService(allWeekHours("09:00", "17:00"), &fakeAppointmentRepo{}, "2026-09-07 12:00")

	err := svc.ValidateBooking("biz-1", "sty-1", "2026-09-07", "10:00", 60)
	assert.ErrorIs(t, err, ErrPastDate)
}
