package booking

import (
	"testing"

	appointmentRepo "salonpro/database/repository/appointment"
	serviceRepo "salonpro/database/repository/service"
	stylistRepo "salonpro/database/repository/stylist"
	"salonpro/models"
	"salonpro/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (f *fakeServiceRepo) Create(s *models.Service) error { return nil }
func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	return s, nil
}
func (f *fakeServiceRepo) ListByBusiness(businessID string, availableOnly bool) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) Update(s *models.Service) error            { return nil }
func (f *fakeServiceRepo) Delete(businessID, serviceID string) error { return nil }
func (f *fakeServiceRepo) DeleteByBusiness(businessID string) error  { return nil }

type fakeStylistRepo struct {
	stylists map[string]*models.Stylist
}

func (f *fakeStylistRepo) Create(s *models.Stylist) error { return nil }
func (f *fakeStylistRepo) GetByID(id string) (*models.Stylist, error) {
	s, ok := f.stylists[id]
	if !ok {
		return nil, stylistRepo.ErrNotFound
	}
	return s, nil
}
func (f *fakeStylistRepo) ListByBusiness(businessID string, activeOnly bool) ([]models.Stylist, error) {
	return nil, nil
}
func (f *fakeStylistRepo) Update(s *models.Stylist) error            { return nil }
func (f *fakeStylistRepo) Delete(businessID, stylistID string) error { return nil }
func (f *fakeStylistRepo) DeleteByBusiness(businessID string) error  { return nil }

type fakeCustomerRepo struct {
	byPhone map[string]*models.Customer
	created []*models.Customer
}

func (f *fakeCustomerRepo) Create(c *models.Customer) error {
	if f.byPhone == nil {
		f.byPhone = map[string]*models.Customer{}
	}
	f.byPhone[c.Phone] = c
	f.created = append(f.created, c)
	return nil
}
func (f *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) GetByPhone(phone string) (*models.Customer, error) {
	return f.byPhone[phone], nil
}

type fakeAppointmentStore struct {
	createErr error
	created   []*models.Appointment
}

func (f *fakeAppointmentStore) Create(a *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}
func (f *fakeAppointmentStore) GetByID(id string) (*models.Appointment, error) {
	return nil, appointmentRepo.ErrNotFound
}
func (f *fakeAppointmentStore) ListActiveForStylistDay(businessID, stylistID, date string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentStore) ListByBusiness(businessID string, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentStore) ListAll() ([]models.Appointment, error) { return nil, nil }
func (f *fakeAppointmentStore) UpdateStatus(businessID, appointmentID, status string) (*models.Appointment, error) {
	return nil, appointmentRepo.ErrNotFound
}
func (f *fakeAppointmentStore) DeleteByBusiness(businessID string) error { return nil }

type stubAvailability struct {
	slots       []string
	validateErr error
}

func (s *stubAvailability) ListAvailableSlots(businessID, stylistID, date string, duration int) ([]string, error) {
	return s.slots, nil
}
func (s *stubAvailability) ValidateBooking(businessID, stylistID, date, startTime string, duration int) error {
	return s.validateErr
}

func newTestBookingService(av availability.AvailabilityService) (*DefaultBookingService, *fakeCustomerRepo, *fakeAppointmentStore) {
	services := &fakeServiceRepo{services: map[string]*models.Service{
		"svc1": {ID: "svc1", BusinessID: "biz1", Name: "Haircut", Price: 35, Duration: 60, IsAvailable: true},
		"svc2": {ID: "svc2", BusinessID: "biz1", Name: "Retired perm", Duration: 90, IsAvailable: false},
	}}
	stylists := &fakeStylistRepo{stylists: map[string]*models.Stylist{
		"sty1": {ID: "sty1", BusinessID: "biz1", Name: "Dana", IsActive: true},
		"sty2": {ID: "sty2", BusinessID: "biz1", Name: "Lee", IsActive: false},
	}}
	customers := &fakeCustomerRepo{}
	appts := &fakeAppointmentStore{}

	svc := &DefaultBookingService{
		Availability: av,
		Services:     services,
		Stylists:     stylists,
		Customers:    customers,
		Appointments: appts,
	}
	return svc, customers, appts
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		BusinessID:    "biz1",
		CustomerName:  "Pat Jones",
		CustomerPhone: "555-0101",
		ServiceID:     "svc1",
		StylistID:     "sty1",
		Date:          "2026-09-07",
		StartTime:     "10:00",
	}
}

func TestBookAppointmentCreatesPendingWithDenormalizedFields(t *testing.T) {
	svc, customers, appts := newTestBookingService(&stubAvailability{})

	appt, err := svc.BookAppointment(validRequest())
	require.NoError(t, err)
	require.Len(t, appts.created, 1)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, 60, appt.Duration)
	assert.Equal(t, "Haircut", appt.ServiceName)
	assert.Equal(t, 35.0, appt.ServicePrice)
	assert.Equal(t, "Dana", appt.StylistName)
	assert.Equal(t, "Pat Jones", appt.CustomerName)
	assert.Equal(t, "555-0101", appt.CustomerPhone)

	// A walk-in customer record was created for the new phone number.
	require.Len(t, customers.created, 1)
	assert.Equal(t, customers.created[0].ID, appt.CustomerID)
}

func TestBookAppointmentReusesCustomerByPhone(t *testing.T) {
	svc, customers, _ := newTestBookingService(&stubAvailability{})
	existing := &models.Customer{ID: "cust1", Name: "Pat J.", Phone: "555-0101"}
	customers.byPhone = map[string]*models.Customer{"555-0101": existing}

	appt, err := svc.BookAppointment(validRequest())
	require.NoError(t, err)

	assert.Equal(t, "cust1", appt.CustomerID)
	assert.Equal(t, "Pat J.", appt.CustomerName)
	assert.Empty(t, customers.created)
}

func TestBookAppointmentValidationFailurePassesThrough(t *testing.T) {
	svc, _, appts := newTestBookingService(&stubAvailability{validateErr: availability.ErrSlotConflict})

	_, err := svc.BookAppointment(validRequest())
	assert.ErrorIs(t, err, availability.ErrSlotConflict)
	assert.Empty(t, appts.created)
}

func TestBookAppointmentDuplicateSlotInsertBecomesConflict(t *testing.T) {
	svc, _, appts := newTestBookingService(&stubAvailability{})
	appts.createErr = appointmentRepo.ErrDuplicateSlot

	_, err := svc.BookAppointment(validRequest())
	assert.ErrorIs(t, err, availability.ErrSlotConflict)
}

func TestBookAppointmentRejectsUnavailableService(t *testing.T) {
	svc, _, _ := newTestBookingService(&stubAvailability{})
	req := validRequest()
	req.ServiceID = "svc2"

	_, err := svc.BookAppointment(req)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestBookAppointmentRejectsInactiveStylist(t *testing.T) {
	svc, _, _ := newTestBookingService(&stubAvailability{})
	req := validRequest()
	req.StylistID = "sty2"

	_, err := svc.BookAppointment(req)
	assert.ErrorIs(t, err, ErrStylistUnavailable)
}

func TestBookAppointmentRejectsForeignBusinessService(t *testing.T) {
	svc, _, _ := newTestBookingService(&stubAvailability{})
	req := validRequest()
	req.BusinessID = "biz2"

	_, err := svc.BookAppointment(req)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestGetAvailableSlotsUsesServiceDuration(t *testing.T) {
	stub := &stubAvailability{slots: []string{"09:00", "09:30"}}
	svc, _, _ := newTestBookingService(stub)

	slots, err := svc.GetAvailableSlots("biz1", "sty1", "svc1", "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestGetAvailableSlotsRejectsUnknownService(t *testing.T) {
	svc, _, _ := newTestBookingService(&stubAvailability{})

	_, err := svc.GetAvailableSlots("biz1", "sty1", "missing", "2026-09-07")
	assert.ErrorIs(t, err, serviceRepo.ErrNotFound)
}
