package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salonpro/models"
	"salonpro/services/availability"
	"salonpro/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	slots     []string
	slotsErr  error
	appt      *models.Appointment
	bookErr   error
	bookCalls int
}

func (s *stubBookingService) GetAvailableSlots(businessID, stylistID, serviceID, date string) ([]string, error) {
	return s.slots, s.slotsErr
}

func (s *stubBookingService) BookAppointment(req models.BookingRequest) (*models.Appointment, error) {
	s.bookCalls++
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return s.appt, nil
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, zap.NewNop())
	r.GET("/api/customer/available-slots/:businessId", h.AvailableSlotsHandler)
	r.POST("/api/customer/book-appointment", h.BookAppointmentHandler)
	return r
}

func bookingBody(date, startTime string) string {
	body, _ := json.Marshal(models.BookingRequest{
		BusinessID:    "biz1",
		CustomerName:  "Pat Jones",
		CustomerPhone: "555-0101",
		ServiceID:     "svc1",
		StylistID:     "sty1",
		Date:          date,
		StartTime:     startTime,
	})
	return string(body)
}

func TestAvailableSlotsReturnsSlots(t *testing.T) {
	stub := &stubBookingService{slots: []string{"09:00", "09:30"}}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/customer/available-slots/biz1?date=2026-09-07&stylistId=sty1&serviceId=svc1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var slots []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestAvailableSlotsRequiresQueryParams(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/customer/available-slots/biz1?date=2026-09-07", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailableSlotsRejectsMalformedDate(t *testing.T) {
	stub := &stubBookingService{slotsErr: assert.AnError}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/customer/available-slots/biz1?date=banana&stylistId=sty1&serviceId=svc1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestBookAppointmentRejectsMalformedDate(t *testing.T) {
	stub := &stubBookingService{}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customer/book-appointment",
		strings.NewReader(bookingBody("banana", "10:00")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.bookCalls)
}

func TestBookAppointmentRejectsMalformedTime(t *testing.T) {
	stub := &stubBookingService{}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customer/book-appointment",
		strings.NewReader(bookingBody("2026-09-07", "banana")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "HH:MM")
	assert.Zero(t, stub.bookCalls)
}

func TestBookAppointmentSlotConflictMapsTo409(t *testing.T) {
	stub := &stubBookingService{bookErr: availability.ErrSlotConflict}
	r := newBookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customer/book-appointment",
		strings.NewReader(bookingBody("2026-09-07", "10:00")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeSlotConflict, resp.Code)
}
