package models

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	BusinessID    string `json:"businessId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
}
