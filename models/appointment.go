package models

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked slot. Appointments are never deleted; cancelled
// ones stay stored and are filtered out of availability checks. The json
// tags match the persisted snapshot layout, which still uses the old
// "service"/"professional" key names.
type Appointment struct {
	ID             string            `json:"id"`
	ClientName     string            `json:"clientName"`
	ClientPhone    string            `json:"clientPhone"`
	ServiceID      string            `json:"service"`
	Date           string            `json:"date"` // YYYY-MM-DD
	Time           string            `json:"time"` // HH:MM
	ProfessionalID string            `json:"professional"`
	Status         AppointmentStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
}
