package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"barberpro-backend/models"
	"barberpro-backend/utils"
)

// BookingService creates appointments and drives their status transitions:
// pending, then confirmed or cancelled, both terminal.
type BookingService struct {
	state    *AppState
	subs     *SubscriptionService
	profs    *ProfessionalService
	notifier Notifier
}

func NewBookingService(state *AppState, subs *SubscriptionService, profs *ProfessionalService, notifier Notifier) *BookingService {
	return &BookingService{state: state, subs: subs, profs: profs, notifier: notifier}
}

// BookingInput carries the fields of a booking request.
type BookingInput struct {
	ClientName     string
	ClientPhone    string
	ServiceID      string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	ProfessionalID string
}

// IsTimeAvailable reports whether no non-cancelled appointment occupies the
// (date, time, professional) slot.
func (s *BookingService) IsTimeAvailable(date, tm, professionalID string) bool {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.isTimeAvailable(date, tm, professionalID)
}

func (s *BookingService) isTimeAvailable(date, tm, professionalID string) bool {
	for _, apt := range s.state.Appointments {
		if apt.Date == date && apt.Time == tm && apt.ProfessionalID == professionalID &&
			apt.Status != models.AppointmentCancelled {
			return false
		}
	}
	return true
}

// AvailableHours filters the professional's working hours down to the slots
// still free on the given date. An empty or unknown professional id yields an
// empty list.
func (s *BookingService) AvailableHours(professionalID, date string) []string {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	hours := []string{}
	if professionalID == "" {
		return hours
	}
	professional := s.state.findProfessional(professionalID)
	if professional == nil {
		return hours
	}
	for _, hour := range professional.AvailableHours {
		if s.isTimeAvailable(date, hour, professionalID) {
			hours = append(hours, hour)
		}
	}
	return hours
}

// Book creates a pending appointment for the requested slot.
func (s *BookingService) Book(input BookingInput) (*models.Appointment, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if !s.subs.isActive() {
		return nil, fmt.Errorf("%w: subscribe to a plan before booking", models.ErrSubscriptionRequired)
	}

	fields := map[string]string{
		"clientName":   input.ClientName,
		"clientPhone":  input.ClientPhone,
		"service":      input.ServiceID,
		"date":         input.Date,
		"time":         input.Time,
		"professional": input.ProfessionalID,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s is required", models.ErrValidation, name)
		}
	}

	if !s.isTimeAvailable(input.Date, input.Time, input.ProfessionalID) {
		return nil, fmt.Errorf("%w: %s %s is already booked for this professional",
			models.ErrSlotTaken, input.Date, input.Time)
	}

	appointment := models.Appointment{
		ID:             uuid.NewString(),
		ClientName:     input.ClientName,
		ClientPhone:    input.ClientPhone,
		ServiceID:      input.ServiceID,
		Date:           input.Date,
		Time:           input.Time,
		ProfessionalID: input.ProfessionalID,
		Status:         models.AppointmentPending,
		CreatedAt:      time.Now(),
	}
	s.state.Appointments = append(s.state.Appointments, appointment)
	if err := s.state.saveAppointments(); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Confirm transitions a pending appointment to confirmed and sends the
// client a WhatsApp confirmation. The send is fire-and-forget: a failure is
// logged and never rolls back the status change. Confirming an already
// confirmed appointment is a no-op.
func (s *BookingService) Confirm(id string) error {
	phone, message, err := s.confirm(id)
	if err != nil || message == "" {
		return err
	}
	if err := s.notifier.Send(phone, message); err != nil {
		log.Printf("confirmation for appointment %s not delivered: %v", id, err)
	}
	return nil
}

func (s *BookingService) confirm(id string) (phone, message string, err error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	apt := s.state.findAppointment(id)
	if apt == nil {
		return "", "", fmt.Errorf("%w: appointment %s", models.ErrNotFound, id)
	}
	switch apt.Status {
	case models.AppointmentConfirmed:
		return "", "", nil
	case models.AppointmentCancelled:
		return "", "", fmt.Errorf("%w: cancelled appointments cannot be confirmed", models.ErrInvariant)
	}

	apt.Status = models.AppointmentConfirmed
	if err := s.state.saveAppointments(); err != nil {
		return "", "", err
	}

	info := s.profs.resolve(apt.ProfessionalID, apt.ServiceID)
	professional := s.state.findProfessional(apt.ProfessionalID)
	if info == nil || professional == nil {
		// Dangling reference; the confirmation stands, only the message is
		// skipped.
		log.Printf("appointment %s references missing data, skipping confirmation message", id)
		return "", "", nil
	}

	message = utils.ConfirmationMessage(
		apt.ClientName, apt.Date, apt.Time,
		info.Name, professional.Name, info.Duration, info.Price,
	)
	return apt.ClientPhone, message, nil
}

// Cancel transitions an appointment to cancelled. Cancelling an already
// cancelled appointment is a no-op.
func (s *BookingService) Cancel(id string) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	apt := s.state.findAppointment(id)
	if apt == nil {
		return fmt.Errorf("%w: appointment %s", models.ErrNotFound, id)
	}
	if apt.Status == models.AppointmentCancelled {
		return nil
	}
	apt.Status = models.AppointmentCancelled
	return s.state.saveAppointments()
}

// List returns a copy of all appointments, cancelled ones included.
func (s *BookingService) List() []models.Appointment {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return append([]models.Appointment(nil), s.state.Appointments...)
}
