package services

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"barberpro-backend/models"
	"barberpro-backend/utils"
)

// ReminderService sends clients a WhatsApp reminder the day before their
// appointment.
type ReminderService struct {
	state    *AppState
	profs    *ProfessionalService
	notifier Notifier
	cron     *cron.Cron
}

func NewReminderService(state *AppState, profs *ProfessionalService, notifier Notifier) *ReminderService {
	return &ReminderService{state: state, profs: profs, notifier: notifier}
}

// StartScheduler runs SendDailyReminders every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()
	c.AddFunc("0 9 * * *", s.SendDailyReminders)
	c.Start()
	s.cron = c
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDailyReminders notifies every client with a non-cancelled appointment
// scheduled for tomorrow.
func (s *ReminderService) SendDailyReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)

	type send struct {
		phone   string
		message string
	}
	var sends []send

	s.state.mu.Lock()
	for _, apt := range s.state.Appointments {
		if apt.Date != tomorrow || apt.Status == models.AppointmentCancelled {
			continue
		}
		info := s.profs.resolve(apt.ProfessionalID, apt.ServiceID)
		professional := s.state.findProfessional(apt.ProfessionalID)
		if info == nil || professional == nil {
			continue
		}
		sends = append(sends, send{
			phone:   apt.ClientPhone,
			message: utils.ReminderMessage(apt.ClientName, apt.Date, apt.Time, info.Name, professional.Name),
		})
	}
	s.state.mu.Unlock()

	for _, item := range sends {
		if err := s.notifier.Send(item.phone, item.message); err != nil {
			log.Printf("failed to send reminder to %s: %v", item.phone, err)
		}
	}
	log.Printf("daily reminder processing completed, %d reminders", len(sends))
}
