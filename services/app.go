package services

import "barberpro-backend/storage"

// App wires the application state and the domain services together.
type App struct {
	State         *AppState
	Subscriptions *SubscriptionService
	Catalog       *CatalogService
	Professionals *ProfessionalService
	Bookings      *BookingService
	Reminders     *ReminderService
}

func NewApp(store storage.Store, notifier Notifier) (*App, error) {
	state, err := LoadState(store)
	if err != nil {
		return nil, err
	}
	subs := NewSubscriptionService(state)
	profs := NewProfessionalService(state, subs)
	return &App{
		State:         state,
		Subscriptions: subs,
		Catalog:       NewCatalogService(state),
		Professionals: profs,
		Bookings:      NewBookingService(state, subs, profs, notifier),
		Reminders:     NewReminderService(state, profs, notifier),
	}, nil
}
