package services

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/storage"
)

// Snapshot keys. Each collection is persisted independently as a whole; a
// crash between two writes can leave a dangling reference, which read paths
// tolerate by treating unresolved ids as not found.
const (
	keyAppointments  = "appointments"
	keyProfessionals = "professionals"
	keyServices      = "services"
	keySubscription  = "subscription"
)

// AppState is the in-memory application state, loaded once at startup and
// persisted collection-by-collection after every mutation. The mutex guards
// all access; services lock it in their exported methods only, so the
// unexported helpers below assume it is held.
type AppState struct {
	mu    sync.Mutex
	store storage.Store

	Appointments  []models.Appointment
	Professionals []models.Professional
	Services      []models.Service
	Subscription  *models.Subscription
}

func LoadState(store storage.Store) (*AppState, error) {
	s := &AppState{store: store}

	data, err := store.Get(keyAppointments)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &s.Appointments); err != nil {
			return nil, err
		}
	case !errors.Is(err, storage.ErrKeyNotFound):
		return nil, err
	}

	data, err = store.Get(keyServices)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &s.Services); err != nil {
			return nil, err
		}
	case errors.Is(err, storage.ErrKeyNotFound):
		s.Services = append([]models.Service(nil), models.DefaultServices...)
		if err := s.saveServices(); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	data, err = store.Get(keyProfessionals)
	switch {
	case err == nil:
		professionals, err := decodeProfessionals(data)
		if err != nil {
			return nil, err
		}
		s.Professionals = professionals
	case errors.Is(err, storage.ErrKeyNotFound):
		s.Professionals = []models.Professional{models.DefaultProfessional(s.Services)}
		if err := s.saveProfessionals(); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	data, err = store.Get(keySubscription)
	switch {
	case err == nil:
		var sub models.Subscription
		if err := json.Unmarshal(data, &sub); err != nil {
			return nil, err
		}
		// Expired subscriptions are treated as absent. The stored record is
		// left in place; only the loaded view is demoted.
		if sub.ActiveAt(time.Now()) {
			s.Subscription = &sub
		}
	case !errors.Is(err, storage.ErrKeyNotFound):
		return nil, err
	}

	return s, nil
}

// legacyProfessional defers decoding of the services field, which older
// snapshots stored as a list of bare service-id strings.
type legacyProfessional struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Type           models.ProfessionalType `json:"type"`
	AvailableHours []string                `json:"availableHours"`
	Services       json.RawMessage         `json:"services"`
}

func decodeProfessionals(data []byte) ([]models.Professional, error) {
	var raw []legacyProfessional
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]models.Professional, 0, len(raw))
	for _, rec := range raw {
		links, err := decodeServiceLinks(rec.Services)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Professional{
			ID:             rec.ID,
			Name:           rec.Name,
			Type:           rec.Type,
			AvailableHours: rec.AvailableHours,
			Services:       links,
		})
	}
	return out, nil
}

// decodeServiceLinks upgrades the legacy string-list shape to the link
// shape. Already-migrated data passes through unchanged, so running it again
// is a no-op.
func decodeServiceLinks(raw json.RawMessage) ([]models.ServiceLink, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var links []models.ServiceLink
	if err := json.Unmarshal(raw, &links); err == nil {
		return links, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	links = make([]models.ServiceLink, 0, len(ids))
	for _, id := range ids {
		links = append(links, models.ServiceLink{ServiceID: id})
	}
	return links, nil
}

func (s *AppState) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Put(key, data)
}

func (s *AppState) saveAppointments() error  { return s.save(keyAppointments, s.Appointments) }
func (s *AppState) saveProfessionals() error { return s.save(keyProfessionals, s.Professionals) }
func (s *AppState) saveServices() error      { return s.save(keyServices, s.Services) }
func (s *AppState) saveSubscription() error  { return s.save(keySubscription, s.Subscription) }

func (s *AppState) findService(id string) *models.Service {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}

func (s *AppState) findProfessional(id string) *models.Professional {
	for i := range s.Professionals {
		if s.Professionals[i].ID == id {
			return &s.Professionals[i]
		}
	}
	return nil
}

func (s *AppState) findAppointment(id string) *models.Appointment {
	for i := range s.Appointments {
		if s.Appointments[i].ID == id {
			return &s.Appointments[i]
		}
	}
	return nil
}
