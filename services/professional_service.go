package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"barberpro-backend/models"
)

// ProfessionalService manages professionals, their working hours and service
// links. Edits go through a staging session so the stored record only changes
// when the session is saved.
type ProfessionalService struct {
	state *AppState
	subs  *SubscriptionService

	editingID   string
	stagedHours []string
	stagedLinks []models.ServiceLink
}

func NewProfessionalService(state *AppState, subs *SubscriptionService) *ProfessionalService {
	return &ProfessionalService{state: state, subs: subs}
}

// Add creates a professional linked to every current catalog service with
// the default working hours. The subscription gate decides whether another
// professional is allowed.
func (s *ProfessionalService) Add(name string, ptype models.ProfessionalType) (*models.Professional, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if !s.subs.canAdd(len(s.state.Professionals)) {
		return nil, fmt.Errorf("%w: upgrade your plan to add more professionals", models.ErrCapability)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: professional name is required", models.ErrValidation)
	}
	if !models.ValidProfessionalType(ptype) {
		return nil, fmt.Errorf("%w: unknown professional type %q", models.ErrValidation, ptype)
	}

	links := make([]models.ServiceLink, 0, len(s.state.Services))
	for _, svc := range s.state.Services {
		links = append(links, models.ServiceLink{ServiceID: svc.ID})
	}
	professional := models.Professional{
		ID:             uuid.NewString(),
		Name:           name,
		Type:           ptype,
		AvailableHours: append([]string(nil), models.DefaultHours...),
		Services:       links,
	}
	s.state.Professionals = append(s.state.Professionals, professional)
	if err := s.state.saveProfessionals(); err != nil {
		return nil, err
	}
	return &professional, nil
}

// Delete removes a professional. The last remaining professional cannot be
// deleted.
func (s *ProfessionalService) Delete(id string) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.findProfessional(id) == nil {
		return fmt.Errorf("%w: professional %s", models.ErrNotFound, id)
	}
	if len(s.state.Professionals) == 1 {
		return fmt.Errorf("%w: at least one professional must remain", models.ErrInvariant)
	}

	kept := s.state.Professionals[:0]
	for _, p := range s.state.Professionals {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.state.Professionals = kept
	return s.state.saveProfessionals()
}

// BeginEdit snapshots the professional's hours and service links into the
// staging area and returns copies for the caller to edit. The stored record
// is not touched.
func (s *ProfessionalService) BeginEdit(id string) ([]string, []models.ServiceLink, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	professional := s.state.findProfessional(id)
	if professional == nil {
		return nil, nil, fmt.Errorf("%w: professional %s", models.ErrNotFound, id)
	}
	s.editingID = id
	s.stagedHours = append([]string(nil), professional.AvailableHours...)
	s.stagedLinks = append([]models.ServiceLink(nil), professional.Services...)

	hours := append([]string(nil), s.stagedHours...)
	links := append([]models.ServiceLink(nil), s.stagedLinks...)
	return hours, links, nil
}

// SaveEdit atomically replaces the professional's hours and service links
// and discards the staging area. Hours are deduplicated and kept sorted.
func (s *ProfessionalService) SaveEdit(id string, hours []string, links []models.ServiceLink) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if len(hours) == 0 {
		return fmt.Errorf("%w: select at least one working hour", models.ErrValidation)
	}
	if len(links) == 0 {
		return fmt.Errorf("%w: select at least one service", models.ErrValidation)
	}
	professional := s.state.findProfessional(id)
	if professional == nil {
		return fmt.Errorf("%w: professional %s", models.ErrNotFound, id)
	}

	seen := make(map[string]bool, len(hours))
	unique := make([]string, 0, len(hours))
	for _, h := range hours {
		if !seen[h] {
			seen[h] = true
			unique = append(unique, h)
		}
	}
	sort.Strings(unique)

	professional.AvailableHours = unique
	professional.Services = append([]models.ServiceLink(nil), links...)

	s.clearStaging()
	return s.state.saveProfessionals()
}

// CancelEdit discards the staging area without mutating anything.
func (s *ProfessionalService) CancelEdit() {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.clearStaging()
}

func (s *ProfessionalService) clearStaging() {
	s.editingID = ""
	s.stagedHours = nil
	s.stagedLinks = nil
}

// Resolve returns the service as offered by the professional, applying any
// duration or price override. It returns nil when the professional or
// service does not exist, or the professional does not offer the service.
func (s *ProfessionalService) Resolve(professionalID, serviceID string) *models.ServiceInfo {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.resolve(professionalID, serviceID)
}

func (s *ProfessionalService) resolve(professionalID, serviceID string) *models.ServiceInfo {
	professional := s.state.findProfessional(professionalID)
	service := s.state.findService(serviceID)
	if professional == nil || service == nil {
		return nil
	}
	for _, link := range professional.Services {
		if link.ServiceID != serviceID {
			continue
		}
		info := models.ServiceInfo{
			Name:        service.Name,
			Duration:    service.Duration,
			Price:       service.Price,
			Description: service.Description,
		}
		if link.CustomDuration != nil {
			info.Duration = *link.CustomDuration
		}
		if link.CustomPrice != "" {
			info.Price = link.CustomPrice
		}
		return &info
	}
	return nil
}

// OfferedServices lists the catalog services the professional can offer for
// booking: linked services whose category matches the professional's type.
func (s *ProfessionalService) OfferedServices(professionalID string) ([]models.Service, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	professional := s.state.findProfessional(professionalID)
	if professional == nil {
		return nil, fmt.Errorf("%w: professional %s", models.ErrNotFound, professionalID)
	}
	var out []models.Service
	for _, svc := range s.state.Services {
		if svc.AvailableToType(professional.Type) && professional.OffersService(svc.ID) {
			out = append(out, svc)
		}
	}
	return out, nil
}

// List returns a copy of all professionals.
func (s *ProfessionalService) List() []models.Professional {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return append([]models.Professional(nil), s.state.Professionals...)
}
