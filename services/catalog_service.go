package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"barberpro-backend/models"
)

// CatalogService manages the service catalog. Deleting a service cascades
// to every professional's service links.
type CatalogService struct {
	state *AppState
}

func NewCatalogService(state *AppState) *CatalogService {
	return &CatalogService{state: state}
}

// ServiceInput carries the editable fields of a catalog service.
type ServiceInput struct {
	Name        string
	Duration    int
	Price       string
	Description string
	Category    string
}

func validateServiceInput(input *ServiceInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: service name is required", models.ErrValidation)
	}
	if strings.TrimSpace(input.Price) == "" {
		return fmt.Errorf("%w: service price is required", models.ErrValidation)
	}
	if input.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of minutes", models.ErrValidation)
	}
	switch input.Category {
	case "":
		input.Category = models.CategoryGeneral
	case models.CategoryMale, models.CategoryFemale, models.CategoryGeneral:
	default:
		return fmt.Errorf("%w: unknown category %q", models.ErrValidation, input.Category)
	}
	return nil
}

func (s *CatalogService) Add(input ServiceInput) (*models.Service, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if err := validateServiceInput(&input); err != nil {
		return nil, err
	}

	service := models.Service{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Duration:    input.Duration,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
	}
	s.state.Services = append(s.state.Services, service)
	if err := s.state.saveServices(); err != nil {
		return nil, err
	}
	return &service, nil
}

// Edit replaces the editable fields of a service in place. The id is
// immutable.
func (s *CatalogService) Edit(id string, input ServiceInput) (*models.Service, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if err := validateServiceInput(&input); err != nil {
		return nil, err
	}

	service := s.state.findService(id)
	if service == nil {
		return nil, fmt.Errorf("%w: service %s", models.ErrNotFound, id)
	}
	service.Name = input.Name
	service.Duration = input.Duration
	service.Price = input.Price
	service.Description = input.Description
	service.Category = input.Category
	if err := s.state.saveServices(); err != nil {
		return nil, err
	}
	out := *service
	return &out, nil
}

// Delete removes a service and strips it from every professional's links.
// The catalog and professional snapshots are persisted independently.
func (s *CatalogService) Delete(id string) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.findService(id) == nil {
		return fmt.Errorf("%w: service %s", models.ErrNotFound, id)
	}
	if len(s.state.Services) == 1 {
		return fmt.Errorf("%w: at least one service must remain", models.ErrInvariant)
	}

	kept := s.state.Services[:0]
	for _, svc := range s.state.Services {
		if svc.ID != id {
			kept = append(kept, svc)
		}
	}
	s.state.Services = kept

	for i := range s.state.Professionals {
		p := &s.state.Professionals[i]
		links := p.Services[:0]
		for _, link := range p.Services {
			if link.ServiceID != id {
				links = append(links, link)
			}
		}
		p.Services = links
	}

	if err := s.state.saveServices(); err != nil {
		return err
	}
	return s.state.saveProfessionals()
}

// List returns a copy of the catalog.
func (s *CatalogService) List() []models.Service {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return append([]models.Service(nil), s.state.Services...)
}
