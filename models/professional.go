package models

type ProfessionalType string

const (
	ProfessionalBarber      ProfessionalType = "barber"
	ProfessionalHairdresser ProfessionalType = "hairdresser"
)

// ValidProfessionalType reports whether t is one of the known types.
func ValidProfessionalType(t ProfessionalType) bool {
	return t == ProfessionalBarber || t == ProfessionalHairdresser
}

// ServiceLink ties a professional to a catalog service, optionally overriding
// the catalog duration and price for that professional only.
type ServiceLink struct {
	ServiceID      string `json:"serviceId"`
	CustomDuration *int   `json:"customDuration,omitempty"`
	CustomPrice    string `json:"customPrice,omitempty"`
}

type Professional struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Type           ProfessionalType `json:"type"`
	AvailableHours []string         `json:"availableHours"` // HH:MM, kept sorted
	Services       []ServiceLink    `json:"services"`
}

// OffersService reports whether the professional links the given service.
func (p Professional) OffersService(serviceID string) bool {
	for _, link := range p.Services {
		if link.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// ServiceInfo is a service as resolved for one professional, with any
// per-professional overrides applied.
type ServiceInfo struct {
	Name        string `json:"name"`
	Duration    int    `json:"duration"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}
