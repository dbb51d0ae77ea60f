package models

// Service categories. The category decides which professional type may offer
// a service, replacing the old hardcoded service-id lists.
const (
	CategoryMale    = "masculino"
	CategoryFemale  = "feminino"
	CategoryGeneral = "geral"
)

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Duration    int    `json:"duration"` // in minutes
	Price       string `json:"price"`    // formatted, e.g. "R$ 35,00"
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// AvailableToType reports whether a professional of the given type may offer
// this service. Records persisted before the category field existed have an
// empty category and are treated as general.
func (s Service) AvailableToType(t ProfessionalType) bool {
	switch s.Category {
	case CategoryMale:
		return t == ProfessionalBarber
	case CategoryFemale:
		return t == ProfessionalHairdresser
	default:
		return true
	}
}
