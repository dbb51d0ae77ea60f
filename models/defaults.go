package models

// Starter catalog seeded when no services snapshot exists yet.
var DefaultServices = []Service{
	{ID: "corte-masculino", Name: "Corte Masculino", Duration: 30, Price: "R$ 35,00", Description: "Corte tradicional ou moderno", Category: CategoryMale},
	{ID: "barba", Name: "Barba", Duration: 20, Price: "R$ 25,00", Description: "Aparar e modelar barba", Category: CategoryMale},
	{ID: "combo", Name: "Corte + Barba", Duration: 50, Price: "R$ 55,00", Description: "Combo completo", Category: CategoryMale},
	{ID: "corte-feminino", Name: "Corte Feminino", Duration: 45, Price: "R$ 60,00", Description: "Corte e finalização", Category: CategoryFemale},
	{ID: "escova", Name: "Escova", Duration: 40, Price: "R$ 50,00", Description: "Escova modeladora", Category: CategoryFemale},
	{ID: "hidratacao", Name: "Hidratação", Duration: 60, Price: "R$ 80,00", Description: "Tratamento capilar", Category: CategoryFemale},
}

// DefaultHours is the working-hour grid assigned to new professionals.
// It leaves the 12:00-13:30 lunch window out.
var DefaultHours = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	"18:00", "18:30", "19:00", "19:30", "20:00",
}

// AllHours is every selectable half-hour slot of the working day.
var AllHours = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00",
}

// DefaultProfessional is seeded when no professionals snapshot exists. Every
// catalog service is linked without overrides.
func DefaultProfessional(services []Service) Professional {
	links := make([]ServiceLink, 0, len(services))
	for _, s := range services {
		links = append(links, ServiceLink{ServiceID: s.ID})
	}
	return Professional{
		ID:             "1",
		Name:           "Profissional Principal",
		Type:           ProfessionalBarber,
		AvailableHours: append([]string(nil), DefaultHours...),
		Services:       links,
	}
}
