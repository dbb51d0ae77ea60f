package models

import "time"

type Subscription struct {
	Plan      string    `json:"plan"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Active    bool      `json:"active"`
}

// ActiveAt reports whether the subscription is active at the given instant.
// A subscription is active strictly before its end date.
func (s Subscription) ActiveAt(now time.Time) bool {
	return now.Before(s.EndDate)
}

// Plan describes a purchasable subscription tier. MaxProfessionals of zero
// means unlimited.
type Plan struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            int      `json:"price"`
	Period           string   `json:"period"`
	MaxProfessionals int      `json:"maxProfessionals,omitempty"`
	Features         []string `json:"features"`
}

const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanAnnual  = "annual"
)

var Plans = []Plan{
	{
		ID:               PlanBasic,
		Name:             "Plano Básico",
		Price:            27,
		Period:           "mês",
		MaxProfessionals: 2,
		Features: []string{
			"Até 2 profissionais",
			"Agendamentos ilimitados",
			"Confirmação via WhatsApp",
			"Lembretes automáticos",
			"Suporte por email",
			"Painel de estatísticas básico",
		},
	},
	{
		ID:     PlanPremium,
		Name:   "Plano Premium",
		Price:  90,
		Period: "mês",
		Features: []string{
			"Profissionais ilimitados",
			"Agendamentos ilimitados",
			"Confirmação via WhatsApp",
			"Lembretes automáticos",
			"Suporte prioritário 24/7",
			"Painel avançado com relatórios",
			"Personalização completa",
		},
	},
	{
		ID:     PlanAnnual,
		Name:   "Plano Anual",
		Price:  900,
		Period: "ano",
		Features: []string{
			"Todos os recursos Premium",
			"Economia de R$ 180/ano",
			"Suporte VIP dedicado",
		},
	},
}

// PlanByID returns the plan with the given id, or nil.
func PlanByID(id string) *Plan {
	for i := range Plans {
		if Plans[i].ID == id {
			return &Plans[i]
		}
	}
	return nil
}
