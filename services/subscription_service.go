package services

import (
	"fmt"
	"time"

	"barberpro-backend/models"
)

// SubscriptionService holds the current plan and answers capability queries.
type SubscriptionService struct {
	state *AppState
	now   func() time.Time
}

func NewSubscriptionService(state *AppState) *SubscriptionService {
	return &SubscriptionService{state: state, now: time.Now}
}

// SelectPlan activates the given plan, fully replacing any existing
// subscription. Monthly plans run for one month, the annual plan for one
// year.
func (s *SubscriptionService) SelectPlan(planID string) (*models.Subscription, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	plan := models.PlanByID(planID)
	if plan == nil {
		return nil, fmt.Errorf("%w: unknown plan %q", models.ErrValidation, planID)
	}

	start := s.now()
	end := start.AddDate(0, 1, 0)
	if planID == models.PlanAnnual {
		end = start.AddDate(1, 0, 0)
	}

	sub := models.Subscription{
		Plan:      planID,
		StartDate: start,
		EndDate:   end,
		Active:    true,
	}
	s.state.Subscription = &sub
	if err := s.state.saveSubscription(); err != nil {
		return nil, err
	}

	out := sub
	return &out, nil
}

// IsActive reports whether a subscription exists and has not yet expired.
func (s *SubscriptionService) IsActive() bool {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.isActive()
}

func (s *SubscriptionService) isActive() bool {
	return s.state.Subscription != nil && s.state.Subscription.ActiveAt(s.now())
}

// CanAddProfessional reports whether the current plan allows one more
// professional on top of currentCount.
func (s *SubscriptionService) CanAddProfessional(currentCount int) bool {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.canAdd(currentCount)
}

func (s *SubscriptionService) canAdd(currentCount int) bool {
	if !s.isActive() {
		return false
	}
	plan := models.PlanByID(s.state.Subscription.Plan)
	if plan == nil {
		return false
	}
	if plan.MaxProfessionals > 0 {
		return currentCount < plan.MaxProfessionals
	}
	return true
}

// Current returns a copy of the active subscription, or nil if there is none
// or it has expired.
func (s *SubscriptionService) Current() *models.Subscription {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if !s.isActive() {
		return nil
	}
	out := *s.state.Subscription
	return &out
}
