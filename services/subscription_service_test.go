package services

import (
	"errors"
	"testing"
	"time"

	"barberpro-backend/models"
)

func TestSelectPlanEndDates(t *testing.T) {
	app, _ := newTestApp(t)
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	app.Subscriptions.now = func() time.Time { return t0 }

	sub, err := app.Subscriptions.SelectPlan(models.PlanBasic)
	if err != nil {
		t.Fatalf("SelectPlan: %v", err)
	}
	if !sub.EndDate.Equal(t0.AddDate(0, 1, 0)) {
		t.Fatalf("monthly plan should run one month, got %v", sub.EndDate)
	}

	sub, err = app.Subscriptions.SelectPlan(models.PlanAnnual)
	if err != nil {
		t.Fatalf("SelectPlan: %v", err)
	}
	if !sub.EndDate.Equal(t0.AddDate(1, 0, 0)) {
		t.Fatalf("annual plan should run one year, got %v", sub.EndDate)
	}
	if sub.Plan != models.PlanAnnual {
		t.Fatalf("selecting a plan must fully replace the previous one, got %s", sub.Plan)
	}
}

func TestSelectPlanUnknown(t *testing.T) {
	app, _ := newTestApp(t)

	if _, err := app.Subscriptions.SelectPlan("gold"); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestIsActiveExpiresLazily(t *testing.T) {
	app, _ := newTestApp(t)
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := t0
	app.Subscriptions.now = func() time.Time { return now }

	subscribe(t, app, models.PlanBasic)
	if !app.Subscriptions.IsActive() {
		t.Fatalf("fresh subscription should be active")
	}

	now = t0.AddDate(0, 2, 0)
	if app.Subscriptions.IsActive() {
		t.Fatalf("expired subscription should read as inactive")
	}
	if app.Subscriptions.Current() != nil {
		t.Fatalf("expired subscription should not be exposed")
	}
	if app.Subscriptions.CanAddProfessional(0) {
		t.Fatalf("no capability without an active subscription")
	}
}

func TestCanAddProfessionalTiers(t *testing.T) {
	app, _ := newTestApp(t)

	if app.Subscriptions.CanAddProfessional(0) {
		t.Fatalf("no subscription: expected false")
	}

	subscribe(t, app, models.PlanBasic)
	if !app.Subscriptions.CanAddProfessional(1) {
		t.Fatalf("basic at count 1: expected true")
	}
	if app.Subscriptions.CanAddProfessional(2) {
		t.Fatalf("basic at count 2: expected false")
	}

	for _, plan := range []string{models.PlanPremium, models.PlanAnnual} {
		subscribe(t, app, plan)
		if !app.Subscriptions.CanAddProfessional(50) {
			t.Fatalf("%s should be unlimited", plan)
		}
	}
}
