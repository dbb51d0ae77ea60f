package services

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/storage"
)

func TestLoadSeedsDefaults(t *testing.T) {
	store := storage.NewMemory()
	state, err := LoadState(store)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if len(state.Services) != len(models.DefaultServices) {
		t.Fatalf("expected starter catalog, got %d services", len(state.Services))
	}
	if len(state.Professionals) != 1 {
		t.Fatalf("expected the default professional, got %d", len(state.Professionals))
	}
	p := state.Professionals[0]
	if p.Name != "Profissional Principal" || p.Type != models.ProfessionalBarber {
		t.Fatalf("unexpected default professional: %+v", p)
	}
	if len(p.Services) != len(models.DefaultServices) {
		t.Fatalf("default professional should link every service")
	}
	if state.Subscription != nil {
		t.Fatalf("no subscription should be seeded")
	}

	// Seeded collections are persisted immediately.
	if _, err := store.Get(keyServices); err != nil {
		t.Fatalf("services snapshot not persisted: %v", err)
	}
	if _, err := store.Get(keyProfessionals); err != nil {
		t.Fatalf("professionals snapshot not persisted: %v", err)
	}
}

func TestLoadMigratesLegacyServiceLists(t *testing.T) {
	store := storage.NewMemory()
	legacy := []byte(`[{"id":"1","name":"Profissional Principal","type":"barber",` +
		`"availableHours":["08:00","09:00"],"services":["corte-masculino","barba"]}]`)
	if err := store.Put(keyProfessionals, legacy); err != nil {
		t.Fatalf("Put: %v", err)
	}

	state, err := LoadState(store)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	want := []models.ServiceLink{{ServiceID: "corte-masculino"}, {ServiceID: "barba"}}
	if !reflect.DeepEqual(state.Professionals[0].Services, want) {
		t.Fatalf("legacy list not upgraded: %+v", state.Professionals[0].Services)
	}

	// The migrated shape decodes unchanged, so a second load is a no-op.
	data, err := json.Marshal(state.Professionals)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	again, err := decodeProfessionals(data)
	if err != nil {
		t.Fatalf("decodeProfessionals: %v", err)
	}
	if !reflect.DeepEqual(again, state.Professionals) {
		t.Fatalf("migration is not idempotent")
	}
}

func TestLoadKeepsMigratedOverrides(t *testing.T) {
	store := storage.NewMemory()
	stored := []byte(`[{"id":"1","name":"P","type":"barber","availableHours":["08:00"],` +
		`"services":[{"serviceId":"barba","customDuration":15,"customPrice":"R$ 20,00"}]}]`)
	if err := store.Put(keyProfessionals, stored); err != nil {
		t.Fatalf("Put: %v", err)
	}

	state, err := LoadState(store)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	link := state.Professionals[0].Services[0]
	if link.CustomDuration == nil || *link.CustomDuration != 15 || link.CustomPrice != "R$ 20,00" {
		t.Fatalf("overrides lost on load: %+v", link)
	}
}

func TestLoadDemotesExpiredSubscription(t *testing.T) {
	store := storage.NewMemory()
	expired := models.Subscription{
		Plan:      models.PlanBasic,
		StartDate: time.Now().AddDate(0, -2, 0),
		EndDate:   time.Now().AddDate(0, -1, 0),
		Active:    true,
	}
	data, err := json.Marshal(expired)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := store.Put(keySubscription, data); err != nil {
		t.Fatalf("Put: %v", err)
	}

	state, err := LoadState(store)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.Subscription != nil {
		t.Fatalf("expired subscription should load as absent")
	}
	// The stored record is not deleted, only the loaded view is demoted.
	if _, err := store.Get(keySubscription); err != nil {
		t.Fatalf("stored record should survive: %v", err)
	}
}

func TestLoadKeepsActiveSubscription(t *testing.T) {
	store := storage.NewMemory()
	active := models.Subscription{
		Plan:      models.PlanPremium,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
		Active:    true,
	}
	data, err := json.Marshal(active)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := store.Put(keySubscription, data); err != nil {
		t.Fatalf("Put: %v", err)
	}

	state, err := LoadState(store)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if state.Subscription == nil || state.Subscription.Plan != models.PlanPremium {
		t.Fatalf("active subscription should load: %+v", state.Subscription)
	}
}
