package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"barberpro-backend/models"
	"barberpro-backend/services"
	"barberpro-backend/storage"
)

type nopNotifier struct{}

func (nopNotifier) Send(phone, message string) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := services.NewApp(storage.NewMemory(), nopNotifier{})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return SetupRouter(app)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestBookingFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// Booking without a subscription is gated.
	booking := map[string]string{
		"clientName":   "Ana",
		"clientPhone":  "11999998888",
		"service":      "corte-feminino",
		"date":         "2025-03-10",
		"time":         "14:00",
		"professional": "1",
	}
	if rr := doJSON(t, r, http.MethodPost, "/api/appointments", booking); rr.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d: %s", rr.Code, rr.Body.String())
	}

	if rr := doJSON(t, r, http.MethodPost, "/api/subscription", map[string]string{"planId": models.PlanPremium}); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr := doJSON(t, r, http.MethodPost, "/api/appointments", booking)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var apt models.Appointment
	if err := json.NewDecoder(rr.Body).Decode(&apt); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if apt.Status != models.AppointmentPending {
		t.Fatalf("expected pending, got %s", apt.Status)
	}

	// The same slot conflicts.
	if rr := doJSON(t, r, http.MethodPost, "/api/appointments", booking); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}

	if rr := doJSON(t, r, http.MethodPut, "/api/appointments/"+apt.ID+"/confirm", nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	if rr := doJSON(t, r, http.MethodPut, "/api/appointments/missing/cancel", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/api/availability?professionalId=1&date=2025-03-10", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Date  string   `json:"date"`
		Hours []string `json:"hours"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Hours) != len(models.DefaultHours) {
		t.Fatalf("expected the full default grid, got %d hours", len(resp.Hours))
	}
}

func TestDeleteLastProfessionalOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	if rr := doJSON(t, r, http.MethodDelete, "/api/professionals/1", nil); rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
}
