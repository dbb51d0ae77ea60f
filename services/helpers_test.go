package services

import (
	"errors"
	"sync"
	"testing"

	"barberpro-backend/storage"
)

type sentMessage struct {
	phone   string
	message string
}

type fakeNotifier struct {
	mu    sync.Mutex
	sends []sentMessage
	fail  bool
}

func (f *fakeNotifier) Send(phone, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, sentMessage{phone: phone, message: message})
	if f.fail {
		return errors.New("send failed")
	}
	return nil
}

func (f *fakeNotifier) sent() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sends...)
}

// newTestApp loads a fresh application on an empty memory store, which seeds
// the starter catalog and the default professional.
func newTestApp(t *testing.T) (*App, *fakeNotifier) {
	t.Helper()
	notifier := &fakeNotifier{}
	app, err := NewApp(storage.NewMemory(), notifier)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app, notifier
}

// subscribe activates a plan so gated operations pass.
func subscribe(t *testing.T, app *App, planID string) {
	t.Helper()
	if _, err := app.Subscriptions.SelectPlan(planID); err != nil {
		t.Fatalf("SelectPlan(%s): %v", planID, err)
	}
}
