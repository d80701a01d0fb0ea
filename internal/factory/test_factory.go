package factory

import (
	"time"

	"github.com/ostapdev/teamwheel/internal/dependencies/mocks"
	"github.com/ostapdev/teamwheel/internal/notify"
	"github.com/ostapdev/teamwheel/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	// Notifications captures everything dispatched during the test
	Notifications *notify.Capture
}

// NewTestApp creates an App configured for testing with mocked
// dependencies, in-memory stores and captured notifications
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	capture := notify.NewCapture()

	app := newWithDependencies(Config{
		Storage:   memory.New(),
		Notifier:  capture,
		SecretKey: "test-secret",
	}, mockClock, mockRandom)

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		Notifications: capture,
	}
}
