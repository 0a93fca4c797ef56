package factory

import (
	"time"

	"github.com/sudokumaster/sudokumaster/internal/dependencies/mocks"
	"github.com/sudokumaster/sudokumaster/internal/model"
	"github.com/sudokumaster/sudokumaster/internal/storage/memory"
	"github.com/sudokumaster/sudokumaster/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked
// dependencies. The mock random's no-op shuffle makes generation and
// carving fully deterministic.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, model.DefaultCarveTargets(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
