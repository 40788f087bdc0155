package cli

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Driver commands that block on timers are abandoned, not cancelled.
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("github.com/Geetanshgarg/future-gaze/internal/teatest.runWithTimeout.func1"),
	)
}
