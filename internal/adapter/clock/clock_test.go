package clock

import (
	"testing"
	"time"
)

func TestSystem_Now(t *testing.T) {
	t.Parallel()

	now := NewSystem().Now()

	if now.Location() != time.UTC {
		t.Errorf("Location = %v, want UTC", now.Location())
	}
	if truncated := now.Truncate(time.Microsecond); !now.Equal(truncated) {
		t.Errorf("Now() = %v carries sub-microsecond precision", now)
	}
	if d := time.Since(now); d < 0 || d > time.Minute {
		t.Errorf("Now() = %v is not close to the wall clock", now)
	}
}
