package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestLimiter(maxAttempts int, window time.Duration) (*Limiter, *time.Time) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	limiter := New(Config{MaxAttempts: maxAttempts, Window: window},
		WithClock(func() time.Time { return now }),
	)
	return limiter, &now
}

func TestAllowsUpToMaxAttempts(t *testing.T) {
	limiter, _ := newTestLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		decision, err := limiter.CheckAndRecord(ctx, "editor@example.com")
		if err != nil {
			t.Fatalf("attempt %d error = %v", i, err)
		}
		if !decision.Allowed {
			t.Fatalf("attempt %d denied", i)
		}
		if decision.Remaining != 3-i-1 {
			t.Errorf("attempt %d remaining = %d", i, decision.Remaining)
		}
	}

	decision, err := limiter.CheckAndRecord(ctx, "editor@example.com")
	if err != nil {
		t.Fatalf("locked attempt error = %v", err)
	}
	if decision.Allowed {
		t.Fatal("fourth attempt should be denied")
	}
	if decision.RetryAfter != time.Minute {
		t.Errorf("retryAfter = %v, want %v", decision.RetryAfter, time.Minute)
	}
}

func TestWindowExpiryUnlocks(t *testing.T) {
	limiter, now := newTestLimiter(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := limiter.CheckAndRecord(ctx, "editor@example.com"); err != nil {
			t.Fatalf("attempt %d error = %v", i, err)
		}
	}
	if decision, _ := limiter.CheckAndRecord(ctx, "editor@example.com"); decision.Allowed {
		t.Fatal("should be locked inside the window")
	}

	*now = now.Add(61 * time.Second)
	decision, err := limiter.CheckAndRecord(ctx, "editor@example.com")
	if err != nil {
		t.Fatalf("post-window attempt error = %v", err)
	}
	if !decision.Allowed {
		t.Fatal("window expiry should unlock the key")
	}
}

func TestDeniedAttemptsDoNotExtendLockout(t *testing.T) {
	limiter, now := newTestLimiter(1, time.Minute)
	ctx := context.Background()

	if _, err := limiter.CheckAndRecord(ctx, "editor@example.com"); err != nil {
		t.Fatalf("first attempt error = %v", err)
	}
	*now = now.Add(30 * time.Second)
	if decision, _ := limiter.CheckAndRecord(ctx, "editor@example.com"); decision.Allowed {
		t.Fatal("should be locked")
	}

	*now = now.Add(31 * time.Second)
	decision, err := limiter.CheckAndRecord(ctx, "editor@example.com")
	if err != nil {
		t.Fatalf("attempt error = %v", err)
	}
	if !decision.Allowed {
		t.Fatal("denied attempts must not restart the window")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)
	ctx := context.Background()

	if _, err := limiter.CheckAndRecord(ctx, "first@example.com"); err != nil {
		t.Fatalf("error = %v", err)
	}
	decision, err := limiter.CheckAndRecord(ctx, "second@example.com")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !decision.Allowed {
		t.Fatal("second key must not inherit the first key's attempts")
	}
}

func TestResetClearsAttempts(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)
	ctx := context.Background()

	if _, err := limiter.CheckAndRecord(ctx, "editor@example.com"); err != nil {
		t.Fatalf("error = %v", err)
	}
	if err := limiter.Reset(ctx, "Editor@Example.com"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	decision, err := limiter.CheckAndRecord(ctx, "editor@example.com")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !decision.Allowed {
		t.Fatal("reset should clear the key")
	}
}

func TestEmptyKeyRejected(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)

	if _, err := limiter.CheckAndRecord(context.Background(), "  "); !errors.Is(err, ErrKeyRequired) {
		t.Errorf("error = %v, want ErrKeyRequired", err)
	}
}
