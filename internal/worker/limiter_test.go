package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different provider has its own bucket
	if err := limiter.Wait(ctx, "anthropic"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

// tryWait reports whether a call for key gets a token within a few milliseconds
func tryWait(l *Limiter, key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	return l.Wait(ctx, key) == nil
}

func TestLimiter_RateLimit(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// Burst of 1 is consumed
	if tryWait(limiter, "openai") {
		t.Errorf("expected wait to fail (exhausted tokens)")
	}

	if !tryWait(limiter, "ollama") {
		t.Errorf("expected wait to succeed for other provider")
	}
}

func TestLimiter_WaitHonoursCancel(t *testing.T) {
	limiter := NewLimiter(0.1, 1) // one call every 10s
	if !tryWait(limiter, "openai") {
		t.Fatal("expected first call to be allowed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx, "openai"); err == nil {
		t.Error("expected wait to fail on a cancelled context")
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	limiter := NewLimiter(0, 1)
	for i := 0; i < 100; i++ {
		if !tryWait(limiter, "openai") {
			t.Fatalf("expected unlimited limiter to allow call %d", i)
		}
	}
}
