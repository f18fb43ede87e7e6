package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinWindow(t *testing.T) {
	rl := NewRateLimiterWithConfig(3, time.Minute)

	for i := 0; i < 3; i++ {
		if ok, _ := rl.allow("10.0.0.1"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	ok, retryAfter := rl.allow("10.0.0.1")
	if ok {
		t.Fatal("attempt over the limit should be denied")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("retry-after should be within the window, got %v", retryAfter)
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)

	if ok, _ := rl.allow("10.0.0.1"); !ok {
		t.Fatal("first client should be allowed")
	}
	if ok, _ := rl.allow("10.0.0.2"); !ok {
		t.Error("a different client should have its own window")
	}
	if ok, _ := rl.allow("10.0.0.1"); ok {
		t.Error("first client should now be over its limit")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	if ok, _ := rl.allow("10.0.0.1"); !ok {
		t.Fatal("first attempt should be allowed")
	}
	if ok, _ := rl.allow("10.0.0.1"); ok {
		t.Fatal("second attempt in the same window should be denied")
	}

	time.Sleep(15 * time.Millisecond)

	if ok, _ := rl.allow("10.0.0.1"); !ok {
		t.Error("attempt after the window expires should be allowed")
	}
}

func TestRateLimiterResetAndCleanup(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	rl.allow("10.0.0.1")
	rl.Reset()
	if ok, _ := rl.allow("10.0.0.1"); !ok {
		t.Error("reset should clear tracked clients")
	}

	time.Sleep(15 * time.Millisecond)
	rl.Cleanup()
	if len(rl.clients) != 0 {
		t.Errorf("cleanup should drop expired clients, %d left", len(rl.clients))
	}
}
