package market

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterAllowsBurst(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.tryAcquire() {
			t.Fatalf("acquire %d should succeed within the bucket", i)
		}
	}
	if rl.tryAcquire() {
		t.Error("acquire beyond the bucket should fail before refill")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(1, 50*time.Millisecond)

	if !rl.tryAcquire() {
		t.Fatal("first acquire should succeed")
	}
	if rl.tryAcquire() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(80 * time.Millisecond)

	if !rl.tryAcquire() {
		t.Error("token should have refilled")
	}
}

func TestRateLimiterWaitHonorsContext(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	if err := rl.Wait(context.Background()); err != nil {
		t.Fatalf("Wait with available token: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx); err == nil {
		t.Error("Wait on empty bucket should fail when the context expires")
	}
}
