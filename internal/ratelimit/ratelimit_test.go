package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestKeyedLimiter_Allow(t *testing.T) {
	tests := []struct {
		name     string
		rps      float64
		burst    int
		key      string
		calls    int
		wantPass int
	}{
		{
			name:     "burst allows initial requests",
			rps:      1,
			burst:    3,
			key:      "10.0.0.1",
			calls:    3,
			wantPass: 3,
		},
		{
			name:     "exceeding burst blocks",
			rps:      1,
			burst:    2,
			key:      "10.0.0.1",
			calls:    5,
			wantPass: 2,
		},
		{
			name:     "single call within burst",
			rps:      1,
			burst:    1,
			key:      "10.0.0.2",
			calls:    1,
			wantPass: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kl := New(tt.rps, tt.burst)
			defer kl.Stop()

			passed := 0
			for range tt.calls {
				if kl.Allow(tt.key) {
					passed++
				}
			}

			if passed != tt.wantPass {
				t.Errorf("Allow() passed %d, want %d", passed, tt.wantPass)
			}
		})
	}
}

func TestKeyedLimiter_Wait(t *testing.T) {
	kl := New(10, 1) // 10 rps, burst of 1
	defer kl.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	// First call should succeed immediately
	start := time.Now()
	if err := kl.Wait(ctx, "10.0.0.1"); err != nil {
		t.Errorf("first Wait() failed: %v", err)
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Error("first Wait() should be immediate")
	}

	// Second call should wait ~100ms (1/10 rps)
	start = time.Now()
	if err := kl.Wait(ctx, "10.0.0.1"); err != nil {
		t.Errorf("second Wait() failed: %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 80*time.Millisecond || elapsed > 200*time.Millisecond {
		t.Errorf("second Wait() took %v, want ~100ms", elapsed)
	}
}

func TestKeyedLimiter_WaitContextCancelled(t *testing.T) {
	kl := New(0.1, 1) // Very slow: 1 request per 10 seconds
	defer kl.Stop()

	// Exhaust the burst
	kl.Allow("10.0.0.1")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := kl.Wait(ctx, "10.0.0.1"); err == nil {
		t.Error("Wait() should fail when context canceled")
	}
}

func TestKeyedLimiter_IndependentKeys(t *testing.T) {
	kl := New(1, 1)
	defer kl.Stop()

	// Exhaust one client
	kl.Allow("10.0.0.1")
	if kl.Allow("10.0.0.1") {
		t.Error("first client should be exhausted")
	}

	// Another client is unaffected
	if !kl.Allow("10.0.0.2") {
		t.Error("second client should be independent and allowed")
	}
}

func TestKeyedLimiter_EvictsIdleKeys(t *testing.T) {
	kl := New(1, 1)
	defer kl.Stop()
	kl.maxIdle = 10 * time.Millisecond

	kl.Allow("10.0.0.1")
	if kl.Allow("10.0.0.1") {
		t.Fatal("client should be exhausted")
	}

	// Evict directly rather than waiting out the ticker.
	time.Sleep(20 * time.Millisecond)
	kl.evictIdle(time.Now())

	// A fresh bucket means the burst is available again.
	if !kl.Allow("10.0.0.1") {
		t.Error("evicted client should get a fresh bucket")
	}
}
