package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	mock.Advance(50 * time.Millisecond)
	mock.Advance(50 * time.Millisecond)
	if now := mock.Now(); !now.Equal(start.Add(100 * time.Millisecond)) {
		t.Errorf("Expected %v after two ticks, got %v", start.Add(100*time.Millisecond), now)
	}

	later := start.Add(time.Hour)
	mock.SetTime(later)
	if now := mock.Now(); !now.Equal(later) {
		t.Errorf("Expected %v after SetTime, got %v", later, now)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if now := mock.Now(); !now.Equal(start.Add(250 * time.Millisecond)) {
		t.Errorf("Expected %v after concurrent advances, got %v", start.Add(250*time.Millisecond), now)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
	var _ Scheduler = &ClockScheduler{}
	var _ Scheduler = &ManualScheduler{}
}
