package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/function-api/pkg/lifecycle"
)

func TestNew(t *testing.T) {
	lc := lifecycle.New()

	if lc.Context() == nil {
		t.Fatal("Context() returned nil")
	}
	if lc.Ready() {
		t.Error("Ready() = true, want false for new coordinator")
	}

	select {
	case <-lc.Context().Done():
		t.Error("context cancelled before shutdown")
	default:
	}
}

func TestCoordinator_Startup(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			time.Sleep(5 * time.Millisecond)
			count.Add(1)
		})
	}

	var checker lifecycle.ReadinessChecker = lc
	lc.WaitForStartup()

	if count.Load() != 3 {
		t.Errorf("count = %d, want 3", count.Load())
	}
	if !checker.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestCoordinator_Shutdown(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			count.Add(1)
		})
	}
	lc.WaitForStartup()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if count.Load() != 3 {
		t.Errorf("count = %d, want 3", count.Load())
	}
	if lc.Ready() {
		t.Error("Ready() = true after Shutdown")
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context not cancelled after Shutdown")
	}
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})

	if err := lc.Shutdown(50 * time.Millisecond); err == nil {
		t.Error("Shutdown() error = nil, want timeout")
	}
}
