package core

import (
	"bytes"
	"strings"
	"testing"
)

// captureCrash swaps output and exit for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	origOutput, origExit := crashOutput, crashExit
	crashOutput = &buf
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOutput, crashExit = origOutput, origExit
		SetCrashCleanup(nil)
	})
	return &buf, codes
}

func TestHandleCrashNil(t *testing.T) {
	buf, codes := captureCrash(t)
	HandleCrash(nil)
	if buf.Len() != 0 || len(codes) != 0 {
		t.Error("nil recover value was treated as a crash")
	}
}

func TestHandleCrashRunsCleanupOnce(t *testing.T) {
	buf, codes := captureCrash(t)

	calls := 0
	SetCrashCleanup(func() { calls++ })
	HandleCrash("boom")

	if calls != 1 {
		t.Errorf("cleanup calls = %d, want 1", calls)
	}
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("output missing crash line: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Stack Trace:") {
		t.Error("output missing stack trace")
	}

	// Cleanup is consumed
	HandleCrash("again")
	<-codes
	if calls != 1 {
		t.Errorf("cleanup ran again, calls = %d", calls)
	}
}

func TestHandleCrashSurvivesPanickingCleanup(t *testing.T) {
	_, codes := captureCrash(t)
	SetCrashCleanup(func() { panic("cleanup failed") })
	HandleCrash("boom")
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	_, codes := captureCrash(t)
	Go(func() { panic("worker") })
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
