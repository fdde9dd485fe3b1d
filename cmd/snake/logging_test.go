package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdirTemp runs the test from an empty directory so logs/ never touches the tree
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	orig := log.Writer()
	t.Cleanup(func() { log.SetOutput(orig) })
}

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	chdirTemp(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory created with debug=false")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	chdirTemp(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file when debug=true")
	}
	defer f.Close()

	out := log.Writer()
	if out == os.Stdout || out == os.Stderr {
		t.Error("log output must not be the terminal")
	}

	log.Println("tick 1")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "tick 1") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("write large log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "snake_") && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated snake_<timestamp>.log")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log size = %d, want < %d", info.Size(), maxLogSize)
	}
}
