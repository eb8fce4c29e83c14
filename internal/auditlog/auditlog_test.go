package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSink_AppendsTimestampedLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	s, err := NewSink(dir)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}

	s.Write("exchange 3")
	s.Write("result line")
	s.Close() // drains the queue

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "=> exchange 3") || !strings.HasPrefix(lines[0], "[") {
		t.Fatalf("unexpected line format: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "=> result line") {
		t.Fatalf("lines written out of order: %q", lines)
	}
}

func TestSink_AppendsAcrossReopens(t *testing.T) {
	dir := t.TempDir()

	s, err := NewSink(dir)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	s.Write("first")
	s.Close()

	s2, err := NewSink(dir)
	if err != nil {
		t.Fatalf("NewSink reopen: %v", err)
	}
	s2.Write("second")
	s2.Close()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("reopen truncated the log: %q", string(data))
	}
}

func TestNewSink_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "logs")
	s, err := NewSink(dir)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	s.Close()

	if _, err := os.Stat(filepath.Join(dir, fileName)); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}
