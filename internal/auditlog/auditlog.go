// Package auditlog implements the append-only exchange audit log: raw
// exchange commands and raw aggregate results, one timestamped line each,
// written by a single goroutine so callers never wait on the filesystem.
package auditlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/dmytroh/fxpulse/internal/logger"
)

const (
	fileName   = "exchange_log.log"
	timeLayout = "2006-01-02 15:04:05.000000"
	queueSize  = 256
)

// Sink is a fire-and-forget append-only log. Write hands the line to a
// buffered channel; a dedicated goroutine appends it to the file. Sink
// errors are logged, never returned to callers.
type Sink struct {
	entries chan string
	done    chan struct{}
	log     zerolog.Logger
}

// NewSink creates the log directory if needed, opens (or creates) the log
// file for appending and starts the writer goroutine.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audit log dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}

	s := &Sink{
		entries: make(chan string, queueSize),
		done:    make(chan struct{}),
		log:     logger.With("auditlog"),
	}
	go s.run(f)
	return s, nil
}

// Write queues one line for appending. It never blocks: when the queue is
// full the line is dropped and counted, which keeps the exchange path
// independent of disk latency.
func (s *Sink) Write(line string) {
	select {
	case s.entries <- line:
	default:
		s.log.Warn().Msg("audit queue full, entry dropped")
	}
}

// Close stops accepting entries, drains what is already queued and closes
// the file. Write must not be called after Close.
func (s *Sink) Close() {
	close(s.entries)
	<-s.done
}

func (s *Sink) run(f *os.File) {
	defer close(s.done)
	defer func() { _ = f.Close() }()

	for line := range s.entries {
		stamp := time.Now().Format(timeLayout)
		if _, err := fmt.Fprintf(f, "[%s] => %s\n", stamp, line); err != nil {
			s.log.Error().Err(err).Msg("audit append failed")
		}
	}
}
