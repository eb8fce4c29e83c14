package main

import (
	"context"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/dmytroh/fxpulse/config"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
		// success
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func TestRunFetch_DepthViolation(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Exchange: config.ExchangeConfig{
			BaseURL:           "http://127.0.0.1:9",
			Timeout:           time.Second,
			MaxDays:           10,
			DefaultCurrencies: []string{"USD", "EUR"},
		},
	}

	if code := runFetch(context.Background(), 99, nil); code != 1 {
		t.Fatalf("exit code=%d, want 1", code)
	}
}

func TestRunFetch_AllDaysFailing(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Exchange: config.ExchangeConfig{
			// port 9 (discard) is closed on loopback; every fetch fails fast
			BaseURL:           "http://127.0.0.1:9",
			Timeout:           500 * time.Millisecond,
			MaxDays:           10,
			DefaultCurrencies: []string{"USD"},
		},
	}

	if code := runFetch(context.Background(), 2, nil); code != 1 {
		t.Fatalf("exit code=%d, want 1 for empty outcome", code)
	}
}
