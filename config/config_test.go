package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when no
// environment overrides are present.
func TestLoadConfig_Defaults(t *testing.T) {
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("EXCHANGE_BASE_URL")
	_ = os.Unsetenv("EXCHANGE_TIMEOUT")
	_ = os.Unsetenv("EXCHANGE_MAX_DAYS")
	_ = os.Unsetenv("DEFAULT_CURRENCIES")
	_ = os.Unsetenv("AUDIT_LOG_DIR")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Exchange.BaseURL != "https://api.privatbank.ua" {
		t.Fatalf("unexpected base URL %q", AppConfig.Exchange.BaseURL)
	}
	if AppConfig.Exchange.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", AppConfig.Exchange.Timeout)
	}
	if AppConfig.Exchange.MaxDays != 10 {
		t.Fatalf("unexpected max days %d", AppConfig.Exchange.MaxDays)
	}
	if len(AppConfig.Exchange.DefaultCurrencies) != 2 ||
		AppConfig.Exchange.DefaultCurrencies[0] != "USD" ||
		AppConfig.Exchange.DefaultCurrencies[1] != "EUR" {
		t.Fatalf("unexpected default currencies %v", AppConfig.Exchange.DefaultCurrencies)
	}
	if AppConfig.Audit.Dir != "logs" {
		t.Fatalf("unexpected audit dir %q", AppConfig.Audit.Dir)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("EXCHANGE_BASE_URL", "http://127.0.0.1:9999/")
	t.Setenv("DEFAULT_CURRENCIES", " usd , pln ,")

	LoadConfig()

	// trailing slash is trimmed so the client can append paths
	if AppConfig.Exchange.BaseURL != "http://127.0.0.1:9999" {
		t.Fatalf("base URL not normalized: %q", AppConfig.Exchange.BaseURL)
	}
	got := AppConfig.Exchange.DefaultCurrencies
	if len(got) != 2 || got[0] != "USD" || got[1] != "PLN" {
		t.Fatalf("currencies not normalized: %v", got)
	}
}

func TestSplitCurrencies(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"USD,EUR", 2},
		{"usd", 1},
		{"", 0},
		{" , ,", 0},
		{"USD, EUR, GBP", 3},
	}
	for _, c := range cases {
		if got := splitCurrencies(c.in); len(got) != c.want {
			t.Fatalf("splitCurrencies(%q)=%v, want %d codes", c.in, got, c.want)
		}
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
