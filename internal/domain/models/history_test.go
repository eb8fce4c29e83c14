package models

import (
	"testing"
	"time"
)

func TestCurrencyFilter(t *testing.T) {
	f := NewCurrencyFilter([]string{"USD", "EUR"})

	if !f.Contains("USD") || !f.Contains("EUR") {
		t.Fatalf("filter missing members: %v", f)
	}
	if f.Contains("GBP") {
		t.Fatalf("GBP should not be a member")
	}
	if len(NewCurrencyFilter(nil)) != 0 {
		t.Fatalf("empty input should yield empty filter")
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	d := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	key := FormatDate(d)
	if key != "02.01.2026" {
		t.Fatalf("FormatDate=%q", key)
	}

	parsed, err := ParseDate(key)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(d) {
		t.Fatalf("round trip changed the date: %v != %v", parsed, d)
	}
}

func TestParseDate_RejectsOtherLayouts(t *testing.T) {
	for _, bad := range []string{"2026-01-02", "2.1.2026", "02/01/2026"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("ParseDate accepted %q", bad)
		}
	}
}
