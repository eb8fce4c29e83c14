package exchange

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmytroh/fxpulse/internal/domain/models"
)

const sampleBody = `{
	"date": "01.12.2025",
	"bank": "PB",
	"baseCurrency": 980,
	"exchangeRate": [
		{"currency": "USD", "saleRateNB": 41.85, "purchaseRateNB": 41.25},
		{"currency": "EUR", "saleRateNB": 45.10, "purchaseRateNB": 44.60},
		{"currency": "GBP", "saleRateNB": 52.30, "purchaseRateNB": 51.70}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second), srv
}

func TestFetchDay_FiltersToRequestedCurrencies(t *testing.T) {
	var gotDate string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	})

	filter := models.NewCurrencyFilter([]string{"USD", "EUR"})
	rec, err := client.FetchDay(context.Background(), "01.12.2025", filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotDate != "01.12.2025" {
		t.Fatalf("date query param = %q", gotDate)
	}
	if rec.Date != "01.12.2025" {
		t.Fatalf("record date = %q", rec.Date)
	}
	if len(rec.Rates) != 2 {
		t.Fatalf("expected GBP filtered out, got rates %v", rec.Rates)
	}
	usd := rec.Rates["USD"]
	if usd.Sale != 41.85 || usd.Purchase != 41.25 {
		t.Fatalf("USD rates not passed through: %+v", usd)
	}
	if _, ok := rec.Rates["GBP"]; ok {
		t.Fatalf("GBP should not be in the record")
	}
}

func TestFetchDay_WantedCurrencyAbsentIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleBody))
	})

	filter := models.NewCurrencyFilter([]string{"USD", "CHF"})
	rec, err := client.FetchDay(context.Background(), "01.12.2025", filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Rates) != 1 {
		t.Fatalf("expected only USD, got %v", rec.Rates)
	}
}

func TestFetchDay_FailureClassification(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    error
		kind    string
	}{
		{
			name: "remote status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			want: ErrRemoteStatus,
			kind: "remote",
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>pardon?</html>"))
			},
			want: ErrMalformedResponse,
			kind: "malformed",
		},
		{
			name: "missing exchangeRate field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"date": "01.12.2025"}`))
			},
			want: ErrMalformedResponse,
			kind: "malformed",
		},
		{
			name: "missing date field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"exchangeRate": []}`))
			},
			want: ErrMalformedResponse,
			kind: "malformed",
		},
		{
			name: "wanted currency without rate fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"date": "01.12.2025", "exchangeRate": [{"currency": "USD"}]}`))
			},
			want: ErrMalformedResponse,
			kind: "malformed",
		},
	}

	filter := models.NewCurrencyFilter([]string{"USD", "EUR"})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, tc.handler)
			rec, err := client.FetchDay(context.Background(), "01.12.2025", filter)
			if rec != nil {
				t.Fatalf("expected nil record, got %+v", rec)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("error %v does not wrap %v", err, tc.want)
			}
			if FailureKind(err) != tc.kind {
				t.Fatalf("FailureKind=%q, want %q", FailureKind(err), tc.kind)
			}
		})
	}
}

func TestFetchDay_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client := NewClient(srv.URL, 500*time.Millisecond)
	_, err := client.FetchDay(context.Background(), "01.12.2025", models.NewCurrencyFilter([]string{"USD"}))
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("error %v does not wrap ErrConnection", err)
	}
	if FailureKind(err) != "connection" {
		t.Fatalf("FailureKind=%q", FailureKind(err))
	}
}

func TestFailureKind_Unknown(t *testing.T) {
	if k := FailureKind(errors.New("whatever")); k != "unknown" {
		t.Fatalf("FailureKind=%q", k)
	}
}
