package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/dmytroh/fxpulse/internal/domain/models"
	"github.com/dmytroh/fxpulse/internal/logger"
)

// ratesPath is the PrivatBank archive endpoint; the requested day goes into
// the date query parameter as dd.mm.yyyy.
const ratesPath = "/p24api/exchange_rates"

// Client fetches one day of exchange rates from the remote source.
//
// A fetch either yields a DailyRecord filtered to the given currency set or
// an error wrapping one of ErrConnection, ErrRemoteStatus or
// ErrMalformedResponse. A fetch never affects sibling fetches for other
// dates; it holds no state between calls.
type Client interface {
	FetchDay(ctx context.Context, date string, filter models.CurrencyFilter) (*models.DailyRecord, error)
}

type apiClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a PrivatBank API client. timeout bounds each request;
// there are no retries, a request either completes or fails once.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &apiClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: logger.With("exchange_client"),
	}
}

// ratesResponse mirrors the remote payload. Pointer fields distinguish a
// missing key from a present-but-empty value; both top-level fields are
// required for a response to count as well-formed.
type ratesResponse struct {
	Date          *string    `json:"date"`
	ExchangeRates *[]apiRate `json:"exchangeRate"`
}

type apiRate struct {
	Currency string   `json:"currency"`
	SaleNB   *float64 `json:"saleRateNB"`
	BuyNB    *float64 `json:"purchaseRateNB"`
}

func (c *apiClient) FetchDay(ctx context.Context, date string, filter models.CurrencyFilter) (*models.DailyRecord, error) {
	q := url.Values{}
	q.Set("date", date)
	reqURL := c.baseURL + ratesPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", ErrConnection, date, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnection, date, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d for date %s", ErrRemoteStatus, resp.StatusCode, date)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode for date %s: %v", ErrMalformedResponse, date, err)
	}
	if body.Date == nil || body.ExchangeRates == nil {
		return nil, fmt.Errorf("%w: date %s: missing date or exchangeRate field", ErrMalformedResponse, date)
	}

	record := &models.DailyRecord{
		Date:  *body.Date,
		Rates: make(map[string]models.RateEntry),
	}
	for _, entry := range *body.ExchangeRates {
		if !filter.Contains(entry.Currency) {
			continue
		}
		// A wanted currency without rate fields means the payload shape
		// changed; treat the whole day as malformed rather than inventing
		// zero rates.
		if entry.SaleNB == nil || entry.BuyNB == nil {
			return nil, fmt.Errorf("%w: date %s: %s entry missing rate fields", ErrMalformedResponse, date, entry.Currency)
		}
		record.Rates[entry.Currency] = models.RateEntry{
			Currency: entry.Currency,
			Sale:     *entry.SaleNB,
			Purchase: *entry.BuyNB,
		}
	}

	c.log.Debug().Str("date", date).Int("currencies", len(record.Rates)).Msg("day fetched")
	return record, nil
}
