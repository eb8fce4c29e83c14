package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rs/zerolog"

	"github.com/dmytroh/fxpulse/internal/domain/models"
	"github.com/dmytroh/fxpulse/internal/exchange"
	"github.com/dmytroh/fxpulse/internal/logger"
)

// ErrDepthExceeded rejects a history request before any remote call is
// issued. It is the only error a History call can return; per-date fetch
// failures surface inside the result instead.
var ErrDepthExceeded = errors.New("history depth exceeded")

// Aggregator runs one multi-day history request: date range generation,
// concurrent per-date fetches, and chronological reassembly.
type Aggregator interface {
	History(ctx context.Context, days int, filter models.CurrencyFilter) (models.HistoryResult, error)
}

type aggregator struct {
	client  exchange.Client
	maxDays int
	now     func() time.Time
	log     zerolog.Logger
}

// NewAggregator builds an Aggregator over the given client. maxDays is the
// deepest window the remote source supports (10 for PrivatBank).
func NewAggregator(client exchange.Client, maxDays int) Aggregator {
	return &aggregator{
		client:  client,
		maxDays: maxDays,
		now:     time.Now,
		log:     logger.With("aggregator"),
	}
}

// History fetches rates for the `days` calendar days before today.
//
// All per-date fetches run concurrently; the call joins on the full set (an
// all-complete barrier, never fail-fast) and reassembles records in the
// order the dates were generated, independent of completion order. A failed
// date is dropped from Days and recorded in Failures; only a depth
// violation aborts the request as a whole.
func (a *aggregator) History(ctx context.Context, days int, filter models.CurrencyFilter) (models.HistoryResult, error) {
	if days < 1 || days > a.maxDays {
		return models.HistoryResult{}, fmt.Errorf("%w: %d days requested, allowed range is 1..%d", ErrDepthExceeded, days, a.maxDays)
	}

	dates := exchange.LastNDays(days, a.now())

	// One slot per date; each goroutine writes only its own index, so the
	// barrier is the only synchronization needed.
	records := make([]*models.DailyRecord, len(dates))
	failures := make([]error, len(dates))

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			rec, err := a.client.FetchDay(gctx, date, filter)
			if err != nil {
				// Scoped to this date; returning it would cancel siblings.
				a.log.Warn().Str("date", date).Str("kind", exchange.FailureKind(err)).Err(err).Msg("day fetch failed")
				failures[i] = err
				return nil
			}
			records[i] = rec
			return nil
		})
	}
	_ = g.Wait()

	res := models.HistoryResult{
		Days: make([]models.DailyRecord, 0, len(dates)),
	}
	for i, rec := range records {
		if rec != nil {
			res.Days = append(res.Days, *rec)
			continue
		}
		if res.Failures == nil {
			res.Failures = make(map[string]string)
		}
		res.Failures[dates[i]] = exchange.FailureKind(failures[i])
	}

	switch {
	case len(res.Days) == 0:
		res.Status = models.StatusEmpty
	case len(res.Failures) > 0:
		res.Status = models.StatusPartial
	default:
		res.Status = models.StatusComplete
	}

	a.log.Info().
		Int("days", days).
		Int("fetched", len(res.Days)).
		Int("failed", len(res.Failures)).
		Str("status", string(res.Status)).
		Dur("elapsed", time.Since(start)).
		Msg("history assembled")

	return res, nil
}
