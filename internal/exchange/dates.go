package exchange

import (
	"time"

	"github.com/dmytroh/fxpulse/internal/domain/models"
)

// LastNDays returns the n calendar days immediately preceding from, as
// formatted DateKeys, oldest first. The day of from itself is never
// included: the remote source only has finished days.
func LastNDays(n int, from time.Time) []string {
	out := make([]string, 0, n)
	d := truncateToDate(from)

	for i := n; i >= 1; i-- {
		out = append(out, models.FormatDate(d.AddDate(0, 0, -i)))
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
