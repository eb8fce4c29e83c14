// Package render turns an aggregate history result into presentation
// formats: an HTML fragment for broadcast clients and a plain-text layout
// for the CLI. It only reads the result; it never reorders or re-filters.
package render

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/dmytroh/fxpulse/internal/domain/models"
)

// fragmentTmpl keeps the div/ul structure broadcast clients style against.
// Maps are ranged in sorted key order by the template engine, so currency
// rows come out deterministic.
const fragmentTmpl = `<div class="exchange-history"><h4>Exchange history</h4><div class="content"><ul>` +
	`{{range .}}<li><span class="date">{{.Date}}</span><ul>` +
	`{{range .Rates}}<li><span class="currency-code">{{.Currency}}</span> => <span class="rates">sale: {{.Sale}}, purchase: {{.Purchase}}</span></li>{{end}}` +
	`</ul></li>{{end}}</ul></div></div>`

var fragment = template.Must(template.New("exchange-history").Parse(fragmentTmpl))

// HTMLFragment renders the successful days of a result as an HTML fragment.
// Failed days carry no rates and are not part of the fragment.
func HTMLFragment(res models.HistoryResult) (string, error) {
	var b strings.Builder
	if err := fragment.Execute(&b, res.Days); err != nil {
		return "", fmt.Errorf("render history fragment: %w", err)
	}
	return b.String(), nil
}

// PlainText renders a result for terminal output, one block per day with
// currencies in alphabetical order, followed by any per-date failures.
func PlainText(res models.HistoryResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exchange history (%s)\n", res.Status)
	for _, day := range res.Days {
		fmt.Fprintf(&b, "%s\n", day.Date)

		codes := make([]string, 0, len(day.Rates))
		for code := range day.Rates {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			entry := day.Rates[code]
			fmt.Fprintf(&b, "  %s  sale: %v  purchase: %v\n", code, entry.Sale, entry.Purchase)
		}
	}

	if len(res.Failures) > 0 {
		dates := make([]string, 0, len(res.Failures))
		for d := range res.Failures {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool {
			di, erri := models.ParseDate(dates[i])
			dj, errj := models.ParseDate(dates[j])
			if erri != nil || errj != nil {
				return dates[i] < dates[j]
			}
			return di.Before(dj)
		})
		for _, d := range dates {
			fmt.Fprintf(&b, "failed: %s (%s)\n", d, res.Failures[d])
		}
	}

	return b.String()
}
