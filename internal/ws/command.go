package ws

import (
	"fmt"
	"strconv"
	"strings"
)

const usageHint = "The correct command is: exchange <days_number>"

// parseCommand parses an "exchange" chat command:
//
//	exchange <days_number> [CURRENCY ...]
//
// The day count is mandatory; any further tokens override the default
// currency filter. The message is expected lower-cased by the caller, so
// currency codes are upper-cased here.
func parseCommand(msg string) (int, []string, error) {
	fields := strings.Fields(msg)
	if len(fields) < 2 {
		return 0, nil, fmt.Errorf("missing day count")
	}

	days, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, nil, fmt.Errorf("day count %q is not a number", fields[1])
	}

	var currencies []string
	for _, code := range fields[2:] {
		currencies = append(currencies, strings.ToUpper(code))
	}
	return days, currencies, nil
}
