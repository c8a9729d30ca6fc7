package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultLead is the fallback notification lead when none is configured.
const DefaultLead = 30 * time.Minute

var leadUnits = map[string]time.Duration{
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
}

// ParseLead parses a notification lead time such as "30m", "1h", or a bare
// minute count ("45"). An empty input yields the default lead.
func ParseLead(input string) (time.Duration, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return DefaultLead, nil
	}

	digits := trimmed
	unit := ""
	for i, r := range trimmed {
		if r < '0' || r > '9' {
			digits = trimmed[:i]
			unit = strings.TrimSpace(trimmed[i:])
			break
		}
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid lead value %q: %w", input, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("lead must be greater than zero")
	}

	base := time.Minute
	if unit != "" {
		var ok bool
		base, ok = leadUnits[unit]
		if !ok {
			return 0, fmt.Errorf("unsupported lead unit %q", unit)
		}
	}
	return time.Duration(value) * base, nil
}
