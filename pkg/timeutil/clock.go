package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// clockLayouts are the accepted spellings of the free-text card time field.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
}

// ParseClock parses a free-text clock value ("14:30", "2:30 PM") into the
// offset from midnight. The card time field is free text; callers treat a
// parse failure as "no usable time", not an error state.
func ParseClock(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty clock value")
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, strings.ToUpper(trimmed))
		if err != nil {
			continue
		}
		return time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second, nil
	}
	return 0, fmt.Errorf("unrecognized clock value %q", s)
}
