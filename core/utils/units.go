package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimeUnit converts a unit name such as "s", "minutes" or "d" to a duration.
// An empty unit means seconds.
func ParseTimeUnit(unit string) (time.Duration, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "s", "sec", "secs", "second", "seconds":
		return time.Second, nil
	case "m", "min", "mins", "minute", "minutes":
		return time.Minute, nil
	case "h", "hr", "hrs", "hour", "hours":
		return time.Hour, nil
	case "d", "day", "days":
		return 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown time unit %q", unit)
	}
}

// ParseInt64 parses an optional integer value. Empty input returns ok=false.
func ParseInt64(val string) (n int64, ok bool, err error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, false, nil
	}
	n, err = strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid integer %q: %w", val, err)
	}
	return n, true, nil
}
