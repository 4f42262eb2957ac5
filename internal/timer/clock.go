package timer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinSeconds = 1
	MaxSeconds = 24 * 3600
)

var clockPattern = regexp.MustCompile(`^\d{1,2}:[0-5]\d:[0-5]\d$`)

// ValidationError is a user-facing input error meant for inline display.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

// FormatClock renders seconds as hh:mm:ss. Negative input renders as zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// ParseClock parses an hh:mm:ss string into seconds and checks it lies within
// [1 second, 24 hours].
func ParseClock(input string) (int, error) {
	input = strings.TrimSpace(input)
	if !clockPattern.MatchString(input) {
		return 0, &ValidationError{Input: input, Reason: "invalid time format, use hh:mm:ss"}
	}
	parts := strings.Split(input, ":")
	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, &ValidationError{Input: input, Reason: "invalid time format, use hh:mm:ss"}
		}
		fields[i] = n
	}
	total := fields[0]*3600 + fields[1]*60 + fields[2]
	if err := ValidateSeconds(total); err != nil {
		return 0, &ValidationError{Input: input, Reason: err.(*ValidationError).Reason}
	}
	return total, nil
}

// ValidateSeconds checks 1 <= seconds <= 86400.
func ValidateSeconds(seconds int) error {
	switch {
	case seconds < MinSeconds:
		return &ValidationError{Reason: "time must be at least 1 second"}
	case seconds > MaxSeconds:
		return &ValidationError{Reason: "time cannot exceed 24 hours"}
	}
	return nil
}
