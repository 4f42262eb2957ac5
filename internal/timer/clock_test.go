package timer

import (
	"errors"
	"testing"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		-3:    "00:00:00",
		0:     "00:00:00",
		5:     "00:00:05",
		65:    "00:01:05",
		3600:  "01:00:00",
		86400: "24:00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseClock(t *testing.T) {
	valid := map[string]int{
		"00:25:00":   1500,
		"0:00:01":    1,
		"24:00:00":   86400,
		" 01:02:03 ": 3723,
	}
	for in, want := range valid {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %d, want %d", in, got, want)
		}
	}

	invalid := []string{"", "abc", "1:2:3", "00:60:00", "00:00:60", "100:00:00", "00:00:00", "24:00:01", "-1:00:00"}
	for _, in := range invalid {
		_, err := ParseClock(in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("ParseClock(%q): expected ValidationError, got %v", in, err)
		}
		if verr.Error() == "" {
			t.Fatalf("ParseClock(%q): empty error message", in)
		}
	}
}

func TestParseClockRoundTrip(t *testing.T) {
	for _, d := range []int{1, 61, 3599, 86400} {
		got, err := ParseClock(FormatClock(d))
		if err != nil || got != d {
			t.Fatalf("round trip of %d gave %d, %v", d, got, err)
		}
	}
}
