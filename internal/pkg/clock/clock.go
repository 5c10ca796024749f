package clock

import (
	"errors"
	"fmt"
)

// ErrInvalidClock indicates a wall-clock string that is not zero-padded 24-hour "HH:MM".
var ErrInvalidClock = errors.New("invalid clock value, expected HH:MM")

// ParseMinutes converts a zero-padded 24-hour "HH:MM" string into minutes since midnight.
func ParseMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	h, err := twoDigits(s[0], s[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := twoDigits(s[3], s[4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return h*60 + m, nil
}

// Hour returns the hour component of a "HH:MM" string.
func Hour(s string) (int, error) {
	mins, err := ParseMinutes(s)
	if err != nil {
		return 0, err
	}
	return mins / 60, nil
}

// Valid reports whether s is a well-formed "HH:MM" clock string.
func Valid(s string) bool {
	_, err := ParseMinutes(s)
	return err == nil
}

func twoDigits(a, b byte) (int, error) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, ErrInvalidClock
	}
	return int(a-'0')*10 + int(b-'0'), nil
}
