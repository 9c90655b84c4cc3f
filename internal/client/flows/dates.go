package flows

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned for a date that none of the accepted layouts
// can parse.
var ErrInvalidDate = errors.New("invalid date")

// DateLayout is the wire format of date_of_birth.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// NormalizeDate rewrites s as YYYY-MM-DD. The calendar date is taken in the
// value's own zone, never converted. Empty input stays empty, and
// normalizing an already normalized value returns it unchanged.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
