package recipeclip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration holds the hour, minute and second components of a recipe
// duration as two-digit strings, the editable form used for prep, cook and
// total times. The string form keeps leading zeros stable while a component
// is being edited one keystroke at a time.
type Duration struct {
	Hours   string
	Minutes string
	Seconds string
}

var (
	ptHoursRe   = regexp.MustCompile(`(\d{1,2})H`)
	ptMinutesRe = regexp.MustCompile(`(\d{1,2})M`)
	ptSecondsRe = regexp.MustCompile(`(\d{1,2})S`)
)

// NewDuration returns a zero duration ("00" for every component).
func NewDuration() Duration {
	return Duration{Hours: "00", Minutes: "00", Seconds: "00"}
}

// DurationFromPT parses a PT-duration string (e.g. "PT1H30M0S") into a
// fresh Duration. Components absent from the string remain "00".
func DurationFromPT(s string) Duration {
	d := NewDuration()
	d.ParsePT(s)
	return d
}

// ParsePT updates the duration from a PT-duration string.
//
// Each component is matched independently; a component absent from the
// string keeps its current value rather than resetting to zero. Editing
// flows rely on this partial-update behavior when a single field changes.
func (d *Duration) ParsePT(s string) {
	if m := ptHoursRe.FindStringSubmatch(s); m != nil {
		d.Hours = SetComponent(m[1], d.Hours)
	}
	if m := ptMinutesRe.FindStringSubmatch(s); m != nil {
		d.Minutes = SetComponent(m[1], d.Minutes)
	}
	if m := ptSecondsRe.FindStringSubmatch(s); m != nil {
		d.Seconds = SetComponent(m[1], d.Seconds)
	}
}

// PT returns the duration in its PT-string form, e.g. "PT01H30M00S".
func (d Duration) PT() string {
	return fmt.Sprintf("PT%sH%sM%sS", d.Hours, d.Minutes, d.Seconds)
}

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool {
	return componentInt(d.Hours) == 0 &&
		componentInt(d.Minutes) == 0 &&
		componentInt(d.Seconds) == 0
}

// DisplayText renders the duration for display: "-" when empty, otherwise
// hours and minutes in the "1 h, 30 min" form.
func (d Duration) DisplayText() string {
	h := componentInt(d.Hours)
	m := componentInt(d.Minutes)

	switch {
	case h == 0 && m == 0:
		return "-"
	case m == 0:
		return fmt.Sprintf("%d h", h)
	case h == 0:
		return fmt.Sprintf("%d min", m)
	default:
		return fmt.Sprintf("%d h, %d min", h, m)
	}
}

// SetComponent normalizes a raw component edit and returns the new value.
//
// Non-digit characters are stripped; an edit longer than two digits is
// rejected and prev is returned unchanged; an empty edit becomes "00"; a
// single digit is zero-padded to two. The rules fire in that order on
// every edit.
func SetComponent(raw, prev string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	switch len(digits) {
	case 0:
		return "00"
	case 1:
		return "0" + digits
	case 2:
		return digits
	default:
		return prev
	}
}

// componentInt converts a component string to an int, treating anything
// unparsable as zero.
func componentInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
