package recipeclip_test

import (
	"fmt"
	"testing"

	"github.com/kspala/recipeclip"
	"github.com/stretchr/testify/assert"
)

func TestDurationFromPT(t *testing.T) {
	t.Parallel()

	t.Run("parses hours, minutes and seconds", func(t *testing.T) {
		t.Parallel()

		d := recipeclip.DurationFromPT("PT1H30M0S")

		assert.Equal(t, "01", d.Hours)
		assert.Equal(t, "30", d.Minutes)
		assert.Equal(t, "00", d.Seconds)
	})

	t.Run("missing components stay at zero", func(t *testing.T) {
		t.Parallel()

		d := recipeclip.DurationFromPT("PT45M")

		assert.Equal(t, "00", d.Hours)
		assert.Equal(t, "45", d.Minutes)
	})

	t.Run("garbage input leaves the zero duration", func(t *testing.T) {
		t.Parallel()

		d := recipeclip.DurationFromPT("not a duration")

		assert.Equal(t, recipeclip.NewDuration(), d)
	})
}

func TestDuration_ParsePT_PartialUpdate(t *testing.T) {
	t.Parallel()

	// Components absent from the string must keep their prior value.
	d := recipeclip.Duration{Hours: "02", Minutes: "15", Seconds: "00"}
	d.ParsePT("PT30M")

	assert.Equal(t, "02", d.Hours)
	assert.Equal(t, "30", d.Minutes)
}

func TestDuration_PT_RoundTrip(t *testing.T) {
	t.Parallel()

	for h := 0; h < 100; h += 7 {
		for m := 0; m < 60; m += 11 {
			d := recipeclip.Duration{
				Hours:   fmt.Sprintf("%02d", h),
				Minutes: fmt.Sprintf("%02d", m),
				Seconds: "00",
			}
			assert.Equal(t, d, recipeclip.DurationFromPT(d.PT()), "h=%d m=%d", h, m)
		}
	}
}

func TestDuration_DisplayText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hours   string
		minutes string
		want    string
	}{
		{"00", "00", "-"},
		{"02", "00", "2 h"},
		{"00", "30", "30 min"},
		{"01", "30", "1 h, 30 min"},
	}

	for _, tt := range tests {
		d := recipeclip.Duration{Hours: tt.hours, Minutes: tt.minutes, Seconds: "00"}
		assert.Equal(t, tt.want, d.DisplayText())
	}
}

func TestDuration_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, recipeclip.NewDuration().IsZero())
	assert.False(t, recipeclip.DurationFromPT("PT1M").IsZero())
}

func TestSetComponent(t *testing.T) {
	t.Parallel()

	t.Run("strips non-digit characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "15", recipeclip.SetComponent("1a5", "00"))
	})

	t.Run("rejects edits longer than two digits", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "30", recipeclip.SetComponent("123", "30"))
	})

	t.Run("empty edit becomes 00", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "00", recipeclip.SetComponent("", "30"))
		assert.Equal(t, "00", recipeclip.SetComponent("abc", "30"))
	})

	t.Run("single digit is zero padded", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "05", recipeclip.SetComponent("5", "00"))
	})
}
