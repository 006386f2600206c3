package timecodec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/engine/timecodec"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  int
	}{
		{"morning", "8:00 AM", 480},
		{"afternoon", "2:30 PM", 870},
		{"noon", "12:00 PM", 720},
		{"midnight", "12:00 AM", 0},
		{"no space before meridiem", "8:00AM", 480},
		{"lowercase meridiem", "9:15 pm", 1275},
		{"meridiem-less kept as 24h", "14:30", 870},
		{"empty means unset", "", 0},
		{"whitespace only", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timecodec.ToMinutes(tt.clock)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMinutes_Malformed(t *testing.T) {
	for _, clock := range []string{"8 AM", "noon", "8:xx AM", "8:00 XM", "25h"} {
		t.Run(clock, func(t *testing.T) {
			_, err := timecodec.ToMinutes(clock)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrClockParse)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{480, "8:00 AM"},
		{870, "2:30 PM"},
		{720, "12:00 PM"},
		{0, "12:00 AM"},
		{1275, "9:15 PM"},
		{65, "1:05 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, timecodec.Format(tt.minutes))
		})
	}
}

// Every meridiem-carrying clock survives a minutes round trip.
func TestRoundTrip(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes++ {
		text := timecodec.Format(minutes)
		back, err := timecodec.ToMinutes(text)
		require.NoError(t, err, "formatted %q", text)
		if back != minutes {
			t.Fatalf("round trip %d -> %q -> %d", minutes, text, back)
		}
	}
}

func TestParseScheduleLine(t *testing.T) {
	t.Run("full line", func(t *testing.T) {
		slot, err := timecodec.ParseScheduleLine("Sunday(8:00 AM-9:20 AM-FT-401)")
		require.NoError(t, err)
		assert.Equal(t, "SUN", slot.Day)
		assert.Equal(t, 480, slot.Start)
		assert.Nil(t, slot.End)
	})

	t.Run("short day name kept whole", func(t *testing.T) {
		slot, err := timecodec.ParseScheduleLine("Tue(11:00 AM-12:20 PM-UB-702)")
		require.NoError(t, err)
		assert.Equal(t, "TUE", slot.Day)
		assert.Equal(t, 660, slot.Start)
	})

	t.Run("garbage line", func(t *testing.T) {
		_, err := timecodec.ParseScheduleLine("TBA")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrScheduleLine)
	})

	t.Run("empty line", func(t *testing.T) {
		_, err := timecodec.ParseScheduleLine("")
		assert.ErrorIs(t, err, domain.ErrScheduleLine)
	})
}

func TestRenderSlot(t *testing.T) {
	end := 560
	assert.Equal(t, "SUN 8:00 AM - 9:20 AM", timecodec.RenderSlot(domain.TimeSlot{Day: "SUN", Start: 480, End: &end}))
	assert.Equal(t, "MON 11:00 AM", timecodec.RenderSlot(domain.TimeSlot{Day: "MON", Start: 660}))
}

func ExampleFormat() {
	fmt.Println(timecodec.Format(830))
	// Output: 1:50 PM
}
