//go:build unit

package civil_test

import (
	"testing"
	"time"

	"tablebook/internal/pkg/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInstant(t *testing.T) {
	bangkok, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)

	t.Run("anchors wall-clock time in the given zone", func(t *testing.T) {
		got, err := civil.ToInstant("2025-03-01", "19:00", bangkok)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 3, 1, 19, 0, 0, 0, bangkok), got)
		// Bangkok is UTC+7 year-round
		assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("result is independent of the process timezone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		inBangkok, err := civil.ToInstant("2025-03-01", "19:00", bangkok)
		require.NoError(t, err)
		inTokyo, err := civil.ToInstant("2025-03-01", "19:00", tokyo)
		require.NoError(t, err)

		// Same wall clock, different zones: Tokyo (UTC+9) reaches 19:00 two
		// hours before Bangkok (UTC+7) does.
		assert.Equal(t, 2*time.Hour, inBangkok.Sub(inTokyo))
	})

	t.Run("malformed inputs", func(t *testing.T) {
		_, err := civil.ToInstant("03/01/2025", "19:00", bangkok)
		assert.ErrorIs(t, err, civil.ErrInvalidDate)

		_, err = civil.ToInstant("2025-03-01", "7pm", bangkok)
		assert.ErrorIs(t, err, civil.ErrInvalidTime)

		_, err = civil.ToInstant("2025-13-40", "19:00", bangkok)
		assert.ErrorIs(t, err, civil.ErrInvalidDate)

		_, err = civil.ToInstant("2025-03-01", "25:61", bangkok)
		assert.ErrorIs(t, err, civil.ErrInvalidTime)
	})
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name                   string
		aStart, aEnd           time.Time
		bStart, bEnd           time.Time
		want                   bool
	}{
		{"identical intervals", at(0), at(2), at(0), at(2), true},
		{"partial overlap", at(0), at(2), at(1), at(3), true},
		{"contained interval", at(0), at(4), at(1), at(2), true},
		{"touching endpoints do not overlap", at(0), at(2), at(2), at(4), false},
		{"disjoint", at(0), at(1), at(3), at(4), false},
		{"zero-length interval at boundary", at(0), at(2), at(2), at(2), false},
		{"zero-length interval inside", at(0), at(2), at(1), at(1), false},
		{"zero-length interval at start", at(0), at(2), at(0), at(0), false},
		{"both zero-length at same instant", at(1), at(1), at(1), at(1), false},
		{"inverted interval", at(0), at(2), at(3), at(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, civil.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric
			assert.Equal(t, tt.want, civil.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
