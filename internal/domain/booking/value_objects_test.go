//go:build unit

package booking_test

import (
	"testing"
	"time"

	"beautyspace/internal/domain/booking"
	"beautyspace/internal/domain/loyalty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

func TestNewPeriod(t *testing.T) {
	now := base.Add(-24 * time.Hour)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "valid future period", start: at(9, 0), end: at(11, 0)},
		{name: "zero length", start: at(9, 0), end: at(9, 0), errIs: booking.ErrInvalidPeriod},
		{name: "inverted", start: at(11, 0), end: at(9, 0), errIs: booking.ErrInvalidPeriod},
		{name: "start in the past", start: now.Add(-time.Hour), end: at(11, 0), errIs: booking.ErrPeriodInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := booking.NewPeriod(tt.start, tt.end, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, p.Start())
			assert.Equal(t, tt.end, p.End())
		})
	}
}

func TestPeriodOverlaps(t *testing.T) {
	existing := booking.ReconstructPeriod(at(10, 0), at(12, 0))

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		conflicts bool
	}{
		{name: "fully inside", start: at(10, 30), end: at(11, 30), conflicts: true},
		{name: "overlaps tail", start: at(11, 0), end: at(13, 0), conflicts: true},
		{name: "overlaps head", start: at(9, 0), end: at(10, 30), conflicts: true},
		{name: "covers entirely", start: at(9, 0), end: at(13, 0), conflicts: true},
		{name: "back to back after", start: at(12, 0), end: at(14, 0), conflicts: false},
		{name: "back to back before", start: at(8, 0), end: at(10, 0), conflicts: false},
		{name: "disjoint", start: at(14, 0), end: at(15, 0), conflicts: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := booking.ReconstructPeriod(tt.start, tt.end)
			assert.Equal(t, tt.conflicts, candidate.Overlaps(existing))
			assert.Equal(t, tt.conflicts, existing.Overlaps(candidate))
		})
	}
}

func TestPeriodHours(t *testing.T) {
	tests := []struct {
		name string
		dur  time.Duration
		want int64
	}{
		{name: "whole hours", dur: 2 * time.Hour, want: 2},
		{name: "partial hour rounds up", dur: 90 * time.Minute, want: 2},
		{name: "one minute counts as an hour", dur: time.Minute, want: 1},
		{name: "just over three hours", dur: 3*time.Hour + time.Second, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := booking.ReconstructPeriod(base, base.Add(tt.dur))
			assert.Equal(t, tt.want, p.Hours())
		})
	}
}

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name         string
		dur          time.Duration
		pricePerHour int64
		points       int
		wantList     int64
		wantFinal    int64
		wantPoints   int
	}{
		{
			name:         "bronze two hours at 1000",
			dur:          2 * time.Hour,
			pricePerHour: 1000,
			points:       0,
			wantList:     2000,
			wantFinal:    2000,
			wantPoints:   20,
		},
		{
			name:         "gold three hours at 500",
			dur:          3 * time.Hour,
			pricePerHour: 500,
			points:       1600,
			wantList:     1500,
			wantFinal:    1350,
			wantPoints:   13,
		},
		{
			name:         "silver with rounding",
			dur:          time.Hour,
			pricePerHour: 999,
			points:       800,
			wantList:     999,
			wantFinal:    949,
			wantPoints:   9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := booking.ReconstructPeriod(base, base.Add(tt.dur))
			q := booking.NewQuote(p, tt.pricePerHour, loyalty.TierFor(tt.points))

			assert.Equal(t, tt.wantList, q.ListPrice)
			assert.Equal(t, tt.wantFinal, q.FinalPrice)
			assert.Equal(t, tt.wantPoints, q.AwardedPoints())
		})
	}
}
