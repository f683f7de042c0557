package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		aStart, aEnd   time.Time
		bStart, bEnd   time.Time
		expectsOverlap bool
	}{
		{
			name:   "partial overlap",
			aStart: base, aEnd: base.Add(2 * time.Hour),
			bStart: base.Add(time.Hour), bEnd: base.Add(3 * time.Hour),
			expectsOverlap: true,
		},
		{
			name:   "containment",
			aStart: base, aEnd: base.Add(4 * time.Hour),
			bStart: base.Add(time.Hour), bEnd: base.Add(2 * time.Hour),
			expectsOverlap: true,
		},
		{
			name:   "touching windows do not overlap",
			aStart: base, aEnd: base.Add(time.Hour),
			bStart: base.Add(time.Hour), bEnd: base.Add(2 * time.Hour),
			expectsOverlap: false,
		},
		{
			name:   "disjoint",
			aStart: base, aEnd: base.Add(time.Hour),
			bStart: base.Add(3 * time.Hour), bEnd: base.Add(4 * time.Hour),
			expectsOverlap: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectsOverlap, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.expectsOverlap, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	r := NewTimeRange(start, end)

	assert.True(t, r.Contains(start), "closed interval includes its start")
	assert.True(t, r.Contains(end), "closed interval includes its end")
	assert.True(t, r.Contains(start.AddDate(0, 0, 5)))
	assert.False(t, r.Contains(start.Add(-time.Second)))
	assert.False(t, r.Contains(end.Add(time.Second)))
}

func TestNewTimeRange_SwapsReversedBounds(t *testing.T) {
	a := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	r := NewTimeRange(a, b)
	assert.Equal(t, b, r.Start)
	assert.Equal(t, a, r.End)
}

func TestIntersectAll(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, IntersectAll(nil))
	})

	t.Run("single range returned as is", func(t *testing.T) {
		r := IntersectAll([]TimeRange{{Start: day(1), End: day(5)}})
		require.NotNil(t, r)
		assert.Equal(t, day(1), r.Start)
		assert.Equal(t, day(5), r.End)
	})

	t.Run("overlapping ranges narrow to common part", func(t *testing.T) {
		r := IntersectAll([]TimeRange{
			{Start: day(1), End: day(10)},
			{Start: day(5), End: day(15)},
			{Start: day(3), End: day(8)},
		})
		require.NotNil(t, r)
		assert.Equal(t, day(5), r.Start)
		assert.Equal(t, day(8), r.End)
	})

	t.Run("disjoint ranges have no intersection", func(t *testing.T) {
		r := IntersectAll([]TimeRange{
			{Start: day(1), End: day(5)},
			{Start: day(10), End: day(15)},
		})
		assert.Nil(t, r)
	})
}
