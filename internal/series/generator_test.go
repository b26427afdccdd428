package series

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynasim/dynasim/domain"
)

func newTestGenerator() *Generator {
	return New(rand.New(rand.NewSource(42)), DefaultServiceMethodFixtures, 0)
}

func TestInterval(t *testing.T) {
	tests := []struct {
		resolution string
		fallback   int64
		expected   int64
	}{
		{"1m", DefaultFlatInterval, 60_000},
		{"5m", DefaultFlatInterval, 300_000},
		{"1h", DefaultFlatInterval, 3_600_000},
		{"1d", DefaultFlatInterval, 86_400_000},
		{"", DefaultFlatInterval, 60_000},
		{"30s", DefaultFlatInterval, 60_000},
		{"2w", DefaultMultiInterval, 300_000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Interval(tt.resolution, tt.fallback), tt.resolution)
	}
}

func TestGenerateCursorWalk(t *testing.T) {
	g := newTestGenerator()

	t.Run("interval exceeding range yields single point at from", func(t *testing.T) {
		points := g.Generate("builtin:host.cpu.usage", domain.TimeRange{From: 1_000_000, To: 1_003_000}, "1m")
		require.Len(t, points, 1)
		assert.Equal(t, int64(1_000_000), points[0].Timestamp)
	})

	t.Run("inclusive upper bound", func(t *testing.T) {
		points := g.Generate("builtin:host.cpu.usage", domain.TimeRange{From: 0, To: 300_000}, "5m")
		require.Len(t, points, 2)
		assert.Equal(t, int64(0), points[0].Timestamp)
		assert.Equal(t, int64(300_000), points[1].Timestamp)
	})

	t.Run("inverted range yields no points", func(t *testing.T) {
		points := g.Generate("builtin:host.cpu.usage", domain.TimeRange{From: 2_000_000, To: 1_000_000}, "1m")
		assert.Empty(t, points)
	})

	t.Run("unknown resolution falls back to one minute", func(t *testing.T) {
		points := g.Generate("builtin:host.cpu.usage", domain.TimeRange{From: 0, To: 120_000}, "bogus")
		assert.Len(t, points, 3)
	})
}

func TestGenerateValueHeuristics(t *testing.T) {
	g := newTestGenerator()
	tr := domain.TimeRange{From: 0, To: 60 * 60_000}

	tests := []struct {
		metricID string
		min, max float64
		integral bool
	}{
		{"builtin:host.cpu.usage", 20, 90, false},
		{"builtin:host.mem.usage", 20, 90, false},
		{"builtin:service.response.time", 100, 5000, false},
		{"builtin:service.request.count", 1000, 2800, true},
		{"builtin:service.keyRequest.count.total", 1000, 2800, true},
		{"builtin:apps.other.crashCount.osAndVersion", 0, 50, true},
		{"builtin:host.disk.avail", 1e9, 1e10, false},
		{"builtin:something.else", 0, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.metricID, func(t *testing.T) {
			points := g.Generate(tt.metricID, tr, "1m")
			require.Len(t, points, 61)
			for _, p := range points {
				assert.GreaterOrEqual(t, p.Value, tt.min)
				assert.LessOrEqual(t, p.Value, tt.max)
				if tt.integral {
					assert.Equal(t, float64(int64(p.Value)), p.Value)
				}
			}
		})
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	tr := domain.TimeRange{From: 0, To: 600_000}

	first := New(rand.New(rand.NewSource(7)), DefaultServiceMethodFixtures, 0).
		Generate("builtin:host.cpu.usage", tr, "1m")
	second := New(rand.New(rand.NewSource(7)), DefaultServiceMethodFixtures, 0).
		Generate("builtin:host.cpu.usage", tr, "1m")

	assert.Equal(t, first, second)
}

func TestGenerateMultiSeriesSplit(t *testing.T) {
	g := newTestGenerator()

	result := g.GenerateMultiSeries("builtin:service.keyRequest.count.total",
		domain.TimeRange{From: 1_000_000, To: 2_000_000}, "5m")

	require.Len(t, result, 3)

	expectedRanges := []struct{ min, max float64 }{
		{2000, 2800},
		{1000, 1400},
		{500, 1000},
	}

	for i, s := range result {
		assert.Equal(t, result[0].Timestamps, s.Timestamps, "series share one timestamp list")
		assert.Len(t, s.Values, len(s.Timestamps))

		fixture := DefaultServiceMethodFixtures[i]
		assert.Equal(t, []string{fixture.EntityID}, s.Dimensions)
		assert.Equal(t, fixture.EntityID, s.DimensionMap[ServiceMethodDimensionKey])
		assert.Equal(t, fixture.Name, s.DimensionMap[ServiceMethodDimensionKey+".name"])

		for _, v := range s.Values {
			assert.GreaterOrEqual(t, v, expectedRanges[i].min)
			assert.LessOrEqual(t, v, expectedRanges[i].max)
		}
	}
}

func TestGenerateMultiSeriesUnsplitMetric(t *testing.T) {
	g := newTestGenerator()

	result := g.GenerateMultiSeries("builtin:host.cpu.usage",
		domain.TimeRange{From: 0, To: 900_000}, "5m")

	require.Len(t, result, 1)
	s := result[0]
	assert.Empty(t, s.Dimensions)
	assert.Empty(t, s.DimensionMap)
	assert.Len(t, s.Timestamps, 4)
	for _, v := range s.Values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestGenerateMultiSeriesDefaultResolution(t *testing.T) {
	g := newTestGenerator()

	// Unknown resolution: the multi-series path falls back to five minutes,
	// not the flat path's one minute.
	result := g.GenerateMultiSeries("builtin:host.cpu.usage",
		domain.TimeRange{From: 0, To: 600_000}, "whatever")

	require.Len(t, result, 1)
	assert.Len(t, result[0].Timestamps, 3)
}

func TestMaxPointsCap(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)), DefaultServiceMethodFixtures, 5)

	points := g.Generate("builtin:host.cpu.usage", domain.TimeRange{From: 0, To: 60_000_000}, "1m")
	assert.Len(t, points, 5)

	result := g.GenerateMultiSeries("builtin:service.keyRequest.count.total",
		domain.TimeRange{From: 0, To: 60_000_000}, "1m")
	require.Len(t, result, 3)
	for _, s := range result {
		assert.Len(t, s.Timestamps, 5)
	}
}
