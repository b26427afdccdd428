// Package series synthesizes time-series data points for the simulator.
// Values are random but range-plausible for the metric being asked about,
// so client charts look believable without any stored data.
package series

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/dynasim/dynasim/domain"
)

// Millisecond intervals for the supported resolution strings. The two
// defaults intentionally differ: the direct data-points endpoint falls back
// to one minute, the split-by query path to five minutes.
const (
	DefaultFlatInterval  int64 = 60_000
	DefaultMultiInterval int64 = 300_000
)

var resolutionIntervals = map[string]int64{
	"1m": 60_000,
	"5m": 300_000,
	"1h": 3_600_000,
	"1d": 86_400_000,
}

// Interval maps a resolution string to its step size in milliseconds,
// returning fallback for anything unrecognized.
func Interval(resolution string, fallback int64) int64 {
	if interval, ok := resolutionIntervals[resolution]; ok {
		return interval
	}
	return fallback
}

// Generator produces synthetic series from an injected random source, so
// tests can seed it and assert deterministic output. The zero value is not
// usable; construct with New.
type Generator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	fixtures  []Fixture
	maxPoints int
}

// New builds a generator. fixtures supplies the identities of the split-by
// series (see DefaultServiceMethodFixtures); maxPoints truncates the
// timestamp walk, 0 meaning unlimited.
func New(rng *rand.Rand, fixtures []Fixture, maxPoints int) *Generator {
	return &Generator{rng: rng, fixtures: fixtures, maxPoints: maxPoints}
}

// Generate walks the inclusive range [tr.From, tr.To] stepping by the
// interval for resolution (default one minute) and emits one data point per
// step. Each value is drawn independently from a range chosen by
// metric-name heuristics. An inverted range yields no points.
func (g *Generator) Generate(metricID string, tr domain.TimeRange, resolution string) []domain.DataPoint {
	interval := Interval(resolution, DefaultFlatInterval)
	timestamps := g.walk(tr, interval)

	g.mu.Lock()
	defer g.mu.Unlock()

	points := make([]domain.DataPoint, 0, len(timestamps))
	for _, ts := range timestamps {
		points = append(points, domain.DataPoint{Timestamp: ts, Value: g.valueFor(metricID)})
	}
	return points
}

// GenerateMultiSeries produces the split-by form: every returned series
// shares one timestamp list built with the interval for resolution (default
// five minutes). Service and key-request metrics yield one series per
// fixture, tagged with the fixture's entity id and display name; anything
// else yields a single unlabeled series.
func (g *Generator) GenerateMultiSeries(metricID string, tr domain.TimeRange, resolution string) []domain.Series {
	interval := Interval(resolution, DefaultMultiInterval)
	timestamps := g.walk(tr, interval)

	g.mu.Lock()
	defer g.mu.Unlock()

	if !splitsByServiceMethod(metricID) {
		values := make([]float64, len(timestamps))
		for i := range values {
			values[i] = g.uniform(0, 100)
		}
		return []domain.Series{{
			Dimensions:   []string{},
			DimensionMap: map[string]string{},
			Timestamps:   timestamps,
			Values:       values,
		}}
	}

	result := make([]domain.Series, 0, len(g.fixtures))
	for _, f := range g.fixtures {
		values := make([]float64, len(timestamps))
		for i := range values {
			values[i] = g.uniformInt(f.MinValue, f.MaxValue)
		}
		result = append(result, domain.Series{
			Dimensions: []string{f.EntityID},
			DimensionMap: map[string]string{
				ServiceMethodDimensionKey:           f.EntityID,
				ServiceMethodDimensionKey + ".name": f.Name,
			},
			Timestamps: timestamps,
			Values:     values,
		})
	}
	return result
}

// walk builds the shared timestamp cursor walk, truncated at maxPoints.
func (g *Generator) walk(tr domain.TimeRange, interval int64) []int64 {
	timestamps := make([]int64, 0)
	for ts := tr.From; ts <= tr.To; ts += interval {
		if g.maxPoints > 0 && len(timestamps) >= g.maxPoints {
			break
		}
		timestamps = append(timestamps, ts)
	}
	return timestamps
}

// valueFor picks the value range by substring of the metric id,
// case-sensitive, first match wins.
func (g *Generator) valueFor(metricID string) float64 {
	switch {
	case strings.Contains(metricID, "cpu") || strings.Contains(metricID, "mem"):
		return g.uniform(20, 90)
	case strings.Contains(metricID, "response.time"):
		return g.uniform(100, 5000)
	case strings.Contains(metricID, "request.count") || strings.Contains(metricID, "keyRequest.count"):
		return g.uniformInt(1000, 2800)
	case strings.Contains(metricID, "crashCount"):
		return g.uniformInt(0, 50)
	case strings.Contains(metricID, "disk"):
		return g.uniform(1e9, 1e10)
	default:
		return g.uniform(0, 100)
	}
}

func splitsByServiceMethod(metricID string) bool {
	return strings.Contains(metricID, "keyRequest.count") || strings.Contains(metricID, "service")
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// uniformInt draws an integer from [min, max] inclusive, as a float64 so all
// values travel through the same JSON number field.
func (g *Generator) uniformInt(min, max int64) float64 {
	return float64(min + g.rng.Int63n(max-min+1))
}
