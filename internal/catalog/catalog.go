// Package catalog holds the static set of metric definitions the simulator
// advertises. The catalog is built once at startup and passed explicitly to
// whoever needs it; nothing here mutates after construction.
package catalog

import (
	"errors"
	"strings"

	"github.com/dynasim/dynasim/domain"
)

// ErrMetricNotFound is reported by the strict lookup path when no definition
// matches the requested id, and by both paths when the catalog is empty.
var ErrMetricNotFound = errors.New("metric not found")

// Catalog is an immutable, ordered collection of metric definitions.
type Catalog struct {
	metrics []domain.MetricDefinition
}

// New builds a catalog from the given definitions. The slice is copied so the
// catalog cannot be mutated through the caller's reference.
func New(metrics []domain.MetricDefinition) *Catalog {
	owned := make([]domain.MetricDefinition, len(metrics))
	copy(owned, metrics)
	return &Catalog{metrics: owned}
}

// All returns the catalog entries in definition order.
func (c *Catalog) All() []domain.MetricDefinition {
	return c.metrics
}

// Len reports the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.metrics)
}

// FindByID is the strict lookup used by the direct data-points endpoint:
// exact metricId match or ErrMetricNotFound.
func (c *Catalog) FindByID(metricID string) (domain.MetricDefinition, error) {
	for _, m := range c.metrics {
		if m.MetricID == metricID {
			return m, nil
		}
	}
	return domain.MetricDefinition{}, ErrMetricNotFound
}

// Resolve is the permissive lookup used by the query endpoint. The fallback
// is deliberate simulator behavior so queries almost always return data:
//
//  1. exact metricId match
//  2. first entry whose metricId contains baseMetricID as a substring
//     (skipped for an empty base id)
//  3. the first catalog entry
//
// Only an empty catalog reports ErrMetricNotFound.
func (c *Catalog) Resolve(baseMetricID string) (domain.MetricDefinition, error) {
	if m, err := c.FindByID(baseMetricID); err == nil {
		return m, nil
	}

	if baseMetricID != "" {
		for _, m := range c.metrics {
			if strings.Contains(m.MetricID, baseMetricID) {
				return m, nil
			}
		}
	}

	if len(c.metrics) > 0 {
		return c.metrics[0], nil
	}
	return domain.MetricDefinition{}, ErrMetricNotFound
}

// Filter narrows the catalog for the list endpoint. text matches
// case-insensitively against metricId and displayName; metricSelector
// matches as a raw substring of metricId. Empty arguments do not filter.
func (c *Catalog) Filter(text, metricSelector string) []domain.MetricDefinition {
	filtered := make([]domain.MetricDefinition, 0, len(c.metrics))
	lowerText := strings.ToLower(text)

	for _, m := range c.metrics {
		if text != "" &&
			!strings.Contains(strings.ToLower(m.MetricID), lowerText) &&
			!strings.Contains(strings.ToLower(m.DisplayName), lowerText) {
			continue
		}
		if metricSelector != "" && !strings.Contains(m.MetricID, metricSelector) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}
