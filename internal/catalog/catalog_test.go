package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynasim/dynasim/domain"
)

func testCatalog() *Catalog {
	return New([]domain.MetricDefinition{
		{MetricID: "builtin:host.cpu.usage", DisplayName: "CPU usage %"},
		{MetricID: "builtin:service.response.time", DisplayName: "Response time"},
		{MetricID: "builtin:service.keyRequest.count.total", DisplayName: "Key request count"},
	})
}

func TestFindByID(t *testing.T) {
	c := testCatalog()

	m, err := c.FindByID("builtin:service.response.time")
	require.NoError(t, err)
	assert.Equal(t, "builtin:service.response.time", m.MetricID)

	// Strict path: substrings are not good enough.
	_, err = c.FindByID("service.response")
	assert.ErrorIs(t, err, ErrMetricNotFound)

	_, err = c.FindByID("")
	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestResolve(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name         string
		baseMetricID string
		expectedID   string
	}{
		{
			name:         "exact match",
			baseMetricID: "builtin:service.keyRequest.count.total",
			expectedID:   "builtin:service.keyRequest.count.total",
		},
		{
			name:         "substring match picks first containing entry",
			baseMetricID: "service",
			expectedID:   "builtin:service.response.time",
		},
		{
			name:         "no match falls back to first entry",
			baseMetricID: "builtin:synthetic.browser.availability",
			expectedID:   "builtin:host.cpu.usage",
		},
		{
			name:         "empty base id falls back to first entry",
			baseMetricID: "",
			expectedID:   "builtin:host.cpu.usage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := c.Resolve(tt.baseMetricID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, m.MetricID)
		})
	}
}

func TestEmptyCatalog(t *testing.T) {
	c := New(nil)

	_, err := c.FindByID("builtin:host.cpu.usage")
	assert.ErrorIs(t, err, ErrMetricNotFound)

	_, err = c.Resolve("builtin:host.cpu.usage")
	assert.ErrorIs(t, err, ErrMetricNotFound)

	_, err = c.Resolve("")
	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestFilter(t *testing.T) {
	c := testCatalog()

	assert.Len(t, c.Filter("", ""), 3)

	// Text filter matches metricId or displayName, case-insensitively.
	byText := c.Filter("RESPONSE", "")
	require.Len(t, byText, 1)
	assert.Equal(t, "builtin:service.response.time", byText[0].MetricID)

	// Selector filter is a raw substring match on metricId.
	bySelector := c.Filter("", "builtin:service")
	assert.Len(t, bySelector, 2)

	assert.Empty(t, c.Filter("nonexistent", ""))
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Equal(t, 7, c.Len())

	for _, id := range []string{
		"builtin:host.cpu.usage",
		"builtin:service.keyRequest.count.total",
		"builtin:apps.other.crashCount.osAndVersion",
	} {
		_, err := c.FindByID(id)
		assert.NoError(t, err, id)
	}
}
