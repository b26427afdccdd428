package domain

// MetricDefinition describes one entry of the static metric catalog, in the
// shape the Dynatrace Metrics V2 API reports from GET /api/v2/metrics.
// Definitions are loaded once at startup and never mutated.
type MetricDefinition struct {
	MetricID             string                `json:"metricId"`
	DisplayName          string                `json:"displayName"`
	Description          string                `json:"description"`
	Unit                 string                `json:"unit"`
	AggregationTypes     []string              `json:"aggregationTypes"`
	Transformations      []string              `json:"transformations"`
	DefaultAggregation   Aggregation           `json:"defaultAggregation"`
	DimensionDefinitions []DimensionDefinition `json:"dimensionDefinitions"`
	EntityType           []string              `json:"entityType"`
}

// Aggregation is the default aggregation descriptor of a metric.
type Aggregation struct {
	Type string `json:"type"`
}

// DimensionDefinition is one labeled axis along which a metric can be split.
type DimensionDefinition struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Index int    `json:"index"`
	Type  string `json:"type"`
}

// DataPoint is a single synthetic measurement.
type DataPoint struct {
	Timestamp int64
	Value     float64
}

// Series is one time series of a query result. Timestamps and Values are
// aligned positionally and always have equal length. Dimensions holds the
// ordered dimension values; DimensionMap maps dimension keys (and their
// ".name" companions) to values. Both are empty for an unsplit series.
type Series struct {
	Dimensions   []string
	DimensionMap map[string]string
	Timestamps   []int64
	Values       []float64
}

// ParsedSelector is the decomposition of a metric-selector string into the
// base metric id plus the transformations the selector requested. It is
// recomputed per request and never stored.
type ParsedSelector struct {
	BaseMetricID string
	HasFilter    bool
	HasSplitBy   bool
	HasSort      bool
}

// TimeRange bounds a data-point query in epoch milliseconds, both ends
// inclusive. From > To is permitted and simply yields no points.
type TimeRange struct {
	From int64
	To   int64
}
