// Package response shapes the Dynatrace Metrics V2 wire envelopes. The field
// layout follows what real API clients (e.g. the Grafana datasource plugin)
// unmarshal, so the simulator stays drop-in compatible.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dynasim/dynasim/domain"
)

// MetricListResponse is the envelope of GET /api/v2/metrics. NextPageKey is
// always null: the simulator does not paginate beyond the first page.
type MetricListResponse struct {
	TotalCount  int                       `json:"totalCount"`
	NextPageKey *string                   `json:"nextPageKey"`
	Metrics     []domain.MetricDefinition `json:"metrics"`
}

// MetricQueryResponse is the envelope of the data-points and query
// operations.
type MetricQueryResponse struct {
	TotalCount  int            `json:"totalCount"`
	NextPageKey *string        `json:"nextPageKey"`
	Resolution  string         `json:"resolution"`
	Result      []MetricResult `json:"result"`
}

// MetricResult wraps all series returned for one metric id. The two ratios
// are reported as 1.0: synthetic data is never downsampled.
type MetricResult struct {
	MetricID            string             `json:"metricId"`
	DataPointCountRatio float64            `json:"dataPointCountRatio"`
	DimensionCountRatio float64            `json:"dimensionCountRatio"`
	Data                []MetricSeriesData `json:"data"`
}

// MetricSeriesData is one series entry inside a result.
type MetricSeriesData struct {
	Dimensions   []string          `json:"dimensions"`
	DimensionMap map[string]string `json:"dimensionMap"`
	Timestamps   []int64           `json:"timestamps"`
	Values       []float64         `json:"values"`
}

// NewQueryResponse assembles the standard single-result envelope around the
// given series entries.
func NewQueryResponse(metricID, resolution string, data []MetricSeriesData) MetricQueryResponse {
	return MetricQueryResponse{
		TotalCount:  1,
		NextPageKey: nil,
		Resolution:  resolution,
		Result: []MetricResult{
			{
				MetricID:            metricID,
				DataPointCountRatio: 1.0,
				DimensionCountRatio: 1.0,
				Data:                data,
			},
		},
	}
}

// SeriesData converts a generated series into its wire form, keeping the
// dimensions/dimensionMap fields non-null for clients that range over them.
func SeriesData(s domain.Series) MetricSeriesData {
	data := MetricSeriesData{
		Dimensions:   s.Dimensions,
		DimensionMap: s.DimensionMap,
		Timestamps:   s.Timestamps,
		Values:       s.Values,
	}
	if data.Dimensions == nil {
		data.Dimensions = []string{}
	}
	if data.DimensionMap == nil {
		data.DimensionMap = map[string]string{}
	}
	return data
}

// DataPointsData converts flat data points into a single unsplit series
// entry.
func DataPointsData(points []domain.DataPoint) MetricSeriesData {
	timestamps := make([]int64, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		timestamps[i] = p.Timestamp
		values[i] = p.Value
	}
	return MetricSeriesData{
		Dimensions:   []string{},
		DimensionMap: map[string]string{},
		Timestamps:   timestamps,
		Values:       values,
	}
}

// WriteJSON serializes v with the vendor content type.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
