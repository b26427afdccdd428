package catalog

import "github.com/dynasim/dynasim/domain"

// Default returns the compiled-in metric catalog the simulator ships with.
// The entries mirror a representative slice of the Dynatrace builtin metric
// namespace so clients built against the real API see familiar ids.
func Default() *Catalog {
	return New([]domain.MetricDefinition{
		{
			MetricID:           "builtin:host.cpu.usage",
			DisplayName:        "CPU usage %",
			Description:        "Percentage of CPU used",
			Unit:               "Percent",
			AggregationTypes:   []string{"avg", "min", "max"},
			Transformations:    []string{},
			DefaultAggregation: domain.Aggregation{Type: "avg"},
			DimensionDefinitions: []domain.DimensionDefinition{
				{Key: "dt.entity.host", Name: "Host", Index: 0, Type: "ENTITY"},
			},
			EntityType: []string{"HOST"},
		},
		{
			MetricID:           "builtin:host.mem.usage",
			DisplayName:        "Memory usage %",
			Description:        "Percentage of memory used",
			Unit:               "Percent",
			AggregationTypes:   []string{"avg", "min", "max"},
			Transformations:    []string{},
			DefaultAggregation: domain.Aggregation{Type: "avg"},
			DimensionDefinitions: []domain.DimensionDefinition{
				{Key: "dt.entity.host", Name: "Host", Index: 0, Type: "ENTITY"},
			},
			EntityType: []string{"HOST"},
		},
		{
			MetricID:           "builtin:service.response.time",
			DisplayName:        "Response time",
			Description:        "Average response time of service",
			Unit:               "MicroSecond",
			AggregationTypes:   []string{"avg", "min", "max", "percentile"},
			Transformations:    []string{},
			DefaultAggregation: domain.Aggregation{Type: "avg"},
			DimensionDefinitions: []domain.DimensionDefinition{
				{Key: "dt.entity.service", Name: "Service", Index: 0, Type: "ENTITY"},
			},
			EntityType: []string{"SERVICE"},
		},
		{
			MetricID:           "builtin:service.request.count",
			DisplayName:        "Request count",
			Description:        "Number of requests to service",
			Unit:               "Count",
			AggregationTypes:   []string{"count", "sum", "avg"},
			Transformations:    []string{},
			DefaultAggregation: domain.Aggregation{Type: "count"},
			DimensionDefinitions: []domain.DimensionDefinition{
				{Key: "dt.entity.service", Name: "Service", Index: 0, Type: "ENTITY"},
			},
			EntityType: []string{"SERVICE"},
		},
		{
			MetricID:           "builtin:service.keyRequest.count.total",
			DisplayName:        "Key request count",
			Description:        "Number of calls to key requests",
			Unit:               "Count",
			AggregationTypes:   []string{"count", "sum", "avg"},
			Transformations:    []string{"filter", "splitBy", "sort"},
			DefaultAggregation: domain.Aggregation{Type: "count"},
			DimensionDefinitions: []domain.DimensionDefinition{
				{Key: "dt.entity.service_method", Name: "Service method", Index: 0, Type: "ENTITY"},
			},
			EntityType: []string{"SERVICE_METHOD"},
		},
		{
			MetricID:           "builtin:host.disk.avail",
			DisplayName:        "Available disk space",
			Description:        "Available disk space in bytes",
			Unit:               "Byte",
			AggregationTypes:   []string{"avg", "min", "max"},
			Transformations:    []string{},
			DefaultAggregation: domain.Aggregation{Type: "avg"},
			DimensionDefinitions: []domain.DimensionDefinition{
				{Key: "dt.entity.host", Name: "Host", Index: 0, Type: "ENTITY"},
				{Key: "dt.entity.disk", Name: "Disk", Index: 1, Type: "ENTITY"},
			},
			EntityType: []string{"HOST"},
		},
		{
			MetricID:           "builtin:apps.other.crashCount.osAndVersion",
			DisplayName:        "Crash count by OS and version",
			Description:        "Number of application crashes grouped by OS and version",
			Unit:               "Count",
			AggregationTypes:   []string{"count", "sum"},
			Transformations:    []string{"filter", "splitBy", "sort"},
			DefaultAggregation: domain.Aggregation{Type: "count"},
			DimensionDefinitions: []domain.DimensionDefinition{
				{Key: "dt.entity.device_application", Name: "Mobile Application", Index: 0, Type: "ENTITY"},
				{Key: "dt.entity.os", Name: "Operating System", Index: 1, Type: "ENTITY"},
				{Key: "osVersion", Name: "OS Version", Index: 2, Type: "STRING"},
			},
			EntityType: []string{"MOBILE_APPLICATION"},
		},
	})
}
