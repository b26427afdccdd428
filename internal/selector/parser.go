// Package selector implements the lossy scan of the Dynatrace metric-selector
// mini-language. It only detects which transformations a selector requests and
// strips them off to recover the base metric id; the transformation arguments
// themselves are never evaluated.
package selector

import (
	"strings"

	"github.com/dynasim/dynasim/domain"
)

const (
	markerFilter  = ":filter("
	markerSplitBy = ":splitBy("
	markerSort    = ":sort("
)

// markers in the fixed priority order used to cut off the base metric id.
// The first marker present in this order wins, not the leftmost one in the
// selector string.
var markers = []string{markerFilter, markerSplitBy, markerSort}

// Parse decomposes a metric selector into its base metric id and the set of
// requested transformations. It never fails: an empty selector yields an
// empty base id, and malformed input degrades to whatever prefix precedes
// the first recognized marker (or the whole string when none is present).
func Parse(metricSelector string) domain.ParsedSelector {
	parsed := domain.ParsedSelector{
		BaseMetricID: metricSelector,
		HasFilter:    strings.Contains(metricSelector, markerFilter),
		HasSplitBy:   strings.Contains(metricSelector, markerSplitBy),
		HasSort:      strings.Contains(metricSelector, markerSort),
	}

	for _, marker := range markers {
		if idx := strings.Index(metricSelector, marker); idx >= 0 {
			parsed.BaseMetricID = metricSelector[:idx]
			break
		}
	}

	return parsed
}
