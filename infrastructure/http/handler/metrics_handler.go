package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dynasim/dynasim/domain"
	"github.com/dynasim/dynasim/infrastructure/http/middleware"
	"github.com/dynasim/dynasim/infrastructure/http/response"
	"github.com/dynasim/dynasim/infrastructure/service/logger"
	"github.com/dynasim/dynasim/internal/catalog"
	"github.com/dynasim/dynasim/internal/selector"
	"github.com/dynasim/dynasim/internal/series"
)

// MetricsHandler serves the three Metrics V2 read operations plus the
// unauthenticated health/root endpoints.
type MetricsHandler struct {
	catalog         *catalog.Catalog
	generator       *series.Generator
	logger          logger.Logger
	defaultPageSize int
	now             func() time.Time
}

func NewMetricsHandler(cat *catalog.Catalog, gen *series.Generator, log logger.Logger, defaultPageSize int) *MetricsHandler {
	return &MetricsHandler{
		catalog:         cat,
		generator:       gen,
		logger:          log,
		defaultPageSize: defaultPageSize,
		now:             time.Now,
	}
}

// RegisterRoutes wires the vendor API behind the auth middleware. The query
// route is registered before the {metricId} route so "query" is never
// captured as a metric id.
func (h *MetricsHandler) RegisterRoutes(router *mux.Router, auth *middleware.AuthMiddleware) {
	router.HandleFunc("/api/v2/metrics", auth.RequireAPIToken(h.ListMetrics)).Methods(http.MethodGet)
	router.HandleFunc("/api/v2/metrics/query", auth.RequireAPIToken(h.QueryMetrics)).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/api/v2/metrics/{metricId}", auth.RequireAPIToken(h.GetDataPoints)).Methods(http.MethodGet)

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/", h.Root).Methods(http.MethodGet)
}

// ListMetrics handles GET /api/v2/metrics.
//
// Query parameters: text (case-insensitive search over id and display name),
// metricSelector (substring match over id), pageSize (default 500). The
// response never carries a continuation key; totalCount reports the filtered
// count even when pageSize truncates the page.
func (h *MetricsHandler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSize := h.defaultPageSize
	if raw := q.Get("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, "Invalid parameter 'pageSize'")
			return
		}
		pageSize = parsed
	}

	filtered := h.catalog.Filter(q.Get("text"), q.Get("metricSelector"))

	page := filtered
	if len(page) > pageSize {
		page = page[:pageSize]
	}

	response.WriteJSON(w, http.StatusOK, response.MetricListResponse{
		TotalCount:  len(filtered),
		NextPageKey: nil,
		Metrics:     page,
	})
}

// GetDataPoints handles GET /api/v2/metrics/{metricId}.
//
// This is the strict path: the metric id must match a catalog entry exactly
// or the request fails with 404. 'from' is required; 'to' defaults to now;
// 'resolution' defaults to "1m".
func (h *MetricsHandler) GetDataPoints(w http.ResponseWriter, r *http.Request) {
	metricID := mux.Vars(r)["metricId"]
	q := r.URL.Query()

	fromRaw := q.Get("from")
	if fromRaw == "" {
		response.BadRequest(w, "Missing required parameter 'from'")
		return
	}
	from, err := strconv.ParseInt(fromRaw, 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid parameter 'from'")
		return
	}

	to := h.now().UnixMilli()
	if toRaw := q.Get("to"); toRaw != "" {
		to, err = strconv.ParseInt(toRaw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid parameter 'to'")
			return
		}
	}

	resolution := q.Get("resolution")
	if resolution == "" {
		resolution = "1m"
	}

	metric, err := h.catalog.FindByID(metricID)
	if err != nil {
		h.logger.Warn(r.Context(), "Metric lookup failed", map[string]interface{}{"metric_id": metricID})
		response.NotFound(w, fmt.Sprintf("Metric '%s' not found", metricID))
		return
	}

	points := h.generator.Generate(metric.MetricID, domain.TimeRange{From: from, To: to}, resolution)

	response.WriteJSON(w, http.StatusOK, response.NewQueryResponse(
		metric.MetricID,
		resolution,
		[]response.MetricSeriesData{response.DataPointsData(points)},
	))
}

// queryRequest is the body of POST /api/v2/metrics/query. From and To accept
// both JSON numbers and numeric strings, since clients send either.
type queryRequest struct {
	MetricSelector string      `json:"metricSelector"`
	From           json.Number `json:"from"`
	To             json.Number `json:"to"`
	Resolution     string      `json:"resolution"`
}

// QueryMetrics handles POST and GET /api/v2/metrics/query.
//
// This is the permissive path: the selector is parsed leniently and the base
// metric id is resolved with fallbacks, so the endpoint answers with data for
// almost any selector. A splitBy selector yields the multi-series form.
func (h *MetricsHandler) QueryMetrics(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	} else {
		q := r.URL.Query()
		req = queryRequest{
			MetricSelector: q.Get("metricSelector"),
			From:           json.Number(q.Get("from")),
			To:             json.Number(q.Get("to")),
			Resolution:     q.Get("resolution"),
		}
	}

	if req.From.String() == "" {
		response.BadRequest(w, "Missing required parameter 'from'")
		return
	}
	from, err := req.From.Int64()
	if err != nil {
		response.BadRequest(w, "Invalid parameter 'from'")
		return
	}

	to := h.now().UnixMilli()
	if req.To.String() != "" {
		to, err = req.To.Int64()
		if err != nil {
			response.BadRequest(w, "Invalid parameter 'to'")
			return
		}
	}

	resolution := req.Resolution
	if resolution == "" {
		resolution = "1m"
	}

	parsed := selector.Parse(req.MetricSelector)

	metric, err := h.catalog.Resolve(parsed.BaseMetricID)
	if err != nil {
		response.NotFound(w, fmt.Sprintf("No metrics found matching selector '%s'", req.MetricSelector))
		return
	}

	h.logger.Debug(r.Context(), "Resolved metric selector", map[string]interface{}{
		"metric_selector": req.MetricSelector,
		"base_metric_id":  parsed.BaseMetricID,
		"metric_id":       metric.MetricID,
		"split_by":        parsed.HasSplitBy,
	})

	tr := domain.TimeRange{From: from, To: to}

	var data []response.MetricSeriesData
	if parsed.HasSplitBy {
		for _, s := range h.generator.GenerateMultiSeries(metric.MetricID, tr, resolution) {
			data = append(data, response.SeriesData(s))
		}
	} else {
		data = []response.MetricSeriesData{
			response.DataPointsData(h.generator.Generate(metric.MetricID, tr, resolution)),
		}
	}

	response.WriteJSON(w, http.StatusOK, response.NewQueryResponse(metric.MetricID, resolution, data))
}

// Health handles GET /health.
func (h *MetricsHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Dynatrace API Simulator is running",
	})
}

// Root handles GET / with a short API description.
func (h *MetricsHandler) Root(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Dynatrace Metrics V2 API Simulator",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"list_metrics":    "GET /api/v2/metrics",
			"get_metric_data": "GET /api/v2/metrics/{metricId}",
			"query_metrics":   "POST /api/v2/metrics/query",
			"health":          "GET /health",
		},
	})
}
