package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cities-in-motion/internal/config"
	"github.com/cities-in-motion/internal/dataset"
	httpDelivery "github.com/cities-in-motion/internal/delivery/http"
	"github.com/cities-in-motion/internal/delivery/http/handler"
	"github.com/cities-in-motion/internal/domain"
	"github.com/cities-in-motion/internal/repository/cache"
	"github.com/cities-in-motion/internal/repository/file"
	"github.com/cities-in-motion/internal/usecase"
)

func newTestServer(t *testing.T) *httpDelivery.Server {
	t.Helper()
	logger := zap.NewNop()

	var records []domain.TaxiCountRecord
	for _, r := range []struct {
		key    string
		region string
		count  int
	}{
		{"20160916130000", "Bedok", 40},
		{"20160916130000", "Choa Chu Kang", 12},
		{"20200401080000", "Bedok", 25},
	} {
		k, ts, err := domain.ParseSnapshotKey(r.key)
		require.NoError(t, err)
		records = append(records, domain.TaxiCountRecord{Timestamp: ts, Key: k, Region: r.region, TaxiCount: r.count})
	}
	counts := file.NewTaxiCountTable(records)

	square := func(lon, lat float64) orb.Polygon {
		return orb.Polygon{{{lon, lat}, {lon + 0.02, lat}, {lon + 0.02, lat + 0.02}, {lon, lat + 0.02}, {lon, lat}}}
	}
	regions, err := file.NewRegionTable([]domain.Region{
		{Name: "Bedok", Boundary: square(103.92, 1.31), Properties: geojson.Properties{"name": "Bedok"}},
		{Name: "Choa Chu Kang", Boundary: square(103.73, 1.37), Properties: geojson.Properties{"name": "Choa Chu Kang"}},
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, CORSAllowOrigins: "*"},
		Dashboard: config.DashboardConfig{
			DefaultBaselineDate: "2016-09-16",
			DefaultAnalysisDate: "2020-04-01",
		},
	}

	countsUC := usecase.NewCountsUseCase(counts, logger)
	regionUC := usecase.NewRegionUseCase(regions, logger)
	comparisonUC := usecase.NewComparisonUseCase(counts, regions, cache.NewNoopRepository(), logger, 0)
	dashboardUC := usecase.NewDashboardUseCase(counts, regions, dataset.New(counts, regions), &cfg.Dashboard, logger)

	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewCountsHandler(countsUC, logger),
		handler.NewRegionHandler(regionUC, logger),
		handler.NewComparisonHandler(comparisonUC, logger),
		handler.NewDashboardHandler(dashboardUC, logger),
	)
}

func doGet(t *testing.T, s *httpDelivery.Server, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func decode(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	e, ok := decode(t, body)["error"].(map[string]interface{})
	require.True(t, ok, string(body))
	return e["code"].(string)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	resp, body := doGet(t, s, "/api/v1/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode(t, body)
	assert.Equal(t, "healthy", out["status"])
	summary := out["dataset"].(map[string]interface{})
	assert.EqualValues(t, 3, summary["taxi_counts"].(map[string]interface{})["rows"])

	loadedAt, err := time.Parse(time.RFC3339Nano, summary["loaded_at"].(string))
	require.NoError(t, err)
	assert.False(t, loadedAt.IsZero())
	assert.WithinDuration(t, time.Now(), loadedAt, time.Minute)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServer_RequestIDPropagated(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestServer_Counts(t *testing.T) {
	s := newTestServer(t)

	t.Run("day with data", func(t *testing.T) {
		resp, body := doGet(t, s, "/api/v1/counts?date=2016-09-16")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		out := decode(t, body)
		data := out["data"].(map[string]interface{})
		assert.Equal(t, false, data["empty"])
		assert.Len(t, data["records"], 2)
		assert.EqualValues(t, 2, out["meta"].(map[string]interface{})["total"])
	})

	t.Run("day without data is empty, not an error", func(t *testing.T) {
		resp, body := doGet(t, s, "/api/v1/counts?date=2018-01-01")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := decode(t, body)["data"].(map[string]interface{})
		assert.Equal(t, true, data["empty"])
		assert.Empty(t, data["records"])
	})

	t.Run("malformed date is a client error", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/counts",
			"/api/v1/counts?date=2016-9-16",
			"/api/v1/counts?date=16/09/2016",
		} {
			resp, body := doGet(t, s, target)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
			assert.Equal(t, "INVALID_REQUEST", errorCode(t, body), target)
		}
	})
}

func TestServer_CountsWindow(t *testing.T) {
	s := newTestServer(t)

	resp, body := doGet(t, s, "/api/v1/counts/window?date=2020-04-01&time=07:00&duration=2&unit=Hour")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decode(t, body)["data"].(map[string]interface{})
	assert.Len(t, data["records"], 1)
	assert.Equal(t, "Hour", data["unit"])

	resp, _ = doGet(t, s, "/api/v1/counts/window?date=2020-04-01&unit=Fortnights")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doGet(t, s, "/api/v1/counts/window?date=2020-04-01&duration=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doGet(t, s, "/api/v1/counts/window?date=2020-04-01&time=25:00")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Regions(t *testing.T) {
	s := newTestServer(t)

	resp, body := doGet(t, s, "/api/v1/regions")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))

	fc, err := geojson.UnmarshalFeatureCollection(body)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "Bedok", fc.Features[0].Properties["name"])
	assert.Equal(t, "Choa Chu Kang", fc.Features[1].Properties["name"])

	resp, body = doGet(t, s, "/api/v1/regions/Choa%20Chu%20Kang")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	f, err := geojson.UnmarshalFeature(body)
	require.NoError(t, err)
	assert.Equal(t, "Choa Chu Kang", f.Properties["name"])

	resp, body = doGet(t, s, "/api/v1/regions/Atlantis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "REGION_NOT_FOUND", errorCode(t, body))
}

func TestServer_Comparison(t *testing.T) {
	s := newTestServer(t)

	t.Run("one side without data", func(t *testing.T) {
		resp, body := doGet(t, s, "/api/v1/comparison?baseline=2016-09-16&analysis=2019-05-05")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := decode(t, body)["data"].(map[string]interface{})
		baseline := data["baseline"].(map[string]interface{})
		analysis := data["analysis"].(map[string]interface{})

		assert.Equal(t, false, baseline["empty"])
		assert.EqualValues(t, 52, baseline["summary"].(map[string]interface{})["total_taxi_count"])
		assert.Equal(t, true, analysis["empty"])

		features := analysis["map"].(map[string]interface{})["features"].([]interface{})
		require.Len(t, features, 2)
		for _, f := range features {
			props := f.(map[string]interface{})["properties"].(map[string]interface{})
			v, ok := props["taxi_count"]
			assert.True(t, ok)
			assert.Nil(t, v)
		}

		change := data["change"].(map[string]interface{})
		assert.Nil(t, change["absolute"])
		assert.Nil(t, change["percent"])
	})

	t.Run("missing analysis date", func(t *testing.T) {
		resp, body := doGet(t, s, "/api/v1/comparison?baseline=2016-09-16")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, body))
	})
}

func TestServer_DashboardDefaults(t *testing.T) {
	s := newTestServer(t)

	resp, body := doGet(t, s, "/api/v1/dashboard/defaults")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decode(t, body)["data"].(map[string]interface{})
	assert.Equal(t, "2016-09-16", data["baseline_date"])
	assert.Equal(t, "2020-04-01", data["analysis_date"])
	assert.Len(t, data["districts"], 4)
}

func TestServer_MetricsAndUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	doGet(t, s, "/api/v1/counts?date=2016-09-16")
	resp, body := doGet(t, s, "/api/v1/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "taxidemand_lookups_total")

	resp, body = doGet(t, s, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}
