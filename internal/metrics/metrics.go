package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TaxiCountRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "taxidemand_taxi_count_rows",
		Help: "Taxi count rows held in memory after exclusions",
	})
	TaxiCountRowsExcluded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "taxidemand_taxi_count_rows_excluded",
		Help: "Taxi count rows dropped by the start boundary or bad-data window",
	})
	Regions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "taxidemand_regions",
		Help: "Region geometries held in memory",
	})
	LookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taxidemand_lookups_total",
		Help: "Total time series lookups by operation",
	}, []string{"operation"})
	EmptyResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taxidemand_empty_results_total",
		Help: "Total lookups that matched no rows",
	}, []string{"operation"})
	JoinMismatchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taxidemand_join_mismatches_total",
		Help: "Regions present on one side of the counts/geometry join only",
	}, []string{"kind"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "taxidemand_cache_hits_total",
		Help: "Total comparison cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "taxidemand_cache_misses_total",
		Help: "Total comparison cache misses",
	})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taxidemand_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "route", "status"})
)

// Виды расхождений при соединении счетчиков с геометрией
const (
	MismatchMissingGeometry = "missing_geometry"
	MismatchMissingCounts   = "missing_counts"
)

func init() {
	prometheus.MustRegister(TaxiCountRows)
	prometheus.MustRegister(TaxiCountRowsExcluded)
	prometheus.MustRegister(Regions)
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(EmptyResultsTotal)
	prometheus.MustRegister(JoinMismatchesTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(RequestDurationMs)
}
