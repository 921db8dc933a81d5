package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type CalculationMetrics struct {
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
	ScheduleLength      prometheus.Histogram
}

var (
	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mortgage_engine_http_requests_total",
				Help: "Total number of HTTP requests received.",
			},
			[]string{"method", "path", "code"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mortgage_engine_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}

	Calculation = CalculationMetrics{
		CalculationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mortgage_engine_calculations_total",
				Help: "Total number of calculation engine invocations.",
			},
			[]string{"operation", "status"},
		),
		CalculationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mortgage_engine_calculation_duration_seconds",
				Help:    "Histogram of calculation latencies.",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"operation", "status"},
		),
		ScheduleLength: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mortgage_engine_schedule_length_periods",
				Help:    "Histogram of generated schedule lengths in periods.",
				Buckets: []float64{12, 60, 120, 180, 240, 300, 360, 480, 600},
			},
		),
	}
)

func RecordHTTPRequest(method, path string, code int, duration time.Duration) {
	codeLabel := strconv.Itoa(code)
	HTTP.RequestsTotal.WithLabelValues(method, path, codeLabel).Inc()
	HTTP.RequestDuration.WithLabelValues(method, path, codeLabel).Observe(duration.Seconds())
}

func RecordCalculation(operation, status string, duration time.Duration) {
	Calculation.CalculationsTotal.WithLabelValues(operation, status).Inc()
	Calculation.CalculationDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

func RecordScheduleLength(periods int) {
	Calculation.ScheduleLength.Observe(float64(periods))
}
