package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Calculations     *prometheus.CounterVec
	ValidationErrors prometheus.Counter
	LookupSeconds    *prometheus.HistogramVec
	LookupMatches    prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Calculations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "vorfix_calculations_total",
			Help: "Total number of processed calculation requests.",
		}, []string{"mode", "status"}),
		ValidationErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vorfix_validation_errors_total",
			Help: "Total number of requests rejected by input validation.",
		}),
		LookupSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vorfix_navdata_lookup_duration_seconds",
			Help:    "Duration of navigation data file scans.",
			Buckets: prometheus.DefBuckets,
		}, []string{"format"}),
		LookupMatches: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "vorfix_navdata_lookup_matches",
			Help:    "Number of entries returned per navigation data lookup.",
			Buckets: []float64{0, 1, 2, 5, 10},
		}),
	}
}
