package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "agency", Name: "submissions_total", Help: "Number of documents created through the API, by collection."},
		[]string{"collection"},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "agency", Name: "store_errors_total", Help: "Number of failed document store operations, by collection and operation."},
		[]string{"collection", "operation"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SubmissionsCreated)
	reg.MustRegister(StoreErrors)
}
