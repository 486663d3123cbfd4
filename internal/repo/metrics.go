package repo

import "github.com/prometheus/client_golang/prometheus"

// storeOps counts adapter calls by operation and outcome
// (ok, invalid_identifier, other).
var storeOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "qa_store_operations_total",
		Help: "Store adapter operations by outcome.",
	},
	[]string{"op", "outcome"},
)

func init() {
	prometheus.MustRegister(storeOps)
}

// observe records the outcome of op and returns err unchanged.
func observe(op string, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = KindOf(err).String()
	}
	storeOps.WithLabelValues(op, outcome).Inc()
	return err
}
