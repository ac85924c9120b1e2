package superhero

import "github.com/prometheus/client_golang/prometheus"

// Lookup outcomes recorded by lookupsTotal.
const (
	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

var lookupsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "superhero_lookups_total",
		Help: "Hero directory searches by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(lookupsTotal)
}
