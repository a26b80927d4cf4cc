package action

import "github.com/prometheus/client_golang/prometheus"

var dispatchedActions = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "dispatched_actions_total", Help: "actions invoked by extension point"},
	[]string{"point"},
)

func init() {
	prometheus.MustRegister(dispatchedActions)
}
