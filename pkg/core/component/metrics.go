package component

import "github.com/prometheus/client_golang/prometheus"

var renderedComponents = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "rendered_components_total", Help: "components through the render pipeline by outcome"},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(renderedComponents)
}
