package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
)

// Settings is the [metrics] config section.
type Settings struct {
	SkipPaths []string `toml:"skip_paths"`
}

// ProvideMetrics applies the [metrics] section and returns the /metrics handler.
func ProvideMetrics(s *config.Settings) (http.Handler, error) {
	var ms Settings
	if err := s.Decode("metrics", &ms); err != nil {
		return nil, err
	}
	AddMetricsSkipPaths(ms.SkipPaths...)
	return promhttp.Handler(), nil
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
)
