// bundlefx/bundlefx.go
package bundlefx

import (
	"go.uber.org/fx"

	"github.com/joeydtaylor/steeze-pages/pkg/middleware/auth"
	"github.com/joeydtaylor/steeze-pages/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-pages/pkg/middleware/metrics"
)

// Module provides the logger, the access log, auth and the /metrics handler.
// It expects a *config.Settings in the graph.
var Module = fx.Options(
	logger.Module,
	auth.Module,
	metrics.Module,
)
