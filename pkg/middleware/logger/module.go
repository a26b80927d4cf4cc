package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
)

func ProvideLogger(s *config.Settings) *zap.Logger { return NewLog(s.Log.File, s.Log) }

func ProvideLoggerMiddleware(s *config.Settings) *Middleware {
	return NewMiddleware(NewLog("http-access.log", s.Log), s.Log.BodyPaths...)
}

var Module = fx.Options(
	fx.Provide(ProvideLoggerMiddleware),
	fx.Provide(ProvideLogger),
)
