package logger

import "go.uber.org/zap"

func ProvideLoggerMiddleware() *Middleware { return New(newAccessLog(Dir())) }
func ProvideLogger() *zap.Logger           { return NewLog(Dir(), "system.log") }
