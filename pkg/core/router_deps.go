package core

import (
	"net/http"

	"github.com/joeydtaylor/steeze-activities/pkg/middleware/logger"
	httpx "github.com/joeydtaylor/steeze-activities/pkg/transport/httpx"
	"go.uber.org/zap"
)

type BuildDeps struct {
	LogMW    *logger.Middleware
	Metrics  http.Handler
	Router   httpx.Router
	Handlers Handlers
	Static   http.Handler // mounted at /static when set
	Log      *zap.Logger
}
