package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// NewMiddleware returns a huma middleware that attaches a fresh LogData to each
// request context and emits a single completion entry per operation.
func NewMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID
		log.Infof("Handler.%v.Start", operationID)

		logData := NewLogData(log)
		ctx = huma.WithValue(ctx, logDataKey, logData)

		endTimer := logData.AddTiming("duration")
		next(ctx)
		endTimer()

		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
