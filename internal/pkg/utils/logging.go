package utils

import (
	"athena-relay-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String("event", event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}
	allFields = append(allFields, fields...)
	logger.Info("Business event", allFields...)
}
