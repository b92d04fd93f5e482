package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/adapter"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(error, httpCode))
}

func validateContext(ctx context.Context) bool {
	log := logRH
	if traceId, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		log = logRH.With("traceId", traceId)
	}
	if ctx.Err() != nil {
		log.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		log.Warn("context cancelled")
		return false
	default:
		return true

	}
}

// allowedUploadTypes are the declared content types /parse-resume accepts.
// Anything else is rejected up front rather than degraded silently.
var allowedUploadTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}
