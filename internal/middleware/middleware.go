package middleware

import (
	"net/http"
	"strconv"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/handlers"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/metrics"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var ParseResumeHandler = Wrap(handlers.ParseResumeHandler)
var AnalyzeTextHandler = Wrap(handlers.AnalyzeTextHandler)
var MatchHandler = Wrap(handlers.MatchHandler)
var MatchJobsHandler = Wrap(handlers.MatchJobsHandler)
var HealthHandler = Wrap(handlers.HealthHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	re = rateLimiter(re)
	return re
}
