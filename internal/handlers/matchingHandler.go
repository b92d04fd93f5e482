package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/adapter"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/api"
)

const defaultMaxMatches = 10

// MatchHandler ranks jobs against a resume by embedding similarity.
func MatchHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logMH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.MatchRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logMH.Error("Couldn't close the match reader :", err)
		}
	}(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logMH.Warn("Bad match request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if requestData.ResumeText == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Resume text is required")
		return
	}
	if len(requestData.JobDescriptions) == 0 {
		WriteErrorResponse(w, http.StatusBadRequest, "At least one job description is required")
		return
	}

	start := time.Now()
	matches, err := handlerInstance.service.MatchByEmbedding(r.Context(), requestData.ResumeText, requestData.JobDescriptions)
	if err != nil {
		logMH.Error("Embedding match failed :", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error matching jobs")
		return
	}
	elapsedMs := int(time.Since(start).Milliseconds())

	writeJsonResponse(w, http.StatusOK, adapter.ToMatchResponse(matches, len(requestData.JobDescriptions), elapsedMs))
}

// MatchJobsHandler ranks jobs through the oracle, scores on the 0-100 scale.
func MatchJobsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logMH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.MatchJobsRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logMH.Error("Couldn't close the match-jobs reader :", err)
		}
	}(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logMH.Warn("Bad match-jobs request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if requestData.ResumeText == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "resumeText is required")
		return
	}
	if len(requestData.AvailableJobs) == 0 {
		WriteErrorResponse(w, http.StatusBadRequest, "availableJobs must not be empty")
		return
	}

	maxMatches := requestData.MaxMatches
	if maxMatches <= 0 {
		maxMatches = defaultMaxMatches
	}

	matches, err := handlerInstance.service.MatchByOracle(r.Context(), requestData.ResumeText, requestData.ResumeSkills, requestData.AvailableJobs, maxMatches)
	if err != nil {
		logMH.Error("Oracle match failed :", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error matching jobs")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToMatchJobsResponse(matches))
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{
		Status:  "healthy",
		Service: "resume-matcher",
	})
}
