package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/adapter"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/api"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

var (
	handlerInstance *ResumeHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
	logMH           *logger_i.Logger
)

type ResumeHandler struct {
	service matching.Service
}

func InitHandlers(service matching.Service) {
	once.Do(func() {
		handlerInstance = &ResumeHandler{service: service}

		logRH = logger_i.NewLogger("ResumeHandler")
		logMH = logger_i.NewLogger("MatchingHandler")
		logRH.Info("Starting resume handlers")
	})
}

// ParseResumeHandler receives a resume via multipart/form-data under the
// "file" field, runs the full pipeline and returns the structured result.
func ParseResumeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	if fileMetadata.Size > config.MaxUploadSize {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large")
		return
	}

	contentType := fileMetadata.Header.Get("Content-Type")
	if contentType != "" && !allowedUploadTypes[contentType] {
		logRH.Warn("Rejected upload content type", "contentType", contentType)
		WriteErrorResponse(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	data, err := io.ReadAll(io.LimitReader(fileReader, config.MaxUploadSize+1))
	if err != nil {
		logRH.Error("Couldn't read uploaded file :", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error processing resume file")
		return
	}
	if int64(len(data)) > config.MaxUploadSize {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large")
		return
	}

	parsed, err := handlerInstance.service.ParseResume(r.Context(), data, fileMetadata.Filename)
	if err != nil {
		logRH.Error("Resume pipeline failed :", "file", fileMetadata.Filename, "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error processing resume file")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToResumeParseResponse(parsed))
}

// AnalyzeTextHandler is the raw-text variant of /parse-resume: same pipeline
// minus extraction.
func AnalyzeTextHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.AnalyzeTextRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the analyze-text reader :", err)
		}
	}(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad analyze-text request: ", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if requestData.ResumeText == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Resume text is required")
		return
	}

	fileName := requestData.FileName
	if fileName == "" {
		fileName = "resume.txt"
	}

	analysis, err := handlerInstance.service.AnalyzeText(r.Context(), requestData.ResumeText, fileName)
	if err != nil {
		logRH.Error("Text analysis failed :", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Error analyzing resume text")
		return
	}

	writeJsonResponse(w, http.StatusOK, analysis)
}
