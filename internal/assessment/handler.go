package assessment

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/kaiwen-teo/primeprep-lambda/internal/config"
	"github.com/kaiwen-teo/primeprep-lambda/internal/gemini"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	h.generateQuiz(w, r, readBody(r))
}

func (h *Handler) GenerateQuestionPaper(w http.ResponseWriter, r *http.Request) {
	h.generateQuestionPaper(w, r, readBody(r))
}

func (h *Handler) GenerateYearEndPaper(w http.ResponseWriter, r *http.Request) {
	h.generateYearEndPaper(w, r, readBody(r))
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	h.evaluate(w, r, readBody(r))
}

func (h *Handler) GetHint(w http.ResponseWriter, r *http.Request) {
	h.getHint(w, r, readBody(r))
}

// Dispatch serves the single-path deployment variant: the task identifier
// arrives in the 'path' query parameter or, failing that, a '__route' field
// inside the JSON body.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	body := readBody(r)

	task := strings.Trim(r.URL.Query().Get("path"), "/")
	if task == "" {
		var probe struct {
			Route string `json:"__route"`
		}
		if err := json.Unmarshal(body, &probe); err == nil {
			task = strings.Trim(probe.Route, "/")
		}
	}

	switch task {
	case "generate":
		h.generateQuiz(w, r, body)
	case "question-paper":
		h.generateQuestionPaper(w, r, body)
	case "generate-year-end":
		h.generateYearEndPaper(w, r, body)
	case "evaluate":
		h.evaluate(w, r, body)
	case "get-hint":
		h.getHint(w, r, body)
	default:
		config.JSONError(w, http.StatusNotFound, "Requested endpoint was not found.")
	}
}

func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request, body []byte) {
	var req QuizRequest
	if !decode(w, r, body, &req) {
		return
	}
	payload, err := h.service.GenerateQuiz(r.Context(), req)
	h.respond(w, r, payload, err)
}

func (h *Handler) generateQuestionPaper(w http.ResponseWriter, r *http.Request, body []byte) {
	var req QuestionPaperRequest
	if !decode(w, r, body, &req) {
		return
	}
	payload, err := h.service.GenerateQuestionPaper(r.Context(), req)
	h.respond(w, r, payload, err)
}

func (h *Handler) generateYearEndPaper(w http.ResponseWriter, r *http.Request, body []byte) {
	var req YearEndRequest
	if !decode(w, r, body, &req) {
		return
	}
	payload, err := h.service.GenerateYearEndPaper(r.Context(), req)
	h.respond(w, r, payload, err)
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request, body []byte) {
	var req EvaluationRequest
	if !decode(w, r, body, &req) {
		return
	}
	payload, err := h.service.Evaluate(r.Context(), req)
	h.respond(w, r, payload, err)
}

func (h *Handler) getHint(w http.ResponseWriter, r *http.Request, body []byte) {
	var req HintRequest
	if !decode(w, r, body, &req) {
		return
	}
	payload, err := h.service.GetHint(r.Context(), req)
	h.respond(w, r, payload, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload json.RawMessage, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, payload)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	var reqErr *RequestError
	var upErr *gemini.UpstreamError

	switch {
	case errors.As(err, &reqErr):
		log.Warnf("Rejected request: %s", reqErr.Message)
		config.JSONError(w, http.StatusBadRequest, reqErr.Message)
	case errors.Is(err, gemini.ErrNotConfigured):
		log.Error("Request received but the Gemini API key is not configured")
		config.JSONError(w, http.StatusInternalServerError, "API key is not configured on the server.")
	case errors.As(err, &upErr):
		log.WithError(err).Error("Upstream AI service failure")
		config.JSON(w, upErr.Code, map[string]string{
			"error":   "An error occurred with the AI service.",
			"details": upErr.Details,
		})
	case errors.Is(err, gemini.ErrInvalidResponse):
		config.JSONError(w, http.StatusInternalServerError, "Received an invalid response from the AI service.")
	case errors.Is(err, gemini.ErrMalformedJSON):
		config.JSONError(w, http.StatusInternalServerError, "Failed to parse LLM JSON response")
	default:
		log.WithError(err).Error("Unexpected failure handling request")
		config.JSONError(w, http.StatusInternalServerError, "An internal server error occurred.")
	}
}

func readBody(r *http.Request) []byte {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil
	}
	return body
}

// decode unmarshals the request body, writing the 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, body []byte, dst any) bool {
	if err := json.Unmarshal(body, dst); err != nil {
		log := config.WithContext(r.Context())
		log.WithError(err).Warn("Request body is not valid JSON")
		config.JSONError(w, http.StatusBadRequest, "Request body must be JSON.")
		return false
	}
	return true
}
