package assessment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Dispatch)
	r.Post("/generate", h.GenerateQuiz)
	r.Post("/question-paper", h.GenerateQuestionPaper)
	r.Post("/generate-year-end", h.GenerateYearEndPaper)
	r.Post("/evaluate", h.Evaluate)
	r.Post("/get-hint", h.GetHint)
	return r
}
