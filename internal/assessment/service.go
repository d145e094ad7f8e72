package assessment

import (
	"context"
	"encoding/json"

	"github.com/kaiwen-teo/primeprep-lambda/internal/config"
	"github.com/kaiwen-teo/primeprep-lambda/internal/gemini"
)

type Service interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) (json.RawMessage, error)
	GenerateQuestionPaper(ctx context.Context, req QuestionPaperRequest) (json.RawMessage, error)
	GenerateYearEndPaper(ctx context.Context, req YearEndRequest) (json.RawMessage, error)
	Evaluate(ctx context.Context, req EvaluationRequest) (json.RawMessage, error)
	GetHint(ctx context.Context, req HintRequest) (json.RawMessage, error)
}

type service struct {
	provider gemini.Provider
}

func NewService(provider gemini.Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuiz(ctx context.Context, req QuizRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := config.WithContext(ctx)
	log.Infof("Generating quiz: %s / %s / %s", req.Subject, req.Topic, req.Difficulty)

	return s.provider.Generate(ctx, BuildQuizPrompt(req), quizSchema)
}

func (s *service) GenerateQuestionPaper(ctx context.Context, req QuestionPaperRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	count, err := req.ResolveCount()
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, &RequestError{"'questionCount' must be at least 1."}
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	log := config.WithContext(ctx)
	log.Infof("Generating question paper: %s / %s, %d questions", req.ClassLevel, req.Subject, count)

	return s.provider.Generate(ctx, BuildQuestionPaperPrompt(req, count), questionPaperSchema)
}

func (s *service) GenerateYearEndPaper(ctx context.Context, req YearEndRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := config.WithContext(ctx)
	log.Infof("Generating year-end paper for %s", req.ClassLevel)

	return s.provider.Generate(ctx, BuildYearEndPrompt(req), yearEndSchema)
}

func (s *service) Evaluate(ctx context.Context, req EvaluationRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := config.WithContext(ctx)
	log.Infof("Evaluating %d answers", len(req.Questions))

	return s.provider.Generate(ctx, BuildEvaluationPrompt(req), evaluationSchema)
}

func (s *service) GetHint(ctx context.Context, req HintRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Hints are plain text; no schema descriptor is attached.
	return s.provider.Generate(ctx, BuildHintPrompt(req), nil)
}
