package assessment

import (
	"context"

	"github.com/kaiwen-teo/primeprep-lambda/internal/gemini"
)

type AssessmentContainer struct {
	Handler *Handler
}

func NewAssessmentContainer() *AssessmentContainer {
	ctx := context.Background()
	provider := gemini.NewProvider(ctx)
	service := NewService(provider)
	handler := NewHandler(service)

	return &AssessmentContainer{
		Handler: handler,
	}
}
