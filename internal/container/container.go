package container

import (
	"github.com/kaiwen-teo/primeprep-lambda/internal/assessment"
	"github.com/kaiwen-teo/primeprep-lambda/internal/config"
)

type Container struct {
	AssessmentContainer *assessment.AssessmentContainer
}

func New() *Container {
	config.Init()

	return &Container{
		AssessmentContainer: assessment.NewAssessmentContainer(),
	}
}
