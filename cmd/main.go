package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kaiwen-teo/primeprep-lambda/internal/container"
	"github.com/kaiwen-teo/primeprep-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func lambdaHandler(req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.Proxy(req)
}

func main() {
	_ = godotenv.Load()

	c := container.New()
	r := router.New(router.RouterConfig{
		AssessmentHandler: c.AssessmentContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(lambdaHandler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	logrus.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
