package serverless

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	log "github.com/sirupsen/logrus"
)

var fiberLambda *fiberadapter.FiberLambda

// Handler is the AWS Lambda handler. The fiber app is attached to the
// adapter on the first invocation.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if fiberLambda == nil {
		log.Info("initializing fiber app for AWS Lambda")
		fiberLambda = fiberadapter.New(GetApp())
	}

	return fiberLambda.ProxyWithContext(ctx, req)
}

// LambdaMain is the AWS Lambda entrypoint.
func LambdaMain() {
	lambda.Start(Handler)
}
