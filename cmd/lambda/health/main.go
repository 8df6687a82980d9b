package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/handlers"
	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/pkg/lambda"
)

// The health check stays public and does not build the container
var healthHandler = handlers.NewHealthHandler(false, config.GetDeploymentMode())

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := handlers.Serve(middleware.NewAuthService(&middleware.AuthConfig{}), healthHandler.HandleHealth)(ctx, lambda.FromAPIGateway(event))
	if err != nil {
		return lambda.InternalError(middleware.CORSHeaders(false)), nil
	}
	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
