package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/handlers"
	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetContainerManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return lambda.InternalError(middleware.CORSHeaders(false)), nil
	}

	restaurantHandler := handlers.NewRestaurantHandler(
		container.RestaurantService,
		container.Config.Listing,
		container.AuthService.Enabled(),
	)

	resp, err := handlers.Serve(container.AuthService, restaurantHandler.HandleList)(ctx, lambda.FromAPIGateway(event))
	if err != nil {
		logrus.WithError(err).Error("Restaurant handler failed")
		return lambda.InternalError(middleware.CORSHeaders(false)), nil
	}

	return resp.ToAPIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
