package server

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/adapters/opendata"
	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/logging"
	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	RestaurantService services.RestaurantService
	DistrictService   services.DistrictService
	AuthService       *middleware.AuthService
	Sources           *opendata.Registry
	Mode              string

	// Internal dependencies
	services     *services.ServiceContainer
	closeLogging func() error
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	closeLogging, err := logging.Configure(logrus.StandardLogger(), cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	if cfg.Upstream.APIKey == "" {
		logrus.Warn("PUBLIC_DATA_KEY is not set, upstream calls will be rejected")
	}

	sources, err := opendata.NewRegistry(cfg.Upstream)
	if err != nil {
		_ = closeLogging()
		return nil, fmt.Errorf("failed to create source registry: %w", err)
	}

	// Per-call deadlines come from the request context
	client := opendata.NewClient(cfg.Upstream, &http.Client{})

	serviceContainer, err := services.NewServiceContainer(client, sources, &services.ServiceConfig{
		Listing:         cfg.Listing,
		Districts:       cfg.Districts,
		UpstreamTimeout: cfg.Upstream.Timeout,
	})
	if err != nil {
		_ = closeLogging()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	authService := middleware.NewAuthService(&middleware.AuthConfig{
		JWTSecret: cfg.Auth.Secret,
		Issuer:    cfg.Auth.Issuer,
	})

	mode := config.GetDeploymentMode()
	logrus.WithFields(logrus.Fields{
		"environment":    cfg.Environment,
		"mode":           mode,
		"function_name":  config.FunctionName(),
		"default_source": sources.Default().Name,
		"district_match": cfg.Listing.DistrictMatch,
		"auth_enabled":   authService.Enabled(),
	}).Info("Container initialized")

	return &Container{
		Config:            cfg,
		RestaurantService: serviceContainer.RestaurantService,
		DistrictService:   serviceContainer.DistrictService,
		AuthService:       authService,
		Sources:           sources,
		Mode:              mode,
		services:          serviceContainer,
		closeLogging:      closeLogging,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}

	if c.closeLogging != nil {
		if err := c.closeLogging(); err != nil {
			return fmt.Errorf("failed to close log forwarding: %w", err)
		}
	}

	return nil
}
