package config

import (
	"os"
	"sync"
	"time"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
}

var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsLambda:     isRunningInLambda(),
			FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		}
	})
	return serverlessConfig
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// FunctionName returns the Lambda function name, or "" outside Lambda
func FunctionName() string {
	return GetServerlessConfig().FunctionName
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// Deployment modes reported by the health check
const (
	ModeServerless = "serverless"
	ModeServer     = "server"
)

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	return deploymentMode(IsServerlessMode())
}

func deploymentMode(isLambda bool) string {
	if isLambda {
		return ModeServerless
	}
	return ModeServer
}

// lambdaTimeoutBudget is the default function timeout configured for the
// proxy functions. Upstream calls must finish before it.
const lambdaTimeoutBudget = 29 * time.Second

// AdaptConfigForServerless modifies configuration for serverless deployment
func AdaptConfigForServerless(config *Config) *Config {
	if !IsServerlessMode() {
		return config
	}
	return adaptForLambda(config, GetEnvAsInt("AWS_LAMBDA_TIMEOUT_SECONDS", int(lambdaTimeoutBudget/time.Second)))
}

func adaptForLambda(config *Config, functionTimeoutSeconds int) *Config {
	// CloudWatch parses JSON lines into fields
	config.Logging.Format = "json"

	// Leave a second for writing the failure envelope
	budget := time.Duration(functionTimeoutSeconds)*time.Second - time.Second
	if budget > 0 {
		if config.Upstream.Timeout > budget {
			config.Upstream.Timeout = budget
		}
		if config.Districts.Timeout > budget {
			config.Districts.Timeout = budget
		}
	}

	return config
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	config = AdaptConfigForServerless(config)

	return config, nil
}
