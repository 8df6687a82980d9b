package lambda

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/pkg/server"
)

// ContainerManager keeps the dependency container alive across warm
// invocations of a Lambda function.
type ContainerManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	initOnce    sync.Once
	initErr     error
	loadConfig  func() (*config.Config, error)
}

var errContainerReleased = errors.New("container has been released")

var (
	globalContainerManager *ContainerManager
	containerManagerOnce   sync.Once
)

// GetContainerManager returns the global container manager instance
func GetContainerManager() *ContainerManager {
	containerManagerOnce.Do(func() {
		globalContainerManager = NewContainerManager(config.GetOptimizedConfig)
	})
	return globalContainerManager
}

// NewContainerManager creates a manager that builds its container from
// loadConfig on first use.
func NewContainerManager(loadConfig func() (*config.Config, error)) *ContainerManager {
	return &ContainerManager{loadConfig: loadConfig}
}

// Initialize builds the container once. Later calls return the first result.
func (cm *ContainerManager) Initialize(cfg *config.Config) error {
	cm.initOnce.Do(func() {
		container, err := server.NewContainer(cfg)

		cm.mu.Lock()
		defer cm.mu.Unlock()

		if err != nil {
			cm.initErr = err
			return
		}
		cm.container = container
		cm.lastUsed = time.Now()
		cm.initialized = true
	})

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.initErr
}

// GetContainer returns the service container, initializing if necessary
func (cm *ContainerManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	if cm.initialized && cm.container != nil {
		cm.lastUsed = time.Now()
		container := cm.container
		cm.mu.Unlock()
		return container, nil
	}
	cm.mu.Unlock()

	cfg, err := cm.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cm.Initialize(cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if cm.container == nil {
		return nil, errContainerReleased
	}
	return cm.container, nil
}

// IsWarm reports whether a container is ready and was used in the last five
// minutes.
func (cm *ContainerManager) IsWarm() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if !cm.initialized || cm.container == nil {
		return false
	}
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup releases the container
func (cm *ContainerManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}
