package cli

import (
	"github.com/proxysite/proxysite/internal/config"
	"github.com/proxysite/proxysite/internal/deploy"
	"github.com/proxysite/proxysite/internal/installer"
	"github.com/proxysite/proxysite/internal/nginx"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader ConfigLoader
	Installer    deploy.Installer
	Validator    deploy.Validator
	Reloader     deploy.Reloader
}

// ConfigLoader handles defaults file loading
type ConfigLoader interface {
	Load() (*config.Config, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = defaultDeps()

func defaultDeps() *Dependencies {
	return &Dependencies{
		ConfigLoader: &realConfigLoader{},
		Installer:    installer.New(),
		Validator:    nginx.NewValidator(),
		Reloader:     nginx.NewReloader(),
	}
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// realConfigLoader delegates to the config package

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}
