package cli

import (
	"github.com/proxysite/proxysite/internal/config"
	"github.com/proxysite/proxysite/internal/deploy"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg     *config.Config
	LoadErr error
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

// MockDepsBuilder constructs Dependencies with mock implementations
type MockDepsBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a builder with all-mock defaults
func NewMockDeps() *MockDepsBuilder {
	return &MockDepsBuilder{
		deps: &Dependencies{
			ConfigLoader: &MockConfigLoader{},
			Installer:    &deploy.MockInstaller{},
			Validator:    &deploy.MockValidator{},
			Reloader:     &deploy.MockReloader{},
		},
	}
}

// WithConfig sets the defaults file contents returned by the loader
func (b *MockDepsBuilder) WithConfig(cfg *config.Config) *MockDepsBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithInstaller sets the installer
func (b *MockDepsBuilder) WithInstaller(i deploy.Installer) *MockDepsBuilder {
	b.deps.Installer = i
	return b
}

// WithValidator sets the validator
func (b *MockDepsBuilder) WithValidator(v deploy.Validator) *MockDepsBuilder {
	b.deps.Validator = v
	return b
}

// WithReloader sets the reloader
func (b *MockDepsBuilder) WithReloader(r deploy.Reloader) *MockDepsBuilder {
	b.deps.Reloader = r
	return b
}

// Build returns the assembled Dependencies
func (b *MockDepsBuilder) Build() *Dependencies {
	return b.deps
}
