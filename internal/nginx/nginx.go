// Package nginx invokes the host's nginx configuration test and service
// reload commands. Both calls interpret only the exit status and captured
// output of the external tools; a non-zero exit is reported as an
// unsuccessful outcome, never as an error.
package nginx

import (
	"strings"

	"github.com/proxysite/proxysite/internal/deploy"
	"github.com/proxysite/proxysite/internal/executor"
	"github.com/proxysite/proxysite/internal/logger"
)

// Validator runs nginx's configuration self-test. It implements
// deploy.Validator.
type Validator struct {
	exec executor.CommandExecutor
}

// NewValidator creates a Validator using the system executor.
func NewValidator() *Validator {
	return &Validator{exec: executor.NewSystemExecutor()}
}

// NewValidatorWithExecutor creates a Validator with a custom executor (for testing).
func NewValidatorWithExecutor(exec executor.CommandExecutor) *Validator {
	return &Validator{exec: exec}
}

// Validate runs `nginx -t` against the whole active configuration set and
// reports the tool's combined output as the diagnostic.
func (v *Validator) Validate() deploy.Outcome {
	output, err := v.exec.Execute("nginx", "-t")
	diagnostic := strings.TrimSpace(string(output))
	if err != nil {
		if diagnostic == "" {
			diagnostic = err.Error()
		}
		return deploy.Outcome{Success: false, Diagnostic: diagnostic}
	}
	return deploy.Outcome{Success: true, Diagnostic: diagnostic}
}

// Reloader reloads the running nginx service. It implements deploy.Reloader.
type Reloader struct {
	exec executor.CommandExecutor
}

// NewReloader creates a Reloader using the system executor.
func NewReloader() *Reloader {
	return &Reloader{exec: executor.NewSystemExecutor()}
}

// NewReloaderWithExecutor creates a Reloader with a custom executor (for testing).
func NewReloaderWithExecutor(exec executor.CommandExecutor) *Reloader {
	return &Reloader{exec: exec}
}

// Reload asks the service manager to reload nginx, falling back to
// `nginx -s reload` on hosts without systemd. The diagnostic of the last
// attempt is reported.
func (r *Reloader) Reload() deploy.Outcome {
	output, err := r.exec.Execute("systemctl", "reload", "nginx")
	if err == nil {
		return deploy.Outcome{Success: true, Diagnostic: strings.TrimSpace(string(output))}
	}
	logger.Debug("systemctl reload failed, trying nginx -s reload: %v", err)

	output, err = r.exec.Execute("nginx", "-s", "reload")
	diagnostic := strings.TrimSpace(string(output))
	if err != nil {
		if diagnostic == "" {
			diagnostic = err.Error()
		}
		return deploy.Outcome{Success: false, Diagnostic: diagnostic}
	}
	return deploy.Outcome{Success: true, Diagnostic: diagnostic}
}
