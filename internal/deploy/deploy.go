// Package deploy sequences a reverse-proxy site deployment: render the
// server block, install it under sites-available with a sites-enabled
// symlink, test the resulting nginx configuration, and reload the service.
//
// The orchestrator owns the stage ordering and failure policy. It never
// inspects the host's live configuration itself; it only triggers the
// installer, validator, and reloader and observes their reported outcomes.
// A failed validation leaves the newly installed file on disk and skips the
// reload, so the running service stays on its previous configuration.
package deploy

import (
	"github.com/proxysite/proxysite/internal/errors"
	"github.com/proxysite/proxysite/internal/logger"
)

// Default values for the optional request fields.
const (
	DefaultOutputFile = "site.conf"
	DefaultNginxPath  = "/etc/nginx"
)

// Request describes a single site deployment. ServerName and ProxyPass are
// required; the rest default via Normalize.
type Request struct {
	ServerName string
	ProxyPass  string
	OutputFile string
	NginxPath  string
	DryRun     bool
	SkipReload bool
}

// Validate checks the required fields.
func (r *Request) Validate() error {
	if r.ServerName == "" {
		return errors.Input("server name is required")
	}
	if r.ProxyPass == "" {
		return errors.Input("proxy pass URL is required")
	}
	return nil
}

// Normalize fills in defaults for the optional fields.
func (r *Request) Normalize() {
	if r.OutputFile == "" {
		r.OutputFile = DefaultOutputFile
	}
	if r.NginxPath == "" {
		r.NginxPath = DefaultNginxPath
	}
}

// Stage identifies a step of the deployment sequence.
type Stage string

// Deployment stages in execution order.
const (
	StageRendering  Stage = "rendering"
	StageInstalling Stage = "installing"
	StageValidating Stage = "validating"
	StageReloading  Stage = "reloading"
	StageDone       Stage = "done"
)

// Outcome is the result of an external validator or reloader call.
// Failure is ordinary control flow, not an error.
type Outcome struct {
	Success    bool
	Diagnostic string
}

// InstalledSite is the pair of paths a deployment leaves on disk.
type InstalledSite struct {
	ConfigPath  string // file under sites-available
	EnabledPath string // symlink under sites-enabled
}

// Installer writes the rendered config and (re)creates its symlink.
type Installer interface {
	Install(root, filename, content string) (InstalledSite, error)
}

// Validator runs the host's configuration self-test.
type Validator interface {
	Validate() Outcome
}

// Reloader applies the active configuration to the running service.
type Reloader interface {
	Reload() Outcome
}

// RenderFunc produces the configuration text for a server name and
// upstream target.
type RenderFunc func(serverName, proxyPass string) (string, error)

// Orchestrator runs the deployment sequence against injected collaborators.
type Orchestrator struct {
	render    RenderFunc
	installer Installer
	validator Validator
	reloader  Reloader
}

// New creates an Orchestrator with the given collaborators.
func New(render RenderFunc, installer Installer, validator Validator, reloader Reloader) *Orchestrator {
	return &Orchestrator{
		render:    render,
		installer: installer,
		validator: validator,
		reloader:  reloader,
	}
}

// Result describes how far a deployment run progressed. On failure, Stage
// holds the stage that failed and the returned error carries its diagnostic.
type Result struct {
	Stage    Stage
	Rendered string
	Site     InstalledSite
	Reloaded bool
}

// Run executes the deployment sequence for one request.
//
// Stage order is fixed: rendering, installing, validating, reloading. DryRun
// stops after rendering with no side effects at all; SkipReload stops after
// installing, leaving the file and symlink in place unverified. The first
// failing stage terminates the run; nothing is rolled back.
func (o *Orchestrator) Run(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Normalize()

	result := &Result{Stage: StageRendering}

	logger.Debug("Rendering configuration for %s -> %s", req.ServerName, req.ProxyPass)
	content, err := o.render(req.ServerName, req.ProxyPass)
	if err != nil {
		return result, errors.Wrap(errors.ErrCodeInternal, "failed to render configuration", err)
	}
	result.Rendered = content

	if req.DryRun {
		result.Stage = StageDone
		return result, nil
	}

	result.Stage = StageInstalling
	logger.Debug("Installing %s under %s", req.OutputFile, req.NginxPath)
	site, err := o.installer.Install(req.NginxPath, req.OutputFile, content)
	if err != nil {
		return result, err
	}
	result.Site = site

	if req.SkipReload {
		result.Stage = StageDone
		return result, nil
	}

	result.Stage = StageValidating
	logger.Debug("Testing nginx configuration")
	if outcome := o.validator.Validate(); !outcome.Success {
		return result, errors.ValidationFailed(outcome.Diagnostic)
	}

	result.Stage = StageReloading
	logger.Debug("Reloading nginx")
	if outcome := o.reloader.Reload(); !outcome.Success {
		return result, errors.ReloadFailed(outcome.Diagnostic)
	}
	result.Reloaded = true

	result.Stage = StageDone
	return result, nil
}
