package cli

import (
	"fmt"
	"os"

	"github.com/proxysite/proxysite/internal/config"
	"github.com/proxysite/proxysite/internal/deploy"
	"github.com/proxysite/proxysite/internal/logger"
	"github.com/proxysite/proxysite/internal/output"
	"github.com/proxysite/proxysite/internal/template"
	"github.com/spf13/cobra"
)

var (
	serverName string
	proxyPass  string
	outputFile string
	nginxPath  string
	dryRun     bool
	skipReload bool
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "proxysite",
	Short: "Deploy an nginx reverse-proxy site",
	Long: `proxysite generates an nginx reverse-proxy configuration, installs it
into the sites-available/sites-enabled layout, tests the resulting
configuration with nginx -t, and reloads nginx only if the test passes.

Examples:
  proxysite --server-name example.com --proxy-pass http://localhost:3002
  proxysite --server-name example.com --proxy-pass http://localhost:3002 --dry-run
  proxysite --server-name example.com --proxy-pass http://localhost:3002 --output app.conf --skip-reload`,
	RunE: runDeploy,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.Flags().StringVar(&serverName, "server-name", "", "Server name (e.g., example.com)")
	rootCmd.Flags().StringVar(&proxyPass, "proxy-pass", "", "Proxy pass URL (e.g., http://localhost:3002)")
	rootCmd.Flags().StringVar(&outputFile, "output", deploy.DefaultOutputFile, "Output filename")
	rootCmd.Flags().StringVar(&nginxPath, "nginx-path", deploy.DefaultNginxPath, "Nginx configuration directory")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print configuration without saving")
	rootCmd.Flags().BoolVar(&skipReload, "skip-reload", false, "Skip testing and reloading nginx")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")

	_ = rootCmd.MarkFlagRequired("server-name")
	_ = rootCmd.MarkFlagRequired("proxy-pass")
}

// applyConfigDefaults re-defaults the optional flags from the defaults file.
// A flag passed explicitly on the command line always wins.
func applyConfigDefaults(cfg *config.Config, outputSet, nginxPathSet, skipReloadSet bool) {
	if !outputSet && cfg.OutputFile != "" {
		outputFile = cfg.OutputFile
	}
	if !nginxPathSet && cfg.NginxPath != "" {
		nginxPath = cfg.NginxPath
	}
	if !skipReloadSet && cfg.SkipReload {
		skipReload = true
	}
}

func runDeploy(cmd *cobra.Command, args []string) error {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfigDefaults(cfg,
		cmd.Flags().Changed("output"),
		cmd.Flags().Changed("nginx-path"),
		cmd.Flags().Changed("skip-reload"))

	req := deploy.Request{
		ServerName: serverName,
		ProxyPass:  proxyPass,
		OutputFile: outputFile,
		NginxPath:  nginxPath,
		DryRun:     dryRun,
		SkipReload: skipReload,
	}

	orch := deploy.New(template.Render, deps.Installer, deps.Validator, deps.Reloader)
	result, err := orch.Run(req)
	if err != nil {
		return deployError(result, err)
	}

	if dryRun {
		return outputDryRun(result)
	}
	return outputDeployed(result)
}

// deployError turns a failed run into the user-facing error for its stage.
func deployError(result *deploy.Result, err error) error {
	if result == nil {
		return err
	}
	switch result.Stage {
	case deploy.StageInstalling:
		return fmt.Errorf("failed to install configuration: %w", err)
	case deploy.StageValidating:
		return fmt.Errorf("configuration test failed: %w\n"+
			"The new configuration remains at %s but nginx was not reloaded; "+
			"the previously loaded configuration is still active.\n"+
			"Fix the configuration and run:\n"+
			"  1. nginx -t\n"+
			"  2. systemctl reload nginx", err, result.Site.ConfigPath)
	case deploy.StageReloading:
		return fmt.Errorf("failed to reload nginx: %w", err)
	default:
		return err
	}
}

func outputDryRun(result *deploy.Result) error {
	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"dry_run": true,
			"config":  result.Rendered,
		})
	}
	output.Print("Generated configuration:")
	output.Separator()
	output.Print("%s", result.Rendered)
	return nil
}

func outputDeployed(result *deploy.Result) error {
	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success":      true,
			"server_name":  serverName,
			"config_path":  result.Site.ConfigPath,
			"enabled_path": result.Site.EnabledPath,
			"reloaded":     result.Reloaded,
		})
	}

	output.Success("Configuration created at %s", result.Site.ConfigPath)
	if result.Reloaded {
		output.Success("Configuration test passed")
		output.Success("Nginx reloaded successfully")
	} else {
		output.Warn("Nginx was not reloaded (--skip-reload); the site is installed but unverified")
	}
	return nil
}
