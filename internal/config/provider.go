package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

// Defaults for runtime settings
const (
	DefaultArtifactsDir    = "artifacts"
	DefaultDeploymentsFile = "deployments.json"
	DefaultTimeout         = "10m"

	gasPriceAPI = "https://api.bscscan.com/api?module=proxy&action=eth_gasPrice"
)

// projectMarkers identify a project root when walking up from the working directory
var projectMarkers = []string{ProjectFileName, "hardhat.config.ts", "hardhat.config.js"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env must be loaded before the network table reads the environment
	if err := loadEnvFiles(projectRoot); err != nil {
		return nil, err
	}

	project, err := loadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		ArtifactsDir:    resolvePath(projectRoot, firstNonEmpty(project.Paths.Artifacts, v.GetString("artifacts"))),
		DeploymentsFile: resolvePath(projectRoot, firstNonEmpty(project.Paths.Deployments, v.GetString("deployments_file"))),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		Timeout:         v.GetDuration("timeout"),
		StrictRoles:     v.GetBool("strict_roles"),
		Roles:           models.DefaultRoles().Merge(project.Roles),
		Solidity:        solidityConfig(project.Solidity),
		GasReporter:     gasReporterConfig(),
	}

	cfg.Networks = DefaultNetworks()
	applyNetworkEntries(cfg.Networks, project.Networks)

	network, err := NewNetworkResolver(cfg.Networks).Resolve(v.GetString("network"))
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	return cfg, nil
}

// solidityConfig applies usvp.toml overrides to the compiler settings the
// artifacts are built with
func solidityConfig(entry config.SolidityEntry) config.SolidityConfig {
	cfg := config.SolidityConfig{
		Version:       "0.8.22",
		Optimizer:     true,
		OptimizerRuns: 200,
		ViaIR:         true,
	}
	if entry.Version != "" {
		cfg.Version = entry.Version
	}
	if entry.OptimizerRuns != 0 {
		cfg.OptimizerRuns = entry.OptimizerRuns
	}
	if entry.ViaIR != nil {
		cfg.ViaIR = *entry.ViaIR
	}
	return cfg
}

// gasReporterConfig enables the report whenever REPORT_GAS is defined, whatever its value
func gasReporterConfig() config.GasReporterConfig {
	_, enabled := os.LookupEnv(EnvReportGas)
	return config.GasReporterConfig{
		Enabled:          enabled,
		Currency:         "USD",
		Token:            "BNB",
		CoinMarketCapKey: os.Getenv(EnvCoinMarketCap),
		GasPriceAPI:      gasPriceAPI,
	}
}

// FindProjectRoot walks up from the current directory looking for usvp.toml or
// a Hardhat config. Falls back to the working directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("USVP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("network", config.DefaultNetwork)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("strict_roles", false)
	v.SetDefault("artifacts", DefaultArtifactsDir)
	v.SetDefault("deployments_file", DefaultDeploymentsFile)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
