package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
)

// ProjectFileName is the optional project configuration file
const ProjectFileName = "usvp.toml"

// loadEnvFiles loads .env files from the project root without overriding the
// process environment
func loadEnvFiles(projectRoot string) error {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", filepath.Base(envFile), err)
			}
		}
	}
	return nil
}

// loadProjectFile parses usvp.toml if present. A missing file yields an empty
// ProjectFile. String values are expanded against the environment.
func loadProjectFile(projectRoot string) (*config.ProjectFile, error) {
	path := filepath.Join(projectRoot, ProjectFileName)

	var project config.ProjectFile
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &project, nil
	}

	if _, err := toml.DecodeFile(path, &project); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	for name, entry := range project.Networks {
		entry.URL = os.ExpandEnv(entry.URL)
		entry.APIKey = os.ExpandEnv(entry.APIKey)
		entry.ExplorerAPIURL = os.ExpandEnv(entry.ExplorerAPIURL)
		entry.ExplorerBrowserURL = os.ExpandEnv(entry.ExplorerBrowserURL)
		for i, account := range entry.Accounts {
			entry.Accounts[i] = os.ExpandEnv(account)
		}
		project.Networks[name] = entry
	}

	project.Paths.Artifacts = os.ExpandEnv(project.Paths.Artifacts)
	project.Paths.Deployments = os.ExpandEnv(project.Paths.Deployments)

	return &project, nil
}
