package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// hardhatArtifact is the on-disk format of artifacts/<source>/<Name>.json
type hardhatArtifact struct {
	Format       string          `json:"_format"`
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// hardhatDebugFile is the <Name>.dbg.json sidecar pointing at the build-info
type hardhatDebugFile struct {
	BuildInfo string `json:"buildInfo"`
}

// Repository loads Hardhat compile artifacts from the artifacts directory
type Repository struct {
	artifactsDir string
	log          *slog.Logger
	mu           sync.RWMutex
	cache        map[string]*models.Artifact
}

// NewRepository creates a new artifact repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		artifactsDir: cfg.ArtifactsDir,
		log:          log.With("component", "ArtifactRepository"),
		cache:        make(map[string]*models.Artifact),
	}
}

// GetArtifact returns the artifact for a contract name
func (r *Repository) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	r.mu.RLock()
	if a, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return a, nil
	}
	r.mu.RUnlock()

	path, err := r.findArtifact(name)
	if err != nil {
		return nil, err
	}

	artifact, err := r.loadArtifact(path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[name] = artifact
	r.mu.Unlock()

	return artifact, nil
}

// findArtifact looks in the conventional contracts/<Name>.sol location first,
// then walks the artifacts directory
func (r *Repository) findArtifact(name string) (string, error) {
	direct := filepath.Join(r.artifactsDir, "contracts", name+".sol", name+".json")
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	if _, err := os.Stat(r.artifactsDir); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s (artifacts directory %s missing, run `npx hardhat compile`)",
			domain.ErrArtifactNotFound, name, r.artifactsDir)
	}

	var found string
	err := filepath.Walk(r.artifactsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() == name+".json" && strings.HasSuffix(filepath.Dir(path), ".sol") {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search artifacts: %w", err)
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, name)
	}
	return found, nil
}

func (r *Repository) loadArtifact(path string) (*models.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var raw hardhatArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(string(raw.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", raw.ContractName, err)
	}

	artifact := &models.Artifact{
		ContractName: raw.ContractName,
		SourceName:   raw.SourceName,
		ABI:          parsedABI,
		Bytecode:     common.FromHex(raw.Bytecode),
	}

	buildInfo, err := loadBuildInfo(path)
	if err != nil {
		// Deployment doesn't need build-info; verification will report its absence
		r.log.Debug("build-info unavailable", "artifact", path, "error", err)
	} else {
		artifact.BuildInfo = buildInfo
	}

	return artifact, nil
}

// loadBuildInfo follows the .dbg.json sidecar next to an artifact
func loadBuildInfo(artifactPath string) (*models.BuildInfo, error) {
	dbgPath := strings.TrimSuffix(artifactPath, ".json") + ".dbg.json"
	data, err := os.ReadFile(dbgPath)
	if err != nil {
		return nil, err
	}

	var dbg hardhatDebugFile
	if err := json.Unmarshal(data, &dbg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", dbgPath, err)
	}
	if dbg.BuildInfo == "" {
		return nil, fmt.Errorf("%s has no buildInfo", dbgPath)
	}

	buildInfoPath := dbg.BuildInfo
	if !filepath.IsAbs(buildInfoPath) {
		buildInfoPath = filepath.Join(filepath.Dir(dbgPath), buildInfoPath)
	}

	data, err = os.ReadFile(buildInfoPath)
	if err != nil {
		return nil, err
	}

	var info models.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse build-info %s: %w", buildInfoPath, err)
	}
	return &info, nil
}

// Ensure the repository implements the interface
var _ usecase.ArtifactRepository = (*Repository)(nil)
