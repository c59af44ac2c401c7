package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// FileRepository stores one deployment record per network in a flat JSON file.
// Entries it cannot parse are kept verbatim on save.
type FileRepository struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewFileRepository creates a repository backed by cfg.DeploymentsFile
func NewFileRepository(cfg *config.RuntimeConfig, log *slog.Logger) *FileRepository {
	return &FileRepository{
		path: cfg.DeploymentsFile,
		log:  log.With("component", "DeploymentRepository"),
	}
}

// Path returns the file the repository reads and writes
func (r *FileRepository) Path() string {
	return r.path
}

// SaveDeployment replaces the record stored under network and leaves every
// other entry untouched
func (r *FileRepository) SaveDeployment(ctx context.Context, network string, record *models.DeploymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode deployment record: %w", err)
	}
	entries[network] = data

	if err := r.save(entries); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}

	r.log.Debug("deployment saved", "network", network, "address", record.Address, "path", r.path)
	return nil
}

// GetDeployment returns the record stored under network
func (r *FileRepository) GetDeployment(ctx context.Context, network string) (*models.DeploymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return nil, err
	}

	raw, ok := entries[network]
	if !ok {
		return nil, fmt.Errorf("deployment for network %s: %w", network, domain.ErrNotFound)
	}

	var record models.DeploymentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to parse deployment for network %s: %w", network, err)
	}
	return &record, nil
}

// ListDeployments returns every parseable record, sorted by network name
func (r *FileRepository) ListDeployments(ctx context.Context) ([]models.NetworkDeployment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]models.NetworkDeployment, 0, len(entries))
	for network, raw := range entries {
		var record models.DeploymentRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			r.log.Debug("skipping unparseable entry", "network", network, "error", err)
			continue
		}
		result = append(result, models.NetworkDeployment{Network: network, Record: &record})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Network < result[j].Network })
	return result, nil
}

// load reads the file; a missing file is an empty map
func (r *FileRepository) load() (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return entries, nil
}

// save writes entries as 2-space indented JSON via a temp file and rename
func (r *FileRepository) save(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, r.path)
}

// Ensure the repository implements the interface
var _ usecase.DeploymentRepository = (*FileRepository)(nil)
