package deployments

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usvp-token/usvp-deploy/internal/domain"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
)

func newTestRepo(t *testing.T) *FileRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployments.json")
	return NewFileRepository(&config.RuntimeConfig{DeploymentsFile: path}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testRecord(address string, at time.Time) *models.DeploymentRecord {
	return &models.DeploymentRecord{
		Address:         address,
		Deployer:        "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Roles:           models.DefaultRoles(),
		InitialSupply:   "1000000.0",
		RemainingSupply: "999000000.0",
		DeploymentTime:  at,
		LastUpdated:     at,
	}
}

func TestFileRepository(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 30, 0, 123_000_000, time.UTC)

	t.Run("missing file is empty", func(t *testing.T) {
		repo := newTestRepo(t)

		list, err := repo.ListDeployments(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = repo.GetDeployment(ctx, "sepolia")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("save writes indented json with record keys", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.SaveDeployment(ctx, "sepolia", testRecord("0x1111111111111111111111111111111111111111", at)))

		data, err := os.ReadFile(repo.Path())
		require.NoError(t, err)
		assert.Contains(t, string(data), "{\n  \"sepolia\": {\n    \"address\": ")

		var file map[string]map[string]any
		require.NoError(t, json.Unmarshal(data, &file))
		entry := file["sepolia"]
		for _, key := range []string{"address", "deployer", "roles", "initialSupply", "remainingSupply", "deploymentTime", "lastUpdated"} {
			assert.Contains(t, entry, key)
		}
		assert.Equal(t, "2024-03-01T12:30:00.123Z", entry["deploymentTime"])

		roles := entry["roles"].(map[string]any)
		assert.Equal(t, models.CustodianAddress, roles["custodian"])
		assert.Equal(t, models.DefaultAdminAddress, roles["defaultAdmin"])

		_, err = os.Stat(repo.Path() + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("timestamps keep millisecond width", func(t *testing.T) {
		repo := newTestRepo(t)
		whole := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
		require.NoError(t, repo.SaveDeployment(ctx, "bsc", testRecord("0x2222222222222222222222222222222222222222", whole)))

		data, err := os.ReadFile(repo.Path())
		require.NoError(t, err)
		assert.Contains(t, string(data), `"deploymentTime": "2024-03-01T12:30:00.000Z"`)
		assert.Contains(t, string(data), `"lastUpdated": "2024-03-01T12:30:00.000Z"`)
	})

	t.Run("re-save overwrites the network and keeps others", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.SaveDeployment(ctx, "bsctest", testRecord("0xaaaa", at)))
		require.NoError(t, repo.SaveDeployment(ctx, "sepolia", testRecord("0xbbbb", at)))
		require.NoError(t, repo.SaveDeployment(ctx, "sepolia", testRecord("0xcccc", at.Add(time.Hour))))

		list, err := repo.ListDeployments(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "bsctest", list[0].Network)
		assert.Equal(t, "0xaaaa", list[0].Record.Address)
		assert.Equal(t, "sepolia", list[1].Network)
		assert.Equal(t, "0xcccc", list[1].Record.Address)

		got, err := repo.GetDeployment(ctx, "sepolia")
		require.NoError(t, err)
		assert.True(t, at.Add(time.Hour).Equal(got.DeploymentTime))
	})

	t.Run("unknown entries survive a save", func(t *testing.T) {
		repo := newTestRepo(t)
		legacy := `{
  "mainnet": {"address": "0xdddd", "note": "deployed by hand", "extra": [1, 2, 3]},
  "broken": "not a record"
}`
		require.NoError(t, os.WriteFile(repo.Path(), []byte(legacy), 0644))

		require.NoError(t, repo.SaveDeployment(ctx, "bsc", testRecord("0xeeee", at)))

		data, err := os.ReadFile(repo.Path())
		require.NoError(t, err)
		var file map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &file))
		assert.Len(t, file, 3)
		assert.JSONEq(t, `{"address": "0xdddd", "note": "deployed by hand", "extra": [1, 2, 3]}`, string(file["mainnet"]))
		assert.JSONEq(t, `"not a record"`, string(file["broken"]))

		list, err := repo.ListDeployments(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2, "unparseable entry skipped")
	})

	t.Run("corrupt file", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, os.WriteFile(repo.Path(), []byte("{"), 0644))

		err := repo.SaveDeployment(ctx, "bsc", testRecord("0xeeee", at))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})
}
