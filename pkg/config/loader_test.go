package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recallkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitializeMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Defaults(), *cfg)
}

func TestInitializeMergesUserValuesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
llm:
  model: gpt-4o
engine:
  recall_threshold: 0.7
`)
	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.InDelta(t, 0.7, cfg.Engine.RecallThreshold, 1e-9)

	// untouched fields keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost:50051", cfg.LLM.SidecarAddr)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.Engine.DeclineCooldown)
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("RECALLKIT_SIDECAR", "llm.internal:50051")
	path := writeConfig(t, `
llm:
  sidecar_addr: "{{.RECALLKIT_SIDECAR}}"
`)
	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "llm.internal:50051", cfg.LLM.SidecarAddr)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad port":       "server:\n  port: 70000\n",
		"bad threshold":  "engine:\n  recall_threshold: 1.5\n",
		"inverted bands": "engine:\n  near_miss_low: 0.9\n",
		"bad yaml":       "server: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Initialize(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
