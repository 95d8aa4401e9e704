package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read recallkit.yaml from path (missing file is fine)
//  2. Expand environment variables in the YAML content
//  3. Parse YAML into the Config struct
//  4. Merge with built-in defaults (user values win)
//  5. Validate the merged result
func Initialize(path string) (*Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("No configuration file found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	default:
		if err := yaml.Unmarshal(ExpandEnv(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	defaults := Defaults()
	if err := mergo.Merge(&cfg, defaults); err != nil {
		return nil, fmt.Errorf("failed to merge configuration defaults: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration initialized",
		"server_port", cfg.Server.Port,
		"llm_sidecar", cfg.LLM.SidecarAddr,
		"llm_model", cfg.LLM.Model)
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if cfg.LLM.SidecarAddr == "" {
		return errors.New("llm.sidecar_addr must not be empty")
	}
	if cfg.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive: %s", cfg.LLM.Timeout)
	}
	e := cfg.Engine
	for name, v := range map[string]float64{
		"engine.recall_threshold": e.RecallThreshold,
		"engine.near_miss_low":    e.NearMissLow,
		"engine.detect_threshold": e.DetectThreshold,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0,1]: %v", name, v)
		}
	}
	if e.NearMissLow >= e.RecallThreshold {
		return fmt.Errorf("engine.near_miss_low (%v) must be below engine.recall_threshold (%v)",
			e.NearMissLow, e.RecallThreshold)
	}
	if e.EvalParallelism < 1 {
		return fmt.Errorf("engine.eval_parallelism must be at least 1: %d", e.EvalParallelism)
	}
	return nil
}
