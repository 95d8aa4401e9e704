// Package config loads and validates recallkit.yaml plus environment
// overrides. The file is optional; every field has a default so a bare
// deployment starts with just DB_* and LLM_SIDECAR_ADDR set.
package config

import "time"

// Config is the fully merged, validated application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	LLM    LLMConfig    `yaml:"llm"`
	Engine EngineConfig `yaml:"engine"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LLMConfig holds the LLM sidecar connection and generation settings.
type LLMConfig struct {
	// SidecarAddr is the gRPC address of the provider-agnostic LLM
	// sidecar, e.g. "localhost:50051".
	SidecarAddr string `yaml:"sidecar_addr"`
	// Model is the provider model name, used for the pricing table.
	Model string `yaml:"model"`
	// Timeout bounds each completion call.
	Timeout time.Duration `yaml:"timeout"`
}

// EngineConfig holds the session engine tunables.
type EngineConfig struct {
	TutorTemperature float64 `yaml:"tutor_temperature"`
	TutorMaxTokens   int     `yaml:"tutor_max_tokens"`

	RecallThreshold float64 `yaml:"recall_threshold"`
	NearMissLow     float64 `yaml:"near_miss_low"`

	DetectThreshold float64 `yaml:"detect_threshold"`
	DeclineCooldown int     `yaml:"decline_cooldown"`
	DetectorWindow  int     `yaml:"detector_window"`
	ReturnWindow    int     `yaml:"return_window"`

	EvalParallelism int `yaml:"eval_parallelism"`

	PauseThreshold time.Duration `yaml:"pause_threshold"`
}
