package config

import "time"

// Defaults returns the built-in configuration. User-provided YAML is
// merged on top of this.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		LLM: LLMConfig{
			SidecarAddr: "localhost:50051",
			Model:       "claude-sonnet",
			Timeout:     30 * time.Second,
		},
		Engine: EngineConfig{
			TutorTemperature: 0.7,
			TutorMaxTokens:   512,
			RecallThreshold:  0.6,
			NearMissLow:      0.3,
			DetectThreshold:  0.6,
			DeclineCooldown:  3,
			DetectorWindow:   6,
			ReturnWindow:     4,
			EvalParallelism:  4,
			PauseThreshold:   5 * time.Minute,
		},
	}
}
