package helpers

import "os"

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// StageFromEnv reads STAGE from the environment, defaulting to local when
// unset. The second return value reports whether the value was valid.
func StageFromEnv() (string, bool) {
	stage := os.Getenv("STAGE")
	if stage == "" {
		return StageLocal, true
	}
	return stage, IsValidStage(stage)
}

// EnvWithDefault returns the environment variable value or a default.
func EnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
