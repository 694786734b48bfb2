package conf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/skillarena/backend/scoreboard/domain"
)

// ScorePolicyFile mirrors the [scoring] section of the server config file.
// All fields are optional; zero values fall back to the built-in policy.
type ScorePolicyFile struct {
	Scoring struct {
		MaxPoints        float64 `toml:"max_points"`
		SharedModeWeight float64 `toml:"shared_mode_weight"`
		FullModeWeight   float64 `toml:"full_mode_weight"`
	} `toml:"scoring"`
}

// LoadScorePolicy reads the grading policy from the TOML file at path.
// An empty path or a missing file yields the default policy so that local
// setups work without any config file.
func LoadScorePolicy(path string) (domain.ScorePolicy, error) {
	policy := domain.DefaultScorePolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return policy, nil
		}
		return policy, fmt.Errorf("failed to read score policy file: %w", err)
	}

	var file ScorePolicyFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return policy, fmt.Errorf("failed to parse score policy file: %w", err)
	}

	if file.Scoring.MaxPoints > 0 {
		policy.MaxPoints = file.Scoring.MaxPoints
	}
	if file.Scoring.SharedModeWeight > 0 {
		policy.SharedModeWeight = file.Scoring.SharedModeWeight
	}
	if file.Scoring.FullModeWeight > 0 {
		policy.FullModeWeight = file.Scoring.FullModeWeight
	}

	return policy, nil
}
