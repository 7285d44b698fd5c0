// Package config loads environment configuration (the Riot API key) and
// optional normalization overrides from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jestes5111/lol-ranked-data-collector/internal/pipeline"
)

// LoadEnv loads variables from a .env file in the working directory, if
// one exists. Missing files are fine; the environment may already be set.
func LoadEnv() {
	_ = godotenv.Load()
}

// RiotAPIKey returns the Riot API key from the environment.
func RiotAPIKey() (string, error) {
	key := os.Getenv("RIOT_API_KEY")
	if key == "" {
		return "", fmt.Errorf("RIOT_API_KEY is not set: export it or put it in a .env file")
	}
	return key, nil
}

// LoadNormalization returns the normalizer configuration. An empty path
// yields the stock configuration; otherwise the YAML file at path is read
// and any key it provides (deny_list, pattern_categories) replaces the
// stock value wholesale, so a file can both extend and trim the sets.
func LoadNormalization(path string) (pipeline.NormalizeConfig, error) {
	cfg := pipeline.DefaultNormalizeConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read normalization config: %w", err)
	}

	var override pipeline.NormalizeConfig
	if err := yaml.Unmarshal(data, &override); err != nil {
		return cfg, fmt.Errorf("parse normalization config: %w", err)
	}

	if override.DenyList != nil {
		cfg.DenyList = override.DenyList
	}
	if override.PatternCategories != nil {
		cfg.PatternCategories = override.PatternCategories
	}
	return cfg, nil
}
