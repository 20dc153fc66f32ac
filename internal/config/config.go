package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Redis      RedisConfig
	MasterData MasterDataConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MasterDataConfig holds master-data source configuration
type MasterDataConfig struct {
	// SkillMasterPath is the path to the authored skill master JSON file
	SkillMasterPath string

	// SpellMasterPath is the path to the authored spell master JSON file
	SpellMasterPath string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		MasterData: MasterDataConfig{
			SkillMasterPath: getEnvOrDefault("SKILL_MASTER_PATH", "data/SkillMaster.json"),
			SpellMasterPath: getEnvOrDefault("SPELL_MASTER_PATH", "data/SpellMaster.json"),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
