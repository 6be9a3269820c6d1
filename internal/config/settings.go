package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings — параметры запуска, которые можно переопределить через окружение или .env.
type Settings struct {
	Level        int
	Seed         int64
	PathUpgrades bool
	LogLevel     string
	LogJSON      bool
	DefsDir      string
	TickRate     int
	PprofAddr    string // пусто — профилировщик выключен
}

// LoadSettings читает .env (если есть) и переменные окружения.
// Отсутствие .env не является ошибкой.
func LoadSettings(files ...string) (*Settings, error) {
	if err := godotenv.Load(files...); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	level, err := getInt("TD_LEVEL", 1)
	if err != nil {
		return nil, err
	}
	seed, err := strconv.ParseInt(getEnv("TD_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TD_SEED: %w", err)
	}
	pathUpgrades, err := getBool("TD_PATH_UPGRADES", true)
	if err != nil {
		return nil, err
	}
	logJSON, err := getBool("TD_LOG_JSON", false)
	if err != nil {
		return nil, err
	}
	tickRate, err := getInt("TD_TICK_RATE", 30)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Level:        level,
		Seed:         seed,
		PathUpgrades: pathUpgrades,
		LogLevel:     getEnv("TD_LOG_LEVEL", "info"),
		LogJSON:      logJSON,
		DefsDir:      getEnv("TD_DEFS_DIR", ""),
		TickRate:     tickRate,
		PprofAddr:    getEnv("TD_PPROF_ADDR", ""),
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}

// MaxLevel возвращает предел уровня башни для выбранной системы улучшений.
func (s *Settings) MaxLevel() int {
	if s.PathUpgrades {
		return PathSystemMaxLevel
	}
	return ClassicMaxLevel
}

func (s *Settings) validate() error {
	if s.Level < 1 {
		return fmt.Errorf("TD_LEVEL must be >= 1, got %d", s.Level)
	}
	if s.TickRate < 1 || s.TickRate > 240 {
		return fmt.Errorf("TD_TICK_RATE must be in [1, 240], got %d", s.TickRate)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown TD_LOG_LEVEL %q", s.LogLevel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
