package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/adventurer"
)

// Map layouts understood by game.map.layout
const (
	LayoutClassic = "classic"
	LayoutRandom  = "random"
	LayoutFile    = "file"
)

// maxWaterLevel is the first deadly level of the water meter
const maxWaterLevel = 9

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Log         LogConfig         `mapstructure:"log"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Map         MapConfig        `mapstructure:"map"`
	Turn        TurnConfig       `mapstructure:"turn"`
	WaterLevel  WaterLevelConfig `mapstructure:"water_level"`
	Flood       FloodConfig      `mapstructure:"flood"`
	Adventurers []string         `mapstructure:"adventurers"`
	// Seed drives every shuffle and the random map. 0 picks one from the clock.
	Seed int64 `mapstructure:"seed"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Layout      string `mapstructure:"layout"`
	File        string `mapstructure:"file"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	MaxAttempts int    `mapstructure:"max_attempts"`
}

// TurnConfig holds per turn settings
type TurnConfig struct {
	ActionPoints int `mapstructure:"action_points"`
}

// WaterLevelConfig holds the water meter settings
type WaterLevelConfig struct {
	Start int `mapstructure:"start"`
}

// FloodConfig holds flood deck settings
type FloodConfig struct {
	InitialDraw int `mapstructure:"initial_draw"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging  bool `mapstructure:"verbose_logging"`
	ShowCoordinates bool `mapstructure:"show_coordinates"`
}

var (
	// Global config instance. mu guards it against hot reloads.
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Map defaults
	v.SetDefault("game.map.layout", LayoutClassic)
	v.SetDefault("game.map.file", "")
	v.SetDefault("game.map.width", 8)
	v.SetDefault("game.map.height", 8)
	v.SetDefault("game.map.max_attempts", 10)

	// Turn defaults
	v.SetDefault("game.turn.action_points", 3)
	v.SetDefault("game.water_level.start", 1)
	v.SetDefault("game.flood.initial_draw", 6)
	v.SetDefault("game.adventurers", []string{"diver", "engineer", "explorer", "pilot"})
	v.SetDefault("game.seed", 0)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_coordinates", true)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/forbidden-island")
	}

	// FI_GAME_TURN_ACTION_POINTS overrides game.turn.action_points
	v.SetEnvPrefix("FI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !missingConfig(err, configPath) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	cfg = next
	mu.Unlock()
	return nil
}

// missingConfig reports whether err only says there is no config file, in
// which case the defaults apply. Parse errors are never ignored.
func missingConfig(err error, configPath string) bool {
	if configPath != "" {
		return errors.Is(err, fs.ErrNotExist)
	}
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

// Get returns the global config instance. Code running while WatchConfig is
// active reads it through Snapshot instead.
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// Snapshot returns a copy of the current config that later reloads do not
// touch.
func Snapshot() Config {
	c := Get()
	mu.RLock()
	defer mu.RUnlock()
	return *c
}

// LoadEnvironmentConfig loads environment-specific config overlay
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	mu.Lock()
	defer mu.Unlock()
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. Changes that fail
// validation are dropped and the previous values stay in place. onChange
// runs on the watcher goroutine with a copy of the new config.
func WatchConfig(onChange func(Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next, ok := reload()
		if ok && onChange != nil {
			onChange(next)
		}
	})
	v.WatchConfig()
}

// reload re-reads the viper state into the global config
func reload() (Config, bool) {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return Config{}, false
	}
	if err := Validate(next); err != nil {
		return Config{}, false
	}

	mu.Lock()
	defer mu.Unlock()
	*cfg = *next
	return *next, true
}

// AdventurerKinds parses game.adventurers into adventurer kinds.
func (c *Config) AdventurerKinds() ([]adventurer.Kind, error) {
	kinds := make([]adventurer.Kind, 0, len(c.Game.Adventurers))
	for _, name := range c.Game.Adventurers {
		kind, err := adventurer.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	switch c.Game.Map.Layout {
	case LayoutClassic, LayoutRandom:
	case LayoutFile:
		if c.Game.Map.File == "" {
			return fmt.Errorf("game.map.file is required when game.map.layout is %q", LayoutFile)
		}
	default:
		return fmt.Errorf("game.map.layout must be one of %s, %s or %s, got %q",
			LayoutClassic, LayoutRandom, LayoutFile, c.Game.Map.Layout)
	}
	if c.Game.Map.Width <= 0 || c.Game.Map.Height <= 0 {
		return fmt.Errorf("game.map dimensions must be positive")
	}
	if c.Game.Map.MaxAttempts < 1 {
		return fmt.Errorf("game.map.max_attempts must be at least 1")
	}

	if c.Game.Turn.ActionPoints < 1 {
		return fmt.Errorf("game.turn.action_points must be at least 1")
	}
	if c.Game.WaterLevel.Start < 0 || c.Game.WaterLevel.Start >= maxWaterLevel {
		return fmt.Errorf("game.water_level.start must be between 0 and %d", maxWaterLevel-1)
	}
	if c.Game.Flood.InitialDraw < 0 {
		return fmt.Errorf("game.flood.initial_draw must be non-negative")
	}

	if len(c.Game.Adventurers) == 0 || len(c.Game.Adventurers) > len(adventurer.AllKinds()) {
		return fmt.Errorf("game.adventurers must name between 1 and %d adventurers", len(adventurer.AllKinds()))
	}
	kinds, err := c.AdventurerKinds()
	if err != nil {
		return fmt.Errorf("game.adventurers: %w", err)
	}
	seen := make(map[adventurer.Kind]bool, len(kinds))
	for _, kind := range kinds {
		if seen[kind] {
			return fmt.Errorf("game.adventurers lists %s twice", kind)
		}
		seen[kind] = true
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}

	return nil
}
