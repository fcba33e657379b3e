package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генератора и сервера предпросмотра.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Zones     []ZoneConfig    `yaml:"zones"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig: размеры уровня и параметры шума.
type GeneratorConfig struct {
	HalfWidth      int         `yaml:"half_width"`  // уровень занимает [-W, W)
	HalfHeight     int         `yaml:"half_height"` // зоны занимают [-H, H+1)
	HeightLo       int         `yaml:"height_lo"`   // пол интервала высот
	HeightHi       int         `yaml:"height_hi"`
	Margin         int         `yaml:"margin"` // ширина Offscreen полей по краям
	MaxBridge      int         `yaml:"max_bridge"`
	BonusChance    float64     `yaml:"bonus_chance"`
	TerrainNoise   NoiseConfig `yaml:"terrain_noise"`
	ZoneFrequency  float64     `yaml:"zone_frequency"`
	ThemeFrequency float64     `yaml:"theme_frequency"`
}

type NoiseConfig struct {
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`
}

// ZoneConfig: строка статической таблицы зон.
type ZoneConfig struct {
	Tag          string  `yaml:"tag"`
	GapChance    float64 `yaml:"gap_chance"`
	HillChance   float64 `yaml:"hill_chance"`
	BridgeChance float64 `yaml:"bridge_chance"`
	Terrain      string  `yaml:"terrain"`
	AltTerrain   string  `yaml:"alt_terrain"`
}

type ServerConfig struct {
	RESTPort         int    `yaml:"rest_port"`
	CacheSize        int    `yaml:"cache_size"` // сколько схем (по сиду) держать в памяти
	MetricsNamespace string `yaml:"metrics_namespace"`
}

type LoggingConfig struct {
	Dir          string `yaml:"dir"` // пусто - только консоль
	ConsoleLevel string `yaml:"console_level"`
}

// ErrInvalidConfig оборачивает все ошибки валидации.
var ErrInvalidConfig = errors.New("invalid config")

// Default возвращает полную конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			HalfWidth:   400,
			HalfHeight:  16,
			HeightLo:    0,
			HeightHi:    12,
			Margin:      32,
			MaxBridge:   4,
			BonusChance: 0.08,
			TerrainNoise: NoiseConfig{
				Octaves:     4,
				Frequency:   0.03,
				Lacunarity:  2.0,
				Persistence: 0.5,
			},
			ZoneFrequency:  0.013,
			ThemeFrequency: 0.007,
		},
		Zones: []ZoneConfig{
			{Tag: "plains", GapChance: 0.01, HillChance: 0.5, BridgeChance: 0.1, Terrain: "grass", AltTerrain: "dirt"},
			{Tag: "forest", GapChance: 0.02, HillChance: 0.4, BridgeChance: 0.2, Terrain: "grass"},
			{Tag: "lake", GapChance: 0.3, HillChance: 0.2, Terrain: "sand"},
			{Tag: "lava", GapChance: 0.3, HillChance: 0.2, Terrain: "rock"},
			{Tag: "mushroom", GapChance: 0.55, HillChance: 0.3, BridgeChance: 0.3, Terrain: "dirt", AltTerrain: "grass"},
			{Tag: "caverns", GapChance: 0.05, HillChance: 0.3, BridgeChance: 0.5, Terrain: "stone", AltTerrain: "rock"},
			{Tag: "stone", GapChance: 0.05, HillChance: 0.6, BridgeChance: 0.3, Terrain: "stone", AltTerrain: "dirt"},
			{Tag: "castle", GapChance: 0.02, HillChance: 0.1, Terrain: "stone", AltTerrain: "brick"},
			{Tag: "snow", GapChance: 0.05, HillChance: 0.5, BridgeChance: 0.1, Terrain: "snow"},
		},
		Server: ServerConfig{
			RESTPort:         0, // 0 - взять из окружения или 8090
			CacheSize:        64,
			MetricsNamespace: "levelgen",
		},
		Logging: LoggingConfig{
			ConsoleLevel: "INFO",
		},
	}
}

// GetRESTPort возвращает порт REST API с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "LEVELGEN_REST_PORT", 8090)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать путь из ENV LEVELGEN_CONFIG; без него возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("LEVELGEN_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений.
func (c *Config) Validate() error {
	g := c.Generator
	if g.HalfWidth <= 0 {
		return fmt.Errorf("%w: half_width must be positive", ErrInvalidConfig)
	}
	if g.HeightHi <= g.HeightLo {
		return fmt.Errorf("%w: height_hi (%d) must exceed height_lo (%d)", ErrInvalidConfig, g.HeightHi, g.HeightLo)
	}
	if g.HalfHeight < g.HeightHi {
		return fmt.Errorf("%w: half_height (%d) must cover height_hi (%d)", ErrInvalidConfig, g.HalfHeight, g.HeightHi)
	}
	if len(c.Zones) == 0 {
		return fmt.Errorf("%w: at least one zone is required", ErrInvalidConfig)
	}
	for i, z := range c.Zones {
		for name, p := range map[string]float64{"gap_chance": z.GapChance, "hill_chance": z.HillChance, "bridge_chance": z.BridgeChance} {
			if p < 0 || p > 1 {
				return fmt.Errorf("%w: zones[%d].%s = %v outside [0,1]", ErrInvalidConfig, i, name, p)
			}
		}
	}
	return nil
}
