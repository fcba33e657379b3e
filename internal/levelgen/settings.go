package levelgen

import (
	"fmt"

	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/config"
	"github.com/annel0/levelgen/internal/noise"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
)

// ZoneSpec: параметры зоны из статической таблицы.
type ZoneSpec struct {
	Tag          schema.ZoneTag
	GapChance    float64
	HillChance   float64
	BridgeChance float64
	Terrain      tile.Terrain
	AltTerrain   tile.Terrain // TerrainNone - альтернативы нет
}

// altOrPrimary возвращает альтернативную местность, если она задана.
func (z ZoneSpec) altOrPrimary() tile.Terrain {
	if z.AltTerrain != tile.TerrainNone {
		return z.AltTerrain
	}
	return z.Terrain
}

// Settings: неизменяемые параметры генератора.
type Settings struct {
	HalfWidth   int           // уровень занимает [-W, W)
	HalfHeight  int           // зоны занимают [-H, H+1)
	Heights     box.Box1[int] // Lo - пол, высоты земли берутся из [Lo+1, Hi)
	Margin      int
	MaxBridge   int
	BonusChance float64
	Noise       noise.Settings
	Zones       []ZoneSpec
}

// SettingsFromConfig переводит YAML конфигурацию в параметры генератора.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	g := cfg.Generator
	s := Settings{
		HalfWidth:   g.HalfWidth,
		HalfHeight:  g.HalfHeight,
		Margin:      g.Margin,
		MaxBridge:   g.MaxBridge,
		BonusChance: g.BonusChance,
		Noise: noise.Settings{
			Terrain: noise.FractalParams{
				Octaves:     g.TerrainNoise.Octaves,
				Frequency:   g.TerrainNoise.Frequency,
				Lacunarity:  g.TerrainNoise.Lacunarity,
				Persistence: g.TerrainNoise.Persistence,
			},
			ZoneFrequency:  g.ZoneFrequency,
			ThemeFrequency: g.ThemeFrequency,
		},
	}
	if g.HeightHi <= g.HeightLo {
		return Settings{}, fmt.Errorf("%w: empty height range [%d,%d)", config.ErrInvalidConfig, g.HeightLo, g.HeightHi)
	}
	s.Heights = box.New1(g.HeightLo, g.HeightHi)

	for i, zc := range cfg.Zones {
		tag, err := schema.ParseZoneTag(zc.Tag)
		if err != nil {
			return Settings{}, fmt.Errorf("zones[%d]: %w", i, err)
		}
		primary, err := tile.ParseTerrain(zc.Terrain)
		if err != nil {
			return Settings{}, fmt.Errorf("zones[%d].terrain: %w", i, err)
		}
		if primary == tile.TerrainNone {
			return Settings{}, fmt.Errorf("zones[%d].terrain: %w: empty", i, tile.ErrUnknownTerrain)
		}
		alt, err := tile.ParseTerrain(zc.AltTerrain)
		if err != nil {
			return Settings{}, fmt.Errorf("zones[%d].alt_terrain: %w", i, err)
		}
		s.Zones = append(s.Zones, ZoneSpec{
			Tag:          tag,
			GapChance:    zc.GapChance,
			HillChance:   zc.HillChance,
			BridgeChance: zc.BridgeChance,
			Terrain:      primary,
			AltTerrain:   alt,
		})
	}
	if len(s.Zones) == 0 {
		return Settings{}, fmt.Errorf("%w: no zones", config.ErrInvalidConfig)
	}
	return s, nil
}

// DefaultSettings возвращает параметры конфигурации по умолчанию.
func DefaultSettings() Settings {
	s, err := SettingsFromConfig(config.Default())
	if err != nil {
		panic(fmt.Sprintf("levelgen: default config is invalid: %v", err))
	}
	return s
}
