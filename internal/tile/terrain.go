// Package tile описывает каталог тайлов: типы местности, формы тайлов,
// их фиксированную классификацию сторон и углов и отображение в координаты атласа.
package tile

import (
	"errors"
	"fmt"
	"strings"
)

// Terrain: тип местности, из которого нарезаются тайлы блоков.
type Terrain uint8

const (
	TerrainNone Terrain = iota
	TerrainGrass
	TerrainDirt
	TerrainStone
	TerrainSand
	TerrainSnow
	TerrainBrick
	TerrainRock

	terrainCount // всегда последний
)

// ErrUnknownTerrain возвращается ParseTerrain для незнакомого имени.
var ErrUnknownTerrain = errors.New("unknown terrain")

var terrainNames = [...]string{
	TerrainNone:  "none",
	TerrainGrass: "grass",
	TerrainDirt:  "dirt",
	TerrainStone: "stone",
	TerrainSand:  "sand",
	TerrainSnow:  "snow",
	TerrainBrick: "brick",
	TerrainRock:  "rock",
}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

// ParseTerrain разбирает имя местности без учёта регистра. Пустая строка - TerrainNone.
func ParseTerrain(name string) (Terrain, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return TerrainNone, nil
	}
	for i, n := range terrainNames {
		if n == name {
			return Terrain(i), nil
		}
	}
	return TerrainNone, fmt.Errorf("%w: %q", ErrUnknownTerrain, name)
}
