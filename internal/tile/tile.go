package tile

import "fmt"

// Tile: конкретный тайл: форма и, для форм местности, сама местность.
// Нулевое значение - воздух.
type Tile struct {
	Terrain Terrain
	Shape   Shape
}

// Air: пустая клетка.
var Air = Tile{}

// Of создаёт тайл местности
func Of(t Terrain, s Shape) Tile {
	return Tile{Terrain: t, Shape: s}
}

// Misc создаёт самостоятельный тайл без местности
func Misc(s Shape) Tile {
	return Tile{Shape: s}
}

func (t Tile) IsAir() bool {
	return t.Shape == ShapeAir
}

// IsTerrain сообщает, является ли тайл частью местности и участвует ли он в автотайлинге соседей.
func (t Tile) IsTerrain() bool {
	return t.Terrain != TerrainNone && t.Shape.IsTerrainShape()
}

// ID: координаты тайла в атласе текстур (колонка, строка).
type ID struct {
	Col uint8 `json:"col"`
	Row uint8 `json:"row"`
}

// AirID: явный маркер пустой клетки.
var AirID = ID{Col: 255, Row: 255}

// Раскладка атласа: каждая местность занимает atlasRowsPerTerrain строк по atlasWidth тайлов,
// самостоятельные тайлы идут следом.
const (
	atlasWidth          = 7
	atlasRowsPerTerrain = 3
)

var miscBaseRow = uint8((int(terrainCount) - 1) * atlasRowsPerTerrain)

// ID возвращает координаты тайла в атласе.
func (t Tile) ID() ID {
	switch {
	case t.IsAir():
		return AirID
	case t.Shape.IsTerrainShape():
		if t.Terrain == TerrainNone || t.Terrain >= terrainCount {
			return AirID
		}
		k := int(t.Shape - FaceTL)
		return ID{
			Col: uint8(k % atlasWidth),
			Row: uint8(int(t.Terrain-1)*atlasRowsPerTerrain + k/atlasWidth),
		}
	case t.Shape >= WaterSurface && t.Shape < shapeCount:
		k := int(t.Shape - WaterSurface)
		return ID{Col: uint8(k % atlasWidth), Row: miscBaseRow + uint8(k/atlasWidth)}
	default:
		return AirID
	}
}

func (t Tile) String() string {
	if t.IsAir() {
		return "air"
	}
	if t.Terrain == TerrainNone {
		return fmt.Sprintf("misc#%d", t.Shape)
	}
	return fmt.Sprintf("%s#%d", t.Terrain, t.Shape)
}
