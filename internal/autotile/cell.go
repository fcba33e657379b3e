package autotile

import (
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
)

// Cell: результат разрешения точки на одном слое: либо конкретный тайл,
// либо абстрактный маркер "покрыто местностью Terrain по политике Cover".
type Cell struct {
	Tile     tile.Tile
	Abstract bool
	Cover    schema.CoverPolicy
	Terrain  tile.Terrain
	Block    uint32 // идентификатор фичи-блока, давшей маркер
}

// Exact создаёт клетку с конкретным тайлом
func Exact(t tile.Tile) Cell {
	return Cell{Tile: t}
}

// Covered создаёт абстрактную клетку
func Covered(cover schema.CoverPolicy, terrain tile.Terrain, block uint32) Cell {
	return Cell{Abstract: true, Cover: cover, Terrain: terrain, Block: block}
}

// IsEmpty сообщает, что в клетке ничего нет.
func (c Cell) IsEmpty() bool {
	return !c.Abstract && c.Tile.IsAir()
}

// solidTerrain возвращает местность, если клетка участвует в автотайлинге соседей.
func (c Cell) solidTerrain() (tile.Terrain, bool) {
	if c.Abstract {
		return c.Terrain, true
	}
	if c.Tile.IsTerrain() {
		return c.Tile.Terrain, true
	}
	return tile.TerrainNone, false
}
