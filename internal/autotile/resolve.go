package autotile

import (
	"time"

	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/logging"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
	"github.com/annel0/levelgen/internal/vec"
)

// border: ширина рамки вокруг региона, дающей соседей крайним клеткам.
const border = 1

// Resolve разрешает регион схемы в сетку тайлов. Схема только читается.
func Resolve(s *schema.Schema, region box.Box2[int]) *Grid {
	start := time.Now()
	grid := newGrid(region)
	if region.IsEmpty() {
		return grid
	}

	ext := box.New2(region.X.Lo-border, region.Y.Lo-border, region.X.Hi+border, region.Y.Hi+border)
	w, h := ext.X.Size(), ext.Y.Size()

	layers := stageA(s, ext)

	// Стадия B: соседи на слое земли.
	mid := ComputeTiling(layers[tile.LayerMidground], w, h)

	for y := region.Y.Lo; y < region.Y.Hi; y++ {
		for x := region.X.Lo; x < region.X.Hi; x++ {
			i := (y-ext.Y.Lo)*w + (x - ext.X.Lo)
			grid.set(tile.LayerBackground, x, y, flatten(layers[tile.LayerBackground][i]))
			grid.set(tile.LayerForeground, x, y, flatten(layers[tile.LayerForeground][i]))
			grid.set(tile.LayerMidground, x, y, mid.Main[i])
			grid.set(tile.LayerCapLeft, x, y, mid.CapLeft[i])
			grid.set(tile.LayerCapRight, x, y, mid.CapRight[i])
		}
	}

	logging.GetResolverLogger().Trace("регион %v разрешён за %v", region, time.Since(start))
	return grid
}

// stageA разрешает каждую точку расширенного региона по слоям фич.
func stageA(s *schema.Schema, ext box.Box2[int]) [tile.FeatureLayers][]Cell {
	w, h := ext.X.Size(), ext.Y.Size()
	var layers [tile.FeatureLayers][]Cell
	for l := range layers {
		layers[l] = make([]Cell, w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := vec.Vec2{X: ext.X.Lo + x, Y: ext.Y.Lo + y}
			cells := resolvePoint(s.AtPoint(p), p)
			for l := range layers {
				layers[l][y*w+x] = cells[l]
			}
		}
	}
	return layers
}

// flatten превращает клетку слоя без автотайлинга в тайл.
func flatten(c Cell) tile.Tile {
	if c.Abstract {
		return tile.Of(c.Terrain, tile.FaceMM)
	}
	return c.Tile
}
