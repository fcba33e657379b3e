// Package autotile превращает схему уровня в многослойную сетку тайлов.
package autotile

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/tile"
)

// Grid: плотная сетка тайлов региона, по слою на каждый tile.Layer.
type Grid struct {
	Region box.Box2[int]
	layers [tile.LayerCount][]tile.Tile
}

func newGrid(region box.Box2[int]) *Grid {
	g := &Grid{Region: region}
	n := region.Area()
	for l := range g.layers {
		g.layers[l] = make([]tile.Tile, n)
	}
	return g
}

// Width возвращает ширину сетки в клетках
func (g *Grid) Width() int { return g.Region.X.Size() }

// Height возвращает высоту сетки в клетках
func (g *Grid) Height() int { return g.Region.Y.Size() }

func (g *Grid) index(x, y int) (int, bool) {
	if !g.Region.Contains(x, y) {
		return 0, false
	}
	return (y-g.Region.Y.Lo)*g.Width() + (x - g.Region.X.Lo), true
}

// Tile возвращает тайл слоя в мировых координатах; вне региона - воздух.
func (g *Grid) Tile(l tile.Layer, x, y int) tile.Tile {
	i, ok := g.index(x, y)
	if !ok || l >= tile.LayerCount {
		return tile.Air
	}
	return g.layers[l][i]
}

// ID возвращает координаты атласа для клетки слоя.
func (g *Grid) ID(l tile.Layer, x, y int) tile.ID {
	return g.Tile(l, x, y).ID()
}

func (g *Grid) set(l tile.Layer, x, y int, t tile.Tile) {
	if i, ok := g.index(x, y); ok {
		g.layers[l][i] = t
	}
}

// Rows возвращает идентификаторы слоя по строкам сверху вниз, как их рисует рендер.
func (g *Grid) Rows(l tile.Layer) [][]tile.ID {
	rows := make([][]tile.ID, 0, g.Height())
	for y := g.Region.Y.Hi - 1; y >= g.Region.Y.Lo; y-- {
		row := make([]tile.ID, 0, g.Width())
		for x := g.Region.X.Lo; x < g.Region.X.Hi; x++ {
			row = append(row, g.ID(l, x, y))
		}
		rows = append(rows, row)
	}
	return rows
}
