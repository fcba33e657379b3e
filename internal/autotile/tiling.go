package autotile

import (
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
)

// Tiling: результат разрешения слоя земли: основной тайл, накладки-заглушки
// и итоговые углы каждой клетки. Индексация построчная снизу вверх: i = y*W + x.
type Tiling struct {
	W, H     int
	Main     []tile.Tile
	CapLeft  []tile.Tile
	CapRight []tile.Tile
	Corners  []tile.Corners
}

// Смещения соседей по сторонам: вверх, влево, вправо, вниз.
type side uint8

const (
	sideTop side = iota
	sideLeft
	sideRight
	sideBottom
)

var sideOffsets = [4][2]int{
	sideTop:    {0, 1},
	sideLeft:   {-1, 0},
	sideRight:  {1, 0},
	sideBottom: {0, -1},
}

func (s side) opposite() side {
	return 3 - s
}

func sideOf(v tile.Sides, s side) bool {
	switch s {
	case sideTop:
		return v.Top
	case sideLeft:
		return v.Left
	case sideRight:
		return v.Right
	default:
		return v.Bottom
	}
}

func setSide(v *tile.Sides, s side, exterior bool) {
	switch s {
	case sideTop:
		v.Top = exterior
	case sideLeft:
		v.Left = exterior
	case sideRight:
		v.Right = exterior
	default:
		v.Bottom = exterior
	}
}

// seamSides: стороны, на которых граница с другим блоком той же местности даёт шов.
var seamSides = map[schema.CoverPolicy][4]bool{
	schema.FullyCovered: {sideTop: true, sideLeft: true, sideRight: true, sideBottom: true},
	schema.TopCovered:   {sideTop: true, sideBottom: true},
	schema.Bare:         {sideLeft: true, sideRight: true, sideBottom: true},
}

type tiler struct {
	w, h  int
	cells []Cell
}

func (t *tiler) at(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return Cell{}, false
	}
	return t.cells[y*t.w+x], true
}

// same сообщает, что в клетке твёрдая местность terrain.
func (t *tiler) same(x, y int, terrain tile.Terrain) bool {
	nb, _ := t.at(x, y)
	nt, solid := nb.solidTerrain()
	return solid && nt == terrain
}

// ComputeTiling разрешает абстрактные клетки слоя земли строго по стадиям:
// таблица сторон точных тайлов, пакетное разрешение абстрактных клеток по этой таблице,
// затем углы и накладки по итоговым формам. Повторный запуск на собственном результате
// ничего не меняет.
func ComputeTiling(cells []Cell, w, h int) Tiling {
	t := &tiler{w: w, h: h, cells: cells}
	n := w * h

	// Стадия 1: стороны точных тайлов фиксированы, абстрактные пока внутренние.
	stage1 := make([]tile.Sides, n)
	for i, c := range cells[:n] {
		if !c.Abstract && c.Tile.IsTerrain() {
			stage1[i] = c.Tile.Shape.Sides()
		}
	}

	// Стадия 2: каждая абстрактная клетка читает только таблицу стадии 1.
	out := Tiling{
		W:        w,
		H:        h,
		Main:     make([]tile.Tile, n),
		CapLeft:  make([]tile.Tile, n),
		CapRight: make([]tile.Tile, n),
		Corners:  make([]tile.Corners, n),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			c := cells[i]
			if !c.Abstract {
				out.Main[i] = c.Tile
				continue
			}
			out.Main[i] = tile.Of(c.Terrain, t.resolveAbstract(x, y, stage1))
		}
	}

	// Стадия 3: углы и накладки из итоговых форм.
	final := &tiler{w: w, h: h, cells: make([]Cell, n)}
	for i, m := range out.Main {
		final.cells[i] = Exact(m)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			out.Corners[i] = final.mergedCorners(x, y)
			out.CapLeft[i], out.CapRight[i] = final.caps(x, y, out.Corners[i])
		}
	}
	return out
}

// exteriorSides определяет внешние стороны абстрактной клетки.
func (t *tiler) exteriorSides(x, y int, stage1 []tile.Sides) tile.Sides {
	c := t.cells[y*t.w+x]
	seams := seamSides[c.Cover]
	var sides tile.Sides
	for s := sideTop; s <= sideBottom; s++ {
		nx, ny := x+sideOffsets[s][0], y+sideOffsets[s][1]
		nb, inside := t.at(nx, ny)
		terrain, solid := nb.solidTerrain()

		exterior := false
		switch {
		case !inside || !solid:
			exterior = true
		case terrain != c.Terrain:
			exterior = true
		case !nb.Abstract:
			exterior = sideOf(stage1[ny*t.w+nx], s.opposite())
		case nb.Block != c.Block:
			exterior = seams[s]
		}
		setSide(&sides, s, exterior)
	}
	if c.Cover == schema.Bare {
		sides.Top = false
	}
	return sides
}

// resolveAbstract выбирает форму абстрактной клетки.
func (t *tiler) resolveAbstract(x, y int, stage1 []tile.Sides) tile.Shape {
	c := t.cells[y*t.w+x]
	sides := t.exteriorSides(x, y, stage1)

	if up, ok := t.at(x, y+1); ok && !up.Abstract && up.Tile.Terrain == c.Terrain {
		switch up.Tile.Shape {
		case tile.SlopeUp:
			return tile.SlopeIntUp
		case tile.SlopeDown:
			return tile.SlopeIntDown
		}
	}

	if !sides.Top && !sides.Left && !sides.Right && !sides.Bottom {
		for _, d := range []struct {
			dx, dy int
			shape  tile.Shape
		}{
			{-1, 1, tile.FaceIntTL},
			{1, 1, tile.FaceIntTR},
			{-1, -1, tile.FaceIntBL},
			{1, -1, tile.FaceIntBR},
		} {
			if t.same(x+d.dx, y, c.Terrain) && t.same(x, y+d.dy, c.Terrain) && !t.same(x+d.dx, y+d.dy, c.Terrain) {
				return d.shape
			}
		}
	}

	return faceFor(sides)
}

// faceFor выбирает одну из 9 граней блока по внешним сторонам.
func faceFor(s tile.Sides) tile.Shape {
	row := tile.RowMid
	switch {
	case s.Top:
		row = tile.RowTop
	case s.Bottom:
		row = tile.RowBottom
	}
	col := tile.ColMid
	switch {
	case s.Left && !s.Right:
		col = tile.ColLeft
	case s.Right && !s.Left:
		col = tile.ColRight
	}
	return tile.Face(row, col)
}

// cornerRefs: для каждого угла клетки: соседи по двум сторонам и индекс этого же угла у них.
var cornerRefs = [4][2]struct {
	dx, dy int
	corner int
}{
	tile.TL: {{-1, 0, tile.TR}, {0, 1, tile.BL}},
	tile.TR: {{1, 0, tile.TL}, {0, 1, tile.BR}},
	tile.BL: {{-1, 0, tile.BR}, {0, -1, tile.TL}},
	tile.BR: {{1, 0, tile.BL}, {0, -1, tile.TR}},
}

// mergedCorners сливает собственные углы клетки с углами соседей той же местности
// в общих вершинах: slope > inner > none.
func (t *tiler) mergedCorners(x, y int) tile.Corners {
	c := t.cells[y*t.w+x]
	terrain, solid := c.solidTerrain()
	if !solid {
		return tile.Corners{}
	}
	merged := c.Tile.Shape.Corners()
	for corner, refs := range cornerRefs {
		for _, ref := range refs {
			nb, _ := t.at(x+ref.dx, y+ref.dy)
			if nt, ok := nb.solidTerrain(); ok && nt == terrain {
				merged[corner] = merged[corner].Merge(nb.Tile.Shape.Corners()[ref.corner])
			}
		}
	}
	return merged
}

// caps решает, нужны ли накладки на верхней грани: угол со стороны накладки не пуст
// или сосед с этой стороны - другая местность.
func (t *tiler) caps(x, y int, corners tile.Corners) (left, right tile.Tile) {
	c := t.cells[y*t.w+x].Tile
	if !c.IsTerrain() || !c.Shape.IsFace() || !c.Shape.Sides().Top {
		return tile.Air, tile.Air
	}
	otherTerrain := func(dx int) bool {
		nb, _ := t.at(x+dx, y)
		nt, solid := nb.solidTerrain()
		return solid && nt != c.Terrain
	}
	if corners[tile.TL] != tile.CornerNone || otherTerrain(-1) {
		left = tile.Of(c.Terrain, tile.CapLeft)
	}
	if corners[tile.TR] != tile.CornerNone || otherTerrain(1) {
		right = tile.Of(c.Terrain, tile.CapRight)
	}
	return left, right
}
