package autotile

import (
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
	"github.com/annel0/levelgen/internal/vec"
)

// Приоритеты вкладов в слой. Больший побеждает, при равенстве - больший ID фичи.
const (
	priorityNone = iota
	priorityCover
	priorityStructure
	priorityPlaced
)

type contribution struct {
	layer    tile.Layer
	priority int
	cell     Cell
}

// contribute возвращает вклад фичи в клетку p. ok == false - фича ничего не рисует.
func contribute(r schema.Record, p vec.Vec2) (contribution, bool) {
	switch f := r.Feature.(type) {
	case schema.GroundBlock:
		return contribution{tile.LayerMidground, priorityCover, Covered(f.Cover, f.Terrain, r.ID)}, true

	case schema.HillBlock:
		switch f.PartAt(p) {
		case schema.HillSlope:
			shape := tile.SlopeUp
			if f.Dir == schema.RightToLeft {
				shape = tile.SlopeDown
			}
			return contribution{tile.LayerMidground, priorityStructure, Exact(tile.Of(f.Terrain, shape))}, true
		case schema.HillUnderside:
			shape := tile.BridgeUp
			if f.Dir == schema.RightToLeft {
				shape = tile.BridgeDown
			}
			return contribution{tile.LayerMidground, priorityStructure, Exact(tile.Of(f.Terrain, shape))}, true
		case schema.HillFill:
			return contribution{tile.LayerMidground, priorityCover, Covered(schema.TopCovered, f.Terrain, r.ID)}, true
		}

	case schema.Igloo:
		return contribution{tile.LayerMidground, priorityStructure, Exact(tile.Misc(iglooShape(f, p)))}, true

	case schema.PlacedTile:
		return contribution{f.Layer, priorityPlaced, Exact(f.Tile)}, true

	case schema.CrateRect:
		return contribution{tile.LayerMidground, priorityStructure, Exact(tile.Misc(crateShapes[f.Crate]))}, true

	case schema.SurfaceWater:
		shape := tile.WaterBody
		if p.Y == f.Box.Y.Hi-1 {
			shape = tile.WaterSurface
		}
		return contribution{tile.LayerForeground, priorityCover, Exact(tile.Misc(shape))}, true

	case schema.SurfaceLava:
		shape := tile.LavaBody
		if p.Y == f.Box.Y.Hi-1 {
			shape = tile.LavaSurface
		}
		return contribution{tile.LayerForeground, priorityCover, Exact(tile.Misc(shape))}, true

	case schema.BigMushroomTop:
		span := f.Span()
		shape := tile.MushroomCapM
		switch p.X {
		case span.Lo:
			shape = tile.MushroomCapL
		case span.Hi - 1:
			shape = tile.MushroomCapR
		}
		return contribution{tile.LayerMidground, priorityStructure, Exact(tile.Misc(shape))}, true

	case schema.BigMushroomStem:
		return contribution{tile.LayerBackground, priorityCover, Exact(tile.Misc(tile.MushroomStem))}, true
	}
	return contribution{}, false
}

var crateShapes = [schema.CrateKindCount]tile.Shape{
	schema.CrateWood:  tile.CrateWood,
	schema.CrateMetal: tile.CrateMetal,
	schema.CrateBonus: tile.CrateBonus,
}

// iglooShape выбирает часть иглу: верхний ряд или нижние, лево/середина/право, плюс дверь.
func iglooShape(ig schema.Igloo, p vec.Vec2) tile.Shape {
	b := ig.Box
	if p.Y == b.Y.Lo && p.X == b.X.Lo+ig.Door {
		return tile.IglooDoor
	}
	col := 1
	switch p.X {
	case b.X.Lo:
		col = 0
	case b.X.Hi - 1:
		col = 2
	}
	if p.Y == b.Y.Hi-1 {
		return tile.IglooTL + tile.Shape(col)
	}
	return tile.IglooBL + tile.Shape(col)
}

// resolvePoint выбирает для каждого слоя фич самый приоритетный вклад записей, содержащих p.
func resolvePoint(records []schema.Record, p vec.Vec2) [tile.FeatureLayers]Cell {
	var out [tile.FeatureLayers]Cell
	var best [tile.FeatureLayers]int
	for _, r := range records {
		c, ok := contribute(r, p)
		if !ok || int(c.layer) >= tile.FeatureLayers {
			continue
		}
		// записи идут по возрастанию ID, поэтому >= отдаёт равный приоритет поздней фиче
		if c.priority >= best[c.layer] {
			best[c.layer] = c.priority
			out[c.layer] = c.cell
		}
	}

	// жидкость не видна сквозь твёрдую землю
	fg := out[tile.LayerForeground]
	if isLiquid(fg.Tile.Shape) {
		if _, solid := out[tile.LayerMidground].solidTerrain(); solid {
			out[tile.LayerForeground] = Cell{}
		}
	}
	return out
}

func isLiquid(s tile.Shape) bool {
	return s >= tile.WaterSurface && s <= tile.LavaBody
}
