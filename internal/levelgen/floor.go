package levelgen

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/vec"
)

// gapGrain: ширина зерна, на которое бросается вероятность провала.
// Провалы в одну колонку не проходимы визуально, поэтому решение общее на зерно.
const gapGrain = 4

// minBridge: минимальная толщина моста под склоном.
const minBridge = 2

// heightRun: максимальный отрезок колонок с одинаковой высотой.
type heightRun struct {
	Length int
	X      int
	Height int
}

// End возвращает x сразу за отрезком
func (r heightRun) End() int {
	return r.X + r.Length
}

// encodeRuns сжимает высоты колонок начиная с x0 в максимальные отрезки.
func encodeRuns(x0 int, heights []int) []heightRun {
	var runs []heightRun
	for i, h := range heights {
		if n := len(runs); n > 0 && runs[n-1].Height == h {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, heightRun{Length: 1, X: x0 + i, Height: h})
	}
	return runs
}

// decodeRuns разворачивает отрезки обратно в высоты колонок.
func decodeRuns(runs []heightRun) []int {
	var heights []int
	for _, r := range runs {
		for i := 0; i < r.Length; i++ {
			heights = append(heights, r.Height)
		}
	}
	return heights
}

// columnHeight: целевая высота колонки: пол при провале, иначе значение поля рельефа.
func (g *Generator) columnHeight(x int, spec ZoneSpec) int {
	hs := g.settings.Heights
	gap := g.fields.Chance.Get(float64(vec.FloorDiv(x, gapGrain)), saltGap)
	if box.NToChance(gap, spec.GapChance) {
		return hs.Lo
	}
	return box.NToBox1(g.fields.Terrain.Get(float64(x), 0), box.New1(hs.Lo+1, hs.Hi))
}

// brushFloor строит землю зоны из карты высот.
func (g *Generator) brushFloor(s *schema.Schema, z zoneRun) {
	xs := z.Zone.Box.X
	if xs.IsEmpty() {
		return
	}
	heights := make([]int, xs.Size())
	for i := range heights {
		heights[i] = g.columnHeight(xs.Lo+i, z.Spec)
	}
	runs := encodeRuns(xs.Lo, heights)

	terrain := g.zoneTerrain(z)
	floor := g.settings.Heights.Lo
	ground := func(lo, hi, height int) {
		if lo >= hi || height <= floor {
			return
		}
		s.Add(schema.GroundBlock{
			Cover:   schema.TopCovered,
			Terrain: terrain,
			Box:     box.New2(lo, floor, hi, height),
		})
	}

	cursor := xs.Lo
	for i, r := range runs {
		if i == len(runs)-1 {
			ground(cursor, r.End(), r.Height)
			break
		}
		next := runs[i+1]

		if hill, ok := g.planHill(cursor, r, next, z.Spec); ok {
			hill.Terrain = terrain
			ground(cursor, hill.Start, r.Height)
			s.Add(hill)
			cursor = hill.Start + hill.Width()
			continue
		}

		ground(cursor, r.End(), r.Height)
		cursor = r.End()
	}
}

// planHill решает, станет ли граница r|next склоном. Склон шириной d в разницу высот
// вписывается в окно [next.X-d, next.X+d), обрезанное по cursor и next.End(): так
// колонки вне склона слева остаются в r, справа в next и сохраняют свои высоты.
func (g *Generator) planHill(cursor int, r, next heightRun, spec ZoneSpec) (schema.HillBlock, bool) {
	floor := g.settings.Heights.Lo
	lower, higher := min(r.Height, next.Height), max(r.Height, next.Height)
	if lower <= floor || lower == higher {
		return schema.HillBlock{}, false
	}

	at := float64(next.X)
	if !box.NToChance(g.fields.Chance.Get(at, saltHill), spec.HillChance) {
		return schema.HillBlock{}, false
	}
	d := higher - lower
	lo, hi := max(cursor, next.X-d), min(next.End(), next.X+d)
	if lo >= hi {
		return schema.HillBlock{}, false
	}
	span, ok := box.NToFittedBox1(g.fields.Pick.Get(at, saltHillPlace), d, box.New1(lo, hi))
	if !ok {
		return schema.HillBlock{}, false
	}

	hill := schema.HillBlock{
		Start: span.Lo,
		Rise:  box.New1(lower, higher),
		Floor: floor,
		Dir:   schema.LeftToRight,
	}
	if next.Height < r.Height {
		hill.Dir = schema.RightToLeft
	}

	if box.NToChance(g.fields.Chance.Get(at, saltBridge), spec.BridgeChance) && g.settings.MaxBridge >= minBridge {
		depth := box.NToBox1(g.fields.Pick.Get(at, saltBridgeDepth), box.New1(minBridge, g.settings.MaxBridge+1))
		if t := min(lower-floor, depth); t >= minBridge {
			hill.Bridge = t
		}
	}
	return hill, true
}
