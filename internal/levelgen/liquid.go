package levelgen

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/schema"
)

// surfaceTops возвращает верх земли в каждой колонке xs (пол, если земли нет).
func (g *Generator) surfaceTops(s *schema.Schema, area box.Box2[int]) []int {
	xs := area.X
	tops := make([]int, xs.Size())
	for i := range tops {
		tops[i] = g.settings.Heights.Lo
	}
	for _, r := range s.Intersecting(area) {
		switch f := r.Feature.(type) {
		case schema.GroundBlock:
			cols := f.Box.X.Intersect(xs)
			for x := cols.Lo; x < cols.Hi; x++ {
				tops[x-xs.Lo] = max(tops[x-xs.Lo], f.Box.Y.Hi)
			}
		case schema.HillBlock:
			cols := f.Bounds().X.Intersect(xs)
			for x := cols.Lo; x < cols.Hi; x++ {
				tops[x-xs.Lo] = max(tops[x-xs.Lo], f.SurfaceY(x)+1)
			}
		}
	}
	return tops
}

// brushLiquid заливает зону водой или лавой на одну-две клетки выше самой низкой земли.
func (g *Generator) brushLiquid(s *schema.Schema, z zoneRun) {
	xs := z.Zone.Box.X
	if xs.IsEmpty() {
		return
	}
	tops := g.surfaceTops(s, z.Zone.Box)
	lowest := tops[0]
	for _, t := range tops[1:] {
		lowest = min(lowest, t)
	}

	surface := lowest + 1 + box.NToRange(g.fields.Pick.Get(float64(xs.Lo), saltLiquid), 2)
	surface = min(surface, g.settings.HalfHeight+1)
	b := box.Box2[int]{X: xs, Y: box.New1(g.settings.Heights.Lo, surface)}

	if z.Spec.Tag == schema.ZoneLava {
		s.Add(schema.SurfaceLava{Box: b})
		return
	}
	s.Add(schema.SurfaceWater{Box: b})
}
