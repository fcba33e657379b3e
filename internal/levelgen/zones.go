package levelgen

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
)

// Ширина зоны берётся из [minZoneWidth, maxZoneWidth); последняя зона обрезается по W.
const (
	minZoneWidth = 20
	maxZoneWidth = 70
)

// zoneRun: зона вместе со строкой таблицы, по которой она построена.
type zoneRun struct {
	Zone schema.Zone
	Spec ZoneSpec
}

// partitionZones разбивает [-W, W) на зоны без пересечений и пропусков.
func (g *Generator) partitionZones() []zoneRun {
	w, h := g.settings.HalfWidth, g.settings.HalfHeight
	zones := g.settings.Zones
	if len(zones) == 0 || w <= 0 {
		return nil
	}

	var out []zoneRun
	for x := -w; x < w; {
		fx := float64(x)
		spec := zones[box.NToEnum[int](g.fields.Zone.Get(fx, 0), len(zones))]
		width := box.NToBox1(g.fields.Pick.Get(fx, saltZoneWidth), box.New1(minZoneWidth, maxZoneWidth))
		hi := min(x+width, w)
		out = append(out, zoneRun{
			Zone: schema.Zone{Tag: spec.Tag, Box: box.New2(x, -h, hi, h+1)},
			Spec: spec,
		})
		x = hi
	}
	return out
}

// zoneTerrain выбирает основную местность зоны или альтернативную,
// если поле темы в центре зоны не ниже 0.5.
func (g *Generator) zoneTerrain(z zoneRun) tile.Terrain {
	if z.Spec.AltTerrain == tile.TerrainNone {
		return z.Spec.Terrain
	}
	c := z.Zone.Box.Center()
	if box.NToBool(g.fields.Theme.Get(c.X, c.Y)) {
		return z.Spec.AltTerrain
	}
	return z.Spec.Terrain
}
