package levelgen

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
	"github.com/annel0/levelgen/internal/vec"
)

// Параметры декоративных кистей.
const (
	treeChance   = 0.18
	treeSpacing  = 4
	flowerChance = 0.2
	iglooChance  = 0.6
	rubbleChance = 0.4
	towerChance  = 0.5

	iglooWidth  = 5
	iglooHeight = 3
)

// decorate запускает кисть, соответствующую тегу зоны.
func (g *Generator) decorate(s *schema.Schema, z zoneRun) {
	switch z.Spec.Tag {
	case schema.ZoneLake, schema.ZoneLava:
		g.brushLiquid(s, z)
	case schema.ZoneMushroom:
		g.brushMushrooms(s, z)
	case schema.ZoneForest:
		g.brushTrees(s, z)
	case schema.ZoneSnow:
		g.brushIgloos(s, z)
	case schema.ZoneCaverns:
		g.brushCeiling(s, z)
	case schema.ZoneStone:
		g.brushRubble(s, z)
	case schema.ZoneCastle:
		g.brushTowers(s, z)
	case schema.ZonePlains:
		g.brushFlowers(s, z)
	}
}

// brushTrees сажает деревья на фоне: ствол высотой 2-3 и крона крестом.
func (g *Generator) brushTrees(s *schema.Schema, z zoneRun) {
	for _, f := range flatRuns(s, z.Zone.Box) {
		top := f.At.Y + 1
		for x := f.At.X + 1; x < f.At.X+f.Length-1; x++ {
			if !box.NToChance(g.fields.Chance.Get(float64(x), saltTree), treeChance) {
				continue
			}
			trunk := box.NToBox1(g.fields.Pick.Get(float64(x), saltTreeHeight), box.New1(2, 4))
			area := box.New2(x-1, top, x+2, top+trunk+2)
			if !g.isFree(s, area) {
				continue
			}
			for y := top; y < top+trunk; y++ {
				s.Add(schema.PlacedTile{At: vec.Vec2{X: x, Y: y}, Layer: tile.LayerBackground, Tile: tile.Misc(tile.TreeTrunk)})
			}
			canopy := []vec.Vec2{{X: x - 1, Y: top + trunk}, {X: x, Y: top + trunk}, {X: x + 1, Y: top + trunk}, {X: x, Y: top + trunk + 1}}
			for _, p := range canopy {
				s.Add(schema.PlacedTile{At: p, Layer: tile.LayerBackground, Tile: tile.Misc(tile.TreeCanopy)})
			}
			x += treeSpacing
		}
	}
}

// brushIgloos ставит иглу 5×3 на подходящие ровные участки.
func (g *Generator) brushIgloos(s *schema.Schema, z zoneRun) {
	for _, f := range flatRuns(s, z.Zone.Box) {
		at := float64(f.At.X)
		if !box.NToChance(g.fields.Chance.Get(at, saltIgloo), iglooChance) {
			continue
		}
		xs, ok := box.NToFittedBox1(g.fields.Pick.Get(at, saltIglooPlace), iglooWidth, box.Span(f.At.X, f.Length))
		if !ok {
			continue
		}
		b := box.Box2[int]{X: xs, Y: box.Span(f.At.Y+1, iglooHeight)}
		if !g.isFree(s, b) {
			continue
		}
		door := box.NToBox1(g.fields.Pick.Get(at, saltIglooDoor), box.New1(1, iglooWidth-1))
		s.Add(schema.Igloo{Box: b, Door: door})
	}
}

// brushCeiling закрывает пещеру сверху каменным потолком неровной толщины,
// а всё над потолком помечает как Offscreen.
func (g *Generator) brushCeiling(s *schema.Schema, z zoneRun) {
	xs := z.Zone.Box.X
	top := g.settings.HalfHeight + 1
	room := top - g.settings.Heights.Hi
	if room <= 0 {
		return
	}
	terrain := z.Spec.altOrPrimary()
	for x := xs.Lo; x < xs.Hi; {
		at := float64(x)
		w := box.NToBox1(g.fields.Pick.Get(at, saltCeilingWidth), box.New1(4, 10))
		hi := min(x+w, xs.Hi)
		depth := min(room, box.NToBox1(g.fields.Pick.Get(at, saltCeilingDepth), box.New1(2, 5)))
		s.Add(schema.GroundBlock{
			Cover:   schema.FullyCovered,
			Terrain: terrain,
			Box:     box.New2(x, top-depth, hi, top),
		})
		x = hi
	}
	if g.settings.Margin > 0 {
		s.Add(schema.Offscreen{Box: box.Box2[int]{X: xs, Y: box.Span(top, g.settings.Margin)}})
	}
}

// brushRubble насыпает на ровную землю невысокие кучи альтернативной местности.
func (g *Generator) brushRubble(s *schema.Schema, z zoneRun) {
	terrain := z.Spec.altOrPrimary()
	for _, f := range flatRuns(s, z.Zone.Box) {
		if f.Length < 3 {
			continue
		}
		at := float64(f.At.X)
		if !box.NToChance(g.fields.Chance.Get(at, saltRubble), rubbleChance) {
			continue
		}
		w := box.NToBox1(g.fields.Pick.Get(at, saltRubbleWidth), box.New1(2, min(6, f.Length)+1))
		h := box.NToBox1(g.fields.Pick.Get(at, saltRubbleHeight), box.New1(1, 3))
		xs, ok := box.NToFittedBox1(g.fields.Pick.Get(at, saltRubblePlace), w, box.Span(f.At.X, f.Length))
		if !ok {
			continue
		}
		b := box.Box2[int]{X: xs, Y: box.Span(f.At.Y+1, h)}
		if g.isFree(s, b) {
			s.Add(schema.GroundBlock{Cover: schema.Bare, Terrain: terrain, Box: b})
		}
	}
}

// brushTowers ставит башни из альтернативной местности с видимыми швами со всех сторон.
func (g *Generator) brushTowers(s *schema.Schema, z zoneRun) {
	terrain := z.Spec.altOrPrimary()
	for _, f := range flatRuns(s, z.Zone.Box) {
		if f.Length < 4 {
			continue
		}
		at := float64(f.At.X)
		if !box.NToChance(g.fields.Chance.Get(at, saltTower), towerChance) {
			continue
		}
		w := box.NToBox1(g.fields.Pick.Get(at, saltTowerWidth), box.New1(2, 4))
		h := box.NToBox1(g.fields.Pick.Get(at, saltTowerHeight), box.New1(3, 6))
		xs, ok := box.NToFittedBox1(g.fields.Pick.Get(at, saltTowerPlace), w, box.Span(f.At.X, f.Length))
		if !ok {
			continue
		}
		b := box.Box2[int]{X: xs, Y: box.Span(f.At.Y+1, h)}
		if g.isFree(s, b) {
			s.Add(schema.GroundBlock{Cover: schema.FullyCovered, Terrain: terrain, Box: b})
		}
	}
}

// brushFlowers раскладывает цветы на переднем плане.
func (g *Generator) brushFlowers(s *schema.Schema, z zoneRun) {
	for _, f := range flatRuns(s, z.Zone.Box) {
		for x := f.At.X; x < f.At.X+f.Length; x++ {
			if !box.NToChance(g.fields.Chance.Get(float64(x), saltFlower), flowerChance) {
				continue
			}
			p := vec.Vec2{X: x, Y: f.At.Y + 1}
			if g.isFree(s, box.Cell(p)) {
				s.Add(schema.PlacedTile{At: p, Layer: tile.LayerForeground, Tile: tile.Misc(tile.Flower)})
			}
		}
	}
}
