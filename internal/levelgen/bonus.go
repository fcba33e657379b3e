package levelgen

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/schema"
)

// brushBonus ставит стопки ящиков на ровную землю, если над ней свободно.
func (g *Generator) brushBonus(s *schema.Schema) {
	if s.Len() == 0 {
		return
	}
	for _, f := range flatRuns(s, s.Bounds()) {
		at := float64(f.At.X)
		if !box.NToChance(g.fields.Chance.Get(at, saltBonus), g.settings.BonusChance) {
			continue
		}
		w := box.NToBox1(g.fields.Pick.Get(at, saltCrateWidth), box.New1(1, 4))
		h := box.NToBox1(g.fields.Pick.Get(at, saltCrateHeight), box.New1(1, 3))
		xs, ok := box.NToFittedBox1(g.fields.Pick.Get(at, saltCratePlace), w, box.Span(f.At.X, f.Length))
		if !ok {
			continue
		}
		b := box.Box2[int]{X: xs, Y: box.Span(f.At.Y+1, h)}
		if !g.isFree(s, b) {
			continue
		}
		kind := box.NToEnum[schema.CrateKind](g.fields.Pick.Get(at, saltCrateKind), int(schema.CrateKindCount))
		s.Add(schema.CrateRect{Crate: kind, Box: b})
	}
}

// brushOffscreen помечает поля за краями уровня.
func (g *Generator) brushOffscreen(s *schema.Schema) {
	w, h, m := g.settings.HalfWidth, g.settings.HalfHeight, g.settings.Margin
	if m <= 0 {
		return
	}
	s.Add(schema.Offscreen{Box: box.New2(-w-m, -h, -w, h+1)})
	s.Add(schema.Offscreen{Box: box.New2(w, -h, w+m, h+1)})
}
