// Package schema хранит пространственный индекс фич одного сгенерированного уровня.
package schema

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/tile"
	"github.com/annel0/levelgen/internal/vec"
)

// Feature: типизированная запись уровня с геометрическими границами.
type Feature interface {
	Kind() Kind
	Bounds() box.Box2[int]
}

// deriver реализуют фичи, за которыми Schema.Add обязана добавить производные маркеры.
type deriver interface {
	derived() []Feature
}

// GroundBlock: прямоугольник сплошной земли.
type GroundBlock struct {
	Cover   CoverPolicy   `json:"cover"`
	Terrain tile.Terrain  `json:"terrain"`
	Box     box.Box2[int] `json:"box"`
}

func (g GroundBlock) Kind() Kind            { return KindGroundBlock }
func (g GroundBlock) Bounds() box.Box2[int] { return g.Box }

func (g GroundBlock) derived() []Feature {
	return []Feature{FlatGround{
		At:     vec.Vec2{X: g.Box.X.Lo, Y: g.Box.Y.Hi - 1},
		Length: g.Box.X.Size(),
	}}
}

// HillBlock: диагональный склон шириной Rise.Size(), проходящий по высотам Rise.
// Под склоном либо сплошная заливка до Floor, либо мост толщиной Bridge.
type HillBlock struct {
	Terrain tile.Terrain  `json:"terrain"`
	Start   int           `json:"start"`
	Rise    box.Box1[int] `json:"rise"`
	Floor   int           `json:"floor"`
	Bridge  int           `json:"bridge,omitempty"` // 0 - без моста
	Dir     SlopeDir      `json:"dir"`
}

func (h HillBlock) Kind() Kind { return KindHillBlock }

func (h HillBlock) Width() int { return h.Rise.Size() }

func (h HillBlock) Bounds() box.Box2[int] {
	return box.Box2[int]{X: box.Span(h.Start, h.Width()), Y: box.New1(h.Floor, h.Rise.Hi)}
}

// SurfaceY возвращает строку клетки склона в колонке x.
func (h HillBlock) SurfaceY(x int) int {
	i := x - h.Start
	if h.Dir == LeftToRight {
		return h.Rise.Lo + i
	}
	return h.Rise.Hi - 1 - i
}

// HillPart: часть холма в клетке.
type HillPart uint8

const (
	HillNone      HillPart = iota // воздух над склоном или пустота под мостом
	HillSlope                     // клетка диагонали
	HillFill                      // сплошная заливка
	HillUnderside                 // нижняя кромка моста
)

// PartAt классифицирует клетку p внутри холма.
func (h HillBlock) PartAt(p vec.Vec2) HillPart {
	if !h.Bounds().Contains(p.X, p.Y) {
		return HillNone
	}
	top := h.SurfaceY(p.X)
	switch {
	case p.Y > top:
		return HillNone
	case p.Y == top:
		return HillSlope
	case h.Bridge <= 0:
		return HillFill
	case p.Y > top-h.Bridge:
		return HillFill
	case p.Y == top-h.Bridge:
		return HillUnderside
	default:
		return HillNone
	}
}

func (h HillBlock) derived() []Feature {
	w := h.Width()
	if h.Dir == LeftToRight {
		return []Feature{SlopedGround{Start: vec.Vec2{X: h.Start, Y: h.Rise.Lo}, Height: w}}
	}
	return []Feature{SlopedGround{Start: vec.Vec2{X: h.Start, Y: h.Rise.Hi - 1}, Height: -w}}
}

// Igloo: иглу в прямоугольнике Box; дверь в нижнем ряду со смещением Door от левого края.
type Igloo struct {
	Box  box.Box2[int] `json:"box"`
	Door int           `json:"door"`
}

func (i Igloo) Kind() Kind            { return KindIgloo }
func (i Igloo) Bounds() box.Box2[int] { return i.Box }

// PlacedTile: конкретный тайл, положенный в клетку на указанный слой.
type PlacedTile struct {
	At    vec.Vec2   `json:"at"`
	Layer tile.Layer `json:"layer"`
	Tile  tile.Tile  `json:"tile"`
}

func (t PlacedTile) Kind() Kind            { return KindPlacedTile }
func (t PlacedTile) Bounds() box.Box2[int] { return box.Cell(t.At) }

// CrateRect: прямоугольная стопка ящиков.
type CrateRect struct {
	Crate CrateKind     `json:"crate"`
	Box   box.Box2[int] `json:"box"`
}

func (c CrateRect) Kind() Kind            { return KindCrateRect }
func (c CrateRect) Bounds() box.Box2[int] { return c.Box }

// SurfaceWater: водоём; верхний ряд Box - поверхность.
type SurfaceWater struct {
	Box box.Box2[int] `json:"box"`
}

func (w SurfaceWater) Kind() Kind            { return KindSurfaceWater }
func (w SurfaceWater) Bounds() box.Box2[int] { return w.Box }

// SurfaceLava: озеро лавы; верхний ряд Box - поверхность.
type SurfaceLava struct {
	Box box.Box2[int] `json:"box"`
}

func (l SurfaceLava) Kind() Kind            { return KindSurfaceLava }
func (l SurfaceLava) Bounds() box.Box2[int] { return l.Box }

// BigMushroomTop: шляпка гриба шириной Width с центром в Center.
type BigMushroomTop struct {
	Center vec.Vec2 `json:"center"`
	Width  int      `json:"width"`
}

func (m BigMushroomTop) Kind() Kind { return KindBigMushroomTop }

// Span возвращает горизонтальный интервал шляпки.
func (m BigMushroomTop) Span() box.Box1[int] {
	return box.Span(m.Center.X-m.Width/2, m.Width)
}

func (m BigMushroomTop) Bounds() box.Box2[int] {
	return box.Box2[int]{X: m.Span(), Y: box.Span(m.Center.Y, 1)}
}

func (m BigMushroomTop) derived() []Feature {
	return []Feature{FlatGround{At: vec.Vec2{X: m.Span().Lo, Y: m.Center.Y}, Length: m.Width}}
}

// BigMushroomStem: ножка гриба от Base вверх на Height клеток.
type BigMushroomStem struct {
	Base   vec.Vec2 `json:"base"`
	Height int      `json:"height"`
}

func (m BigMushroomStem) Kind() Kind { return KindBigMushroomStem }

func (m BigMushroomStem) Bounds() box.Box2[int] {
	return box.Box2[int]{X: box.Span(m.Base.X, 1), Y: box.Span(m.Base.Y, m.Height)}
}

// SlopedGround: производный маркер склона: от Start на |Height| колонок,
// знак Height задаёт направление.
type SlopedGround struct {
	Start  vec.Vec2 `json:"start"`
	Height int      `json:"height"`
}

func (s SlopedGround) Kind() Kind { return KindSlopedGround }

func (s SlopedGround) Bounds() box.Box2[int] {
	if s.Height >= 0 {
		return box.Box2[int]{X: box.Span(s.Start.X, s.Height), Y: box.Span(s.Start.Y, s.Height)}
	}
	w := -s.Height
	return box.Box2[int]{X: box.Span(s.Start.X, w), Y: box.New1(s.Start.Y-w+1, s.Start.Y+1)}
}

// FlatGround: производный маркер ровной поверхности: верхний ряд земли длиной Length.
type FlatGround struct {
	At     vec.Vec2 `json:"at"`
	Length int      `json:"length"`
}

func (f FlatGround) Kind() Kind { return KindFlatGround }

func (f FlatGround) Bounds() box.Box2[int] {
	return box.Box2[int]{X: box.Span(f.At.X, f.Length), Y: box.Span(f.At.Y, 1)}
}

// Zone: область с общей темой.
type Zone struct {
	Tag ZoneTag       `json:"tag"`
	Box box.Box2[int] `json:"box"`
}

func (z Zone) Kind() Kind            { return KindZone }
func (z Zone) Bounds() box.Box2[int] { return z.Box }

// Offscreen: область за пределами играбельного уровня.
type Offscreen struct {
	Box box.Box2[int] `json:"box"`
}

func (o Offscreen) Kind() Kind            { return KindOffscreen }
func (o Offscreen) Bounds() box.Box2[int] { return o.Box }
