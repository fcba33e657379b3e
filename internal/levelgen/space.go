package levelgen

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/schema"
)

// flatRuns возвращает маркеры ровной земли, пересекающие область, в порядке добавления.
func flatRuns(s *schema.Schema, area box.Box2[int]) []schema.FlatGround {
	var out []schema.FlatGround
	for _, r := range s.Intersecting(area) {
		if f, ok := r.Feature.(schema.FlatGround); ok {
			out = append(out, f)
		}
	}
	return out
}

// groundRanges возвращает x-интервалы, занятые ровной землёй или склонами.
func groundRanges(s *schema.Schema, area box.Box2[int]) []box.Box1[int] {
	var out []box.Box1[int]
	for _, r := range s.Intersecting(area) {
		switch r.Feature.Kind() {
		case schema.KindFlatGround, schema.KindSlopedGround:
			out = append(out, r.Feature.Bounds().X)
		}
	}
	return out
}

// isFree сообщает, что прямоугольник лежит в пределах уровня по высоте
// и не пересекает ни одной видимой фичи.
func (g *Generator) isFree(s *schema.Schema, b box.Box2[int]) bool {
	if b.IsEmpty() {
		return false
	}
	if b.Y.Lo < -g.settings.HalfHeight || b.Y.Hi > g.settings.HalfHeight+1 {
		return false
	}
	for _, r := range s.Intersecting(b) {
		if !r.Feature.Kind().IsMarker() {
			return false
		}
	}
	return true
}

// subtractAll вычитает из base все интервалы cut.
func subtractAll(base box.Box1[int], cut []box.Box1[int]) []box.Box1[int] {
	open := []box.Box1[int]{base}
	for _, c := range cut {
		var next []box.Box1[int]
		for _, o := range open {
			next = append(next, o.Subtract(c)...)
		}
		open = next
	}
	return open
}
