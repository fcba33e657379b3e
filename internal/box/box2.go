package box

import (
	"fmt"

	"github.com/annel0/levelgen/internal/vec"
)

// Box2: прямоугольник, выровненный по осям, из двух интервалов.
type Box2[T Scalar] struct {
	X Box1[T] `json:"x"`
	Y Box1[T] `json:"y"`
}

// New2 создаёт прямоугольник [x0,x1)×[y0,y1).
func New2[T Scalar](x0, y0, x1, y1 T) Box2[T] {
	return Box2[T]{X: New1(x0, x1), Y: New1(y0, y1)}
}

// Cell возвращает прямоугольник из одной клетки с углом в p.
func Cell(p vec.Vec2) Box2[int] {
	return Box2[int]{X: Span(p.X, 1), Y: Span(p.Y, 1)}
}

// Area возвращает площадь
func (b Box2[T]) Area() T {
	return b.X.Size() * b.Y.Size()
}

func (b Box2[T]) IsEmpty() bool {
	return b.X.IsEmpty() || b.Y.IsEmpty()
}

func (b Box2[T]) UnionCover(o Box2[T]) Box2[T] {
	return Box2[T]{X: b.X.UnionCover(o.X), Y: b.Y.UnionCover(o.Y)}
}

func (b Box2[T]) Intersect(o Box2[T]) Box2[T] {
	return Box2[T]{X: b.X.Intersect(o.X), Y: b.Y.Intersect(o.Y)}
}

func (b Box2[T]) Intersects(o Box2[T]) bool {
	return b.X.Intersects(o.X) && b.Y.Intersects(o.Y)
}

// Contains проверяет принадлежность точки (x, y).
func (b Box2[T]) Contains(x, y T) bool {
	return b.X.Contains(x) && b.Y.Contains(y)
}

func (b Box2[T]) ContainsBox(o Box2[T]) bool {
	if o.IsEmpty() {
		return true
	}
	return b.X.ContainsBox(o.X) && b.Y.ContainsBox(o.Y)
}

// Subtract разбивает b \ o на не более чем четыре непересекающихся прямоугольника:
// сначала полосы слева и справа на всю высоту, затем куски средней колонки.
func (b Box2[T]) Subtract(o Box2[T]) []Box2[T] {
	if b.IsEmpty() {
		return nil
	}
	if !b.Intersects(o) {
		return []Box2[T]{b}
	}
	out := make([]Box2[T], 0, 4)
	for _, xs := range b.X.Subtract(o.X) {
		out = append(out, Box2[T]{X: xs, Y: b.Y})
	}
	mid := b.X.Intersect(o.X)
	for _, ys := range b.Y.Subtract(o.Y) {
		out = append(out, Box2[T]{X: mid, Y: ys})
	}
	return out
}

// Center возвращает вещественный центр прямоугольника.
func (b Box2[T]) Center() vec.Vec2Float {
	return vec.Vec2Float{X: b.X.Center(), Y: b.Y.Center()}
}

func (b Box2[T]) String() string {
	return fmt.Sprintf("%v×%v", b.X, b.Y)
}
