package vec

import "math"

// Vec2Float: вещественная точка, например центр прямоугольника.
type Vec2Float struct {
	X, Y float64
}

// ToVec2 возвращает клетку, в которую попадает точка.
func (v Vec2Float) ToVec2() Vec2 {
	return Vec2{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}
