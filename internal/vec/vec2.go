// Package vec содержит целочисленные и вещественные 2D координаты уровня.
// Ось Y направлена вверх: земля лежит в нижних строках.
package vec

import "math"

// Vec2 представляет целочисленную клетку уровня (Place).
type Vec2 struct {
	X, Y int
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Offset сдвигает клетку на (dx, dy)
func (v Vec2) Offset(dx, dy int) Vec2 {
	return Vec2{X: v.X + dx, Y: v.Y + dy}
}

// Bucket возвращает координаты корзины размера size, в которую попадает клетка.
// Деление округляет к минус бесконечности, поэтому отрицательные клетки не слипаются с нулевой корзиной.
func (v Vec2) Bucket(size int) Vec2 {
	return Vec2{X: FloorDiv(v.X, size), Y: FloorDiv(v.Y, size)}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// FloorDiv делит с округлением вниз (b > 0).
func FloorDiv(a, b int) int {
	q := a / b
	if r := a % b; r < 0 {
		q--
	}
	return q
}
