package schema

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/vec"
)

// bucketSize: сторона корзины пространственного индекса (размер чанка).
const bucketSize = 16

// spatialIndex: равномерная сетка корзин с идентификаторами фич.
// Фича попадает во все корзины, которые пересекает её граница.
type spatialIndex struct {
	cellSize int
	cells    map[vec.Vec2][]uint32
}

func newSpatialIndex(cellSize int) *spatialIndex {
	if cellSize <= 0 {
		cellSize = bucketSize
	}
	return &spatialIndex{
		cellSize: cellSize,
		cells:    make(map[vec.Vec2][]uint32),
	}
}

// insert добавляет идентификатор во все корзины границ b.
func (si *spatialIndex) insert(id uint32, b box.Box2[int]) {
	si.forCells(b, func(key vec.Vec2) {
		si.cells[key] = append(si.cells[key], id)
	})
}

// candidates возвращает идентификаторы из корзин, пересекающих b, без повторов.
// Точная проверка пересечения - на вызывающей стороне.
func (si *spatialIndex) candidates(b box.Box2[int]) []uint32 {
	seen := make(map[uint32]struct{})
	var out []uint32
	si.forCells(b, func(key vec.Vec2) {
		for _, id := range si.cells[key] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	})
	return out
}

// cellCount возвращает количество непустых корзин
func (si *spatialIndex) cellCount() int {
	return len(si.cells)
}

// forCells обходит корзины, пересекающие непустой прямоугольник b.
func (si *spatialIndex) forCells(b box.Box2[int], fn func(vec.Vec2)) {
	if b.IsEmpty() {
		return
	}
	lo := vec.Vec2{X: b.X.Lo, Y: b.Y.Lo}.Bucket(si.cellSize)
	hi := vec.Vec2{X: b.X.Hi - 1, Y: b.Y.Hi - 1}.Bucket(si.cellSize)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			fn(vec.Vec2{X: x, Y: y})
		}
	}
}
