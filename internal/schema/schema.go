package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/vec"
)

// Record: фича вместе с её идентификатором. Идентификаторы выдаются по порядку добавления
// и служат детерминированным tie-break и идентичностью блока при автотайлинге.
type Record struct {
	ID      uint32  `json:"id"`
	Feature Feature `json:"feature"`
}

// Schema: пространственный индекс всех фич одного уровня.
// Пишется один раз генератором, затем только читается; чтения безопасны из многих горутин.
type Schema struct {
	mu      sync.RWMutex
	records []Record
	index   *spatialIndex
	bounds  box.Box2[int]
}

// New создаёт пустую схему
func New() *Schema {
	return &Schema{index: newSpatialIndex(bucketSize)}
}

// Add вставляет фичу и её производные маркеры одним вызовом.
// Фичи с пустыми границами не хранятся: для кистей это означает "нечего ставить".
func (s *Schema) Add(f Feature) {
	if f == nil || f.Bounds().IsEmpty() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.insert(f)
	if d, ok := f.(deriver); ok {
		for _, df := range d.derived() {
			if !df.Bounds().IsEmpty() {
				s.insert(df)
			}
		}
	}
}

func (s *Schema) insert(f Feature) {
	id := uint32(len(s.records))
	b := f.Bounds()
	if len(s.records) == 0 {
		s.bounds = b
	} else {
		s.bounds = s.bounds.UnionCover(b)
	}
	s.records = append(s.records, Record{ID: id, Feature: f})
	s.index.insert(id, b)
}

// Intersecting возвращает все фичи, граница которых пересекает b, в порядке идентификаторов.
// Каждый вызов вычисляется заново.
func (s *Schema) Intersecting(b box.Box2[int]) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	for _, id := range s.index.candidates(b) {
		r := s.records[id]
		if r.Feature.Bounds().Intersects(b) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AtPoint возвращает все фичи, содержащие клетку p.
func (s *Schema) AtPoint(p vec.Vec2) []Record {
	return s.Intersecting(box.Cell(p))
}

// Bounds возвращает прямоугольник, покрывающий все фичи.
// Вызов на пустой схеме - ошибка конвейера и приводит к панике.
func (s *Schema) Bounds() box.Box2[int] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		panic("schema: Bounds on empty schema")
	}
	return s.bounds
}

// Len возвращает количество хранимых фич, включая производные.
func (s *Schema) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Records возвращает копию всех записей в порядке добавления.
func (s *Schema) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// CountByKind возвращает количество фич каждого вида.
func (s *Schema) CountByKind() map[Kind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[Kind]int)
	for _, r := range s.records {
		counts[r.Feature.Kind()]++
	}
	return counts
}

// GetStats возвращает статистику индекса
func (s *Schema) GetStats() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cells := s.index.cellCount()
	avg := 0.0
	if cells > 0 {
		total := 0
		for _, ids := range s.index.cells {
			total += len(ids)
		}
		avg = float64(total) / float64(cells)
	}
	return fmt.Sprintf("Schema Stats: %d features, %d buckets, avg %.2f features/bucket",
		len(s.records), cells, avg)
}
