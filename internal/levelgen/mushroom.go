package levelgen

import (
	"container/heap"

	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/vec"
)

const (
	minMushroomRange = 11 // уже этого диапазона гриб не ставится
	minMushroomHalf  = 2
	minStemHeight    = 3
)

// rangeHeap: очередь открытых диапазонов: сверху самый широкий, при равенстве - левый.
type rangeHeap []box.Box1[int]

func (h rangeHeap) Len() int { return len(h) }
func (h rangeHeap) Less(i, j int) bool {
	if h[i].Size() != h[j].Size() {
		return h[i].Size() > h[j].Size()
	}
	return h[i].Lo < h[j].Lo
}
func (h rangeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *rangeHeap) Push(x any)   { *h = append(*h, x.(box.Box1[int])) }
func (h *rangeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// mushroomPlan: шляпка и ножка одного гриба.
type mushroomPlan struct {
	Top  schema.BigMushroomTop
	Stem schema.BigMushroomStem
}

// planMushrooms делит открытые диапазоны грибами, пока самый широкий не станет уже minMushroomRange.
// Каждый шаг убирает из открытых диапазонов ширину шляпки, поэтому цикл конечен.
func (g *Generator) planMushrooms(open []box.Box1[int]) []mushroomPlan {
	h := &rangeHeap{}
	for _, r := range open {
		if !r.IsEmpty() {
			heap.Push(h, r)
		}
	}

	floor := g.settings.Heights.Lo
	var plans []mushroomPlan
	for h.Len() > 0 {
		r := heap.Pop(h).(box.Box1[int])
		if r.Size() < minMushroomRange {
			break
		}

		at := float64(r.Lo)
		half := box.NToBox1(g.fields.Pick.Get(at, saltMushroomHalf), box.New1(minMushroomHalf, (r.Size()-1)/2+1))
		capSpan, ok := box.NToFittedBox1(g.fields.Pick.Get(at, saltMushroomPlace), 2*half+1, r)
		if !ok {
			continue
		}

		centerX := capSpan.Lo + half
		capY := box.NToBox1(g.fields.Pick.Get(float64(centerX), saltMushroomHeight),
			box.New1(floor+minStemHeight, max(floor+minStemHeight+1, g.settings.Heights.Hi+2)))
		capY = min(capY, g.settings.HalfHeight)

		plans = append(plans, mushroomPlan{
			Top:  schema.BigMushroomTop{Center: vec.Vec2{X: centerX, Y: capY}, Width: capSpan.Size()},
			Stem: schema.BigMushroomStem{Base: vec.Vec2{X: centerX, Y: floor}, Height: capY - floor},
		})

		for _, rest := range r.Subtract(capSpan) {
			heap.Push(h, rest)
		}
	}
	return plans
}

// brushMushrooms ставит большие грибы над провалами зоны.
func (g *Generator) brushMushrooms(s *schema.Schema, z zoneRun) {
	open := subtractAll(z.Zone.Box.X, groundRanges(s, z.Zone.Box))
	for _, p := range g.planMushrooms(open) {
		s.Add(p.Top)
		s.Add(p.Stem)
	}
}
