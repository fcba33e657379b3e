package box

import (
	"testing"

	"github.com/annel0/levelgen/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestBox2_Subtract(t *testing.T) {
	outer := New2(0, 0, 6, 6)
	hole := New2(2, 2, 4, 4)
	pieces := outer.Subtract(hole)
	assert.Len(t, pieces, 4)

	area := 0
	for i, p := range pieces {
		area += p.Area()
		assert.False(t, p.Intersects(hole))
		for _, q := range pieces[i+1:] {
			assert.False(t, p.Intersects(q))
		}
	}
	assert.Equal(t, outer.Area()-hole.Area(), area)

	assert.Equal(t, []Box2[int]{outer}, outer.Subtract(New2(10, 10, 12, 12)))
	assert.Empty(t, outer.Subtract(New2(-1, -1, 7, 7)))
}

func TestBox2_ContainsAndCenter(t *testing.T) {
	b := New2(-2, 0, 2, 3)
	assert.True(t, b.Contains(-2, 0))
	assert.False(t, b.Contains(2, 0))
	assert.Equal(t, vec.Vec2Float{X: 0, Y: 1.5}, b.Center())
	assert.Equal(t, New2(-2, 0, 5, 5), b.UnionCover(New2(4, 4, 5, 5)))
	assert.True(t, Cell(vec.Vec2{X: 1, Y: 1}).Intersects(b))
}
