package box

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allIntervals перечисляет все интервалы с концами в [lo, hi].
func allIntervals(lo, hi int) []Box1[int] {
	var out []Box1[int]
	for a := lo; a <= hi; a++ {
		for b := a; b <= hi; b++ {
			out = append(out, New1(a, b))
		}
	}
	return out
}

func TestNew1_PanicsOnInverted(t *testing.T) {
	assert.Panics(t, func() { New1(3, 2) }, "lo > hi - ошибка конвейера")
	assert.NotPanics(t, func() { New1(2, 2) })
}

func TestBox1_Basics(t *testing.T) {
	b := New1(2, 7)
	assert.Equal(t, 5, b.Size())
	assert.False(t, b.IsEmpty())
	assert.True(t, New1(4, 4).IsEmpty())
	assert.True(t, b.Contains(2))
	assert.False(t, b.Contains(7), "верхняя граница не включается")
	assert.Equal(t, 4.5, b.Center())
	assert.False(t, New1(0, 2).Intersects(New1(2, 4)), "смежные интервалы не пересекаются")
	assert.True(t, New1(0, 3).Intersects(New1(2, 4)))
}

func TestBox1_AlgebraProperties(t *testing.T) {
	boxes := allIntervals(-3, 4)
	for _, a := range boxes {
		for _, b := range boxes {
			u := a.UnionCover(b)
			assert.True(t, u.ContainsBox(a), "%v ∪ %v должен содержать a", a, b)
			assert.True(t, u.ContainsBox(b), "%v ∪ %v должен содержать b", a, b)

			i := a.Intersect(b)
			assert.True(t, a.ContainsBox(i))
			assert.True(t, b.ContainsBox(i))
			assert.Equal(t, !i.IsEmpty(), a.Intersects(b))

			pieces := a.Subtract(b)
			require.LessOrEqual(t, len(pieces), 2)
			for k, p := range pieces {
				assert.False(t, p.IsEmpty(), "куски разности не бывают пустыми")
				assert.False(t, p.Intersects(b))
				for _, q := range pieces[k+1:] {
					assert.False(t, p.Intersects(q), "куски %v и %v пересекаются", p, q)
				}
			}

			// Разность вместе с пересечением восстанавливает a поточечно.
			for x := -4; x <= 5; x++ {
				covered := i.Contains(x)
				for _, p := range pieces {
					if p.Contains(x) {
						assert.False(t, covered, "точка %d покрыта дважды", x)
						covered = true
					}
				}
				assert.Equal(t, a.Contains(x), covered, "a=%v b=%v x=%d", a, b, x)
			}
		}
	}
}

func TestBox1_Float(t *testing.T) {
	b := New1(0.5, 2.5)
	assert.InDelta(t, 2.0, b.Size(), 1e-9)
	assert.Equal(t, []Box1[float64]{{Lo: 0.5, Hi: 1}, {Lo: 2, Hi: 2.5}}, b.Subtract(New1(1.0, 2.0)))
}
