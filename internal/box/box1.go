// Package box содержит полуоткрытые интервалы и прямоугольники,
// на которых строится вся геометрия генератора уровней.
package box

import "fmt"

// Scalar: упорядоченный числовой тип координаты.
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Box1 представляет полуоткрытый интервал [Lo, Hi).
type Box1[T Scalar] struct {
	Lo T `json:"lo"` // включительно
	Hi T `json:"hi"` // исключительно
}

// New1 создаёт интервал и паникует при Lo > Hi: такой интервал означает ошибку в конвейере.
func New1[T Scalar](lo, hi T) Box1[T] {
	if lo > hi {
		panic(fmt.Sprintf("box: invalid interval [%v, %v)", lo, hi))
	}
	return Box1[T]{Lo: lo, Hi: hi}
}

// Span создаёт интервал [lo, lo+size).
func Span[T Scalar](lo, size T) Box1[T] {
	return New1(lo, lo+size)
}

// Size возвращает длину интервала
func (b Box1[T]) Size() T {
	return b.Hi - b.Lo
}

// IsEmpty возвращает true для интервала нулевой длины
func (b Box1[T]) IsEmpty() bool {
	return b.Hi <= b.Lo
}

// UnionCover возвращает наименьший интервал, содержащий оба.
func (b Box1[T]) UnionCover(o Box1[T]) Box1[T] {
	return Box1[T]{Lo: min(b.Lo, o.Lo), Hi: max(b.Hi, o.Hi)}
}

// Intersect возвращает пересечение. Для непересекающихся интервалов
// результат пуст и прижат к max(Lo).
func (b Box1[T]) Intersect(o Box1[T]) Box1[T] {
	lo := max(b.Lo, o.Lo)
	hi := min(b.Hi, o.Hi)
	if hi < lo {
		hi = lo
	}
	return Box1[T]{Lo: lo, Hi: hi}
}

// Intersects проверяет непустое перекрытие.
func (b Box1[T]) Intersects(o Box1[T]) bool {
	return max(b.Lo, o.Lo) < min(b.Hi, o.Hi)
}

// Contains проверяет Lo <= p < Hi.
func (b Box1[T]) Contains(p T) bool {
	return b.Lo <= p && p < b.Hi
}

// ContainsBox проверяет, что o целиком лежит в b. Пустой интервал содержится в любом.
func (b Box1[T]) ContainsBox(o Box1[T]) bool {
	if o.IsEmpty() {
		return true
	}
	return b.Lo <= o.Lo && o.Hi <= b.Hi
}

// Subtract возвращает от нуля до двух непересекающихся кусков b \ o.
func (b Box1[T]) Subtract(o Box1[T]) []Box1[T] {
	if b.IsEmpty() {
		return nil
	}
	if !b.Intersects(o) {
		return []Box1[T]{b}
	}
	out := make([]Box1[T], 0, 2)
	if b.Lo < o.Lo {
		out = append(out, Box1[T]{Lo: b.Lo, Hi: o.Lo})
	}
	if o.Hi < b.Hi {
		out = append(out, Box1[T]{Lo: o.Hi, Hi: b.Hi})
	}
	return out
}

// Center возвращает вещественную середину интервала
func (b Box1[T]) Center() float64 {
	return (float64(b.Lo) + float64(b.Hi)) / 2
}

func (b Box1[T]) String() string {
	return fmt.Sprintf("[%v,%v)", b.Lo, b.Hi)
}
