// Package noise предоставляет детерминированные скалярные поля, выведенные из одного сида сессии.
// Все поля - чистые функции координат: одинаковые сид и координаты дают одно и то же значение
// в любом процессе.
package noise

// Field: скалярное поле со значениями в [0,1].
type Field interface {
	Get(x, y float64) float64
}

// Constant: поле, везде равное одному значению. Используется в тестах.
type Constant float64

func (c Constant) Get(_, _ float64) float64 { return float64(c) }

// Func адаптирует обычную функцию к Field.
type Func func(x, y float64) float64

func (f Func) Get(x, y float64) float64 { return f(x, y) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Contrast растягивает поле вокруг 0.5 с коэффициентом Gain.
// Сглаженный шум редко доходит до краёв диапазона, а выбор из перечисления должен видеть все варианты.
type Contrast struct {
	Field Field
	Gain  float64
}

func (c Contrast) Get(x, y float64) float64 {
	return clamp01((c.Field.Get(x, y)-0.5)*c.Gain + 0.5)
}
