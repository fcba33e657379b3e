package noise

import (
	"github.com/aquilax/go-perlin"
)

// Сглаживание и частота базового шума Перлина. Октавы суммируются отдельно в Fractal,
// поэтому сам генератор всегда однооктавный.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// Gradient: однооктавный градиентный шум Перлина, нормализованный в [0,1].
type Gradient struct {
	p         *perlin.Perlin
	frequency float64
}

// NewGradient создаёт поле с указанным сидом и частотой
func NewGradient(seed int64, frequency float64) *Gradient {
	if frequency <= 0 {
		frequency = 1
	}
	return &Gradient{
		p:         perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed),
		frequency: frequency,
	}
}

// Get возвращает значение шума (от 0 до 1). Смещение на полклетки уводит выборку
// с узлов решётки, где градиентный шум всегда равен нулю.
func (g *Gradient) Get(x, y float64) float64 {
	n := g.p.Noise2D(x*g.frequency+0.5, y*g.frequency+0.5)
	return clamp01((n + 1.0) / 2.0)
}

// FractalParams описывает мультиоктавное суммирование.
type FractalParams struct {
	Octaves     int
	Frequency   float64
	Lacunarity  float64
	Persistence float64
}

// Fractal суммирует октавы градиентного шума и нормализует сумму амплитуд,
// так что результат остаётся в [0,1] при любом числе октав.
type Fractal struct {
	octaves []*Gradient
	amps    []float64
	norm    float64
}

// NewFractal создаёт фрактальное поле. Каждая октава получает собственный подсид.
func NewFractal(seed int64, params FractalParams) *Fractal {
	if params.Octaves < 1 {
		params.Octaves = 1
	}
	if params.Lacunarity <= 0 {
		params.Lacunarity = 2
	}
	if params.Persistence <= 0 {
		params.Persistence = 0.5
	}

	f := &Fractal{}
	freq := params.Frequency
	amp := 1.0
	for i := 0; i < params.Octaves; i++ {
		f.octaves = append(f.octaves, NewGradient(DeriveSeed(seed, uint64(i)), freq))
		f.amps = append(f.amps, amp)
		f.norm += amp
		freq *= params.Lacunarity
		amp *= params.Persistence
	}
	return f
}

func (f *Fractal) Get(x, y float64) float64 {
	sum := 0.0
	for i, o := range f.octaves {
		sum += (o.Get(x, y)*2 - 1) * f.amps[i]
	}
	return clamp01((sum/f.norm + 1) / 2)
}
