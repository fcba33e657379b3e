package box

// Помощники отображения шума в решения. Канонический домен входа - [0,1);
// значения за его пределами прижимаются к краям.

func clampUnit(n float64) float64 {
	switch {
	case n != n, n < 0: // NaN тоже сюда
		return 0
	case n >= 1:
		return 0.9999999999
	default:
		return n
	}
}

// NToBool делит домен пополам.
func NToBool(n float64) bool {
	return clampUnit(n) >= 0.5
}

// NToChance возвращает true с вероятностью p для равномерного n.
func NToChance(n, p float64) bool {
	return clampUnit(n) < p
}

// NToRange отображает n в целое из [0, top). При top <= 0 возвращает 0.
func NToRange(n float64, top int) int {
	if top <= 0 {
		return 0
	}
	v := int(clampUnit(n) * float64(top))
	if v >= top {
		v = top - 1
	}
	return v
}

// NToEnum выбирает один из count вариантов.
func NToEnum[E ~int | ~uint8](n float64, count int) E {
	return E(NToRange(n, count))
}

// NToBox1 отображает n в точку внутри интервала. Для пустого интервала возвращает Lo.
func NToBox1(n float64, b Box1[int]) int {
	return b.Lo + NToRange(n, b.Size())
}

// NToFittedBox1 размещает внутри rng подинтервал длины size, выбирая смещение по n.
// Возвращает false, если size не помещается.
func NToFittedBox1(n float64, size int, rng Box1[int]) (Box1[int], bool) {
	if size < 0 || size > rng.Size() {
		return Box1[int]{}, false
	}
	lo := rng.Lo + NToRange(n, rng.Size()-size+1)
	return Box1[int]{Lo: lo, Hi: lo + size}, true
}
