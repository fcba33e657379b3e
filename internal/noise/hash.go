package noise

import "math"

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Hash2: целочисленный хеш SplitMix64 от сида и клетки.
func Hash2(seed int64, x, y int) uint64 {
	ux := uint64(uint32(int32(x)))
	uy := uint64(uint32(int32(y)))
	v := uint64(seed) ^ (ux * 0x9e3779b97f4a7c15) ^ (uy * 0xbf58476d1ce4e5b9)
	return mix64(v)
}

// DeriveSeed выводит независимый подсид для канала с номером channel.
func DeriveSeed(seed int64, channel uint64) int64 {
	return int64(mix64(uint64(seed) ^ mix64(channel+1)))
}

// White: равномерный "белый" шум: независимое значение на каждую целочисленную клетку.
// Используется для бернуллиевских бросков и выбора размеров.
type White struct {
	seed int64
}

func NewWhite(seed int64) White {
	return White{seed: seed}
}

// Get возвращает значение из [0,1) для клетки, содержащей (x, y).
func (w White) Get(x, y float64) float64 {
	h := Hash2(w.seed, int(math.Floor(x)), int(math.Floor(y)))
	return float64(h>>11) / float64(1<<53)
}
