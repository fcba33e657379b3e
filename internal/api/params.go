package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/tile"
)

// maxRegionArea ограничивает размер одного запроса.
const maxRegionArea = 256 * 256

var (
	ErrInvalidSeed    = errors.New("invalid seed")
	ErrInvalidRegion  = errors.New("invalid region")
	ErrRegionTooLarge = errors.New("region too large")
	ErrUnknownLayer   = errors.New("unknown layer")
)

func parseSeed(c *gin.Context) (uint64, error) {
	seed, err := strconv.ParseUint(c.Param("seed"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeed, c.Param("seed"))
	}
	return seed, nil
}

// parseRegion читает x0,y0,x1,y1 из query; отсутствующие берутся из def.
func parseRegion(c *gin.Context, def box.Box2[int]) (box.Box2[int], error) {
	vals := [4]int{def.X.Lo, def.Y.Lo, def.X.Hi, def.Y.Hi}
	for i, name := range [4]string{"x0", "y0", "x1", "y1"} {
		raw, ok := c.GetQuery(name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return box.Box2[int]{}, fmt.Errorf("%w: %s=%q", ErrInvalidRegion, name, raw)
		}
		vals[i] = v
	}
	if vals[0] >= vals[2] || vals[1] >= vals[3] {
		return box.Box2[int]{}, fmt.Errorf("%w: empty region [%d,%d)x[%d,%d)", ErrInvalidRegion, vals[0], vals[2], vals[1], vals[3])
	}
	// Стороны проверяются до умножения: разность может переполнить int.
	w, h := vals[2]-vals[0], vals[3]-vals[1]
	if w <= 0 || h <= 0 || w > maxRegionArea || h > maxRegionArea || w*h > maxRegionArea {
		return box.Box2[int]{}, fmt.Errorf("%w: [%d,%d)x[%d,%d), max %d cells", ErrRegionTooLarge, vals[0], vals[2], vals[1], vals[3], maxRegionArea)
	}
	region := box.New2(vals[0], vals[1], vals[2], vals[3])
	return region, nil
}

// parseLayers читает список слоёв из повторяемого параметра layer; по умолчанию все.
func parseLayers(c *gin.Context) ([]tile.Layer, error) {
	names := c.QueryArray("layer")
	if len(names) == 0 {
		all := make([]tile.Layer, 0, tile.LayerCount)
		for l := tile.Layer(0); l < tile.LayerCount; l++ {
			all = append(all, l)
		}
		return all, nil
	}
	layers := make([]tile.Layer, 0, len(names))
	for _, n := range names {
		l, ok := tile.ParseLayer(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, n)
		}
		layers = append(layers, l)
	}
	return layers, nil
}
