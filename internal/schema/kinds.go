package schema

import (
	"fmt"
	"strings"
)

// Kind: вариант фичи.
type Kind uint8

const (
	KindGroundBlock Kind = iota
	KindHillBlock
	KindIgloo
	KindPlacedTile
	KindCrateRect
	KindSurfaceWater
	KindSurfaceLava
	KindBigMushroomTop
	KindBigMushroomStem
	KindSlopedGround
	KindFlatGround
	KindZone
	KindOffscreen

	KindCount // всегда последний
)

var kindNames = [...]string{
	KindGroundBlock:     "ground_block",
	KindHillBlock:       "hill_block",
	KindIgloo:           "igloo",
	KindPlacedTile:      "tile",
	KindCrateRect:       "crate_rect",
	KindSurfaceWater:    "surface_water",
	KindSurfaceLava:     "surface_lava",
	KindBigMushroomTop:  "big_mushroom_top",
	KindBigMushroomStem: "big_mushroom_stem",
	KindSlopedGround:    "sloped_ground",
	KindFlatGround:      "flat_ground",
	KindZone:            "zone",
	KindOffscreen:       "offscreen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsDerived сообщает, является ли вид производным маркером, который Schema добавляет сама.
func (k Kind) IsDerived() bool {
	return k == KindFlatGround || k == KindSlopedGround
}

// IsMarker сообщает, что фича не даёт видимого тайла.
func (k Kind) IsMarker() bool {
	return k.IsDerived() || k == KindZone || k == KindOffscreen
}

// CoverPolicy определяет, какие стороны области земли обязаны показывать внешнюю грань
// на границе с другим блоком той же местности.
type CoverPolicy uint8

const (
	FullyCovered CoverPolicy = iota // шов на каждой границе блока
	TopCovered                      // шов сверху и снизу, по бокам слияние
	Bare                            // верхняя кромка подавлена: "засыпанный" пол
)

func (c CoverPolicy) String() string {
	switch c {
	case FullyCovered:
		return "fully_covered"
	case TopCovered:
		return "top_covered"
	case Bare:
		return "bare"
	default:
		return fmt.Sprintf("cover(%d)", uint8(c))
	}
}

// SlopeDir: направление подъёма холма.
type SlopeDir uint8

const (
	LeftToRight SlopeDir = iota // поднимается вправо
	RightToLeft                 // поднимается влево
)

// CrateKind: вид ящика.
type CrateKind uint8

const (
	CrateWood CrateKind = iota
	CrateMetal
	CrateBonus

	CrateKindCount
)

// ZoneTag: тема зоны уровня.
type ZoneTag uint8

const (
	ZonePlains ZoneTag = iota
	ZoneForest
	ZoneLake
	ZoneLava
	ZoneMushroom
	ZoneCaverns
	ZoneStone
	ZoneCastle
	ZoneSnow

	ZoneTagCount
)

var zoneNames = [...]string{
	ZonePlains:   "plains",
	ZoneForest:   "forest",
	ZoneLake:     "lake",
	ZoneLava:     "lava",
	ZoneMushroom: "mushroom",
	ZoneCaverns:  "caverns",
	ZoneStone:    "stone",
	ZoneCastle:   "castle",
	ZoneSnow:     "snow",
}

func (z ZoneTag) String() string {
	if int(z) < len(zoneNames) {
		return zoneNames[z]
	}
	return fmt.Sprintf("zone(%d)", uint8(z))
}

// ParseZoneTag разбирает имя зоны без учёта регистра.
func ParseZoneTag(name string) (ZoneTag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range zoneNames {
		if n == name {
			return ZoneTag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown zone tag %q", name)
}
