package tile

// Sides: классификация сторон тайла: true означает внешнюю сторону (видимый край).
type Sides struct {
	Top, Left, Right, Bottom bool
}

// Corner: состояние диагонального угла клетки. Порядок задаёт приоритет при слиянии.
type Corner uint8

const (
	CornerNone Corner = iota
	CornerInner
	CornerSlope
)

// Merge возвращает угол с наибольшим приоритетом: slope > inner > none.
func (c Corner) Merge(o Corner) Corner {
	return max(c, o)
}

// Индексы углов клетки.
const (
	TL = iota
	TR
	BL
	BR
)

// Corners: состояния четырёх углов клетки, индексируются TL, TR, BL, BR.
type Corners [4]Corner

var allExterior = Sides{Top: true, Left: true, Right: true, Bottom: true}

// Sides возвращает фиксированную классификацию сторон формы,
// определённую только её собственной геометрией.
func (s Shape) Sides() Sides {
	if r, c, ok := s.FacePos(); ok {
		return Sides{
			Top:    r == RowTop,
			Bottom: r == RowBottom,
			Left:   c == ColLeft,
			Right:  c == ColRight,
		}
	}
	switch s {
	case SlopeUp:
		// Твёрдое: нижний правый треугольник: к земле справа и снизу стороны внутренние.
		return Sides{Top: true, Left: true}
	case SlopeDown:
		return Sides{Top: true, Right: true}
	case BridgeUp:
		return Sides{Bottom: true, Right: true}
	case BridgeDown:
		return Sides{Bottom: true, Left: true}
	case SlopeIntUp, SlopeIntDown, FaceIntTL, FaceIntTR, FaceIntBL, FaceIntBR, CapLeft, CapRight:
		return Sides{}
	default:
		return allExterior
	}
}

// Corners возвращает фиксированные диагональные углы формы.
func (s Shape) Corners() Corners {
	var c Corners
	switch s {
	case SlopeUp, BridgeUp:
		c[BL], c[TR] = CornerSlope, CornerSlope
	case SlopeDown, BridgeDown:
		c[TL], c[BR] = CornerSlope, CornerSlope
	case SlopeIntUp:
		c[TL] = CornerSlope
	case SlopeIntDown:
		c[TR] = CornerSlope
	case FaceIntTL:
		c[TL] = CornerInner
	case FaceIntTR:
		c[TR] = CornerInner
	case FaceIntBL:
		c[BL] = CornerInner
	case FaceIntBR:
		c[BR] = CornerInner
	}
	return c
}
