package tile

// Shape: форма тайла. Формы до shapeTerrainEnd нарезаются из атласа местности,
// остальные: самостоятельные тайлы без местности.
type Shape uint8

const (
	ShapeAir Shape = iota

	// 3×3 грани блока: строка (Top/Mid/Bottom) × колонка (Left/Mid/Right).
	FaceTL
	FaceTM
	FaceTR
	FaceML
	FaceMM
	FaceMR
	FaceBL
	FaceBM
	FaceBR

	SlopeUp      // поднимается слева направо, твёрдое снизу справа
	SlopeDown    // опускается слева направо, твёрдое снизу слева
	SlopeIntUp   // заливка прямо под SlopeUp
	SlopeIntDown // заливка прямо под SlopeDown
	FaceIntTL    // внутренний (вогнутый) угол
	FaceIntTR
	FaceIntBL
	FaceIntBR
	BridgeUp   // нижняя кромка моста под SlopeUp
	BridgeDown // нижняя кромка моста под SlopeDown
	CapLeft
	CapRight

	shapeTerrainEnd

	// Самостоятельные тайлы.
	WaterSurface
	WaterBody
	LavaSurface
	LavaBody
	IglooTL
	IglooTM
	IglooTR
	IglooBL
	IglooBM
	IglooBR
	IglooDoor
	MushroomCapL
	MushroomCapM
	MushroomCapR
	MushroomStem
	CrateWood
	CrateMetal
	CrateBonus
	TreeTrunk
	TreeCanopy
	Flower

	shapeCount
)

// Row и Col выбирают вариант грани блока.
type Row uint8

const (
	RowTop Row = iota
	RowMid
	RowBottom
)

type Col uint8

const (
	ColLeft Col = iota
	ColMid
	ColRight
)

// Face возвращает грань блока для строки и колонки.
func Face(r Row, c Col) Shape {
	return FaceTL + Shape(r)*3 + Shape(c)
}

// IsFace сообщает, является ли форма одной из 9 граней блока.
func (s Shape) IsFace() bool {
	return s >= FaceTL && s <= FaceBR
}

// FacePos возвращает строку и колонку грани. Для прочих форм ok == false.
func (s Shape) FacePos() (r Row, c Col, ok bool) {
	if !s.IsFace() {
		return 0, 0, false
	}
	i := s - FaceTL
	return Row(i / 3), Col(i % 3), true
}

// IsTerrainShape сообщает, нарезается ли форма из атласа местности.
func (s Shape) IsTerrainShape() bool {
	return s > ShapeAir && s < shapeTerrainEnd
}

func (s Shape) IsSlope() bool {
	return s == SlopeUp || s == SlopeDown
}

func (s Shape) IsFaceInt() bool {
	return s >= FaceIntTL && s <= FaceIntBR
}
