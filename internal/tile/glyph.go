package tile

// Glyph возвращает символ для текстового предпросмотра уровня.
func (t Tile) Glyph() rune {
	s := t.Shape
	switch {
	case t.IsAir():
		return ' '
	case s.IsFace():
		if r, _, _ := s.FacePos(); r == RowTop {
			return terrainGlyphs[t.Terrain]
		}
		return '#'
	case s == SlopeUp, s == BridgeUp:
		return '/'
	case s == SlopeDown, s == BridgeDown:
		return '\\'
	case s == SlopeIntUp, s == SlopeIntDown, s.IsFaceInt():
		return '#'
	case s == CapLeft:
		return '['
	case s == CapRight:
		return ']'
	}
	return miscGlyphs[s]
}

var terrainGlyphs = map[Terrain]rune{
	TerrainGrass: '"',
	TerrainDirt:  '=',
	TerrainStone: '%',
	TerrainSand:  ':',
	TerrainSnow:  '*',
	TerrainBrick: 'H',
	TerrainRock:  '@',
	TerrainNone:  '?',
}

var miscGlyphs = map[Shape]rune{
	WaterSurface: '~',
	WaterBody:    '~',
	LavaSurface:  '^',
	LavaBody:     '^',
	IglooTL:      '(',
	IglooTM:      '-',
	IglooTR:      ')',
	IglooBL:      '|',
	IglooBM:      'o',
	IglooBR:      '|',
	IglooDoor:    'D',
	MushroomCapL: '(',
	MushroomCapM: 'M',
	MushroomCapR: ')',
	MushroomStem: '!',
	CrateWood:    'x',
	CrateMetal:   'X',
	CrateBonus:   '$',
	TreeTrunk:    'I',
	TreeCanopy:   'T',
	Flower:       ',',
}
