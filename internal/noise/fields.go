package noise

// Settings: неизменяемая конфигурация полей, захватываемая при создании.
type Settings struct {
	Terrain        FractalParams
	ZoneFrequency  float64
	ThemeFrequency float64
}

// DefaultSettings возвращает параметры, подобранные под уровни высотой около 16 клеток.
func DefaultSettings() Settings {
	return Settings{
		Terrain: FractalParams{
			Octaves:     4,
			Frequency:   0.03,
			Lacunarity:  2.0,
			Persistence: 0.5,
		},
		ZoneFrequency:  0.013,
		ThemeFrequency: 0.007,
	}
}

// zoneContrast растягивает поле выбора зоны до всего [0,1].
const zoneContrast = 2.5

// Каналы подсидов. Порядок фиксирован: смена номера меняет все уровни.
const (
	channelTerrain uint64 = iota
	channelZone
	channelTheme
	channelChance
	channelPick
)

// Fields: набор именованных полей одной сессии.
//
// Terrain: высота рельефа, Zone - выбор зоны, Theme - тема/оттенок зоны,
// Chance: броски вероятностей, Pick - выбор размеров и смещений.
// Chance и Pick адресуются как (x, соль): соль разводит независимые решения в одной колонке.
type Fields struct {
	Terrain Field
	Zone    Field
	Theme   Field
	Chance  Field
	Pick    Field
}

// NewFields выводит все поля из сида сессии.
func NewFields(seed uint64, s Settings) Fields {
	base := int64(seed)
	return Fields{
		Terrain: NewFractal(DeriveSeed(base, channelTerrain), s.Terrain),
		Zone:    Contrast{Field: NewGradient(DeriveSeed(base, channelZone), s.ZoneFrequency), Gain: zoneContrast},
		Theme:   NewGradient(DeriveSeed(base, channelTheme), s.ThemeFrequency),
		Chance:  NewWhite(DeriveSeed(base, channelChance)),
		Pick:    NewWhite(DeriveSeed(base, channelPick)),
	}
}
