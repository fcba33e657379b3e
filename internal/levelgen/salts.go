package levelgen

// Соли каналов Chance и Pick: второй координатой белого шума разводят
// независимые решения, принимаемые в одной и той же колонке.
const (
	saltZoneWidth = 1000 + iota
	saltGap
	saltHill
	saltHillPlace
	saltBridge
	saltBridgeDepth
	saltLiquid
	saltMushroomHalf
	saltMushroomPlace
	saltMushroomHeight
	saltTree
	saltTreeHeight
	saltIgloo
	saltIglooPlace
	saltIglooDoor
	saltCeilingWidth
	saltCeilingDepth
	saltRubble
	saltRubbleWidth
	saltRubbleHeight
	saltRubblePlace
	saltTower
	saltTowerWidth
	saltTowerHeight
	saltTowerPlace
	saltFlower
	saltBonus
	saltCrateWidth
	saltCrateHeight
	saltCratePlace
	saltCrateKind
)
