package tile

// Layer определяет слой выходной сетки.
//
// 0 – LayerBackground: стволы, фон;
// 1 – LayerMidground: твёрдая земля, по которой ходят;
// 2 – LayerForeground: жидкости, цветы;
// 3, 4 – накладки-заглушки швов слева и справа.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerMidground        // единственный слой, который проходит автотайлинг
	LayerForeground
	LayerCapLeft
	LayerCapRight

	LayerCount // всегда последний: количество слоев
)

// FeatureLayers: число слоёв, в которые фичи кладут тайлы напрямую.
const FeatureLayers = int(LayerForeground) + 1

var layerNames = [LayerCount]string{
	LayerBackground: "background",
	LayerMidground:  "midground",
	LayerForeground: "foreground",
	LayerCapLeft:    "cap_left",
	LayerCapRight:   "cap_right",
}

func (l Layer) String() string {
	if l < LayerCount {
		return layerNames[l]
	}
	return "layer?"
}

// ParseLayer разбирает имя слоя.
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return 0, false
}
