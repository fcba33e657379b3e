package api

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"

	"github.com/annel0/levelgen/internal/autotile"
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/levelgen"
	"github.com/annel0/levelgen/internal/logging"
	"github.com/annel0/levelgen/internal/metrics"
	"github.com/annel0/levelgen/internal/schema"
)

// LevelService строит схемы по сиду и держит последние в кеше.
// Два одновременных запроса одного сида могут построить схему дважды:
// результат идентичен, в кеше останется одна.
type LevelService struct {
	settings levelgen.Settings
	cache    *ristretto.Cache
	metrics  *metrics.GenerationMetrics
	logger   *logging.Logger
}

// NewLevelService создаёт сервис с кешем на cacheSize схем. m может быть nil.
func NewLevelService(settings levelgen.Settings, cacheSize int, m *metrics.GenerationMetrics) (*LevelService, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cacheSize) * 10,
		MaxCost:     int64(cacheSize),
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("schema cache: %w", err)
	}
	return &LevelService{
		settings: settings,
		cache:    cache,
		metrics:  m,
		logger:   logging.GetServerLogger(),
	}, nil
}

// Settings возвращает параметры генератора
func (ls *LevelService) Settings() levelgen.Settings {
	return ls.settings
}

// Schema возвращает схему уровня для сида, генерируя её при промахе кеша.
func (ls *LevelService) Schema(ctx context.Context, seed uint64) *schema.Schema {
	if v, ok := ls.cache.Get(seed); ok {
		if ls.metrics != nil {
			ls.metrics.CacheHit()
		}
		return v.(*schema.Schema)
	}
	if ls.metrics != nil {
		ls.metrics.CacheMiss()
	}

	var opts []levelgen.Option
	if ls.metrics != nil {
		opts = append(opts, levelgen.WithRecorder(ls.metrics))
	}
	s := levelgen.New(seed, ls.settings, opts...).Generate(ctx)

	ls.cache.Set(seed, s, 1)
	ls.cache.Wait()
	ls.logger.Debug("схема seed=%d добавлена в кеш: %s", seed, s.GetStats())
	return s
}

// Tiles разрешает регион уровня в сетку тайлов.
func (ls *LevelService) Tiles(ctx context.Context, seed uint64, region box.Box2[int]) *autotile.Grid {
	return autotile.Resolve(ls.Schema(ctx, seed), region)
}

// Features возвращает фичи, пересекающие регион.
func (ls *LevelService) Features(ctx context.Context, seed uint64, region box.Box2[int]) []schema.Record {
	return ls.Schema(ctx, seed).Intersecting(region)
}

// CacheStats: счётчики ristretto по кешу схем.
type CacheStats struct {
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	KeysAdded uint64  `json:"keys_added"`
	Evicted   uint64  `json:"keys_evicted"`
	HitRatio  float64 `json:"hit_ratio"`
}

// CacheStats возвращает счётчики кеша схем
func (ls *LevelService) CacheStats() CacheStats {
	m := ls.cache.Metrics
	return CacheStats{
		Hits:      m.Hits(),
		Misses:    m.Misses(),
		KeysAdded: m.KeysAdded(),
		Evicted:   m.KeysEvicted(),
		HitRatio:  m.Ratio(),
	}
}

// Close освобождает кеш
func (ls *LevelService) Close() {
	ls.cache.Close()
}
