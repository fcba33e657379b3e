// Package levelgen заполняет схему уровня фичами упорядоченными проходами кистей.
package levelgen

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/annel0/levelgen/internal/logging"
	"github.com/annel0/levelgen/internal/noise"
	"github.com/annel0/levelgen/internal/schema"
)

const tracerName = "github.com/annel0/levelgen/internal/levelgen"

// Recorder получает итог каждой генерации (метрики).
type Recorder interface {
	ObserveGeneration(d time.Duration, counts map[schema.Kind]int)
}

// Generator строит схему уровня для одного сида. Не хранит изменяемого состояния
// между вызовами Generate: повторный вызов даёт идентичную схему.
type Generator struct {
	seed     uint64
	settings Settings
	fields   noise.Fields
	recorder Recorder
	logger   *logging.Logger
	tracer   trace.Tracer
}

// Option настраивает Generator.
type Option func(*Generator)

// WithFields подменяет шумовые поля (используется в тестах).
func WithFields(f noise.Fields) Option {
	return func(g *Generator) { g.fields = f }
}

// WithRecorder подключает сбор метрик.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// WithLogger задаёт логгер вместо логгера компонента по умолчанию.
func WithLogger(l *logging.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New создаёт генератор
func New(seed uint64, settings Settings, opts ...Option) *Generator {
	g := &Generator{
		seed:     seed,
		settings: settings,
		fields:   noise.NewFields(seed, settings.Noise),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.GetGeneratorLogger()
	}
	return g
}

// Seed возвращает сид сессии
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate выполняет все проходы и возвращает готовую схему.
// Контекст используется только для трассировки: генерация не прерывается.
func (g *Generator) Generate(ctx context.Context) *schema.Schema {
	start := time.Now()
	ctx, span := g.tracer.Start(ctx, "levelgen.Generate",
		trace.WithAttributes(
			attribute.Int64("levelgen.seed", int64(g.seed)),
			attribute.Int("levelgen.half_width", g.settings.HalfWidth),
		))
	defer span.End()

	s := schema.New()

	var zones []zoneRun
	g.pass(ctx, "zones", func() {
		zones = g.partitionZones()
		for _, z := range zones {
			s.Add(z.Zone)
		}
	})
	g.pass(ctx, "floor", func() {
		for _, z := range zones {
			g.brushFloor(s, z)
		}
	})
	g.pass(ctx, "decorations", func() {
		for _, z := range zones {
			g.decorate(s, z)
		}
	})
	g.pass(ctx, "bonus", func() { g.brushBonus(s) })
	g.pass(ctx, "offscreen", func() { g.brushOffscreen(s) })

	elapsed := time.Since(start)
	counts := s.CountByKind()
	span.SetAttributes(
		attribute.Int("levelgen.features", s.Len()),
		attribute.Int("levelgen.zones", len(zones)),
	)
	if g.recorder != nil {
		g.recorder.ObserveGeneration(elapsed, counts)
	}
	g.logger.Info("🌍 Уровень seed=%d сгенерирован: %d фич, %d зон за %v", g.seed, s.Len(), len(zones), elapsed)
	return s
}

// pass выполняет один проход под собственным спаном.
func (g *Generator) pass(ctx context.Context, name string, fn func()) {
	_, span := g.tracer.Start(ctx, "levelgen.pass."+name)
	defer span.End()
	start := time.Now()
	fn()
	g.logger.Debug("проход %s завершён за %v", name, time.Since(start))
}
