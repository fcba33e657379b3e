package levelgen

import (
	"context"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/noise"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
	"github.com/annel0/levelgen/internal/vec"
)

var plains = ZoneSpec{Tag: schema.ZonePlains, Terrain: tile.TerrainGrass}

func testSettings(zones ...ZoneSpec) Settings {
	if len(zones) == 0 {
		zones = []ZoneSpec{plains}
	}
	return Settings{
		HalfWidth:  100,
		HalfHeight: 16,
		Heights:    box.New1(0, 12),
		Margin:     8,
		MaxBridge:  4,
		Noise:      noise.DefaultSettings(),
		Zones:      zones,
	}
}

// fixedFields: поля без случайности: шансы не срабатывают при нулевой вероятности,
// выборы берут середину диапазона.
func fixedFields(terrain noise.Field) noise.Fields {
	return noise.Fields{
		Terrain: terrain,
		Zone:    noise.Constant(0),
		Theme:   noise.Constant(0),
		Chance:  noise.Constant(0.99),
		Pick:    noise.Constant(0.5),
	}
}

func testZone(spec ZoneSpec, x0, x1 int) zoneRun {
	return zoneRun{Zone: schema.Zone{Tag: spec.Tag, Box: box.New2(x0, -16, x1, 17)}, Spec: spec}
}

func features(s *schema.Schema) []schema.Feature {
	var out []schema.Feature
	for _, r := range s.Records() {
		out = append(out, r.Feature)
	}
	return out
}

func TestPartitionZones_TilesLevelExactly(t *testing.T) {
	st := DefaultSettings()
	for seed := uint64(0); seed < 25; seed++ {
		g := New(seed, st)
		zones := g.partitionZones()
		require.NotEmpty(t, zones)

		x := -st.HalfWidth
		for i, z := range zones {
			xs := z.Zone.Box.X
			assert.Equal(t, x, xs.Lo, "seed %d zone %d must start where the previous ended", seed, i)
			assert.Less(t, xs.Size(), maxZoneWidth)
			if i < len(zones)-1 {
				assert.GreaterOrEqual(t, xs.Size(), minZoneWidth)
			}
			assert.Equal(t, box.New1(-st.HalfHeight, st.HalfHeight+1), z.Zone.Box.Y)
			x = xs.Hi
		}
		assert.Equal(t, st.HalfWidth, x)
	}
}

func TestPartitionZones_UsesZoneTable(t *testing.T) {
	lake := ZoneSpec{Tag: schema.ZoneLake, Terrain: tile.TerrainSand}
	f := fixedFields(noise.Constant(0.5))
	f.Zone = noise.Constant(0.75)
	g := New(1, testSettings(plains, lake), WithFields(f))

	for _, z := range g.partitionZones() {
		assert.Equal(t, schema.ZoneLake, z.Zone.Tag)
		assert.Equal(t, tile.TerrainSand, z.Spec.Terrain)
	}
}

func TestRuns_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 200; n++ {
		heights := make([]int, rng.Intn(80))
		for i := range heights {
			heights[i] = rng.Intn(4)
		}
		runs := encodeRuns(-13, heights)

		if len(heights) == 0 {
			assert.Empty(t, runs)
			continue
		}
		assert.Equal(t, heights, decodeRuns(runs))
		assert.Equal(t, -13, runs[0].X)
		for i := 1; i < len(runs); i++ {
			assert.Equal(t, runs[i-1].End(), runs[i].X)
			assert.NotEqual(t, runs[i-1].Height, runs[i].Height, "runs must be maximal")
		}
	}
}

func TestBrushFloor_ConstantHeight(t *testing.T) {
	g := New(1, testSettings(), WithFields(fixedFields(noise.Constant(0.25))))
	s := schema.New()
	g.brushFloor(s, testZone(plains, 0, 50))

	assert.Equal(t, []schema.Feature{
		schema.GroundBlock{Cover: schema.TopCovered, Terrain: tile.TerrainGrass, Box: box.New2(0, 0, 50, 3)},
		schema.FlatGround{At: vec.Vec2{X: 0, Y: 2}, Length: 50},
	}, features(s))
}

func stepTerrain(at int, left, right float64) noise.Field {
	return noise.Func(func(x, _ float64) float64 {
		if x < float64(at) {
			return left
		}
		return right
	})
}

func TestBrushFloor_HillBetweenFlanks(t *testing.T) {
	spec := plains
	spec.HillChance = 1
	g := New(1, testSettings(), WithFields(fixedFields(stepTerrain(20, 0.15, 0.4))))
	s := schema.New()
	g.brushFloor(s, testZone(spec, 0, 40))

	counts := s.CountByKind()
	require.Equal(t, 1, counts[schema.KindHillBlock])
	require.Equal(t, 2, counts[schema.KindGroundBlock])

	var hill schema.HillBlock
	var flanks []schema.GroundBlock
	for _, f := range features(s) {
		switch v := f.(type) {
		case schema.HillBlock:
			hill = v
		case schema.GroundBlock:
			flanks = append(flanks, v)
		}
	}

	assert.Equal(t, schema.HillBlock{
		Terrain: tile.TerrainGrass,
		Start:   19,
		Rise:    box.New1(2, 5),
		Floor:   0,
		Dir:     schema.LeftToRight,
	}, hill)
	assert.Equal(t, box.New2(0, 0, 19, 2), flanks[0].Box)
	assert.Equal(t, box.New2(22, 0, 40, 5), flanks[1].Box)

	ranges := []box.Box1[int]{flanks[0].Box.X, hill.Bounds().X, flanks[1].Box.X}
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			assert.False(t, ranges[i].Intersects(ranges[j]), "%v and %v overlap", ranges[i], ranges[j])
		}
	}
}

func TestBrushFloor_FlanksKeepSampledHeights(t *testing.T) {
	spec := plains
	spec.HillChance = 1

	for _, pick := range []float64{0, 0.999} {
		for _, terrain := range []noise.Field{stepTerrain(20, 0.15, 0.4), stepTerrain(20, 0.4, 0.15)} {
			f := fixedFields(terrain)
			f.Pick = noise.Constant(pick)
			g := New(1, testSettings(), WithFields(f))
			s := schema.New()
			z := testZone(spec, 0, 40)
			g.brushFloor(s, z)

			var hill schema.HillBlock
			tops := make(map[int]int)
			for _, ft := range features(s) {
				switch v := ft.(type) {
				case schema.HillBlock:
					hill = v
				case schema.GroundBlock:
					for x := v.Box.X.Lo; x < v.Box.X.Hi; x++ {
						tops[x] = max(tops[x], v.Box.Y.Hi)
					}
				}
			}
			require.Equal(t, 1, s.CountByKind()[schema.KindHillBlock], "pick=%v", pick)

			slope := hill.Bounds().X
			assert.LessOrEqual(t, slope.Lo, 20, "pick=%v: slope must touch the step", pick)
			assert.GreaterOrEqual(t, slope.Hi, 20, "pick=%v: slope must touch the step", pick)
			for x := 0; x < 40; x++ {
				if slope.Contains(x) {
					continue
				}
				assert.Equal(t, g.columnHeight(x, spec), tops[x], "pick=%v: column %d", pick, x)
			}
		}
	}
}

func TestBrushFloor_DescendingHillWithBridge(t *testing.T) {
	spec := plains
	spec.HillChance = 1
	spec.BridgeChance = 1
	g := New(1, testSettings(), WithFields(fixedFields(stepTerrain(20, 0.4, 0.15))))
	s := schema.New()
	g.brushFloor(s, testZone(spec, 0, 40))

	var hill schema.HillBlock
	for _, f := range features(s) {
		if h, ok := f.(schema.HillBlock); ok {
			hill = h
		}
	}
	assert.Equal(t, schema.RightToLeft, hill.Dir)
	assert.Equal(t, 2, hill.Bridge, "bridge is bounded by the depth under the lower side")
	assert.Equal(t, 4, hill.SurfaceY(hill.Start))
	assert.Equal(t, 2, hill.SurfaceY(hill.Start+2))
}

func TestBrushFloor_NoHillFillsStep(t *testing.T) {
	g := New(1, testSettings(), WithFields(fixedFields(stepTerrain(10, 0.4, 0.15))))
	s := schema.New()
	g.brushFloor(s, testZone(plains, 0, 30))

	var boxes []box.Box2[int]
	for _, f := range features(s) {
		if gb, ok := f.(schema.GroundBlock); ok {
			boxes = append(boxes, gb.Box)
		}
	}
	assert.Equal(t, []box.Box2[int]{box.New2(0, 0, 10, 5), box.New2(10, 0, 30, 2)}, boxes)
}

func TestBrushFloor_GapsAreSkipped(t *testing.T) {
	spec := plains
	spec.GapChance = 1
	f := fixedFields(noise.Constant(0.5))
	f.Chance = noise.Constant(0.2)
	g := New(1, testSettings(), WithFields(f))
	s := schema.New()
	g.brushFloor(s, testZone(spec, 0, 30))

	assert.Zero(t, s.Len())
}

func TestBrushes_ZeroWidthZone(t *testing.T) {
	st := DefaultSettings()
	g := New(3, st)
	for _, spec := range st.Zones {
		s := schema.New()
		z := testZone(spec, 5, 5)
		assert.NotPanics(t, func() {
			g.brushFloor(s, z)
			g.decorate(s, z)
		}, "%s", spec.Tag)
		assert.Zero(t, s.Len(), "%s", spec.Tag)
	}
}

func TestGenerate_ClippedLastZone(t *testing.T) {
	st := testSettings()
	st.HalfWidth = 23 // ширина зоны при Pick=0.5 равна 45, последняя зона в одну колонку
	f := fixedFields(noise.Constant(0.4))
	g := New(1, st, WithFields(f))

	zones := g.partitionZones()
	require.Len(t, zones, 2)
	assert.Equal(t, box.New1(-23, 22), zones[0].Zone.Box.X)
	assert.Equal(t, box.New1(22, 23), zones[1].Zone.Box.X)

	var s *schema.Schema
	require.NotPanics(t, func() { s = g.Generate(context.Background()) })

	var onColumn []schema.GroundBlock
	for _, r := range s.Intersecting(box.New2(22, -st.HalfHeight, 23, st.HalfHeight+1)) {
		if gb, ok := r.Feature.(schema.GroundBlock); ok && gb.Box.X.Lo == 22 {
			onColumn = append(onColumn, gb)
		}
	}
	require.Len(t, onColumn, 1)
	assert.Equal(t, box.New2(22, 0, 23, g.columnHeight(22, plains)), onColumn[0].Box)
}

func TestBrushLiquid_SurfaceAboveLowestGround(t *testing.T) {
	lake := ZoneSpec{Tag: schema.ZoneLake, Terrain: tile.TerrainSand}
	g := New(1, testSettings(lake), WithFields(fixedFields(noise.Constant(0.25))))
	s := schema.New()
	z := testZone(lake, 0, 30)
	g.brushFloor(s, z)
	g.brushLiquid(s, z)

	var water []schema.SurfaceWater
	for _, f := range features(s) {
		if w, ok := f.(schema.SurfaceWater); ok {
			water = append(water, w)
		}
	}
	require.Len(t, water, 1)
	assert.Equal(t, box.New2(0, 0, 30, 5), water[0].Box)
}

func TestBrushLiquid_LavaZone(t *testing.T) {
	lava := ZoneSpec{Tag: schema.ZoneLava, Terrain: tile.TerrainRock}
	g := New(1, testSettings(lava), WithFields(fixedFields(noise.Constant(0.25))))
	s := schema.New()
	z := testZone(lava, 0, 30)
	g.decorate(s, z)

	assert.Equal(t, 1, s.CountByKind()[schema.KindSurfaceLava])
}

func TestPlanMushrooms_SingleRange(t *testing.T) {
	g := New(1, testSettings(), WithFields(fixedFields(noise.Constant(0.5))))
	plans := g.planMushrooms([]box.Box1[int]{box.New1(0, 40)})

	require.Len(t, plans, 1)
	top := plans[0].Top
	assert.Equal(t, 23, top.Width)
	assert.Equal(t, box.New1(9, 32), top.Span())
	assert.Equal(t, top.Center.X, plans[0].Stem.Base.X)
	assert.Equal(t, top.Center.Y, plans[0].Stem.Base.Y+plans[0].Stem.Height)

	left, right := box.New1(0, top.Span().Lo), box.New1(top.Span().Hi, 40)
	assert.GreaterOrEqual(t, left.Size(), 0)
	assert.GreaterOrEqual(t, right.Size(), 0)
	assert.False(t, left.Intersects(top.Span()))
	assert.False(t, right.Intersects(top.Span()))
}

func TestPlanMushrooms_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for seed := uint64(0); seed < 40; seed++ {
		g := New(seed, testSettings())
		var open []box.Box1[int]
		x := 0
		for i := 0; i < 5; i++ {
			x += rng.Intn(10)
			w := rng.Intn(90)
			open = append(open, box.Span(x, w))
			x += w
		}

		plans := g.planMushrooms(open)
		spans := make([]box.Box1[int], 0, len(plans))
		for _, p := range plans {
			span := p.Top.Span()
			fits := false
			for _, o := range open {
				if o.ContainsBox(span) {
					fits = true
				}
			}
			assert.True(t, fits, "cap %v must lie inside the free range it was cut from", span)
			assert.Positive(t, p.Stem.Height)
			spans = append(spans, span)
		}
		sort.Slice(spans, func(i, j int) bool { return spans[i].Lo < spans[j].Lo })
		for i := 1; i < len(spans); i++ {
			assert.LessOrEqual(t, spans[i-1].Hi, spans[i].Lo, "caps overlap")
		}
	}
}

func TestPlanMushrooms_NarrowRangesStop(t *testing.T) {
	g := New(1, testSettings())
	assert.Empty(t, g.planMushrooms([]box.Box1[int]{box.New1(0, 10), box.New1(30, 35), box.New1(50, 50)}))
}

func TestDecorate_StaysInsideZone(t *testing.T) {
	st := DefaultSettings()
	for seed := uint64(0); seed < 6; seed++ {
		g := New(seed, st)
		for _, spec := range st.Zones {
			s := schema.New()
			z := testZone(spec, 0, 60)
			g.brushFloor(s, z)
			g.decorate(s, z)
			for _, r := range s.Records() {
				if r.Feature.Kind() == schema.KindOffscreen {
					continue
				}
				assert.True(t, z.Zone.Box.X.ContainsBox(r.Feature.Bounds().X),
					"%s: %s %v outside zone", spec.Tag, r.Feature.Kind(), r.Feature.Bounds())
			}
		}
	}
}

func TestBrushIgloos_DoorInsideBottomRow(t *testing.T) {
	snow := ZoneSpec{Tag: schema.ZoneSnow, Terrain: tile.TerrainSnow}
	f := fixedFields(noise.Constant(0.25))
	f.Chance = noise.Constant(0.1)
	g := New(1, testSettings(snow), WithFields(f))
	s := schema.New()
	z := testZone(snow, 0, 30)
	g.brushFloor(s, z)
	g.brushIgloos(s, z)

	var igloos []schema.Igloo
	for _, ft := range features(s) {
		if ig, ok := ft.(schema.Igloo); ok {
			igloos = append(igloos, ig)
		}
	}
	require.Len(t, igloos, 1)
	assert.Equal(t, box.New2(13, 3, 18, 6), igloos[0].Box)
	assert.Equal(t, 2, igloos[0].Door)
}

type fakeRecorder struct {
	calls  int
	counts map[schema.Kind]int
}

func (f *fakeRecorder) ObserveGeneration(_ time.Duration, counts map[schema.Kind]int) {
	f.calls++
	f.counts = counts
}

func TestGenerate_Deterministic(t *testing.T) {
	st := DefaultSettings()
	rec := &fakeRecorder{}
	a := New(42, st, WithRecorder(rec)).Generate(context.Background())
	b := New(42, st).Generate(context.Background())

	assert.Equal(t, a.Records(), b.Records())
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, a.CountByKind(), rec.counts)

	c := New(43, st).Generate(context.Background())
	assert.NotEqual(t, a.Records(), c.Records())
}

func TestGenerate_Layout(t *testing.T) {
	st := DefaultSettings()
	s := New(7, st).Generate(context.Background())

	bounds := s.Bounds()
	assert.Equal(t, -st.HalfWidth-st.Margin, bounds.X.Lo)
	assert.Equal(t, st.HalfWidth+st.Margin, bounds.X.Hi)

	var zoneWidth int
	for _, r := range s.Records() {
		if z, ok := r.Feature.(schema.Zone); ok {
			zoneWidth += z.Box.X.Size()
		}
		if r.Feature.Kind().IsMarker() {
			continue
		}
		assert.GreaterOrEqual(t, r.Feature.Bounds().Y.Lo, -st.HalfHeight)
		assert.LessOrEqual(t, r.Feature.Bounds().Y.Hi, st.HalfHeight+1)
	}
	assert.Equal(t, 2*st.HalfWidth, zoneWidth)
	assert.Positive(t, s.CountByKind()[schema.KindGroundBlock])
}

func TestSettingsFromConfig_Defaults(t *testing.T) {
	st := DefaultSettings()
	assert.Equal(t, box.New1(0, 12), st.Heights)
	require.Len(t, st.Zones, int(schema.ZoneTagCount))
	assert.Equal(t, schema.ZonePlains, st.Zones[0].Tag)
	assert.Equal(t, tile.TerrainGrass, st.Zones[0].Terrain)
	assert.Equal(t, tile.TerrainDirt, st.Zones[0].AltTerrain)
}
