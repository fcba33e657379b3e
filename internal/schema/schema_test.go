package schema

import (
	"sync"
	"testing"

	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/tile"
	"github.com/annel0/levelgen/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(rs []Record) []Kind {
	out := make([]Kind, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Feature.Kind())
	}
	return out
}

func TestSchema_AddInsertsDerivedMarkers(t *testing.T) {
	s := New()
	s.Add(GroundBlock{Cover: TopCovered, Terrain: tile.TerrainGrass, Box: box.New2(0, 0, 50, 3)})

	require.Equal(t, 2, s.Len(), "блок земли должен принести с собой FlatGround")
	recs := s.Records()
	assert.Equal(t, FlatGround{At: vec.Vec2{X: 0, Y: 2}, Length: 50}, recs[1].Feature)

	s.Add(HillBlock{Terrain: tile.TerrainGrass, Start: 50, Rise: box.New1(3, 6), Floor: 0, Dir: LeftToRight})
	require.Equal(t, 4, s.Len())
	assert.Equal(t, SlopedGround{Start: vec.Vec2{X: 50, Y: 3}, Height: 3}, s.Records()[3].Feature)

	s.Add(BigMushroomTop{Center: vec.Vec2{X: 10, Y: 8}, Width: 5})
	assert.Equal(t, FlatGround{At: vec.Vec2{X: 8, Y: 8}, Length: 5}, s.Records()[5].Feature)
}

func TestSchema_EmptyFeaturesAreSkipped(t *testing.T) {
	s := New()
	s.Add(GroundBlock{Box: box.New2(0, 0, 10, 0)})
	s.Add(nil)
	assert.Equal(t, 0, s.Len())
	assert.Panics(t, func() { s.Bounds() }, "Bounds на пустой схеме - нарушение контракта")
}

func TestSchema_Queries(t *testing.T) {
	s := New()
	s.Add(Zone{Tag: ZonePlains, Box: box.New2(-40, -16, 0, 17)})
	s.Add(Zone{Tag: ZoneForest, Box: box.New2(0, -16, 40, 17)})
	s.Add(CrateRect{Crate: CrateWood, Box: box.New2(-20, 3, -18, 5)})
	s.Add(PlacedTile{At: vec.Vec2{X: 33, Y: 9}, Layer: tile.LayerBackground, Tile: tile.Misc(tile.TreeTrunk)})

	at := s.AtPoint(vec.Vec2{X: -19, Y: 4})
	assert.Equal(t, []Kind{KindZone, KindCrateRect}, kinds(at))

	at = s.AtPoint(vec.Vec2{X: 0, Y: 0})
	assert.Equal(t, []Kind{KindZone}, kinds(at), "граница зоны полуоткрыта")
	assert.Equal(t, ZoneForest, at[0].Feature.(Zone).Tag)

	hit := s.Intersecting(box.New2(30, 0, 40, 10))
	assert.Equal(t, []Kind{KindZone, KindPlacedTile}, kinds(hit))

	assert.Empty(t, s.Intersecting(box.New2(100, 100, 110, 110)))
	assert.Equal(t, box.New2(-40, -16, 40, 17), s.Bounds())

	counts := s.CountByKind()
	assert.Equal(t, 2, counts[KindZone])
	assert.Contains(t, s.GetStats(), "4 features")
}

func TestSchema_QueriesMatchBruteForce(t *testing.T) {
	s := New()
	for i := 0; i < 60; i++ {
		x := (i*37)%200 - 100
		y := (i*11)%40 - 20
		s.Add(CrateRect{Box: box.New2(x, y, x+1+i%7, y+1+i%3)})
	}
	all := s.Records()
	for qx := -110; qx < 110; qx += 13 {
		for qy := -25; qy < 25; qy += 7 {
			q := box.New2(qx, qy, qx+9, qy+5)
			var want []uint32
			for _, r := range all {
				if r.Feature.Bounds().Intersects(q) {
					want = append(want, r.ID)
				}
			}
			var got []uint32
			for _, r := range s.Intersecting(q) {
				got = append(got, r.ID)
			}
			assert.Equal(t, want, got, "запрос %v", q)
		}
	}
}

func TestSchema_ConcurrentReads(t *testing.T) {
	s := New()
	for x := -64; x < 64; x += 4 {
		s.Add(GroundBlock{Cover: TopCovered, Terrain: tile.TerrainDirt, Box: box.New2(x, 0, x+4, 2+(x&3))})
	}
	want := len(s.Intersecting(box.New2(-64, 0, 64, 8)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Len(t, s.Intersecting(box.New2(-64, 0, 64, 8)), want)
			}
		}()
	}
	wg.Wait()
}

func TestHillBlock_Parts(t *testing.T) {
	h := HillBlock{Terrain: tile.TerrainGrass, Start: 10, Rise: box.New1(4, 7), Floor: 0, Dir: LeftToRight}
	assert.Equal(t, box.New2(10, 0, 13, 7), h.Bounds())
	assert.Equal(t, HillSlope, h.PartAt(vec.Vec2{X: 10, Y: 4}))
	assert.Equal(t, HillSlope, h.PartAt(vec.Vec2{X: 12, Y: 6}))
	assert.Equal(t, HillNone, h.PartAt(vec.Vec2{X: 10, Y: 5}), "над склоном воздух")
	assert.Equal(t, HillFill, h.PartAt(vec.Vec2{X: 11, Y: 0}))

	h.Bridge = 2
	assert.Equal(t, HillFill, h.PartAt(vec.Vec2{X: 10, Y: 3}))
	assert.Equal(t, HillUnderside, h.PartAt(vec.Vec2{X: 10, Y: 2}))
	assert.Equal(t, HillNone, h.PartAt(vec.Vec2{X: 10, Y: 1}), "под мостом пусто")

	down := HillBlock{Start: 0, Rise: box.New1(2, 5), Dir: RightToLeft}
	assert.Equal(t, 4, down.SurfaceY(0))
	assert.Equal(t, 2, down.SurfaceY(2))
	sg := down.derived()[0].(SlopedGround)
	assert.Equal(t, box.New2(0, 2, 3, 5), sg.Bounds())
}

func TestParseZoneTag(t *testing.T) {
	z, err := ParseZoneTag("Mushroom")
	require.NoError(t, err)
	assert.Equal(t, ZoneMushroom, z)
	_, err = ParseZoneTag("swamp")
	assert.Error(t, err)
	assert.Equal(t, "caverns", ZoneCaverns.String())
}
