package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/annel0/levelgen/internal/autotile"
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/config"
	"github.com/annel0/levelgen/internal/levelgen"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config (default: ENV LEVELGEN_CONFIG or built-in)")
		command    = flag.String("cmd", "render", "Command: render, features, stats")
		seed       = flag.Uint64("seed", 1, "Level seed")
		x0         = flag.Int("x0", -40, "Region left (inclusive)")
		x1         = flag.Int("x1", 40, "Region right (exclusive)")
		y0         = flag.Int("y0", -2, "Region bottom (inclusive)")
		y1         = flag.Int("y1", 0, "Region top (exclusive), 0 = level top")
		layers     = flag.String("layers", "", "Layers to overlay, bottom first (comma-separated, default all)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	settings, err := levelgen.SettingsFromConfig(cfg)
	if err != nil {
		log.Fatalf("❌ Invalid generator settings: %v", err)
	}

	top := *y1
	if top == 0 {
		top = settings.HalfHeight + 1
	}
	if *x0 >= *x1 || *y0 >= top {
		log.Fatalf("❌ Empty region [%d,%d)x[%d,%d)", *x0, *x1, *y0, top)
	}
	region := box.New2(*x0, *y0, *x1, top)

	s := levelgen.New(*seed, settings).Generate(context.Background())

	switch *command {
	case "render":
		ls, err := parseLayerList(*layers)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		render(os.Stdout, autotile.Resolve(s, region), ls)

	case "features":
		printFeatures(os.Stdout, s.Intersecting(region))

	case "stats":
		printStats(os.Stdout, s)

	default:
		fmt.Printf("❌ Unknown command: %s\n", *command)
		flag.Usage()
		os.Exit(1)
	}
}

// render печатает регион сверху вниз, накладывая слои по порядку: верхний непустой тайл побеждает.
func render(w io.Writer, g *autotile.Grid, layers []tile.Layer) {
	var sb strings.Builder
	for y := g.Region.Y.Hi - 1; y >= g.Region.Y.Lo; y-- {
		for x := g.Region.X.Lo; x < g.Region.X.Hi; x++ {
			glyph := ' '
			for _, l := range layers {
				if t := g.Tile(l, x, y); !t.IsAir() {
					glyph = t.Glyph()
				}
			}
			sb.WriteRune(glyph)
		}
		fmt.Fprintf(w, "%4d |%s|\n", y, strings.TrimRight(sb.String(), " "))
		sb.Reset()
	}
}

func printFeatures(w io.Writer, records []schema.Record) {
	for _, r := range records {
		derived := ""
		if r.Feature.Kind().IsDerived() {
			derived = " (derived)"
		}
		fmt.Fprintf(w, "#%-5d %-14s %s%s\n", r.ID, r.Feature.Kind(), r.Feature.Bounds(), derived)
	}
	fmt.Fprintf(w, "\n📊 Total features: %d\n", len(records))
}

func printStats(w io.Writer, s *schema.Schema) {
	fmt.Fprintln(w, s.GetStats())
	fmt.Fprintf(w, "Bounds: %s\n", s.Bounds())

	counts := s.CountByKind()
	kinds := make([]schema.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s: %d\n", k, counts[k])
	}
}

// parseLayerList парсит строку с разделителями-запятыми
func parseLayerList(s string) ([]tile.Layer, error) {
	if s == "" {
		return []tile.Layer{tile.LayerBackground, tile.LayerMidground, tile.LayerCapLeft, tile.LayerCapRight, tile.LayerForeground}, nil
	}
	var result []tile.Layer
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		l, ok := tile.ParseLayer(name)
		if !ok {
			return nil, fmt.Errorf("unknown layer %q", name)
		}
		result = append(result, l)
	}
	return result, nil
}
