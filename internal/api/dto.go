package api

import (
	"github.com/annel0/levelgen/internal/box"
	"github.com/annel0/levelgen/internal/schema"
	"github.com/annel0/levelgen/internal/tile"
)

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// TilesResponse: сетка тайлов региона; строки идут сверху вниз.
type TilesResponse struct {
	Seed   uint64                 `json:"seed"`
	Region box.Box2[int]          `json:"region"`
	Layers map[string][][]tile.ID `json:"layers"`
}

// FeatureDTO: фича в ответе API.
type FeatureDTO struct {
	ID      uint32         `json:"id"`
	Kind    string         `json:"kind"`
	Derived bool           `json:"derived,omitempty"`
	Bounds  box.Box2[int]  `json:"bounds"`
	Feature schema.Feature `json:"feature"`
}

// FeaturesResponse: фичи, пересекающие регион.
type FeaturesResponse struct {
	Seed     uint64        `json:"seed"`
	Region   box.Box2[int] `json:"region"`
	Features []FeatureDTO  `json:"features"`
}

func toFeatureDTOs(records []schema.Record) []FeatureDTO {
	out := make([]FeatureDTO, 0, len(records))
	for _, r := range records {
		out = append(out, FeatureDTO{
			ID:      r.ID,
			Kind:    r.Feature.Kind().String(),
			Derived: r.Feature.Kind().IsDerived(),
			Bounds:  r.Feature.Bounds(),
			Feature: r.Feature,
		})
	}
	return out
}
