package engine

import (
	"strings"

	"github.com/stylecrate/outfit-service/internal/domain"
)

const (
	insulationMin     = 0.0
	insulationMax     = 10.0
	insulationDefault = 5.0

	// Activity shifts effective warmth needed: a high-activity wearer
	// generates body heat, a low-activity wearer needs more insulation.
	highActivityOffset = -2.0
	lowActivityOffset  = 1.0
)

type typeMaterial struct {
	Type     domain.ItemType
	Material string
}

// InsulationTable is the heuristic lookup injected into the resolver, versioned
// so it can be tuned and tested independently of the engine.
type InsulationTable struct {
	Version        string
	ByTypeMaterial map[typeMaterial]float64
	ByType         map[domain.ItemType]float64
	Default        float64
}

// DefaultInsulationTable returns the built-in heuristic values.
func DefaultInsulationTable() InsulationTable {
	return InsulationTable{
		Version: "2026-02",
		ByTypeMaterial: map[typeMaterial]float64{
			{domain.ItemTop, "wool"}:         7,
			{domain.ItemTop, "fleece"}:       7,
			{domain.ItemTop, "cotton"}:       4,
			{domain.ItemTop, "linen"}:        2,
			{domain.ItemTop, "silk"}:         3,
			{domain.ItemBottom, "wool"}:      7,
			{domain.ItemBottom, "denim"}:     5,
			{domain.ItemBottom, "cotton"}:    4,
			{domain.ItemBottom, "linen"}:     2,
			{domain.ItemFootwear, "leather"}: 6,
			{domain.ItemFootwear, "canvas"}:  3,
			{domain.ItemFootwear, "mesh"}:    2,
			{domain.ItemOuterwear, "down"}:   10,
			{domain.ItemOuterwear, "wool"}:   9,
			{domain.ItemOuterwear, "fleece"}: 7,
			{domain.ItemOuterwear, "denim"}:  6,
			{domain.ItemOuterwear, "nylon"}:  5,
			{domain.ItemHeadwear, "wool"}:    8,
			{domain.ItemHeadwear, "cotton"}:  4,
			{domain.ItemAccessory, "wool"}:   7,
			{domain.ItemAccessory, "silk"}:   3,
		},
		ByType: map[domain.ItemType]float64{
			domain.ItemTop:       4,
			domain.ItemBottom:    4,
			domain.ItemFootwear:  4,
			domain.ItemOuterwear: 8,
			domain.ItemHeadwear:  5,
			domain.ItemAccessory: 4,
		},
		Default: insulationDefault,
	}
}

// Resolver derives a 0-10 warmth rating for an item, filling in missing values
// from the table and adjusting for planned physical activity. It never mutates
// the source item.
type Resolver struct {
	table InsulationTable
}

func NewResolver(table InsulationTable) *Resolver {
	return &Resolver{table: table}
}

func (r *Resolver) Resolve(item domain.ClothingItem, activity domain.ActivityLevel) float64 {
	base := r.base(item)

	switch activity {
	case domain.ActivityHigh:
		base += highActivityOffset
	case domain.ActivityLow:
		base += lowActivityOffset
	}

	return clamp(base, insulationMin, insulationMax)
}

func (r *Resolver) base(item domain.ClothingItem) float64 {
	if item.Insulation != nil {
		return *item.Insulation
	}
	key := typeMaterial{item.Type, strings.ToLower(item.Material)}
	if v, ok := r.table.ByTypeMaterial[key]; ok {
		return v
	}
	if v, ok := r.table.ByType[item.Type]; ok {
		return v
	}
	return r.table.Default
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
