package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"cellarworks/internal/calendar"
	"cellarworks/internal/crop"
	"cellarworks/internal/growth"
	"cellarworks/internal/orchard"
	"cellarworks/internal/plot"
)

const (
	coopCapacity = 12
	barnCapacity = 12
)

var fertilizerNames = []string{
	string(growth.FertilizerNone),
	string(growth.FertilizerBasic),
	string(growth.FertilizerDeluxe),
	string(growth.FertilizerHyper),
}

var seasonNames = []string{"spring", "summer", "autumn", "fall", "winter"}

// checkDomain enforces the cross-field rules: known names, season lists,
// animal capacity, and the cask fallback bound.
func (f *File) checkDomain() error {
	if f.Crop != "" && f.Crop != CropBoth {
		if _, ok := crop.ByID(crop.ID(f.Crop)); !ok {
			return unknownName("crop", f.Crop, append(crop.IDs(), CropBoth))
		}
	}

	if f.Growth.Fertilizer != "" {
		if !contains(fertilizerNames, f.Growth.Fertilizer) {
			return unknownName("growth.fertilizer", f.Growth.Fertilizer, fertilizerNames)
		}
	}

	for _, p := range f.Plots {
		if err := p.check(f.Crop); err != nil {
			return err
		}
	}

	for _, name := range f.Bees.Seasons {
		if _, err := calendar.ParseSeason(name); err != nil {
			return unknownName("bees.seasons", name, seasonNames)
		}
	}
	for name := range f.Bees.FlowerPlan {
		if _, err := calendar.ParseSeason(name); err != nil {
			return unknownName("bees.flower_plan", name, seasonNames)
		}
	}

	for _, c := range f.Animals.Coops {
		if total := c.Hens + c.Ducks + c.Rabbits; total > coopCapacity {
			return fmt.Errorf("coop %q holds %d animals, capacity is %d", c.Name, total, coopCapacity)
		}
	}
	for _, b := range f.Animals.Barns {
		if total := b.Cows + b.Goats + b.Pigs + b.Sheep; total > barnCapacity {
			return fmt.Errorf("barn %q holds %d animals, capacity is %d", b.Name, total, barnCapacity)
		}
	}

	for scope, trees := range map[string]map[string]int{
		"orchard.greenhouse": f.Orchard.Greenhouse,
		"orchard.outdoors":   f.Orchard.Outdoors,
	} {
		for fruitID, n := range trees {
			if n < 0 {
				return fmt.Errorf("%s: tree count for %q must be >= 0", scope, fruitID)
			}
			if !orchard.Known(fruitID) {
				return unknownName(scope, fruitID, orchardFruits())
			}
		}
	}

	grown := f.grownAndExternalIDs()
	for label, inv := range map[string]map[string]int{
		"starting_inventory.fruit": f.Inventory.Fruit,
		"starting_inventory.wine":  f.Inventory.Wine,
	} {
		for id, n := range inv {
			if n < 0 {
				return fmt.Errorf("%s: count for %q must be >= 0", label, id)
			}
			if !contains(grown, id) {
				return unknownName(label, id, grown)
			}
		}
	}

	if f.Economy.CasksFallback != nil {
		if *f.Economy.CasksFallback < 0 {
			return fmt.Errorf("economy.casks_fallback must be >= 0")
		}
		if *f.Economy.CasksFallback > f.Casks {
			return fmt.Errorf("economy.casks_fallback %d exceeds casks %d", *f.Economy.CasksFallback, f.Casks)
		}
	}

	return nil
}

func (p PlotFile) check(cropMode string) error {
	switch p.Calendar.Type {
	case "", string(calendar.KindAlways):
	case string(calendar.KindSeasonal):
		if len(p.Calendar.Seasons) == 0 {
			return fmt.Errorf("plot %q uses a seasonal calendar with no seasons", p.Name)
		}
	default:
		return unknownName(fmt.Sprintf("plot %q calendar type", p.Name),
			p.Calendar.Type, []string{string(calendar.KindAlways), string(calendar.KindSeasonal)})
	}
	for _, name := range p.Calendar.Seasons {
		if _, err := calendar.ParseSeason(name); err != nil {
			return unknownName(fmt.Sprintf("plot %q seasons", p.Name), name, seasonNames)
		}
	}
	for cropID, tiles := range p.Tiles {
		if tiles < 0 {
			return fmt.Errorf("plot %q has negative tiles for %q", p.Name, cropID)
		}
		if cropID == plot.AllCrops {
			continue
		}
		if _, ok := crop.ByID(crop.ID(cropID)); !ok {
			return unknownName(fmt.Sprintf("plot %q tiles", p.Name), cropID, append(crop.IDs(), plot.AllCrops))
		}
		if cropMode != "" && cropMode != CropBoth && cropID != cropMode {
			return fmt.Errorf("plot %q defines tiles for %q, but crop selection is %q", p.Name, cropID, cropMode)
		}
	}
	return nil
}

// unknownName builds an error for a bad identifier, suggesting the closest
// valid name when one is within editing distance.
func unknownName(field, got string, valid []string) error {
	if s := closest(got, valid); s != "" {
		return fmt.Errorf("%s: unknown name %q (did you mean %q?)", field, got, s)
	}
	sorted := append([]string(nil), valid...)
	sort.Strings(sorted)
	return fmt.Errorf("%s: unknown name %q (valid: %s)", field, got, strings.Join(sorted, ", "))
}

func closest(got string, valid []string) string {
	best := ""
	bestDist := 3 // suggestions past two edits are noise
	for _, cand := range valid {
		if d := levenshtein.ComputeDistance(strings.ToLower(got), cand); d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// grownAndExternalIDs lists every product the run can hold inventory of:
// the selected catalog crops plus any orchard fruit with trees configured.
func (f *File) grownAndExternalIDs() []string {
	var ids []string
	if f.Crop == "" || f.Crop == CropBoth {
		ids = crop.IDs()
	} else {
		ids = []string{f.Crop}
	}
	for fruitID, n := range f.Orchard.Greenhouse {
		if n > 0 && !contains(ids, fruitID) {
			ids = append(ids, fruitID)
		}
	}
	for fruitID, n := range f.Orchard.Outdoors {
		if n > 0 && !contains(ids, fruitID) {
			ids = append(ids, fruitID)
		}
	}
	return ids
}

func orchardFruits() []string {
	out := make([]string, 0, len(orchard.Seasons))
	for id := range orchard.Seasons {
		out = append(out, id)
	}
	return out
}
