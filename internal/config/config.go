// Package config loads and validates the JSON run configuration and the
// process environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Crop selection values for File.Crop.
const (
	CropBoth = "both"
)

// File is the on-disk JSON run configuration.
type File struct {
	Crop string `json:"crop" validate:"omitempty"`

	Fermenters int `json:"fermenters" validate:"min=0"`
	Preservers int `json:"preservers" validate:"min=0"`
	Driers     int `json:"driers" validate:"min=0"`
	Casks      int `json:"casks" validate:"min=0"`

	Churns    int `json:"churns" validate:"min=0"`
	Presses   int `json:"presses" validate:"min=0"`
	Looms     int `json:"looms" validate:"min=0"`
	OilMakers int `json:"oil_makers" validate:"min=0"`

	Plots []PlotFile `json:"plots" validate:"dive"`

	Growth     GrowthFile    `json:"growth"`
	Simulation SimFile       `json:"simulation"`
	Economy    EconomyFile   `json:"economy"`
	Inventory  InventoryFile `json:"starting_inventory"`

	Animals AnimalsFile `json:"animals"`
	Bees    BeesFile    `json:"bees"`
	Orchard OrchardFile `json:"orchard"`
}

// PlotFile describes one plot entry.
type PlotFile struct {
	Name     string         `json:"name"`
	Tiles    map[string]int `json:"tiles" validate:"required"`
	Calendar CalendarFile   `json:"calendar"`
}

// CalendarFile describes a plot's activity calendar.
type CalendarFile struct {
	Type    string   `json:"type"`
	Seasons []string `json:"seasons"`
}

// GrowthFile carries the growth modifiers.
type GrowthFile struct {
	Fertilizer string `json:"fertilizer"`
	Cultivator bool   `json:"cultivator"`
	Irrigated  bool   `json:"irrigated"`
}

// SimFile carries the run window.
type SimFile struct {
	Days           int `json:"days" validate:"min=0"`
	StartDayOfYear int `json:"start_day_of_year" validate:"min=0,max=112"`
}

// EconomyFile carries the pricing inputs.
type EconomyFile struct {
	FruitPrice     map[string]int `json:"fruit_price"`
	WinePrice      map[string]int `json:"wine_price"`
	SeedCost       map[string]int `json:"seed_cost"`
	FertilizerCost map[string]int `json:"fertilizer_cost"`

	AgedWineMultiplier     float64 `json:"aged_wine_multiplier" validate:"min=0"`
	WineQualityMultiplier  float64 `json:"wine_quality_multiplier" validate:"min=0"`
	FruitQualityMultiplier float64 `json:"fruit_quality_multiplier" validate:"min=0"`

	Artisan bool `json:"artisan"`
	Tiller  bool `json:"tiller"`

	CaskFullBatchRequired bool `json:"cask_full_batch_required"`
	CasksFallback         *int `json:"casks_fallback"`
}

// InventoryFile carries goods on hand at day zero.
type InventoryFile struct {
	Fruit map[string]int `json:"fruit"`
	Wine  map[string]int `json:"wine"`
}

// AnimalsFile carries the herd configuration.
type AnimalsFile struct {
	Coops []CoopFile `json:"coops" validate:"dive"`
	Barns []BarnFile `json:"barns" validate:"dive"`

	LargeEggRate      float64 `json:"large_egg_rate" validate:"min=0,max=1"`
	LargeMilkRate     float64 `json:"large_milk_rate" validate:"min=0,max=1"`
	LargeGoatMilkRate float64 `json:"large_goat_milk_rate" validate:"min=0,max=1"`

	Shepherd bool `json:"shepherd"`
	Gatherer bool `json:"gatherer"`
}

// CoopFile is one coop's animal counts.
type CoopFile struct {
	Name    string `json:"name"`
	Hens    int    `json:"hens" validate:"min=0"`
	Ducks   int    `json:"ducks" validate:"min=0"`
	Rabbits int    `json:"rabbits" validate:"min=0"`
}

// BarnFile is one barn's animal counts.
type BarnFile struct {
	Name  string `json:"name"`
	Cows  int    `json:"cows" validate:"min=0"`
	Goats int    `json:"goats" validate:"min=0"`
	Pigs  int    `json:"pigs" validate:"min=0"`
	Sheep int    `json:"sheep" validate:"min=0"`
}

// BeesFile carries the hive configuration.
type BeesFile struct {
	Hives           int                   `json:"hives" validate:"min=0"`
	FlowerBasePrice int                   `json:"flower_base_price" validate:"min=0"`
	Seasons         []string              `json:"seasons"`
	FlowerPlan      map[string]FlowerFile `json:"flower_plan"`
}

// FlowerFile is one season's flower rotation.
type FlowerFile struct {
	Fast      FlowerSpecFile `json:"fast"`
	Expensive FlowerSpecFile `json:"expensive"`
}

// FlowerSpecFile is one flower planting.
type FlowerSpecFile struct {
	Name       string `json:"name"`
	GrowthDays int    `json:"growth_days" validate:"min=0"`
	BasePrice  int    `json:"base_price" validate:"min=0"`
}

// OrchardFile carries tree counts per scope.
type OrchardFile struct {
	Greenhouse map[string]int `json:"greenhouse"`
	Outdoors   map[string]int `json:"outdoors"`
}

// Load reads, decodes, and validates a JSON config file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate runs tag validation and then the domain checks the tags cannot
// express.
func (f *File) Validate() error {
	if err := validator.New().Struct(f); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return f.checkDomain()
}
