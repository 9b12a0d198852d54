package config

import (
	"sort"

	"cellarworks/internal/animals"
	"cellarworks/internal/bees"
	"cellarworks/internal/calendar"
	"cellarworks/internal/crop"
	"cellarworks/internal/growth"
	"cellarworks/internal/orchard"
	"cellarworks/internal/pipeline"
	"cellarworks/internal/plot"
	"cellarworks/internal/pricing"
)

// Crops resolves the crop selection against the catalog.
func (f *File) Crops() []crop.Spec {
	if f.Crop == "" || f.Crop == CropBoth {
		return crop.Catalog()
	}
	spec, ok := crop.ByID(crop.ID(f.Crop))
	if !ok {
		// Validate catches this before Build* runs.
		return crop.Catalog()
	}
	return []crop.Spec{spec}
}

// Modifiers resolves the growth bonuses.
func (f *File) Modifiers() growth.Modifiers {
	grade := growth.FertilizerGrade(f.Growth.Fertilizer)
	if f.Growth.Fertilizer == "" {
		grade = growth.FertilizerNone
	}
	return growth.Modifiers{
		Fertilizer: grade,
		Cultivator: f.Growth.Cultivator,
		Irrigated:  f.Growth.Irrigated,
	}
}

// BuildPlots converts the plot entries to runtime plots.
func (f *File) BuildPlots() []plot.Plot {
	out := make([]plot.Plot, 0, len(f.Plots))
	for _, p := range f.Plots {
		out = append(out, plot.Plot{
			Name:        p.Name,
			TilesByCrop: p.Tiles,
			Calendar:    p.Calendar.build(),
		})
	}
	return out
}

func (c CalendarFile) build() calendar.Calendar {
	if c.Type != string(calendar.KindSeasonal) {
		return calendar.Always()
	}
	seasons := make([]calendar.Season, 0, len(c.Seasons))
	for _, name := range c.Seasons {
		s, err := calendar.ParseSeason(name)
		if err != nil {
			continue // Validate catches this before Build* runs
		}
		seasons = append(seasons, s)
	}
	return calendar.Seasonal(seasons...)
}

// BuildOrchard converts the tree counts.
func (f *File) BuildOrchard() orchard.Config {
	return orchard.Config{
		Greenhouse: f.Orchard.Greenhouse,
		Outdoors:   f.Orchard.Outdoors,
	}
}

// BuildPipeline assembles the full pipeline configuration, wiring the
// orchard schedule in as external daily fruit.
func (f *File) BuildPipeline() pipeline.Config {
	days := f.Simulation.Days
	if days == 0 {
		days = calendar.DaysPerYear
	}
	startDay := f.Simulation.StartDayOfYear
	if startDay == 0 {
		startDay = 1
	}

	external := orchard.DailyFruit(f.BuildOrchard(), startDay, days)
	externalPriority := make([]string, 0, len(external))
	for fruitID := range external {
		externalPriority = append(externalPriority, fruitID)
	}
	sort.Strings(externalPriority)

	return pipeline.Config{
		Crops: f.Crops(),
		Mods:  f.Modifiers(),
		Plots: f.BuildPlots(),

		Fermenters: f.Fermenters,
		Preservers: f.Preservers,
		Driers:     f.Driers,

		Casks:                 f.Casks,
		CaskFullBatchRequired: f.Economy.CaskFullBatchRequired,
		CasksFallback:         f.Economy.CasksFallback,

		Days:           days,
		StartDayOfYear: startDay,

		StartingFruit: f.Inventory.Fruit,
		StartingWine:  f.Inventory.Wine,

		ExternalDailyFruit: external,
		ExternalPriority:   externalPriority,
	}
}

// BuildPricing assembles the price settings.
func (f *File) BuildPricing() pricing.Settings {
	s := pricing.Defaults()
	if f.Economy.FruitPrice != nil {
		s.FruitPrice = f.Economy.FruitPrice
	}
	if f.Economy.WinePrice != nil {
		s.WinePrice = f.Economy.WinePrice
	}
	if f.Economy.SeedCost != nil {
		s.SeedCost = f.Economy.SeedCost
	}
	for name, cost := range f.Economy.FertilizerCost {
		s.FertilizerCost[growth.FertilizerGrade(name)] = cost
	}
	if f.Economy.AgedWineMultiplier > 0 {
		s.AgedWineMultiplier = f.Economy.AgedWineMultiplier
	}
	if f.Economy.WineQualityMultiplier > 0 {
		s.WineQualityMultiplier = f.Economy.WineQualityMultiplier
	}
	if f.Economy.FruitQualityMultiplier > 0 {
		s.FruitQualityMultiplier = f.Economy.FruitQualityMultiplier
	}
	s.Artisan = f.Economy.Artisan
	s.Tiller = f.Economy.Tiller
	return s
}

// BuildAnimals assembles the herd, machine, and profession settings.
func (f *File) BuildAnimals() (animals.Config, animals.Machines, animals.Professions) {
	cfg := animals.Config{
		LargeEggRate:      f.Animals.LargeEggRate,
		LargeMilkRate:     f.Animals.LargeMilkRate,
		LargeGoatMilkRate: f.Animals.LargeGoatMilkRate,
	}
	for _, c := range f.Animals.Coops {
		cfg.Coops = append(cfg.Coops, animals.Coop{
			Name: c.Name, Hens: c.Hens, Ducks: c.Ducks, Rabbits: c.Rabbits,
		})
	}
	for _, b := range f.Animals.Barns {
		cfg.Barns = append(cfg.Barns, animals.Barn{
			Name: b.Name, Cows: b.Cows, Goats: b.Goats, Pigs: b.Pigs, Sheep: b.Sheep,
		})
	}
	machines := animals.Machines{
		Churns:    f.Churns,
		Presses:   f.Presses,
		Looms:     f.Looms,
		OilMakers: f.OilMakers,
	}
	prof := animals.Professions{
		Shepherd: f.Animals.Shepherd,
		Gatherer: f.Animals.Gatherer,
	}
	return cfg, machines, prof
}

// BuildBees assembles the hive settings. With a flower plan and no explicit
// season list, the plan's seasons drive production.
func (f *File) BuildBees() bees.Config {
	cfg := bees.Config{
		Hives:           f.Bees.Hives,
		FlowerBasePrice: f.Bees.FlowerBasePrice,
		FlowerPlan:      make(map[calendar.Season]bees.FlowerPlan, len(f.Bees.FlowerPlan)),
	}
	for name, plan := range f.Bees.FlowerPlan {
		season, err := calendar.ParseSeason(name)
		if err != nil {
			continue // Validate catches this before Build* runs
		}
		cfg.FlowerPlan[season] = bees.FlowerPlan{
			Fast: bees.FlowerSpec{
				Name:       plan.Fast.Name,
				GrowthDays: plan.Fast.GrowthDays,
				BasePrice:  plan.Fast.BasePrice,
			},
			Expensive: bees.FlowerSpec{
				Name:       plan.Expensive.Name,
				GrowthDays: plan.Expensive.GrowthDays,
				BasePrice:  plan.Expensive.BasePrice,
			},
		}
	}
	switch {
	case len(f.Bees.Seasons) > 0:
		for _, name := range f.Bees.Seasons {
			if s, err := calendar.ParseSeason(name); err == nil {
				cfg.Seasons = append(cfg.Seasons, s)
			}
		}
	case len(cfg.FlowerPlan) > 0:
		for season := range cfg.FlowerPlan {
			cfg.Seasons = append(cfg.Seasons, season)
		}
		sort.Slice(cfg.Seasons, func(i, j int) bool { return cfg.Seasons[i] < cfg.Seasons[j] })
	default:
		cfg.Seasons = bees.DefaultSeasons()
	}
	return cfg
}
