// Package bees models hive honey output across the flowering seasons.
//
// A hive yields one honey every four days while a flowering season is
// running; winter produces nothing. Honey value tracks the best flower in
// bloom nearby, so output is bucketed by flower base price.
package bees

import "cellarworks/internal/calendar"

// ProductionInterval is the days between honey yields per hive.
const ProductionInterval = 4

// FlowerSpec describes one flower planting: how long it takes to bloom and
// what it is worth once it does.
type FlowerSpec struct {
	Name       string
	GrowthDays int
	BasePrice  int
}

// FlowerPlan is a season's two-stage flower rotation: a fast bloomer to
// cover the early yields and a pricier flower that takes over once grown.
type FlowerPlan struct {
	Fast      FlowerSpec
	Expensive FlowerSpec
}

// Config describes the hive operation for one year.
type Config struct {
	Hives           int
	FlowerBasePrice int // fallback when a season has no plan
	Seasons         []calendar.Season
	FlowerPlan      map[calendar.Season]FlowerPlan
}

// DefaultSeasons are the three flowering seasons.
func DefaultSeasons() []calendar.Season {
	return []calendar.Season{calendar.Spring, calendar.Summer, calendar.Autumn}
}

// Result is the year's honey output, bucketed by flower base price.
type Result struct {
	HoneyByFlowerPrice map[int]int
	HoneyTotal         int
}

// Simulate walks each configured season day by day and counts yields. With a
// flower plan, a yield day before the fast flower blooms prices at zero,
// then at the fast flower, then at the expensive one.
func Simulate(cfg Config) Result {
	hives := cfg.Hives
	if hives < 0 {
		hives = 0
	}
	if hives == 0 || len(cfg.Seasons) == 0 {
		return Result{HoneyByFlowerPrice: map[int]int{}}
	}

	byPrice := make(map[int]int)
	for _, season := range cfg.Seasons {
		plan, hasPlan := cfg.FlowerPlan[season]
		for day := ProductionInterval; day <= calendar.DaysPerSeason; day += ProductionInterval {
			price := cfg.FlowerBasePrice
			if hasPlan {
				switch {
				case day > plan.Expensive.GrowthDays:
					price = plan.Expensive.BasePrice
				case day > plan.Fast.GrowthDays:
					price = plan.Fast.BasePrice
				default:
					price = 0
				}
			}
			byPrice[price] += hives
		}
	}

	total := 0
	for _, n := range byPrice {
		total += n
	}
	return Result{HoneyByFlowerPrice: byPrice, HoneyTotal: total}
}
