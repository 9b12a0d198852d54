// Package orchard turns fruit tree counts into the daily fruit schedule the
// pipeline consumes. A mature tree drops one fruit per day: greenhouse trees
// every day of the year, outdoor trees only during their fruit's season.
package orchard

import "cellarworks/internal/calendar"

// Seasons maps each orchard fruit to its outdoor bearing season.
var Seasons = map[string]calendar.Season{
	"apricot":     calendar.Spring,
	"cherry":      calendar.Spring,
	"orange":      calendar.Summer,
	"peach":       calendar.Summer,
	"apple":       calendar.Autumn,
	"pomegranate": calendar.Autumn,
}

// Known reports whether a fruit name is in the orchard catalog.
func Known(fruitID string) bool {
	_, ok := Seasons[fruitID]
	return ok
}

// Config counts mature trees per fruit in each scope.
type Config struct {
	Greenhouse map[string]int
	Outdoors   map[string]int
}

// TotalTrees returns tree counts per fruit across both scopes.
func (c Config) TotalTrees() map[string]int {
	total := make(map[string]int)
	for fruitID, n := range c.Greenhouse {
		if n > 0 {
			total[fruitID] += n
		}
	}
	for fruitID, n := range c.Outdoors {
		if n > 0 {
			total[fruitID] += n
		}
	}
	return total
}

// FruitIDs returns the fruits present in the config.
func (c Config) FruitIDs() []string {
	ids := make([]string, 0, len(c.Greenhouse)+len(c.Outdoors))
	for fruitID := range c.TotalTrees() {
		ids = append(ids, fruitID)
	}
	return ids
}

// DailyFruit builds the per-fruit daily arrival schedule for a run of the
// given length starting at startDayOfYear (1-based).
func DailyFruit(cfg Config, startDayOfYear, days int) map[string][]int {
	if days < 0 {
		days = 0
	}
	totals := cfg.TotalTrees()
	if len(totals) == 0 || days == 0 {
		return map[string][]int{}
	}

	daily := make(map[string][]int, len(totals))
	for fruitID := range totals {
		daily[fruitID] = make([]int, days)
	}
	for day := 0; day < days; day++ {
		season := calendar.SeasonForDay(calendar.DayOfYear(startDayOfYear, day))
		for fruitID, n := range cfg.Greenhouse {
			if n > 0 {
				daily[fruitID][day] += n
			}
		}
		for fruitID, n := range cfg.Outdoors {
			if n <= 0 {
				continue
			}
			if s, ok := Seasons[fruitID]; ok && s == season {
				daily[fruitID][day] += n
			}
		}
	}
	return daily
}
