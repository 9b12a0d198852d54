package bees

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cellarworks/internal/calendar"
)

func TestSimulateFlatFlowerPrice(t *testing.T) {
	res := Simulate(Config{
		Hives:           2,
		FlowerBasePrice: 103,
		Seasons:         DefaultSeasons(),
	})

	// Seven yields per season (days 4..28), two hives, three seasons.
	assert.Equal(t, 42, res.HoneyTotal)
	assert.Equal(t, map[int]int{103: 42}, res.HoneyByFlowerPrice)
}

func TestSimulateFlowerPlan(t *testing.T) {
	res := Simulate(Config{
		Hives:   1,
		Seasons: []calendar.Season{calendar.Spring},
		FlowerPlan: map[calendar.Season]FlowerPlan{
			calendar.Spring: {
				Fast:      FlowerSpec{Name: "bluebell", GrowthDays: 4, BasePrice: 50},
				Expensive: FlowerSpec{Name: "saffron", GrowthDays: 10, BasePrice: 103},
			},
		},
	})

	// Day 4 lands before the fast flower blooms and prices at zero; day 8
	// uses the fast flower; days 12 through 28 use the expensive one.
	assert.Equal(t, map[int]int{0: 1, 50: 1, 103: 5}, res.HoneyByFlowerPrice)
	assert.Equal(t, 7, res.HoneyTotal)
}

func TestSimulatePlanFallsBackPerSeason(t *testing.T) {
	res := Simulate(Config{
		Hives:           1,
		FlowerBasePrice: 60,
		Seasons:         []calendar.Season{calendar.Spring, calendar.Summer},
		FlowerPlan: map[calendar.Season]FlowerPlan{
			calendar.Summer: {
				Fast:      FlowerSpec{Name: "poppy", GrowthDays: 3, BasePrice: 70},
				Expensive: FlowerSpec{Name: "rose", GrowthDays: 3, BasePrice: 70},
			},
		},
	})

	// Spring has no plan and uses the flat price; summer follows its plan.
	assert.Equal(t, map[int]int{60: 7, 70: 7}, res.HoneyByFlowerPrice)
}

func TestSimulateNoHives(t *testing.T) {
	assert.Equal(t, 0, Simulate(Config{Hives: 0, Seasons: DefaultSeasons()}).HoneyTotal)
	assert.Equal(t, 0, Simulate(Config{Hives: -3, Seasons: DefaultSeasons()}).HoneyTotal)
	assert.Equal(t, 0, Simulate(Config{Hives: 2}).HoneyTotal)
}
