// Package growth converts base crop phase lengths into fertilizer- and
// profession-adjusted growth durations.
package growth

import "math"

// FertilizerGrade is the tier of growth fertilizer applied to a plot.
type FertilizerGrade string

const (
	FertilizerNone   FertilizerGrade = "none"
	FertilizerBasic  FertilizerGrade = "basic"
	FertilizerDeluxe FertilizerGrade = "deluxe"
	FertilizerHyper  FertilizerGrade = "hyper"
)

// SpeedBonus returns the growth-speed increase contributed by the grade.
func (f FertilizerGrade) SpeedBonus() float64 {
	switch f {
	case FertilizerBasic:
		return 0.10
	case FertilizerDeluxe:
		return 0.25
	case FertilizerHyper:
		return 0.33
	}
	return 0
}

// Modifiers are the already-resolved growth bonuses for a run.
type Modifiers struct {
	Fertilizer FertilizerGrade
	Cultivator bool // profession: +10% growth speed
	Irrigated  bool // +25% growth speed; irrelevant for the stock crops, kept for parity
}

// SpeedIncrease returns the combined fractional speed increase.
func (m Modifiers) SpeedIncrease() float64 {
	speed := m.Fertilizer.SpeedBonus()
	if m.Irrigated {
		speed += 0.25
	}
	if m.Cultivator {
		speed += 0.10
	}
	return speed
}

// AdjustPhases applies the speed increase to a base phase sequence:
// daysToRemove = ceil(totalDays * speedIncrease), then up to 3 passes over
// the phases in order, removing one day per eligible phase. The first phase
// never drops below one day.
func AdjustPhases(phases []int, m Modifiers) []int {
	adjusted := make([]int, len(phases))
	copy(adjusted, phases)

	total := 0
	for _, d := range phases {
		total += d
	}
	speed := m.SpeedIncrease()
	if speed <= 0 || total <= 0 {
		return adjusted
	}

	daysToRemove := int(math.Ceil(float64(total) * speed))
	for pass := 0; pass < 3 && daysToRemove > 0; pass++ {
		for i := range adjusted {
			if i > 0 || adjusted[i] > 1 {
				adjusted[i]--
				daysToRemove--
			}
			if daysToRemove <= 0 {
				break
			}
		}
	}
	return adjusted
}

// DaysToFirstHarvest returns the adjusted total days from planting to the
// first harvest.
func DaysToFirstHarvest(phases []int, m Modifiers) int {
	total := 0
	for _, d := range AdjustPhases(phases, m) {
		total += d
	}
	return total
}
