package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedIncrease(t *testing.T) {
	assert.InDelta(t, 0.0, Modifiers{}.SpeedIncrease(), 1e-9)
	assert.InDelta(t, 0.10, Modifiers{Fertilizer: FertilizerBasic}.SpeedIncrease(), 1e-9)
	assert.InDelta(t, 0.25, Modifiers{Fertilizer: FertilizerDeluxe}.SpeedIncrease(), 1e-9)
	assert.InDelta(t, 0.33, Modifiers{Fertilizer: FertilizerHyper}.SpeedIncrease(), 1e-9)
	assert.InDelta(t, 0.35, Modifiers{Fertilizer: FertilizerDeluxe, Cultivator: true}.SpeedIncrease(), 1e-9)
	assert.InDelta(t, 0.68, Modifiers{Fertilizer: FertilizerHyper, Cultivator: true, Irrigated: true}.SpeedIncrease(), 1e-9)
}

func TestAdjustPhases(t *testing.T) {
	sunfruit := []int{2, 3, 2, 3, 3}  // 13 days
	mistfruit := []int{2, 7, 7, 7, 5} // 28 days

	tests := []struct {
		name   string
		phases []int
		mods   Modifiers
		want   []int
	}{
		{"no modifiers", sunfruit, Modifiers{}, []int{2, 3, 2, 3, 3}},
		{"basic", sunfruit, Modifiers{Fertilizer: FertilizerBasic}, []int{1, 2, 2, 3, 3}},
		{"deluxe", sunfruit, Modifiers{Fertilizer: FertilizerDeluxe}, []int{1, 2, 1, 2, 3}},
		{"hyper", sunfruit, Modifiers{Fertilizer: FertilizerHyper}, []int{1, 2, 1, 2, 2}},
		{"deluxe cultivator", sunfruit, Modifiers{Fertilizer: FertilizerDeluxe, Cultivator: true}, []int{1, 2, 1, 2, 2}},
		{"perennial no modifiers", mistfruit, Modifiers{}, []int{2, 7, 7, 7, 5}},
		{"perennial basic", mistfruit, Modifiers{Fertilizer: FertilizerBasic}, []int{1, 6, 6, 7, 5}},
		{"perennial basic cultivator", mistfruit, Modifiers{Fertilizer: FertilizerBasic, Cultivator: true}, []int{1, 5, 6, 6, 4}},
		{"perennial hyper cultivator", mistfruit, Modifiers{Fertilizer: FertilizerHyper, Cultivator: true}, []int{1, 4, 4, 4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustPhases(tt.phases, tt.mods))
		})
	}
}

func TestAdjustPhasesFirstPhaseFloor(t *testing.T) {
	// The first phase never drops below one day; later phases may.
	got := AdjustPhases([]int{1, 1}, Modifiers{Fertilizer: FertilizerHyper})
	assert.Equal(t, []int{1, 0}, got)
}

func TestAdjustPhasesDoesNotMutateInput(t *testing.T) {
	phases := []int{2, 3, 2, 3, 3}
	AdjustPhases(phases, Modifiers{Fertilizer: FertilizerHyper})
	assert.Equal(t, []int{2, 3, 2, 3, 3}, phases)
}

func TestDaysToFirstHarvest(t *testing.T) {
	sunfruit := []int{2, 3, 2, 3, 3}
	assert.Equal(t, 13, DaysToFirstHarvest(sunfruit, Modifiers{}))
	assert.Equal(t, 11, DaysToFirstHarvest(sunfruit, Modifiers{Fertilizer: FertilizerBasic}))
	assert.Equal(t, 9, DaysToFirstHarvest(sunfruit, Modifiers{Fertilizer: FertilizerDeluxe}))
	assert.Equal(t, 8, DaysToFirstHarvest(sunfruit, Modifiers{Fertilizer: FertilizerHyper}))

	mistfruit := []int{2, 7, 7, 7, 5}
	assert.Equal(t, 28, DaysToFirstHarvest(mistfruit, Modifiers{}))
	assert.Equal(t, 22, DaysToFirstHarvest(mistfruit, Modifiers{Fertilizer: FertilizerBasic, Cultivator: true}))
}
