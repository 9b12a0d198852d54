package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerStockIsNotHarvested(t *testing.T) {
	led := NewLedger([]string{"sunfruit"})
	led.Stock("sunfruit", 5)

	assert.Equal(t, 5, led.Available("sunfruit"))
	assert.Equal(t, 0, led.Harvested("sunfruit"))
}

func TestLedgerHarvestAndConsume(t *testing.T) {
	led := NewLedger([]string{"sunfruit"})
	led.Harvest("sunfruit", 3)
	led.Harvest("sunfruit", 2)

	assert.Equal(t, 5, led.Available("sunfruit"))
	assert.Equal(t, 5, led.Harvested("sunfruit"))

	assert.True(t, led.Consume("sunfruit", 4))
	assert.Equal(t, 1, led.Available("sunfruit"))
	assert.Equal(t, 4, led.Consumed("sunfruit"))
}

func TestLedgerConsumeIsAllOrNothing(t *testing.T) {
	led := NewLedger([]string{"sunfruit"})
	led.Harvest("sunfruit", 3)

	assert.False(t, led.Consume("sunfruit", 4))
	assert.Equal(t, 3, led.Available("sunfruit"))
	assert.Equal(t, 0, led.Consumed("sunfruit"))
}

func TestLedgerIgnoresNonPositiveAmounts(t *testing.T) {
	led := NewLedger([]string{"sunfruit"})
	led.Harvest("sunfruit", 0)
	led.Harvest("sunfruit", -2)
	led.Stock("sunfruit", -1)

	assert.Equal(t, 0, led.Available("sunfruit"))
	assert.False(t, led.Consume("sunfruit", 0))
}

func TestLedgerCropIDs(t *testing.T) {
	led := NewLedger([]string{"sunfruit", "mistfruit"})
	assert.ElementsMatch(t, []string{"sunfruit", "mistfruit"}, led.CropIDs())
}
