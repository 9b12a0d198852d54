package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cellarworks/internal/growth"
)

func TestForCropBasePrices(t *testing.T) {
	s := Defaults()
	s.FruitPrice = map[string]int{"sunfruit": 101}

	p := s.ForCrop("sunfruit")
	assert.Equal(t, 101, p.Raw)
	assert.Equal(t, 303, p.Wine)
	assert.Equal(t, 606, p.AgedWine)
	assert.Equal(t, 252, p.Preserves)
	assert.Equal(t, 782, p.DriedBatch) // 101*7.5 + 25
}

func TestForCropArtisan(t *testing.T) {
	s := Defaults()
	s.FruitPrice = map[string]int{"sunfruit": 101}
	s.Artisan = true

	p := s.ForCrop("sunfruit")
	// Artisan boosts processed goods but not raw fruit.
	assert.Equal(t, 101, p.Raw)
	assert.Equal(t, 424, p.Wine)
	assert.Equal(t, 848, p.AgedWine) // aged doubles the truncated wine price
	assert.Equal(t, 352, p.Preserves)
	assert.Equal(t, 1095, p.DriedBatch)
}

func TestForCropTiller(t *testing.T) {
	s := Defaults()
	s.FruitPrice = map[string]int{"sunfruit": 101}
	s.Tiller = true

	p := s.ForCrop("sunfruit")
	assert.Equal(t, 111, p.Raw)
	assert.Equal(t, 303, p.Wine) // tiller does not touch processed goods
}

func TestForCropQualityMultipliers(t *testing.T) {
	s := Defaults()
	s.FruitPrice = map[string]int{"sunfruit": 101}
	s.FruitQualityMultiplier = 1.5
	s.WineQualityMultiplier = 1.5

	p := s.ForCrop("sunfruit")
	assert.Equal(t, 151, p.Raw)  // 151.5 truncated
	assert.Equal(t, 454, p.Wine) // 454.5 truncated
}

func TestBaseWinePriceOverride(t *testing.T) {
	s := Defaults()
	s.FruitPrice = map[string]int{"sunfruit": 101, "mistfruit": 101}
	s.WinePrice = map[string]int{"sunfruit": 400}

	assert.Equal(t, 400, s.BaseWinePrice("sunfruit"))
	assert.Equal(t, 400, s.ForCrop("sunfruit").Wine)
	assert.Equal(t, 303, s.BaseWinePrice("mistfruit")) // no override, falls back
}

func TestForCropUnpriced(t *testing.T) {
	s := Defaults()
	s.FruitPrice = map[string]int{"mistfruit": 0}

	assert.Equal(t, UnitPrices{}, s.ForCrop("mistfruit"))
	assert.Equal(t, UnitPrices{}, s.ForCrop("unknown"))
}

func TestHoneyPrice(t *testing.T) {
	s := Defaults()
	assert.Equal(t, 306, s.HoneyPrice(103))
	assert.Equal(t, 100, s.HoneyPrice(0))
	assert.Equal(t, 100, s.HoneyPrice(-5))

	s.Artisan = true
	assert.Equal(t, 428, s.HoneyPrice(103))
}

func TestDefaultsAreNeutral(t *testing.T) {
	s := Defaults()
	assert.InDelta(t, 2.0, s.AgedWineMultiplier, 1e-9)
	assert.InDelta(t, 1.0, s.WineQualityMultiplier, 1e-9)
	assert.InDelta(t, 1.0, s.FruitQualityMultiplier, 1e-9)
	assert.NotNil(t, s.FertilizerCost)
	_, ok := s.FertilizerCost[growth.FertilizerBasic]
	assert.False(t, ok)
}
