// Package pricing computes per-unit sale prices for raw fruit and each
// processed good, under quality multipliers and the two sale professions.
package pricing

import "cellarworks/internal/growth"

// Settings carries every price input the economy needs.
type Settings struct {
	FruitPrice map[string]int
	// WinePrice overrides the default fruit*3 wine price per crop.
	WinePrice      map[string]int
	SeedCost       map[string]int
	FertilizerCost map[growth.FertilizerGrade]int

	AgedWineMultiplier     float64 // applied to the wine unit price for aged wine
	WineQualityMultiplier  float64
	FruitQualityMultiplier float64

	Artisan bool // +40% on processed goods
	Tiller  bool // +10% on raw fruit
}

// Defaults returns settings with neutral multipliers and doubled aged wine.
func Defaults() Settings {
	return Settings{
		FruitPrice:             map[string]int{},
		WinePrice:              map[string]int{},
		SeedCost:               map[string]int{},
		FertilizerCost:         map[growth.FertilizerGrade]int{},
		AgedWineMultiplier:     2.0,
		WineQualityMultiplier:  1.0,
		FruitQualityMultiplier: 1.0,
	}
}

// BaseWinePrice returns a crop's wine price before quality and profession
// multipliers, falling back to three times the fruit price.
func (s Settings) BaseWinePrice(cropID string) int {
	if price, ok := s.WinePrice[cropID]; ok && price > 0 {
		return price
	}
	return s.FruitPrice[cropID] * 3
}

// UnitPrices is the per-unit revenue of one crop's sale channels.
type UnitPrices struct {
	Raw        int
	Wine       int
	AgedWine   int
	Preserves  int
	DriedBatch int
}

// ForCrop computes the unit prices for one crop. Processed prices follow the
// fixed formulas: preserves = fruit*2 + 50, dried batch = fruit*7.5 + 25.
func (s Settings) ForCrop(cropID string) UnitPrices {
	fruit := s.FruitPrice[cropID]
	if fruit <= 0 {
		return UnitPrices{}
	}

	raw := float64(fruit) * s.FruitQualityMultiplier
	if s.Tiller {
		raw *= 1.1
	}

	wine := float64(s.BaseWinePrice(cropID)) * s.WineQualityMultiplier
	preserves := float64(fruit*2 + 50)
	dried := float64(fruit)*7.5 + 25
	if s.Artisan {
		wine *= 1.4
		preserves *= 1.4
		dried *= 1.4
	}

	return UnitPrices{
		Raw:        int(raw),
		Wine:       int(wine),
		AgedWine:   int(float64(int(wine)) * s.AgedWineMultiplier),
		Preserves:  int(preserves),
		DriedBatch: int(dried),
	}
}

// HoneyPrice returns the unit price of honey made from a flower of the given
// base price: 100 + 2*flower, with the artisan bonus applied.
func (s Settings) HoneyPrice(flowerBasePrice int) int {
	if flowerBasePrice < 0 {
		flowerBasePrice = 0
	}
	price := 100 + 2*flowerBasePrice
	if s.Artisan {
		price = int(float64(price) * 1.4)
	}
	return price
}
