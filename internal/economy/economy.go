// Package economy turns production totals into revenue, cost, and profit
// figures.
package economy

import (
	"cellarworks/internal/animals"
	"cellarworks/internal/bees"
	"cellarworks/internal/growth"
	"cellarworks/internal/pipeline"
	"cellarworks/internal/pricing"
)

// Raw animal product prices.
const (
	EggPrice           = 50
	LargeEggPrice      = 95
	DuckEggPrice       = 95
	MilkPrice          = 125
	LargeMilkPrice     = 190
	GoatMilkPrice      = 225
	LargeGoatMilkPrice = 345
	WoolPrice          = 340
)

// Refined animal product prices.
const (
	MayoPrice           = 190
	GoldMayoPrice       = 285
	DuckMayoPrice       = 375
	CheesePrice         = 230
	GoldCheesePrice     = 345
	GoatCheesePrice     = 400
	GoldGoatCheesePrice = 600
	ClothPrice          = 470
	TrufflePrice        = 625
	TruffleOilPrice     = 1065
)

// CropProfit is one crop's revenue and cost breakdown.
type CropProfit struct {
	CropID string

	WineRevenue      int // base wine sold unaged
	AgedWineRevenue  int
	PreservesRevenue int
	DriedRevenue     int
	FruitRevenue     int // leftover raw fruit sold as-is

	SeedCost       int
	FertilizerCost int

	NetProfit int
}

// Summary aggregates the crop economy.
type Summary struct {
	PerCrop []CropProfit

	TotalRevenue    int
	TotalSeedCost   int
	TotalFertilizer int
	TotalProfit     int
}

// ComputeProfit prices every crop's run totals. Unprocessed fruit sells raw;
// goods still inside processor units at end of run earn nothing.
func ComputeProfit(crops []pipeline.CropResult, settings pricing.Settings, grade growth.FertilizerGrade) Summary {
	var sum Summary
	for _, c := range crops {
		unit := settings.ForCrop(c.CropID)
		p := CropProfit{
			CropID:           c.CropID,
			WineRevenue:      c.WineSold * unit.Wine,
			AgedWineRevenue:  c.AgedWineProduced * unit.AgedWine,
			PreservesRevenue: c.PreservesProduced * unit.Preserves,
			DriedRevenue:     c.DriedBatchesProduced * unit.DriedBatch,
			FruitRevenue:     c.FruitUnprocessed * unit.Raw,
			SeedCost:         c.SeedsUsed * settings.SeedCost[c.CropID],
			FertilizerCost:   c.FertilizerUsed * settings.FertilizerCost[grade],
		}
		revenue := p.WineRevenue + p.AgedWineRevenue + p.PreservesRevenue + p.DriedRevenue + p.FruitRevenue
		p.NetProfit = revenue - p.SeedCost - p.FertilizerCost

		sum.PerCrop = append(sum.PerCrop, p)
		sum.TotalRevenue += revenue
		sum.TotalSeedCost += p.SeedCost
		sum.TotalFertilizer += p.FertilizerCost
	}
	sum.TotalProfit = sum.TotalRevenue - sum.TotalSeedCost - sum.TotalFertilizer
	return sum
}

// AnimalProfit is the revenue breakdown for the animal operation.
type AnimalProfit struct {
	CheeseRevenue     int
	MayoRevenue       int
	ClothRevenue      int
	TruffleOilRevenue int
	RawTruffleRevenue int
	RawProductRevenue int
	TotalRevenue      int
}

// ComputeAnimalProfit prices a year of animal products. Refined goods take
// the artisan bonus; raw products that fed a machine are not double-counted.
func ComputeAnimalProfit(r animals.Result, settings pricing.Settings) AnimalProfit {
	cheese := r.Cheese*CheesePrice + r.GoldCheese*GoldCheesePrice +
		r.GoatCheese*GoatCheesePrice + r.GoldGoatCheese*GoldGoatCheesePrice
	mayo := r.Mayo*MayoPrice + r.GoldMayo*GoldMayoPrice + r.DuckMayo*DuckMayoPrice
	cloth := r.Cloth * ClothPrice
	oil := r.TruffleOil * TruffleOilPrice
	rawTruffle := r.RawTruffles * TrufflePrice

	raw := clampZero(r.Eggs-r.Mayo)*EggPrice +
		clampZero(r.LargeEggs-r.GoldMayo)*LargeEggPrice +
		clampZero(r.DuckEggs-r.DuckMayo)*DuckEggPrice +
		clampZero(r.Milk-r.Cheese)*MilkPrice +
		clampZero(r.LargeMilk-r.GoldCheese)*LargeMilkPrice +
		clampZero(r.GoatMilk-r.GoatCheese)*GoatMilkPrice +
		clampZero(r.LargeGoatMilk-r.GoldGoatCheese)*LargeGoatMilkPrice +
		clampZero(r.Wool-r.Cloth)*WoolPrice

	if settings.Artisan {
		cheese = int(float64(cheese) * 1.4)
		mayo = int(float64(mayo) * 1.4)
		cloth = int(float64(cloth) * 1.4)
		oil = int(float64(oil) * 1.4)
	}

	return AnimalProfit{
		CheeseRevenue:     cheese,
		MayoRevenue:       mayo,
		ClothRevenue:      cloth,
		TruffleOilRevenue: oil,
		RawTruffleRevenue: rawTruffle,
		RawProductRevenue: raw,
		TotalRevenue:      cheese + mayo + cloth + oil + rawTruffle + raw,
	}
}

// ComputeHoneyProfit prices a year of honey by flower price bucket.
func ComputeHoneyProfit(r bees.Result, settings pricing.Settings) int {
	revenue := 0
	for flowerPrice, count := range r.HoneyByFlowerPrice {
		revenue += settings.HoneyPrice(flowerPrice) * count
	}
	return revenue
}

// CategoryTotals groups revenue by sale channel for reporting.
func CategoryTotals(crops Summary, animal AnimalProfit, honeyRevenue int) map[string]int {
	var aged, wine, preserves, dried, fruit int
	for _, p := range crops.PerCrop {
		aged += p.AgedWineRevenue
		wine += p.WineRevenue
		preserves += p.PreservesRevenue
		dried += p.DriedRevenue
		fruit += p.FruitRevenue
	}
	return map[string]int{
		"aged_wine":    aged,
		"wine":         wine,
		"preserves":    preserves,
		"dried_fruit":  dried,
		"raw_fruit":    fruit,
		"honey":        honeyRevenue,
		"cheese":       animal.CheeseRevenue,
		"mayo":         animal.MayoRevenue,
		"cloth":        animal.ClothRevenue,
		"truffle_oil":  animal.TruffleOilRevenue,
		"raw_truffles": animal.RawTruffleRevenue,
		"raw_animal":   animal.RawProductRevenue,
	}
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
