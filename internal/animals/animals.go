// Package animals models yearly coop and barn output plus the machines that
// refine it: churns for eggs, presses for milk, looms for wool, and oil
// makers for truffles. Animals are assumed fed every day.
package animals

import "cellarworks/internal/calendar"

// Production intervals in days.
const (
	DuckEggDays    = 2
	GoatMilkDays   = 2
	RabbitWoolDays = 4
	SheepWoolDays  = 3 // daily with the Shepherd profession
)

// Coop holds the small animals.
type Coop struct {
	Name    string
	Hens    int
	Ducks   int
	Rabbits int
}

// Barn holds the large animals.
type Barn struct {
	Name  string
	Cows  int
	Goats int
	Pigs  int
	Sheep int
}

// Config describes the herd and its quality rates.
type Config struct {
	Coops []Coop
	Barns []Barn

	// Large-product rates: the deterministic fraction of a product line that
	// comes out large-sized.
	LargeEggRate      float64
	LargeMilkRate     float64
	LargeGoatMilkRate float64
}

// Machines is the refining fleet. Each machine processes one item per day.
type Machines struct {
	Churns    int // eggs -> mayonnaise
	Presses   int // milk -> cheese
	Looms     int // wool -> cloth
	OilMakers int // truffles -> oil
}

// Professions that change animal output.
type Professions struct {
	Shepherd bool // sheep produce wool daily
	Gatherer bool // +20% truffle yield
}

// Result is the year's raw and refined animal product totals.
type Result struct {
	Eggs          int
	LargeEggs     int
	DuckEggs      int
	Milk          int
	LargeMilk     int
	GoatMilk      int
	LargeGoatMilk int
	Wool          int

	Mayo           int
	GoldMayo       int
	DuckMayo       int
	Cheese         int
	GoldCheese     int
	GoatCheese     int
	GoldGoatCheese int
	Cloth          int

	Truffles    int
	TruffleOil  int
	RawTruffles int
}

// splitWithRate splits a total into (normal, large) counts, flooring the
// large share.
func splitWithRate(total int, rate float64) (normal, large int) {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	large = int(float64(total) * rate)
	normal = total - large
	if normal < 0 {
		normal = 0
	}
	return normal, large
}

// nonWinterDays returns the non-winter days within a span starting on the
// first day of spring.
func nonWinterDays(days int) int {
	if days <= 0 {
		return 0
	}
	productiveDays := calendar.DaysPerSeason * (calendar.SeasonsPerYear - 1)
	fullYears := days / calendar.DaysPerYear
	remainder := days % calendar.DaysPerYear
	if remainder > productiveDays {
		remainder = productiveDays
	}
	return fullYears*productiveDays + remainder
}

// allocate takes up to capacity items from the inventory in priority order,
// returning how much of each line was taken.
func allocate(inventory map[string]int, capacity int, priority []string) map[string]int {
	taken := make(map[string]int, len(inventory))
	for key := range inventory {
		taken[key] = 0
	}
	if capacity < 0 {
		capacity = 0
	}
	for _, key := range priority {
		if capacity <= 0 {
			break
		}
		available := inventory[key]
		if available <= 0 {
			continue
		}
		use := available
		if use > capacity {
			use = capacity
		}
		taken[key] = use
		capacity -= use
	}
	return taken
}

// Simulate computes the year's totals. Machines process one item per day and
// prefer the most valuable input line: duck eggs before large eggs before
// eggs, goat milk before cow milk.
func Simulate(cfg Config, machines Machines, prof Professions, days int) Result {
	if days < 0 {
		days = 0
	}

	var hens, ducks, rabbits, cows, goats, pigs, sheep int
	for _, c := range cfg.Coops {
		hens += c.Hens
		ducks += c.Ducks
		rabbits += c.Rabbits
	}
	for _, b := range cfg.Barns {
		cows += b.Cows
		goats += b.Goats
		pigs += b.Pigs
		sheep += b.Sheep
	}

	eggs, largeEggs := splitWithRate(hens*days, cfg.LargeEggRate)
	duckEggs := ducks * (days / DuckEggDays)

	milk, largeMilk := splitWithRate(cows*days, cfg.LargeMilkRate)
	goatMilk, largeGoatMilk := splitWithRate(goats*(days/GoatMilkDays), cfg.LargeGoatMilkRate)

	sheepInterval := SheepWoolDays
	if prof.Shepherd {
		sheepInterval = 1
	}
	wool := rabbits*(days/RabbitWoolDays) + sheep*(days/sheepInterval)

	truffles := pigs * nonWinterDays(days)
	if prof.Gatherer && truffles > 0 {
		truffles += truffles / 5
	}
	oilCapacity := machines.OilMakers * days
	if oilCapacity < 0 {
		oilCapacity = 0
	}
	truffleOil := truffles
	if truffleOil > oilCapacity {
		truffleOil = oilCapacity
	}

	eggLines := map[string]int{
		"duck":  duckEggs,
		"large": largeEggs,
		"egg":   eggs,
	}
	eggsUsed := allocate(eggLines, machines.Churns*days, []string{"duck", "large", "egg"})

	milkLines := map[string]int{
		"largeGoat": largeGoatMilk,
		"goat":      goatMilk,
		"largeCow":  largeMilk,
		"cow":       milk,
	}
	milkUsed := allocate(milkLines, machines.Presses*days, []string{"largeGoat", "goat", "largeCow", "cow"})

	cloth := wool
	loomCapacity := machines.Looms * days
	if loomCapacity < 0 {
		loomCapacity = 0
	}
	if cloth > loomCapacity {
		cloth = loomCapacity
	}

	return Result{
		Eggs:          eggs,
		LargeEggs:     largeEggs,
		DuckEggs:      duckEggs,
		Milk:          milk,
		LargeMilk:     largeMilk,
		GoatMilk:      goatMilk,
		LargeGoatMilk: largeGoatMilk,
		Wool:          wool,

		Mayo:           eggsUsed["egg"],
		GoldMayo:       eggsUsed["large"],
		DuckMayo:       eggsUsed["duck"],
		Cheese:         milkUsed["cow"],
		GoldCheese:     milkUsed["largeCow"],
		GoatCheese:     milkUsed["goat"],
		GoldGoatCheese: milkUsed["largeGoat"],
		Cloth:          cloth,

		Truffles:    truffles,
		TruffleOil:  truffleOil,
		RawTruffles: truffles - truffleOil,
	}
}
