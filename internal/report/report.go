// Package report renders run results as console tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cellarworks/internal/economy"
	"cellarworks/internal/pipeline"
)

// Production writes the per-crop production table.
func Production(w io.Writer, res pipeline.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Crop", "Harvested", "Wine", "Aged", "Preserves", "Dried", "Raw Left", "Seeds", "Fertilizer",
	})
	for _, c := range res.Crops {
		table.Append([]string{
			c.CropID,
			strconv.Itoa(c.FruitHarvested),
			strconv.Itoa(c.WineProduced),
			strconv.Itoa(c.AgedWineProduced),
			strconv.Itoa(c.PreservesProduced),
			strconv.Itoa(c.DriedBatchesProduced),
			strconv.Itoa(c.FruitUnprocessed),
			strconv.Itoa(c.SeedsUsed),
			strconv.Itoa(c.FertilizerUsed),
		})
	}
	table.Render()

	fmt.Fprintf(w, "days: %d  casks used: %d  uses per cask: %.1f  full cask batches: %v  all fruit processed: %v\n",
		res.Days, res.CasksEffective, res.CaskUsesPerCask, res.FullCaskBatchMet, res.AllFruitProcessed)
}

// Profit writes the per-crop profit table with totals.
func Profit(w io.Writer, sum economy.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Crop", "Wine", "Aged Wine", "Preserves", "Dried", "Raw Fruit", "Seed Cost", "Fert Cost", "Net",
	})
	for _, p := range sum.PerCrop {
		table.Append([]string{
			p.CropID,
			strconv.Itoa(p.WineRevenue),
			strconv.Itoa(p.AgedWineRevenue),
			strconv.Itoa(p.PreservesRevenue),
			strconv.Itoa(p.DriedRevenue),
			strconv.Itoa(p.FruitRevenue),
			strconv.Itoa(p.SeedCost),
			strconv.Itoa(p.FertilizerCost),
			strconv.Itoa(p.NetProfit),
		})
	}
	table.SetFooter([]string{
		"total", "", "", "", "",
		strconv.Itoa(sum.TotalRevenue),
		strconv.Itoa(sum.TotalSeedCost),
		strconv.Itoa(sum.TotalFertilizer),
		strconv.Itoa(sum.TotalProfit),
	})
	table.Render()
}

// Categories writes revenue grouped by sale channel, skipping empty rows.
func Categories(w io.Writer, totals map[string]int, order []string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Revenue"})
	for _, key := range order {
		if totals[key] == 0 {
			continue
		}
		table.Append([]string{key, strconv.Itoa(totals[key])})
	}
	table.Render()
}

// CategoryOrder is the display order for Categories.
var CategoryOrder = []string{
	"aged_wine", "wine", "preserves", "dried_fruit", "raw_fruit",
	"honey", "cheese", "mayo", "cloth", "truffle_oil", "raw_truffles", "raw_animal",
}
