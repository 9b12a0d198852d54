// Command cellarsweep sweeps processor counts around a base configuration
// and reports how profit responds, to answer "is the next fermenter worth
// it" without editing the config by hand.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cellarworks/internal/config"
	"cellarworks/internal/economy"
	"cellarworks/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to the JSON run configuration")
	sweep := flag.String("sweep", "fermenters", "dimension to sweep: fermenters, preservers, driers, casks")
	from := flag.Int("from", 0, "first value of the sweep")
	to := flag.Int("to", 0, "last value of the sweep (default: base + 20)")
	step := flag.Int("step", 1, "sweep step")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: cellarsweep -config run.json [-sweep fermenters] [-from N] [-to N] [-step N]")
		os.Exit(2)
	}
	if *step <= 0 {
		fmt.Fprintln(os.Stderr, "step must be > 0")
		os.Exit(2)
	}

	f, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	base := baseValue(f, *sweep)
	if base < 0 {
		fmt.Fprintf(os.Stderr, "unknown sweep dimension %q\n", *sweep)
		os.Exit(2)
	}
	start, end := *from, *to
	if end == 0 {
		end = base + 20
	}
	if start > end {
		start, end = end, start
	}

	settings := f.BuildPricing()
	grade := f.Modifiers().Fertilizer

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{*sweep, "Profit", "Delta", "Aged Wine", "Full Batches", "All Processed"})

	prev := 0
	for value := start; value <= end; value += *step {
		cfg := f.BuildPipeline()
		applyValue(&cfg, *sweep, value)

		res := pipeline.New(cfg).Run()
		profit := economy.ComputeProfit(res.Crops, settings, grade).TotalProfit

		delta := ""
		if value != start {
			delta = strconv.Itoa(profit - prev)
		}
		table.Append([]string{
			strconv.Itoa(value),
			strconv.Itoa(profit),
			delta,
			strconv.Itoa(res.TotalAgedWine()),
			fmt.Sprintf("%v", res.FullCaskBatchMet),
			fmt.Sprintf("%v", res.AllFruitProcessed),
		})
		prev = profit
	}
	table.Render()
}

// baseValue returns the config's current count for the dimension, or -1 for
// an unknown dimension.
func baseValue(f *config.File, dim string) int {
	switch dim {
	case "fermenters":
		return f.Fermenters
	case "preservers":
		return f.Preservers
	case "driers":
		return f.Driers
	case "casks":
		return f.Casks
	}
	return -1
}

func applyValue(cfg *pipeline.Config, dim string, value int) {
	switch dim {
	case "fermenters":
		cfg.Fermenters = value
	case "preservers":
		cfg.Preservers = value
	case "driers":
		cfg.Driers = value
	case "casks":
		cfg.Casks = value
		if cfg.CasksFallback != nil && *cfg.CasksFallback > value {
			fallback := value
			cfg.CasksFallback = &fallback
		}
	}
}
