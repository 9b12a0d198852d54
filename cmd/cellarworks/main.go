// Command cellarworks runs the farm production economy simulation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cellarworks/internal/animals"
	"cellarworks/internal/api"
	"cellarworks/internal/bees"
	"cellarworks/internal/config"
	"cellarworks/internal/economy"
	"cellarworks/internal/pipeline"
	"cellarworks/internal/report"
	"cellarworks/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to the JSON run configuration")
	label := flag.String("label", "cli", "label to store the run under")
	serve := flag.Bool("serve", false, "start the HTTP API and keep running")
	noSave := flag.Bool("no-save", false, "skip writing the run to the database")
	flag.Parse()

	rt, err := config.LoadRuntime()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	setupLogging(rt)

	if *configPath == "" && !*serve {
		fmt.Fprintln(os.Stderr, "usage: cellarworks -config run.json [-label name] [-serve]")
		os.Exit(2)
	}

	// ── Database ──────────────────────────────────────────────────────
	var db *store.DB
	if !*noSave || *serve {
		db, err = store.Open(rt.DBPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database opened", "path", rt.DBPath)
	}

	// ── Run ───────────────────────────────────────────────────────────
	if *configPath != "" {
		if err := runOnce(*configPath, *label, db); err != nil {
			slog.Error("run failed", "error", err)
			os.Exit(1)
		}
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	if *serve {
		adminKey := os.Getenv("CELLARWORKS_ADMIN_KEY")
		if adminKey == "" {
			slog.Warn("CELLARWORKS_ADMIN_KEY not set, POST endpoints will be disabled")
		}
		server := &api.Server{DB: db, Addr: rt.APIAddr, AdminKey: adminKey}
		server.Start()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
	}
}

func setupLogging(rt *config.Runtime) {
	level := slog.LevelInfo
	switch strings.ToLower(rt.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if rt.LogJSON {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func runOnce(configPath, label string, db *store.DB) error {
	f, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// ── Pipeline ──────────────────────────────────────────────────────
	sim := pipeline.New(f.BuildPipeline())
	res := sim.Run()
	slog.Info("pipeline finished",
		"days", res.Days,
		"harvested", res.TotalHarvested(),
		"aged_wine", res.TotalAgedWine(),
		"all_fruit_processed", res.AllFruitProcessed,
	)

	// ── Side operations ───────────────────────────────────────────────
	herd, machines, prof := f.BuildAnimals()
	animalRes := animals.Simulate(herd, machines, prof, res.Days)
	beeRes := bees.Simulate(f.BuildBees())

	// ── Economy ───────────────────────────────────────────────────────
	settings := f.BuildPricing()
	profit := economy.ComputeProfit(res.Crops, settings, f.Modifiers().Fertilizer)
	animalProfit := economy.ComputeAnimalProfit(animalRes, settings)
	honeyRevenue := economy.ComputeHoneyProfit(beeRes, settings)

	report.Production(os.Stdout, res)
	report.Profit(os.Stdout, profit)
	report.Categories(os.Stdout, economy.CategoryTotals(profit, animalProfit, honeyRevenue), report.CategoryOrder)

	total := profit.TotalProfit + animalProfit.TotalRevenue + honeyRevenue
	fmt.Printf("\ntotal profit (crops %d + animals %d + honey %d): %d\n",
		profit.TotalProfit, animalProfit.TotalRevenue, honeyRevenue, total)

	if db != nil {
		if _, err := db.SaveRun(label, res, profit.TotalProfit); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
	}
	return nil
}
