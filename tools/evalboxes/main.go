package main

import (
	"log"
	"os"

	"boxeval/lib"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: evalboxes <config.yaml>")
	}
	configRoot := os.Args[1]

	cfg := lib.GetEvalConfig(configRoot)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad config: %v", err)
	}

	ds, err := lib.LoadDataset(cfg.GtDir, cfg.Split)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	evaluator := lib.NewEvaluator(cfg, ds)
	tensor, err := evaluator.Run()
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}

	lib.Report(tensor)

	if cfg.FName == "" {
		return
	}
	if err := lib.WriteResultTable(tensor, cfg.ResDir, cfg.FName, cfg.Split); err != nil {
		log.Fatalf("error: %v", err)
	}
	if !cfg.Show {
		return
	}
	if err := lib.PlotRecallVsCount(tensor, cfg.Colors, cfg.ResDir, cfg.Split, cfg.FName); err != nil {
		log.Fatalf("error: %v", err)
	}
	if err := lib.PlotRecallVsIoU(tensor, cfg.Colors, cfg.ResDir, cfg.Split, cfg.FName); err != nil {
		log.Fatalf("error: %v", err)
	}
}
