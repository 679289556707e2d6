package main

import (
	"log"
	"os"

	"boxeval/lib"
)

// Renders the ground truth and top-k proposals of one image over its source
// frame for visual inspection.
func main() {
	if len(os.Args) < 6 {
		log.Fatalf("usage: drawboxes <config.yaml> <method> <image index> <image path> <out.png> [k]")
	}
	configRoot := os.Args[1]
	method := os.Args[2]
	imageIdx := lib.ParseInt(os.Args[3])
	imagePath := os.Args[4]
	outPath := os.Args[5]
	k := 100
	if len(os.Args) > 6 {
		k = lib.ParseInt(os.Args[6])
	}

	cfg := lib.GetEvalConfig(configRoot)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad config: %v", err)
	}

	ds, err := lib.LoadDataset(cfg.GtDir, cfg.Split)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	ps, err := lib.LoadProposals(cfg.ResDir, method, cfg.Split)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	if imageIdx < 0 || imageIdx >= len(ds.Images) || imageIdx >= len(ps.Images) {
		log.Fatalf("image index %d out of range", imageIdx)
	}

	err = lib.DrawBoxOverlay(imagePath, ds.Images[imageIdx], ps.Images[imageIdx], k, 1280, outPath)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
