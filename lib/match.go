package lib

import (
	"sort"
)

// MatchedGt records the outcome for one ground-truth box after matching.
type MatchedGt struct {
	Ignore  bool
	Matched bool
}

// MatchedDet records the outcome for one proposal after matching. A
// proposal that only overlaps ignored ground truth is itself ignored.
type MatchedDet struct {
	Score   float64
	TP      bool
	Ignored bool
}

// Matcher is the boundary to the box-matching machinery: greedy bipartite
// matching under an IoU threshold plus the detection-rate curve over the
// pooled matches.
type Matcher interface {
	MatchBoxes(gt []GtBox, dets []Box, thr float64) ([]MatchedGt, []MatchedDet)
	DetectionRateCurve(gts []MatchedGt, dets []MatchedDet) []float64
}

// GreedyMatcher matches proposals to ground truth in score order, each
// proposal taking the highest-IoU unclaimed box at or above the threshold.
type GreedyMatcher struct{}

func (GreedyMatcher) MatchBoxes(gt []GtBox, dets []Box, thr float64) ([]MatchedGt, []MatchedDet) {
	mgts := make([]MatchedGt, len(gt))
	for i, g := range gt {
		mgts[i].Ignore = g.Ignore
	}
	order := make([]int, len(dets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dets[order[i]].Score > dets[order[j]].Score
	})
	mdets := make([]MatchedDet, len(dets))
	for _, di := range order {
		det := dets[di]
		rect := det.Rectangle()
		mdets[di].Score = det.Score
		bestIdx := -1
		var bestIOU float64
		for gi, g := range gt {
			if g.Ignore || mgts[gi].Matched {
				continue
			}
			iou := rect.IOU(g.Rectangle())
			if iou < thr {
				continue
			}
			if bestIdx == -1 || iou > bestIOU {
				bestIdx = gi
				bestIOU = iou
			}
		}
		if bestIdx != -1 {
			mgts[bestIdx].Matched = true
			mdets[di].TP = true
			continue
		}
		// unmatched proposals landing on ignored annotations are neither
		// true nor false positives
		for gi, g := range gt {
			if !g.Ignore {
				continue
			}
			if rect.IOU(g.Rectangle()) >= thr {
				mdets[di].Ignored = true
				mgts[gi].Matched = true
				break
			}
		}
	}
	return mgts, mdets
}

// DetectionRateCurve walks the pooled proposals in descending score order
// and reports the cumulative fraction of non-ignored ground truth matched.
func (GreedyMatcher) DetectionRateCurve(gts []MatchedGt, dets []MatchedDet) []float64 {
	var nGt int
	for _, g := range gts {
		if !g.Ignore {
			nGt++
		}
	}
	kept := make([]MatchedDet, 0, len(dets))
	for _, d := range dets {
		if !d.Ignored {
			kept = append(kept, d)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	curve := make([]float64, len(kept))
	var tp int
	for i, d := range kept {
		if d.TP {
			tp++
		}
		if nGt > 0 {
			curve[i] = float64(tp) / float64(nGt)
		}
	}
	return curve
}
