package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedyMatchBoxes(t *testing.T) {
	gt := []GtBox{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 100, Y: 100, W: 20, H: 20},
	}
	dets := []Box{
		{X: 0, Y: 0, W: 10, H: 10, Score: 0.9},
		{X: 100, Y: 100, W: 20, H: 20, Score: 0.8},
		{X: 500, Y: 500, W: 10, H: 10, Score: 0.7},
	}

	matcher := GreedyMatcher{}
	mgts, mdets := matcher.MatchBoxes(gt, dets, 0.5)

	require.Len(t, mgts, 2)
	require.Len(t, mdets, 3)
	assert.True(t, mgts[0].Matched)
	assert.True(t, mgts[1].Matched)
	assert.True(t, mdets[0].TP)
	assert.True(t, mdets[1].TP)
	assert.False(t, mdets[2].TP)
}

func TestGreedyMatchPrefersHigherScore(t *testing.T) {
	gt := []GtBox{{X: 0, Y: 0, W: 10, H: 10}}
	// the lower-scored det comes first in the list but the higher-scored
	// one must claim the ground truth
	dets := []Box{
		{X: 1, Y: 1, W: 10, H: 10, Score: 0.2},
		{X: 0, Y: 0, W: 10, H: 10, Score: 0.9},
	}

	matcher := GreedyMatcher{}
	_, mdets := matcher.MatchBoxes(gt, dets, 0.5)

	assert.False(t, mdets[0].TP)
	assert.True(t, mdets[1].TP)
}

func TestGreedyMatchIgnoreRegions(t *testing.T) {
	gt := []GtBox{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 200, Y: 200, W: 50, H: 50, Ignore: true},
	}
	dets := []Box{
		{X: 0, Y: 0, W: 10, H: 10, Score: 0.9},
		{X: 200, Y: 200, W: 50, H: 50, Score: 0.8},
	}

	matcher := GreedyMatcher{}
	mgts, mdets := matcher.MatchBoxes(gt, dets, 0.5)
	assert.True(t, mdets[0].TP)
	assert.False(t, mdets[1].TP)
	assert.True(t, mdets[1].Ignored)

	// ignored annotations never enter the recall denominator
	curve := matcher.DetectionRateCurve(mgts, mdets)
	require.Len(t, curve, 1)
	assert.Equal(t, 1.0, curve[0])
}

func TestDetectionRateCurve(t *testing.T) {
	gt := []GtBox{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 100, Y: 100, W: 20, H: 20},
	}
	dets := []Box{
		{X: 0, Y: 0, W: 10, H: 10, Score: 0.9},
		{X: 100, Y: 100, W: 20, H: 20, Score: 0.8},
	}

	matcher := GreedyMatcher{}
	mgts, mdets := matcher.MatchBoxes(gt, dets, 0.5)
	curve := matcher.DetectionRateCurve(mgts, mdets)
	assert.Equal(t, []float64{0.5, 1.0}, curve)
}

func TestDetectionRateCurveNoGroundTruth(t *testing.T) {
	matcher := GreedyMatcher{}
	mgts, mdets := matcher.MatchBoxes(nil, []Box{{X: 0, Y: 0, W: 5, H: 5, Score: 0.5}}, 0.5)
	curve := matcher.DetectionRateCurve(mgts, mdets)
	require.Len(t, curve, 1)
	assert.Equal(t, 0.0, curve[0])
}

func TestMatchThresholdMonotonicity(t *testing.T) {
	gt := []GtBox{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 50, Y: 50, W: 10, H: 10},
		{X: 100, Y: 100, W: 10, H: 10},
	}
	dets := []Box{
		{X: 0, Y: 0, W: 10, H: 10, Score: 0.9},
		{X: 52, Y: 52, W: 10, H: 10, Score: 0.8},
		{X: 105, Y: 105, W: 10, H: 10, Score: 0.7},
	}

	matcher := GreedyMatcher{}
	var prev float64 = 1.1
	for _, thr := range []float64{0.3, 0.5, 0.7, 0.9} {
		mgts, mdets := matcher.MatchBoxes(gt, dets, thr)
		curve := matcher.DetectionRateCurve(mgts, mdets)
		r := FloatsMax(curve)
		assert.LessOrEqual(t, r, prev, "recall must not increase with stricter IoU (thr=%v)", thr)
		prev = r
	}
}

func TestMatchDeterminism(t *testing.T) {
	gt := []GtBox{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 8, Y: 8, W: 10, H: 10},
	}
	dets := []Box{
		{X: 2, Y: 2, W: 10, H: 10, Score: 0.5},
		{X: 6, Y: 6, W: 10, H: 10, Score: 0.5},
	}

	matcher := GreedyMatcher{}
	gts1, dets1 := matcher.MatchBoxes(gt, dets, 0.3)
	gts2, dets2 := matcher.MatchBoxes(gt, dets, 0.3)
	assert.Equal(t, gts1, gts2)
	assert.Equal(t, dets1, dets2)
}
