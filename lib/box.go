package lib

import (
	"github.com/mitroadmaps/gomapinfer/common"
)

// Box is a candidate box in [x, y, width, height] form with a detector score.
type Box struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Score float64 `json:"score"`
}

// GtBox is an annotated ground-truth box. Ignored boxes neither count
// towards recall nor penalize proposals that land on them.
type GtBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Ignore bool    `json:"ignore,omitempty"`
}

func BoxFromRow(row [5]float64) Box {
	return Box{
		X:     row[0],
		Y:     row[1],
		W:     row[2],
		H:     row[3],
		Score: row[4],
	}
}

func (b Box) Rectangle() common.Rectangle {
	return common.Rectangle{
		Min: common.Point{X: b.X, Y: b.Y},
		Max: common.Point{X: b.X + b.W, Y: b.Y + b.H},
	}
}

func (g GtBox) Rectangle() common.Rectangle {
	return common.Rectangle{
		Min: common.Point{X: g.X, Y: g.Y},
		Max: common.Point{X: g.X + g.W, Y: g.Y + g.H},
	}
}
