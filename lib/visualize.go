package lib

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

var (
	gtColor       = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	proposalColor = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
)

func fillRectangle(im *image.NRGBA, left, top, right, bottom int, c color.NRGBA) {
	bounds := im.Bounds()
	for i := left; i < right; i++ {
		for j := top; j < bottom; j++ {
			if i < bounds.Min.X || i >= bounds.Max.X || j < bounds.Min.Y || j >= bounds.Max.Y {
				continue
			}
			im.SetNRGBA(i, j, c)
		}
	}
}

func drawRectangle(im *image.NRGBA, left, top, right, bottom int, width int, c color.NRGBA) {
	fillRectangle(im, left-width, top, left+width, bottom, c)
	fillRectangle(im, right-width, top, right+width, bottom, c)
	fillRectangle(im, left, top-width, right, top+width, c)
	fillRectangle(im, left, bottom-width, right, bottom+width, c)
}

// DrawBoxOverlay renders ground truth (green) and the top-k proposals
// (yellow) of one image over its source frame and writes a PNG. maxWidth
// shrinks oversized frames for inspection; zero keeps the original size.
func DrawBoxOverlay(imagePath string, gts []GtBox, proposals []Box, k int, maxWidth int, outPath string) error {
	img, err := imgio.Open(imagePath)
	if err != nil {
		return errors.Wrapf(err, "open image %s", imagePath)
	}
	nrgba := imaging.Clone(img)
	for i := 0; i < MinInt(k, len(proposals)); i++ {
		b := proposals[i]
		drawRectangle(nrgba, int(b.X), int(b.Y), int(b.X+b.W), int(b.Y+b.H), 1, proposalColor)
	}
	for _, g := range gts {
		if g.Ignore {
			continue
		}
		drawRectangle(nrgba, int(g.X), int(g.Y), int(g.X+g.W), int(g.Y+g.H), 2, gtColor)
	}
	if maxWidth > 0 && nrgba.Bounds().Dx() > maxWidth {
		nrgba = imaging.Resize(nrgba, maxWidth, 0, imaging.Lanczos)
	}
	if err := imgio.Save(outPath, nrgba, imgio.PNGEncoder()); err != nil {
		return errors.Wrapf(err, "save overlay %s", outPath)
	}
	return nil
}
