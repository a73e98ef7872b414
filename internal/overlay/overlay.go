// Package overlay bakes a permanent "claimed" marking into image bytes:
// a light darkening layer, a banner with the contact message, and a stamp
// in the lower right. The result overwrites the original asset, so this is
// a one-way operation.
package overlay

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"
)

var (
	darken     = color.NRGBA{0, 0, 0, 38}        // ~15% black
	bannerFill = color.NRGBA{255, 255, 255, 230} // near-opaque white
	textColor  = color.NRGBA{0, 0, 0, 255}
	stampColor = color.NRGBA{123, 137, 76, 255} // the site's green
)

var bannerLines = []string{
	"This piece is no longer available.",
	"Please email the studio for a similar custom design.",
}

// Apply returns the overlaid image bytes and their content type. The output
// keeps the source encoding, except webp which is re-encoded as PNG since no
// Go webp encoder exists.
func Apply(data []byte) ([]byte, string, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	base := imaging.Clone(src)
	w := base.Bounds().Dx()
	h := base.Bounds().Dy()

	draw.Draw(base, base.Bounds(), image.NewUniform(darken), image.Point{}, draw.Over)

	// Banner across the top, inset from the edges.
	marginX := maxInt(16, w*35/1000)
	padTop := maxInt(24, h*35/1000)
	bannerW := w - 2*marginX
	bannerH := maxInt(48, h*14/100)
	bannerRect := image.Rect(marginX, padTop, marginX+bannerW, padTop+bannerH)
	draw.Draw(base, bannerRect, image.NewUniform(bannerFill), image.Point{}, draw.Over)

	// Text is rendered small with a fixed-size face and scaled up to the
	// banner; the faces available without bundling a font are bitmap only.
	text := renderLines(bannerLines, textColor)
	targetW := bannerW * 9 / 10
	scaled := imaging.Resize(text, targetW, 0, imaging.NearestNeighbor)
	if scaled.Bounds().Dy() > bannerH*9/10 {
		scaled = imaging.Resize(text, 0, bannerH*9/10, imaging.NearestNeighbor)
	}
	textPos := image.Pt(
		marginX+(bannerW-scaled.Bounds().Dx())/2,
		padTop+(bannerH-scaled.Bounds().Dy())/2,
	)
	out := imaging.Overlay(base, scaled, textPos, 1.0)

	// Stamp in the lower right.
	stamp := renderLines([]string{"Claimed."}, stampColor)
	stampW := maxInt(120, w/4)
	if stampW > w-2*marginX {
		stampW = w - 2*marginX
	}
	stampScaled := imaging.Resize(stamp, stampW, 0, imaging.NearestNeighbor)
	stampPos := image.Pt(
		w-marginX-stampScaled.Bounds().Dx(),
		h-padTop-stampScaled.Bounds().Dy(),
	)
	out = imaging.Overlay(out, stampScaled, stampPos, 1.0)

	encoded, contentType, err := encode(out, format)
	if err != nil {
		return nil, "", err
	}
	return encoded, contentType, nil
}

// renderLines draws the given lines with the basic bitmap face onto a
// transparent canvas sized exactly to the text.
func renderLines(lines []string, col color.NRGBA) *image.NRGBA {
	face := basicfont.Face7x13
	lineHeight := face.Height + 3

	width := 0
	for _, line := range lines {
		if lw := font.MeasureString(face, line).Ceil(); lw > width {
			width = lw
		}
	}
	height := lineHeight * len(lines)

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for i, line := range lines {
		lw := font.MeasureString(face, line).Ceil()
		d.Dot = fixed.P((width-lw)/2, face.Ascent+i*lineHeight)
		d.DrawString(line)
	}
	return canvas
}

func encode(img image.Image, format string) ([]byte, string, error) {
	var f imaging.Format
	var contentType string
	switch format {
	case "png":
		f, contentType = imaging.PNG, "image/png"
	case "gif":
		f, contentType = imaging.GIF, "image/gif"
	case "bmp":
		f, contentType = imaging.BMP, "image/bmp"
	case "tiff":
		f, contentType = imaging.TIFF, "image/tiff"
	case "webp":
		// webp decodes but has no Go encoder; re-encode losslessly.
		f, contentType = imaging.PNG, "image/png"
	default:
		f, contentType = imaging.JPEG, "image/jpeg"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f, imaging.JPEGQuality(95)); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), contentType, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
