package badge

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"

	"onebase/internal/constant"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// PNGScale is the pixel density of the PNG relative to the SVG card.
const PNGScale = 2

// Card geometry shared with templates/badge.svg.tmpl, in SVG units.
const (
	cardSize      = 360
	ringCenterX   = 180
	ringCenterY   = 132
	ringScale     = 128.0 / 100
	ringRadius    = IndicatorRadius * ringScale
	ringLineWidth = 10 * ringScale
)

// brandRGB is constant.BrandColor.
var brandRGB = [3]int{0, 82, 255}

var (
	fontsOnce             sync.Once
	regularFont, boldFont *opentype.Font
	fontsErr              error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regularFont, fontsErr = opentype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
	})
	return fontsErr
}

func face(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size * PNGScale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// RenderPNG rasterizes the same card RenderSVG draws.
func RenderPNG(w io.Writer, b Badge) error {
	if err := loadFonts(); err != nil {
		return fmt.Errorf("badge: load fonts: %w", err)
	}

	const k = PNGScale
	dc := gg.NewContext(cardSize*k, cardSize*k)

	// card
	dc.SetHexColor("#ffffff")
	dc.DrawRoundedRectangle(k, k, (cardSize-2)*k, (cardSize-2)*k, 12*k)
	dc.FillPreserve()
	dc.SetHexColor("#e4e4e7")
	dc.SetLineWidth(2 * k)
	dc.Stroke()

	// ring: track, then the filled arc starting at three o'clock like the
	// SVG circle stroke
	cx, cy, r := float64(ringCenterX*k), float64(ringCenterY*k), ringRadius*k
	dc.SetLineWidth(ringLineWidth * k)
	dc.SetHexColor("#a1a1aa")
	dc.DrawCircle(cx, cy, r)
	dc.Stroke()

	dc.SetRGB255(brandRGB[0], brandRGB[1], brandRGB[2])
	if fill := clampFill(1 - b.Progress.StrokeOffset/Circumference); fill > 0 {
		dc.SetLineCapRound()
		dc.NewSubPath()
		dc.DrawArc(cx, cy, r, 0, 2*math.Pi*fill)
		dc.Stroke()
	}

	if err := drawValue(dc, b.Progress, cx, cy); err != nil {
		return err
	}

	lines := []struct {
		text string
		bold bool
		size float64
		y    float64
	}{
		{constant.BadgeTitle, true, 22, 46},
		{b.Transactions + " out of 1 Billion", false, 14, 226},
		{b.Name, true, 18, 272},
		{"Total Transactions: " + b.Transactions, false, 14, 300},
		{"Total Volume: $" + b.Volume, false, 14, 322},
	}
	for _, line := range lines {
		f := regularFont
		if line.bold {
			f = boldFont
		}
		ff, err := face(f, line.size)
		if err != nil {
			return fmt.Errorf("badge: font face: %w", err)
		}
		dc.SetFontFace(ff)
		dc.DrawStringAnchored(line.text, ringCenterX*k, line.y*k, 0.5, 0)
	}

	return dc.EncodePNG(w)
}

// drawValue centres the reading in the ring, with ppm as a small superscript.
func drawValue(dc *gg.Context, p ProgressReading, cx, cy float64) error {
	valueFace, err := face(boldFont, 18*ringScale)
	if err != nil {
		return fmt.Errorf("badge: font face: %w", err)
	}
	unitSize := 18 * ringScale
	if !p.IsPercentage() {
		unitSize = 8 * ringScale
	}
	unitFace, err := face(boldFont, unitSize)
	if err != nil {
		return fmt.Errorf("badge: font face: %w", err)
	}

	dc.SetFontFace(valueFace)
	vw, vh := dc.MeasureString(p.Value())
	dc.SetFontFace(unitFace)
	uw, _ := dc.MeasureString(p.Unit)

	left := cx - (vw+uw)/2
	baseline := cy + vh/2
	dc.SetFontFace(valueFace)
	dc.DrawString(p.Value(), left, baseline)

	unitBaseline := baseline
	if !p.IsPercentage() {
		unitBaseline -= vh / 2
	}
	dc.SetFontFace(unitFace)
	dc.DrawString(p.Unit, left+vw, unitBaseline)
	return nil
}

// clampFill limits the drawn arc to one full turn. The reading itself stays
// unclamped.
func clampFill(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// PNG renders b into memory.
func PNG(b Badge) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderPNG(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
