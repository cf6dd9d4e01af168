package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette base colors
var (
	baseBackground = rgb(0x11, 0x1d, 0x11)
	baseGreen      = rgb(76, 175, 80)
	baseBodyFront  = rgb(30, 175, 40) // first body segment
	baseBodyBack   = rgb(50, 95, 50)  // gradient limit toward the tail
)

// RGB color definitions
var (
	RgbBackground = toTcell(baseBackground)
	RgbGridDot    = toTcell(baseBackground.BlendRgb(baseGreen, 0.07))
	RgbBorder     = toTcell(baseBackground.BlendRgb(baseGreen, 0.3))
	RgbHead       = tcell.NewRGBColor(0x8b, 0xc3, 0x4a)
	RgbEye        = tcell.NewRGBColor(0xff, 0xff, 0xff)

	RgbText      = tcell.NewRGBColor(220, 237, 200) // Pale green
	RgbTextDim   = tcell.NewRGBColor(0x66, 0x66, 0x66)
	RgbAccent    = RgbHead
	RgbScorePop  = tcell.NewRGBColor(255, 235, 59)     // Yellow
	RgbDanger    = tcell.NewRGBColor(0xe5, 0x39, 0x35) // Apple red
	RgbOverlayBg = tcell.NewRGBColor(0, 0, 0)
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fromTcell(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return rgb(uint8(r), uint8(g), uint8(b))
}

// BodyColor returns the color of segment i of a snake of length n.
// Darker toward the tail; index 0 is the head and uses RgbHead
func BodyColor(i, n int) tcell.Color {
	if i == 0 {
		return RgbHead
	}
	if n <= 0 {
		n = 1
	}
	t := float64(i) / float64(n)
	return toTcell(baseBodyFront.BlendRgb(baseBodyBack, t))
}

// FruitGlow tints the background under a fruit; offset is the bounce in [-amp, amp]
func FruitGlow(fruit tcell.Color, offset, amp float64) tcell.Color {
	if amp <= 0 {
		return RgbBackground
	}
	// 0.1 at the bottom of the bounce, 0.35 at the top
	t := 0.1 + 0.25*(offset+amp)/(2*amp)
	return toTcell(baseBackground.BlendRgb(fromTcell(fruit), t))
}
