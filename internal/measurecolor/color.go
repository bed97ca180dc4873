package measurecolor

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple packed as 0xRRGGBB.
type Color uint32

// Палитра градиента
const (
	MinColor  Color = 0xEE0000 // красный, худшее значение
	MeanColor Color = 0xFFEE00 // жёлтый, середина шкалы
	MaxColor  Color = 0x00AA00 // зелёный, лучшее значение
	NoneColor Color = 0xDDDDDD // серый, нет данных
)

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Hex returns the color as "RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("%06X", uint32(c)&0xFFFFFF)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

// ParseHex accepts "RRGGBB", "#RRGGBB" and the short "#RGB" form.
func ParseHex(s string) (Color, error) {
	parsed, err := colorful.Hex("#" + strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return NoneColor, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB(parsed.RGB255()), nil
}

// MixWith blends c with mask, weight (0..100) being the share of c in the result:
// 100 gives c, 0 gives mask. Weights outside 0..100 are clamped.
// Channels are interpolated linearly and rounded.
func (c Color) MixWith(mask Color, weight float64) Color {
	weight = math.Max(0, math.Min(100, weight))
	blended := mask.colorful().BlendRgb(c.colorful(), weight/100.0).Clamped()
	return RGB(blended.RGB255())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
}
