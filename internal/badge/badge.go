package badge

import (
	"fmt"
	"html"
	"strings"

	"github.com/GarikMirzoyan/measurecolor/internal/constants"
	"github.com/GarikMirzoyan/measurecolor/internal/measurecolor"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
	"github.com/GarikMirzoyan/measurecolor/internal/utils"
)

const (
	ColorLabel = "#555"
	NoValue    = "n/a"
)

// Badge - шилд с подписью слева и значением справа
type Badge struct {
	Label      string
	Value      string
	Color      measurecolor.Color
	LabelColor string
}

func NewBadge(label, value string, color measurecolor.Color) *Badge {
	return &Badge{
		Label:      label,
		Value:      value,
		Color:      color,
		LabelColor: ColorLabel,
	}
}

// ForMeasure builds a badge for measure tinted with color. An empty label falls back to the metric name.
func ForMeasure(measure models.Measure, label string, color measurecolor.Color) *Badge {
	if label == "" {
		label = measure.Metric.Name
	}
	if label == "" {
		label = measure.Metric.Key
	}
	return NewBadge(label, ValueText(measure), color)
}

// ValueText форматирует значение измерения для отображения
func ValueText(measure models.Measure) string {
	if measure.Metric.ValueType.IsQualitative() && measure.TextValue != "" {
		return measure.TextValue
	}
	if measure.Value != nil {
		text := utils.FormatNumber(*measure.Value)
		if measure.Metric.ValueType == constants.ValueTypePercent {
			text += "%"
		}
		return text
	}
	if measure.TextValue != "" {
		return measure.TextValue
	}
	if measure.AlertStatus != "" {
		return measure.AlertStatus
	}
	return NoValue
}

func (b *Badge) ToSVG() string {
	if b.LabelColor == "" {
		b.LabelColor = ColorLabel
	}

	label := html.EscapeString(b.Label)
	value := html.EscapeString(b.Value)

	// Примерно 6px на символ
	labelWidth := len([]rune(b.Label))*6 + 10
	valueWidth := len([]rune(b.Value))*6 + 10
	totalWidth := labelWidth + valueWidth

	var svg strings.Builder

	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="20" role="img" aria-label="%s: %s">`,
		totalWidth, label, value)
	fmt.Fprintf(&svg, `<title>%s: %s</title>`, label, value)

	svg.WriteString(`<linearGradient id="s" x2="0" y2="100%">`)
	svg.WriteString(`<stop offset="0" stop-color="#bbb" stop-opacity=".1"/>`)
	svg.WriteString(`<stop offset="1" stop-opacity=".1"/>`)
	svg.WriteString(`</linearGradient>`)

	fmt.Fprintf(&svg, `<clipPath id="r"><rect width="%d" height="20" rx="3" fill="#fff"/></clipPath>`, totalWidth)

	svg.WriteString(`<g clip-path="url(#r)">`)
	fmt.Fprintf(&svg, `<rect width="%d" height="20" fill="%s"/>`, labelWidth, b.LabelColor)
	fmt.Fprintf(&svg, `<rect x="%d" width="%d" height="20" fill="%s"/>`, labelWidth, valueWidth, b.Color)
	fmt.Fprintf(&svg, `<rect width="%d" height="20" fill="url(#s)"/>`, totalWidth)
	svg.WriteString(`</g>`)

	svg.WriteString(`<g fill="#fff" text-anchor="middle" font-family="Verdana,Geneva,DejaVu Sans,sans-serif" text-rendering="geometricPrecision" font-size="110">`)
	writeText(&svg, labelWidth/2, labelWidth-10, label)
	writeText(&svg, labelWidth+valueWidth/2, valueWidth-10, value)
	svg.WriteString(`</g>`)
	svg.WriteString(`</svg>`)

	return svg.String()
}

// Текст с тенью, координаты в десятых долях из-за scale(.1)
func writeText(svg *strings.Builder, x, width int, text string) {
	fmt.Fprintf(svg, `<text aria-hidden="true" x="%d" y="150" fill="#010101" fill-opacity=".3" transform="scale(.1)" textLength="%d">%s</text>`,
		x*10, width*10, text)
	fmt.Fprintf(svg, `<text x="%d" y="140" transform="scale(.1)" fill="#fff" textLength="%d">%s</text>`,
		x*10, width*10, text)
}
