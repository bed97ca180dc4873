// Package measurecolor maps a measure of a code-quality metric to a color on the
// red-yellow-green gradient used to tint dashboard cells and badges.
package measurecolor

import (
	"math"
	"strings"

	"github.com/GarikMirzoyan/measurecolor/internal/constants"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
)

// Undetermined is the percent returned when a measure carries nothing to color by.
const Undetermined = -1.0

// Options tune a single resolution. The zero value resolves the current value
// against the metric's own bounds and honours the alert status.
type Options struct {
	// Min overrides the metric worst value.
	Min *float64
	// Max overrides the metric best value.
	Max *float64
	// PeriodIndex selects a variation slot (1..5) instead of the current value; 0 means unset.
	PeriodIndex int
	// CheckAlertStatus defaults to true when nil.
	CheckAlertStatus *bool
}

func (o Options) checkAlertStatus() bool {
	return o.CheckAlertStatus == nil || *o.CheckAlertStatus
}

// Resolve returns the color of measure. A nil measure resolves to NoneColor.
func Resolve(measure *models.Measure, opts Options) Color {
	if measure == nil {
		return NoneColor
	}
	return ColorForPercent(ResolvePercent(measure, opts))
}

// ResolvePercent places measure on the 0..100 scale between its worst and best bounds.
// It returns Undetermined when no rule applies and NaN when the bounds are equal.
func ResolvePercent(measure *models.Measure, opts Options) float64 {
	if measure == nil {
		return Undetermined
	}

	maxValue := firstPresent(opts.Max, measure.Metric.BestValue)
	minValue := firstPresent(opts.Min, measure.Metric.WorstValue)

	if opts.PeriodIndex != 0 {
		// Режим вариаций: без обеих границ цвет не определён
		if minValue == nil || maxValue == nil {
			return Undetermined
		}
		delta := measure.Variation(opts.PeriodIndex)
		if delta == nil {
			return Undetermined
		}
		return PercentOf(*delta, *minValue, *maxValue)
	}

	switch {
	case strings.TrimSpace(measure.AlertStatus) != "" && opts.checkAlertStatus():
		return levelPercent(measure.AlertStatus)
	case measure.Metric.ValueType.IsQualitative():
		return levelPercent(measure.TextValue)
	case measure.Value != nil && maxValue != nil && minValue != nil:
		return PercentOf(*measure.Value, *minValue, *maxValue)
	}

	return Undetermined
}

// ColorForPercent picks the gradient color for percent. Negative or NaN percents give NoneColor.
func ColorForPercent(percent float64) Color {
	switch {
	case math.IsNaN(percent) || percent < 0.0:
		return NoneColor
	case percent > 50.0:
		return MaxColor.MixWith(MeanColor, (percent-50.0)*2.0)
	default:
		return MinColor.MixWith(MeanColor, (50.0-percent)*2.0)
	}
}

// PercentOf returns 100*(value-min)/(max-min) clamped to [0, 100], or NaN when max == min.
func PercentOf(value, min, max float64) float64 {
	if max == min {
		return math.NaN()
	}

	percent := 100.0 * (value - min) / (max - min)
	if percent > 100.0 {
		percent = 100.0
	}
	if percent < 0.0 {
		percent = 0.0
	}
	return percent
}

func levelPercent(label string) float64 {
	level, ok := constants.ParseLevel(label)
	if !ok {
		return Undetermined
	}
	percent, _ := constants.LevelPercent(level)
	return percent
}

func firstPresent(override, fallback *float64) *float64 {
	if override != nil {
		return override
	}
	return fallback
}
