package dto

import (
	"fmt"
	"time"

	"github.com/GarikMirzoyan/measurecolor/internal/constants"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
)

type Metric struct {
	Key        string   `json:"key"`
	Name       string   `json:"name,omitempty"`
	ValueType  string   `json:"value_type"`
	BestValue  *float64 `json:"best_value,omitempty"`
	WorstValue *float64 `json:"worst_value,omitempty"`
}

type Measure struct {
	Metric      string     `json:"metric"`
	Component   string     `json:"component"`
	Value       *float64   `json:"value,omitempty"`
	TextValue   string     `json:"text_value,omitempty"`
	AlertStatus string     `json:"alert_status,omitempty"`
	Variations  []*float64 `json:"variations,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// MeasureColor - ответ на запрос цвета измерения
type MeasureColor struct {
	Metric    string   `json:"metric"`
	Component string   `json:"component"`
	Color     string   `json:"color"`
	Percent   *float64 `json:"percent,omitempty"`
}

func MetricFromModel(m models.Metric) Metric {
	return Metric{
		Key:        m.Key,
		Name:       m.Name,
		ValueType:  string(m.ValueType),
		BestValue:  m.BestValue,
		WorstValue: m.WorstValue,
	}
}

func (m Metric) ToModel() (models.Metric, error) {
	vt, err := constants.ParseValueType(m.ValueType)
	if err != nil {
		return models.Metric{}, fmt.Errorf("metric %q: %w", m.Key, err)
	}
	return models.Metric{
		Key:        m.Key,
		Name:       m.Name,
		ValueType:  vt,
		BestValue:  m.BestValue,
		WorstValue: m.WorstValue,
	}, nil
}

func MeasureFromModel(m models.Measure) Measure {
	out := Measure{
		Metric:      m.Metric.Key,
		Component:   m.Component,
		Value:       m.Value,
		TextValue:   m.TextValue,
		AlertStatus: m.AlertStatus,
	}
	if !m.UpdatedAt.IsZero() {
		updatedAt := m.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	// Пустые слоты в конце не передаём
	last := -1
	for i, v := range m.Variations {
		if v != nil {
			last = i
		}
	}
	if last >= 0 {
		out.Variations = append([]*float64(nil), m.Variations[:last+1]...)
	}
	return out
}

var ErrTooManyVariations = fmt.Errorf("at most %d variations are supported", models.PeriodCount)

// ToModel returns a measure bound only to the metric key; the caller resolves the definition.
func (m Measure) ToModel() (models.Measure, error) {
	if len(m.Variations) > models.PeriodCount {
		return models.Measure{}, ErrTooManyVariations
	}

	out := models.Measure{
		Metric:      models.Metric{Key: m.Metric},
		Component:   m.Component,
		Value:       m.Value,
		TextValue:   m.TextValue,
		AlertStatus: m.AlertStatus,
	}
	copy(out.Variations[:], m.Variations)
	if m.UpdatedAt != nil {
		out.UpdatedAt = *m.UpdatedAt
	}
	return out, nil
}
