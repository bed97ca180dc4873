package models

import "time"

// Количество слотов истории для вариаций
const PeriodCount = 5

// Measure - значение метрики для компонента
type Measure struct {
	Metric      Metric
	Component   string
	Value       *float64
	TextValue   string
	AlertStatus string
	Variations  [PeriodCount]*float64
	UpdatedAt   time.Time
}

// Variation returns the delta stored for periodIndex (1..5), nil when absent or out of range.
func (m Measure) Variation(periodIndex int) *float64 {
	if periodIndex < 1 || periodIndex > PeriodCount {
		return nil
	}
	return m.Variations[periodIndex-1]
}

func (m Measure) Key() string {
	return MeasureKey(m.Metric.Key, m.Component)
}

func MeasureKey(metricKey, component string) string {
	return metricKey + "/" + component
}
