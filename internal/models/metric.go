package models

import "github.com/GarikMirzoyan/measurecolor/internal/constants"

// Metric - описание метрики: лучшее и худшее значения, тип значения
type Metric struct {
	Key        string
	Name       string
	ValueType  constants.ValueType
	BestValue  *float64
	WorstValue *float64
}
