package constants

import (
	"errors"
	"strings"
)

// ValueType описывает тип значения метрики
type ValueType string

const (
	ValueTypeInt      ValueType = "INT"
	ValueTypeFloat    ValueType = "FLOAT"
	ValueTypePercent  ValueType = "PERCENT"
	ValueTypeMillisec ValueType = "MILLISEC"
	ValueTypeRating   ValueType = "RATING"
	ValueTypeLevel    ValueType = "LEVEL"
	ValueTypeString   ValueType = "STRING"
)

var ErrUnknownValueType = errors.New("unknown value type")

var valueTypes = map[ValueType]struct{}{
	ValueTypeInt:      {},
	ValueTypeFloat:    {},
	ValueTypePercent:  {},
	ValueTypeMillisec: {},
	ValueTypeRating:   {},
	ValueTypeLevel:    {},
	ValueTypeString:   {},
}

func ParseValueType(s string) (ValueType, error) {
	vt := ValueType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := valueTypes[vt]; !ok {
		return "", ErrUnknownValueType
	}
	return vt, nil
}

// IsQualitative сообщает, что значение метрики задаётся уровнем, а не числом
func (vt ValueType) IsQualitative() bool {
	return vt == ValueTypeLevel
}
