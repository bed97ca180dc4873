package constants

import "strings"

// Level - качественная оценка измерения
type Level string

const (
	LevelOK    Level = "OK"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Положение уровня на шкале 0..100
var levelPercents = map[Level]float64{
	LevelOK:    100.0,
	LevelWarn:  50.0,
	LevelError: 0.0,
}

// ParseLevel returns false for blank or unknown labels.
func ParseLevel(s string) (Level, bool) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := levelPercents[level]; !ok {
		return "", false
	}
	return level, true
}

func LevelPercent(level Level) (float64, bool) {
	percent, ok := levelPercents[level]
	return percent, ok
}
