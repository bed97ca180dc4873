package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/GarikMirzoyan/measurecolor/internal/measurecolor"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
)

var ErrInvalidQuery = errors.New("invalid query parameter")

// parseColorOptions читает min, max, period и check_alert из строки запроса
func parseColorOptions(query url.Values) (measurecolor.Options, error) {
	var opts measurecolor.Options

	var err error
	if opts.Min, err = parseOptionalFloat(query, "min"); err != nil {
		return opts, err
	}
	if opts.Max, err = parseOptionalFloat(query, "max"); err != nil {
		return opts, err
	}

	if raw := strings.TrimSpace(query.Get("period")); raw != "" {
		period, err := strconv.Atoi(raw)
		if err != nil || period < 1 || period > models.PeriodCount {
			return opts, fmt.Errorf("period must be 1..%d: %w", models.PeriodCount, ErrInvalidQuery)
		}
		opts.PeriodIndex = period
	}

	if raw := strings.TrimSpace(query.Get("check_alert")); raw != "" {
		check, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("check_alert: %w", ErrInvalidQuery)
		}
		opts.CheckAlertStatus = &check
	}

	return opts, nil
}

func parseOptionalFloat(query url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidQuery)
	}
	return &v, nil
}
