package utils

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1200", FormatNumber(1200))
	assert.Equal(t, "81.25", FormatNumber(81.25))
	assert.Equal(t, "0.333", FormatNumber(1.0/3))
	assert.Equal(t, "-2.5", FormatNumber(-2.5))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestInitTemplate(t *testing.T) {
	tmpl := InitTemplate()

	data := struct {
		Rows []struct {
			Metric, Component, Value, Color string
			Style                           template.CSS
		}
	}{
		Rows: []struct {
			Metric, Component, Value, Color string
			Style                           template.CSS
		}{
			{Metric: "Coverage", Component: "<api>", Value: "81%", Color: "#00AA00", Style: "background-color: #00AA00"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	assert.Contains(t, buf.String(), "&lt;api&gt;")
	assert.Contains(t, buf.String(), "background-color: #00AA00")
}
