package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"math"
	"net/http"
	"strings"

	"github.com/GarikMirzoyan/measurecolor/internal/badge"
	"github.com/GarikMirzoyan/measurecolor/internal/constants"
	"github.com/GarikMirzoyan/measurecolor/internal/dto"
	"github.com/GarikMirzoyan/measurecolor/internal/measurecolor"
	"github.com/GarikMirzoyan/measurecolor/internal/measures"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
	"github.com/GarikMirzoyan/measurecolor/internal/telemetry"
	"github.com/GarikMirzoyan/measurecolor/internal/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MeasureHandler содержит зависимости
type MeasureHandler struct {
	storage   measures.MeasureStorage
	telemetry *telemetry.Telemetry
	logger    *zap.Logger
	tmpl      *template.Template
}

func NewMeasureHandlers(storage measures.MeasureStorage, tel *telemetry.Telemetry, logger *zap.Logger) *MeasureHandler {
	return &MeasureHandler{
		storage:   storage,
		telemetry: tel,
		logger:    logger,
		tmpl:      utils.InitTemplate(),
	}
}

func (h *MeasureHandler) UpsertMetricHandler(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		http.Error(w, "Invalid Content-Type", http.StatusBadRequest)
		return
	}

	var req dto.Metric
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, measures.ErrInvalidJSON)
		return
	}

	metric, err := req.ToModel()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.storage.UpsertMetric(r.Context(), metric); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, dto.MetricFromModel(metric))
}

func (h *MeasureHandler) GetMetricHandler(w http.ResponseWriter, r *http.Request) {
	metric, err := h.storage.GetMetric(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, dto.MetricFromModel(metric))
}

func (h *MeasureHandler) UpdateHandlerJSON(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		http.Error(w, "Invalid Content-Type", http.StatusBadRequest)
		return
	}

	var req dto.Measure
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, measures.ErrInvalidJSON)
		return
	}

	measure, err := req.ToModel()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.storage.Update(r.Context(), measure); err != nil {
		h.writeError(w, err)
		return
	}
	h.telemetry.ObserveUpdates(telemetry.SourceSingle, 1)

	// Отдаём сохранённое измерение с актуальным описанием метрики
	stored, err := h.storage.Get(r.Context(), measure.Metric.Key, measure.Component)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, dto.MeasureFromModel(stored))
}

func (h *MeasureHandler) BatchUpdateHandler(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		http.Error(w, "Invalid Content-Type", http.StatusBadRequest)
		return
	}

	var req []dto.Measure
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, measures.ErrInvalidJSON)
		return
	}

	batch := make([]models.Measure, 0, len(req))
	for _, item := range req {
		measure, err := item.ToModel()
		if err != nil {
			h.writeError(w, err)
			return
		}
		batch = append(batch, measure)
	}

	if err := h.storage.UpdateBatch(r.Context(), batch); err != nil {
		h.writeError(w, err)
		return
	}
	h.telemetry.ObserveUpdates(telemetry.SourceBatch, len(batch))

	response := make([]dto.Measure, 0, len(batch))
	for _, measure := range batch {
		response = append(response, dto.MeasureFromModel(measure))
	}
	writeJSON(w, response)
}

func (h *MeasureHandler) GetValueHandler(w http.ResponseWriter, r *http.Request) {
	measure, err := h.storage.Get(r.Context(), chi.URLParam(r, "metric"), chi.URLParam(r, "component"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, dto.MeasureFromModel(measure))
}

func (h *MeasureHandler) ColorHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := parseColorOptions(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	metricKey := chi.URLParam(r, "metric")
	component := chi.URLParam(r, "component")

	measure, found, err := h.findMeasure(r, metricKey, component)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := dto.MeasureColor{
		Metric:    metricKey,
		Component: component,
		Color:     measurecolor.NoneColor.String(),
	}
	percent := measurecolor.Undetermined
	if found {
		percent = measurecolor.ResolvePercent(&measure, opts)
		response.Color = measurecolor.ColorForPercent(percent).String()
	}
	if percent >= 0 && !math.IsNaN(percent) {
		response.Percent = &percent
	}
	h.telemetry.ObserveResolution(percent)

	writeJSON(w, response)
}

func (h *MeasureHandler) BadgeHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := parseColorOptions(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	metricKey := chi.URLParam(r, "metric")
	label := r.URL.Query().Get("label")

	measure, found, err := h.findMeasure(r, metricKey, chi.URLParam(r, "component"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	percent := measurecolor.Undetermined
	if found {
		percent = measurecolor.ResolvePercent(&measure, opts)
	}
	h.telemetry.ObserveResolution(percent)

	var b *badge.Badge
	if found {
		b = badge.ForMeasure(measure, label, measurecolor.ColorForPercent(percent))
	} else {
		if label == "" {
			label = metricKey
		}
		b = badge.NewBadge(label, badge.NoValue, measurecolor.NoneColor)
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(b.ToSVG()))
}

// Строка таблицы на главной странице
type dashboardRow struct {
	Metric    string
	Component string
	Value     string
	Color     string
	Style     template.CSS
}

func (h *MeasureHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	all, err := h.storage.GetAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	rows := make([]dashboardRow, 0, len(all))
	for i := range all {
		color := measurecolor.Resolve(&all[i], measurecolor.Options{})
		name := all[i].Metric.Name
		if name == "" {
			name = all[i].Metric.Key
		}
		rows = append(rows, dashboardRow{
			Metric:    name,
			Component: all[i].Component,
			Value:     badge.ValueText(all[i]),
			Color:     color.String(),
			// Цвет всегда в формате #RRGGBB
			Style: template.CSS("background-color: " + color.String()),
		})
	}

	w.Header().Set("Content-Type", "text/html")

	if err := h.tmpl.Execute(w, struct{ Rows []dashboardRow }{Rows: rows}); err != nil {
		h.logger.Error("ошибка при отрисовке шаблона", zap.Error(err))
		http.Error(w, "Ошибка при отрисовке шаблона", http.StatusInternalServerError)
	}
}

// Отсутствующее измерение не ошибка для раскраски
func (h *MeasureHandler) findMeasure(r *http.Request, metricKey, component string) (models.Measure, bool, error) {
	measure, err := h.storage.Get(r.Context(), metricKey, component)
	if errors.Is(err, measures.ErrMeasureNotFound) {
		return models.Measure{}, false, nil
	}
	if err != nil {
		return models.Measure{}, false, err
	}
	return measure, true, nil
}

func (h *MeasureHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, measures.ErrMetricNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, measures.ErrMeasureNotFound):
		http.Error(w, "Measure not found", http.StatusNotFound)
	case errors.Is(err, measures.ErrInvalidJSON),
		errors.Is(err, measures.ErrInvalidMetricKey),
		errors.Is(err, measures.ErrInvalidComponent),
		errors.Is(err, measures.ErrInvalidValueType),
		errors.Is(err, constants.ErrUnknownValueType),
		errors.Is(err, dto.ErrTooManyVariations):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("ошибка обработки запроса", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}
