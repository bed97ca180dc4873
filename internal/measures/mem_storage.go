package measures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/GarikMirzoyan/measurecolor/internal/dto"
	"github.com/GarikMirzoyan/measurecolor/internal/models"
	serverConfig "github.com/GarikMirzoyan/measurecolor/internal/server/config"
	"go.uber.org/zap"
)

type MemStorage struct {
	metrics  map[string]models.Metric
	measures map[string]models.Measure
	mu       sync.RWMutex

	// Путь для синхронного сохранения, пустой - сохранение отключено
	syncPath string
	logger   *zap.Logger
}

// Формат файла с сохранёнными данными
type fileSnapshot struct {
	Metrics  []dto.Metric  `json:"metrics"`
	Measures []dto.Measure `json:"measures"`
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		metrics:  make(map[string]models.Metric),
		measures: make(map[string]models.Measure),
		logger:   zap.NewNop(),
	}
}

func (ms *MemStorage) UpsertMetric(ctx context.Context, metric models.Metric) error {
	if err := validateMetric(metric); err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.metrics[metric.Key] = metric
	ms.syncSaveLocked()
	return nil
}

func (ms *MemStorage) GetMetric(ctx context.Context, key string) (models.Metric, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	metric, exists := ms.metrics[key]
	if !exists {
		return models.Metric{}, ErrMetricNotFound
	}
	return metric, nil
}

func (ms *MemStorage) GetMetrics(ctx context.Context) ([]models.Metric, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	metrics := make([]models.Metric, 0, len(ms.metrics))
	for _, metric := range ms.metrics {
		metrics = append(metrics, metric)
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i].Key < metrics[j].Key })
	return metrics, nil
}

func (ms *MemStorage) Update(ctx context.Context, measure models.Measure) error {
	return ms.UpdateBatch(ctx, []models.Measure{measure})
}

// UpdateBatch stores either all measures or none of them.
func (ms *MemStorage) UpdateBatch(ctx context.Context, measures []models.Measure) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, m := range measures {
		if err := validateMeasure(m); err != nil {
			return err
		}
		if _, exists := ms.metrics[m.Metric.Key]; !exists {
			return fmt.Errorf("%s: %w", m.Metric.Key, ErrMetricNotFound)
		}
	}

	now := time.Now().UTC()
	for _, m := range measures {
		// Храним только ключ метрики, описание подставляется при чтении
		m.Metric = models.Metric{Key: m.Metric.Key}
		if m.UpdatedAt.IsZero() {
			m.UpdatedAt = now
		}
		ms.measures[m.Key()] = m
	}

	ms.syncSaveLocked()
	return nil
}

func (ms *MemStorage) Get(ctx context.Context, metricKey, component string) (models.Measure, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	m, exists := ms.measures[models.MeasureKey(metricKey, component)]
	if !exists {
		return models.Measure{}, ErrMeasureNotFound
	}
	m.Metric = ms.metrics[m.Metric.Key]
	return m, nil
}

func (ms *MemStorage) GetAll(ctx context.Context) ([]models.Measure, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	measures := make([]models.Measure, 0, len(ms.measures))
	for _, m := range ms.measures {
		m.Metric = ms.metrics[m.Metric.Key]
		measures = append(measures, m)
	}
	sort.Slice(measures, func(i, j int) bool {
		if measures[i].Metric.Key != measures[j].Metric.Key {
			return measures[i].Metric.Key < measures[j].Metric.Key
		}
		return measures[i].Component < measures[j].Component
	})
	return measures, nil
}

// Загрузка данных из файла
func (ms *MemStorage) LoadFromFile(config serverConfig.Config) error {
	if !config.Restore {
		return nil
	}

	data, err := os.ReadFile(config.FileStoragePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("не удалось открыть файл с измерениями: %w", err)
	}

	var snapshot fileSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("ошибка при декодировании JSON: %w", err)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, metricDTO := range snapshot.Metrics {
		metric, err := metricDTO.ToModel()
		if err != nil {
			return err
		}
		ms.metrics[metric.Key] = metric
	}

	for _, measureDTO := range snapshot.Measures {
		m, err := measureDTO.ToModel()
		if err != nil {
			return fmt.Errorf("измерение %s/%s: %w", measureDTO.Metric, measureDTO.Component, err)
		}
		ms.measures[m.Key()] = m
	}

	return nil
}

func (ms *MemStorage) SaveToFile(config serverConfig.Config) error {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return ms.saveLocked(config.FileStoragePath)
}

func (ms *MemStorage) saveLocked(path string) error {
	snapshot := fileSnapshot{
		Metrics:  make([]dto.Metric, 0, len(ms.metrics)),
		Measures: make([]dto.Measure, 0, len(ms.measures)),
	}
	for _, metric := range ms.metrics {
		snapshot.Metrics = append(snapshot.Metrics, dto.MetricFromModel(metric))
	}
	for _, m := range ms.measures {
		snapshot.Measures = append(snapshot.Measures, dto.MeasureFromModel(m))
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("ошибка при кодировании измерений: %w", err)
	}

	// Пишем во временный файл, чтобы не оставить обрезанный снимок
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("не удалось записать файл с измерениями: %w", err)
	}
	return os.Rename(tmp, path)
}

func (ms *MemStorage) syncSaveLocked() {
	if ms.syncPath == "" {
		return
	}
	if err := ms.saveLocked(ms.syncPath); err != nil {
		ms.logger.Error("ошибка при синхронном сохранении измерений", zap.Error(err))
	}
}

// StartSaving saves the storage every StoreInterval until ctx is done.
// A zero interval switches to saving on every write and returns immediately.
func (ms *MemStorage) StartSaving(ctx context.Context, config serverConfig.Config, logger *zap.Logger) {
	if config.FileStoragePath == "" {
		return
	}

	if config.StoreInterval == 0 {
		ms.mu.Lock()
		ms.syncPath = config.FileStoragePath
		ms.logger = logger
		ms.mu.Unlock()
		return
	}

	ticker := time.NewTicker(config.StoreInterval)
	defer ticker.Stop()

	logger.Info("запущено периодическое сохранение измерений", zap.Duration("interval", config.StoreInterval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ms.SaveToFile(config); err != nil {
				logger.Error("ошибка при сохранении измерений", zap.Error(err))
			}
		}
	}
}
