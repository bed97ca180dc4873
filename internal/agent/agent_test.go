package agent

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/GarikMirzoyan/measurecolor/internal/agent/config"
	"github.com/GarikMirzoyan/measurecolor/internal/dto"
	"github.com/GarikMirzoyan/measurecolor/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCollector struct {
	values []map[string]float64
	calls  int
	err    error
}

func (c *fakeCollector) Collect(ctx context.Context) (map[string]float64, error) {
	if c.err != nil {
		return nil, c.err
	}
	v := c.values[c.calls%len(c.values)]
	c.calls++
	return v, nil
}

// Сервер, который распаковывает и проверяет подпись пакета
type updatesServer struct {
	t       *testing.T
	key     string
	mu      sync.Mutex
	batches [][]dto.Measure
}

func (s *updatesServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(s.t, "/updates/", r.URL.Path)
	assert.Equal(s.t, "gzip", r.Header.Get("Content-Encoding"))
	assert.Equal(s.t, "application/json", r.Header.Get("Content-Type"))

	gz, err := gzip.NewReader(r.Body)
	require.NoError(s.t, err)
	body, err := io.ReadAll(gz)
	require.NoError(s.t, err)

	if s.key != "" && !security.VerifyHMACSHA256(body, []byte(s.key), r.Header.Get(security.HashHeader)) {
		http.Error(w, "invalid HMAC signature", http.StatusBadRequest)
		return
	}

	var batch []dto.Measure
	require.NoError(s.t, json.Unmarshal(body, &batch))

	s.mu.Lock()
	s.batches = append(s.batches, batch)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *updatesServer) received() [][]dto.Measure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]dto.Measure(nil), s.batches...)
}

func TestReportSendsSignedBatchWithVariation(t *testing.T) {
	srv := &updatesServer{t: t, key: "secret"}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	collector := &fakeCollector{values: []map[string]float64{
		{MetricCPUUsage: 10, MetricMemoryUsage: 40},
		{MetricCPUUsage: 25, MetricMemoryUsage: 35},
	}}
	cfg := config.Config{Address: ts.URL, Key: "secret", Component: "build-01"}
	a := NewAgent(cfg, collector, NewSender(cfg.Address, cfg.Key), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, a.Poll(ctx))
	require.NoError(t, a.Report(ctx))
	require.NoError(t, a.Poll(ctx))
	require.NoError(t, a.Report(ctx))

	batches := srv.received()
	require.Len(t, batches, 2)

	first := batches[0]
	require.Len(t, first, 2)
	assert.Equal(t, MetricCPUUsage, first[0].Metric)
	assert.Equal(t, "build-01", first[0].Component)
	assert.Equal(t, 10.0, *first[0].Value)
	assert.Empty(t, first[0].Variations)

	second := batches[1]
	require.Len(t, second, 2)
	require.Len(t, second[0].Variations, 1)
	assert.Equal(t, 15.0, *second[0].Variations[0])
	assert.Equal(t, MetricMemoryUsage, second[1].Metric)
	assert.Equal(t, -5.0, *second[1].Variations[0])
}

func TestReportKeepsBaselineOnFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid HMAC signature", http.StatusBadRequest)
	}))
	defer ts.Close()

	collector := &fakeCollector{values: []map[string]float64{{MetricDiskUsage: 50}}}
	a := NewAgent(config.Config{Address: ts.URL, Component: "c"}, collector, NewSender(ts.URL, "wrong"), zap.NewNop())

	require.NoError(t, a.Poll(context.Background()))
	assert.Error(t, a.Report(context.Background()))
	assert.Empty(t, a.reported)
}

func TestReportEmptyBatch(t *testing.T) {
	a := NewAgent(config.Config{Address: "http://127.0.0.1:1"}, &fakeCollector{}, NewSender("http://127.0.0.1:1", ""), zap.NewNop())
	assert.NoError(t, a.Report(context.Background()))
}

func TestPollError(t *testing.T) {
	collector := &fakeCollector{err: errors.New("no /proc")}
	a := NewAgent(config.Config{}, collector, NewSender("", ""), zap.NewNop())

	assert.Error(t, a.Poll(context.Background()))
	assert.Empty(t, a.latest)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := &updatesServer{t: t}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	cfg := config.Config{
		Address:        ts.URL,
		Component:      "c",
		PollInterval:   5 * time.Millisecond,
		ReportInterval: 20 * time.Millisecond,
	}
	collector := &fakeCollector{values: []map[string]float64{{MetricCPUUsage: 1}}}
	a := NewAgent(cfg, collector, NewSender(cfg.Address, ""), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(srv.received()) > 0 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("agent did not stop")
	}
}

func TestHostCollector(t *testing.T) {
	collected, err := NewHostCollector().Collect(context.Background())
	if err != nil {
		t.Skipf("host measures unavailable: %v", err)
	}

	for _, key := range []string{MetricMemoryUsage, MetricDiskUsage} {
		value, ok := collected[key]
		require.True(t, ok, key)
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 100.0)
	}
}
