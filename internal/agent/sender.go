package agent

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GarikMirzoyan/measurecolor/internal/dto"
	"github.com/GarikMirzoyan/measurecolor/internal/retry"
	"github.com/GarikMirzoyan/measurecolor/internal/security"
)

type Sender struct {
	client  *http.Client
	address string
	key     []byte
}

func NewSender(address, key string) *Sender {
	return &Sender{
		client:  &http.Client{Timeout: 10 * time.Second},
		address: address,
		key:     []byte(key),
	}
}

// SendBatch отправляет измерения одним сжатым запросом на /updates/
func (s *Sender) SendBatch(ctx context.Context, measures []dto.Measure) error {
	if len(measures) == 0 {
		return nil
	}

	body, err := json.Marshal(measures)
	if err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}

	// Сжимаем данные перед отправкой
	compressedBody, err := compressGzip(body)
	if err != nil {
		return fmt.Errorf("error compressing data: %w", err)
	}

	return retry.WithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.address+"/updates/", bytes.NewReader(compressedBody))
		if err != nil {
			return fmt.Errorf("error creating request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Encoding", "gzip")
		if len(s.key) > 0 {
			// Подписываем несжатое тело
			req.Header.Set(security.HashHeader, security.ComputeHMACSHA256(body, s.key))
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Path)
		}
		return nil
	})
}

func compressGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
