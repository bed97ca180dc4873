package agent

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Ключи метрик хоста, совпадают с каталогом сервера
const (
	MetricCPUUsage    = "cpu_usage"
	MetricMemoryUsage = "memory_usage"
	MetricDiskUsage   = "disk_usage"
)

type Collector interface {
	Collect(ctx context.Context) (map[string]float64, error)
}

// HostCollector снимает загрузку CPU, памяти и диска через gopsutil
type HostCollector struct {
	DiskPath string
}

func NewHostCollector() *HostCollector {
	return &HostCollector{DiskPath: "/"}
}

func (c *HostCollector) Collect(ctx context.Context) (map[string]float64, error) {
	collected := make(map[string]float64, 3)

	// Нулевой интервал сравнивает с предыдущим вызовом
	cpuPercent, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("cpu usage: %w", err)
	}
	if len(cpuPercent) > 0 {
		collected[MetricCPUUsage] = cpuPercent[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory usage: %w", err)
	}
	collected[MetricMemoryUsage] = vm.UsedPercent

	usage, err := disk.UsageWithContext(ctx, c.DiskPath)
	if err != nil {
		return nil, fmt.Errorf("disk usage: %w", err)
	}
	collected[MetricDiskUsage] = usage.UsedPercent

	return collected, nil
}
