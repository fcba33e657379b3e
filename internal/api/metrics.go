package api

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessStats: снимок процесса сервера предпросмотра для /api/stats.
type ProcessStats struct {
	Uptime     string  `json:"uptime"`
	CPUPercent float64 `json:"cpu_percent"`
	AllocMB    float64 `json:"alloc_mb"`
	HeapMB     float64 `json:"heap_mb"`
	SysMB      float64 `json:"sys_mb"`
	NumGC      uint32  `json:"num_gc"`
	Goroutines int     `json:"goroutines"`
	ServerTime int64   `json:"server_time"`
}

// ServerMetrics следит за процессом: генерация упирается в CPU и память под кеш схем,
// поэтому /api/stats показывает именно их.
type ServerMetrics struct {
	StartTime time.Time
	proc      *process.Process
}

// NewServerMetrics запоминает время старта и дескриптор своего процесса
func NewServerMetrics() *ServerMetrics {
	sm := &ServerMetrics{StartTime: time.Now()}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		sm.proc = p
	}
	return sm
}

// Snapshot собирает ProcessStats. Ошибка CPU не фатальна: поле остаётся нулевым.
func (sm *ServerMetrics) Snapshot() ProcessStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	cpuPercent, _ := sm.cpuPercent()
	return ProcessStats{
		Uptime:     formatUptime(time.Since(sm.StartTime)),
		CPUPercent: cpuPercent,
		AllocMB:    toMB(m.Alloc),
		HeapMB:     toMB(m.HeapAlloc),
		SysMB:      toMB(m.Sys),
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
		ServerTime: time.Now().Unix(),
	}
}

// cpuPercent: загрузка CPU процессом; без дескриптора процесса берётся системная.
func (sm *ServerMetrics) cpuPercent() (float64, error) {
	if sm.proc != nil {
		if p, err := sm.proc.CPUPercent(); err == nil {
			return p, nil
		}
	}
	all, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		return 0, err
	}
	if len(all) == 0 {
		return 0, nil
	}
	return all[0], nil
}

func toMB(b uint64) float64 {
	return float64(b) / 1024 / 1024
}

// formatUptime печатает длительность крупными единицами: "2д 3ч 4м 5с".
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dд %dч %dм %dс", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	default:
		return fmt.Sprintf("%dс", seconds)
	}
}
