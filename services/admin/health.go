package admin

import (
	"os"
	"runtime"

	"islamicdashboard/models"
	"islamicdashboard/utils"

	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// Health reports process uptime, memory and CPU usage.
func (s *DefaultAdminService) Health() models.SystemHealth {
	now := s.now()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	health := models.SystemHealth{
		Status:      utils.GetHealthStatus().Overall(),
		Uptime:      now.Sub(s.started).Seconds(),
		Timestamp:   now.UTC(),
		Version:     s.Version,
		Environment: s.Environment,
		Goroutines:  runtime.NumGoroutine(),
		Memory: models.MemoryUsage{
			HeapAlloc: mem.HeapAlloc,
			HeapSys:   mem.HeapSys,
			Sys:       mem.Sys,
		},
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		s.logger.Warn("Process stats unavailable", zap.Error(err))
		return health
	}
	if info, err := proc.MemoryInfo(); err == nil {
		health.Memory.RSS = info.RSS
		health.Memory.VMS = info.VMS
	}
	if times, err := proc.Times(); err == nil {
		health.CPU.User = times.User
		health.CPU.System = times.System
	}
	if pct, err := proc.CPUPercent(); err == nil {
		health.CPU.Percent = pct
	}
	return health
}
