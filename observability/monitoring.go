package observability

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is a point-in-time view of this process.
type ProcessStats struct {
	Status     string  `json:"status"`
	RSSBytes   uint64  `json:"rssBytes"`
	CPUPercent float64 `json:"cpuPercent"`
	Goroutines int     `json:"goroutines"`
	NumGC      uint32  `json:"numGC"`
}

type ProcessMonitor struct {
	proc *process.Process
}

func NewProcessMonitor() (*ProcessMonitor, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &ProcessMonitor{proc: p}, nil
}

func (m *ProcessMonitor) Snapshot() (ProcessStats, error) {
	memInfo, err := m.proc.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := m.proc.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return ProcessStats{
		Status:     "ok",
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
		Goroutines: runtime.NumGoroutine(),
		NumGC:      mem.NumGC,
	}, nil
}
