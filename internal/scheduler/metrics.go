package scheduler

import "fmt"

// CalculateMetrics derives the aggregate statistics from per-process timings.
// timings[i] must belong to processes[i].
func CalculateMetrics(processes []Process, timings []Timing) (Metrics, error) {
	if len(processes) == 0 || len(processes) != len(timings) {
		return Metrics{}, fmt.Errorf("%w: %d processes, %d timings", ErrInvalidProcessCount, len(processes), len(timings))
	}

	var (
		m                          Metrics
		totalWait, totalTurnaround float64
		totalResponse              float64
	)
	for i, p := range processes {
		t := timings[i]
		totalWait += float64(t.WaitingTime)
		totalTurnaround += float64(t.TurnaroundTime)
		totalResponse += float64(t.ResponseTime)
		m.TotalBurst += p.BurstDuration
		if end := t.TurnaroundTime + p.ArrivalTime; end > m.Makespan {
			m.Makespan = end
		}
	}
	if m.Makespan == 0 {
		return Metrics{}, fmt.Errorf("%w: simulated timeline is empty", ErrInvalidProcessCount)
	}

	count := float64(len(processes))
	m.AvgWaitingTime = totalWait / count
	m.AvgTurnaroundTime = totalTurnaround / count
	m.AvgResponseTime = totalResponse / count
	m.CPUUtilization = 100 * float64(m.TotalBurst) / float64(m.Makespan)
	m.Throughput = count / float64(m.Makespan)
	m.IdleTime = m.Makespan - m.TotalBurst
	return m, nil
}
