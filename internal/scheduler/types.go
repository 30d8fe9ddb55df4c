package scheduler

type (
	// Process is one schedulable unit. Higher Priority values are more urgent.
	Process struct {
		ID            string `json:"id"`
		ArrivalTime   int64  `json:"arrival_time"`
		BurstDuration int64  `json:"burst_time"`
		Priority      int64  `json:"priority"`
	}

	// TimeSlice is a contiguous run of a single process on the CPU, [Start, Stop).
	TimeSlice struct {
		PID   string `json:"pid"`
		Start int64  `json:"start"`
		Stop  int64  `json:"stop"`
	}
)

// Timing holds the per-process results of a simulation.
type Timing struct {
	ProcessID      string `json:"process_id"`
	WaitingTime    int64  `json:"waiting_time"`
	TurnaroundTime int64  `json:"turnaround_time"`
	CompletionTime int64  `json:"completion_time"`
	ResponseTime   int64  `json:"response_time"`
}

// Metrics are the aggregate statistics of one simulation run.
type Metrics struct {
	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	AvgResponseTime   float64 `json:"avg_response_time"`
	CPUUtilization    float64 `json:"cpu_utilization_percent"`
	Throughput        float64 `json:"throughput"`
	TotalBurst        int64   `json:"total_burst"`
	Makespan          int64   `json:"makespan"`
	IdleTime          int64   `json:"idle_time"`
}

// Result bundles everything a simulation produces.
type Result struct {
	Policy   Policy            `json:"policy"`
	Quantum  int64             `json:"quantum,omitempty"`
	Segments []TimeSlice       `json:"segments"`
	Timings  map[string]Timing `json:"timings"`
	Metrics  Metrics           `json:"metrics"`
}

// Ordered returns the timings in the order of the given processes.
func (r *Result) Ordered(processes []Process) []Timing {
	out := make([]Timing, 0, len(processes))
	for _, p := range processes {
		if t, ok := r.Timings[p.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Algorithm computes the timeline and per-process timings for a process set.
// Implementations assume the input has already been validated.
type Algorithm interface {
	Schedule(processes []Process) ([]TimeSlice, []Timing)
}
