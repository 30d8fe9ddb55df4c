package scheduler

import (
	"fmt"
	"math"
	"strconv"
)

// Validate checks a process set before any policy runs. Besides per-field
// checks it rejects sets whose timeline could pass math.MaxInt64: no clock
// ever exceeds the latest arrival plus the total burst.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: need at least one process", ErrInvalidProcessCount)
	}
	var (
		seen       = make(map[string]int, len(processes))
		totalBurst int64
		latest     = -1
	)
	for i, p := range processes {
		switch {
		case p.ID == "":
			return &FieldError{Index: i, Field: "id", Reason: "must not be empty"}
		case p.ArrivalTime < 0:
			return &FieldError{ProcessID: p.ID, Index: i, Field: "arrival time",
				Value: strconv.FormatInt(p.ArrivalTime, 10), Reason: "must not be negative"}
		case p.BurstDuration <= 0:
			return &FieldError{ProcessID: p.ID, Index: i, Field: "burst time",
				Value: strconv.FormatInt(p.BurstDuration, 10), Reason: "must be positive"}
		}
		if first, dup := seen[p.ID]; dup {
			return &FieldError{ProcessID: p.ID, Index: i, Field: "id",
				Reason: fmt.Sprintf("duplicates process #%d", first+1)}
		}
		seen[p.ID] = i

		if p.BurstDuration > math.MaxInt64-totalBurst {
			return &FieldError{ProcessID: p.ID, Index: i, Field: "burst time",
				Value: strconv.FormatInt(p.BurstDuration, 10), Reason: "total burst time overflows"}
		}
		totalBurst += p.BurstDuration
		if latest < 0 || p.ArrivalTime > processes[latest].ArrivalTime {
			latest = i
		}
	}

	if last := processes[latest]; last.ArrivalTime > math.MaxInt64-totalBurst {
		return &FieldError{ProcessID: last.ID, Index: latest, Field: "arrival time",
			Value: strconv.FormatInt(last.ArrivalTime, 10), Reason: "timeline overflows"}
	}
	return nil
}

// Simulate validates the input, runs the selected policy and computes its metrics.
// quantum is required for RoundRobin and ignored otherwise.
func Simulate(processes []Process, policy Policy, quantum int64) (*Result, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}
	if err := Validate(processes); err != nil {
		return nil, err
	}
	algo, err := policy.Algorithm(quantum)
	if err != nil {
		return nil, err
	}

	gantt, timings := algo.Schedule(processes)

	byID := make(map[string]Timing, len(timings))
	for _, t := range timings {
		byID[t.ProcessID] = t
	}
	result := &Result{
		Policy:   policy,
		Segments: gantt,
		Timings:  byID,
	}
	if policy == RoundRobin {
		result.Quantum = quantum
	}

	result.Metrics, err = CalculateMetrics(processes, result.Ordered(processes))
	if err != nil {
		return nil, fmt.Errorf("%v metrics: %w", policy, err)
	}
	return result, nil
}

// Compare runs every policy over the same processes. The quantum is checked
// up front so that no policy runs when any of them would be rejected.
func Compare(processes []Process, quantum int64) ([]*Result, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}
	if _, err := RoundRobin.Algorithm(quantum); err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(Policies))
	for _, policy := range Policies {
		r, err := Simulate(processes, policy, quantum)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
