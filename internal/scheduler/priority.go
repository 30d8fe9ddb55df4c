package scheduler

import "sort"

type priority struct{}

// Schedule orders processes by arrival, then by descending priority among
// equal arrivals, and runs them like FCFS. Nothing is ever preempted.
func (priority) Schedule(processes []Process) ([]TimeSlice, []Timing) {
	ordered := make([]Process, len(processes))
	copy(ordered, processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].ArrivalTime != ordered[j].ArrivalTime {
			return ordered[i].ArrivalTime < ordered[j].ArrivalTime
		}
		return ordered[i].Priority > ordered[j].Priority
	})
	return runInOrder(ordered)
}
