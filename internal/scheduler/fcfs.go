package scheduler

import "sort"

type fcfs struct{}

// Schedule runs processes in arrival order. Ties keep their input order.
func (fcfs) Schedule(processes []Process) ([]TimeSlice, []Timing) {
	ordered := make([]Process, len(processes))
	copy(ordered, processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ArrivalTime < ordered[j].ArrivalTime
	})
	return runInOrder(ordered)
}

// runInOrder executes processes back to back in the given order, jumping the
// clock forward over idle gaps.
func runInOrder(ordered []Process) ([]TimeSlice, []Timing) {
	var (
		c       clock
		gantt   = make([]TimeSlice, 0, len(ordered))
		timings = make([]Timing, 0, len(ordered))
	)
	for _, p := range ordered {
		c.idleUntil(p.ArrivalTime)
		slice := c.run(p.ID, p.BurstDuration)
		gantt = append(gantt, slice)
		timings = append(timings, complete(p, slice.Start, slice.Stop))
	}
	return gantt, timings
}
