package scheduler

type roundRobin struct {
	quantum int64
}

// Schedule sweeps the processes in their input order, giving every arrived
// process with work left one slice of at most quantum units per sweep.
//
// There is no FIFO ready queue: a process that just used its slice is only
// revisited at its own index on the next sweep, even if other processes
// arrived while it ran. Arrival is checked against the clock as it advances
// within the sweep.
func (rr roundRobin) Schedule(processes []Process) ([]TimeSlice, []Timing) {
	var (
		c         clock
		n         = len(processes)
		remaining = make([]int64, n)
		started   = make([]int64, n)
		gantt     = make([]TimeSlice, 0, n)
		timings   = make([]Timing, n)
		completed int
	)
	for i, p := range processes {
		remaining[i] = p.BurstDuration
		started[i] = -1
	}

	for completed < n {
		idle := true
		for i, p := range processes {
			if remaining[i] == 0 || p.ArrivalTime > c.now {
				continue
			}
			idle = false
			if started[i] < 0 {
				started[i] = c.now
			}

			run := rr.quantum
			if remaining[i] <= rr.quantum {
				run = remaining[i]
			}
			gantt = append(gantt, c.run(p.ID, run))
			remaining[i] -= run

			if remaining[i] == 0 {
				timings[i] = complete(p, started[i], c.now)
				completed++
			}
		}
		if idle {
			next, _ := nextArrival(processes, func(i int) bool { return remaining[i] == 0 })
			c.idleUntil(next)
		}
	}
	return gantt, timings
}
