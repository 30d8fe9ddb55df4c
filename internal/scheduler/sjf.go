package scheduler

type sjf struct{}

// Schedule picks the shortest available burst at every completion point and
// runs it to the end. Equal bursts go to the earlier process in input order.
func (sjf) Schedule(processes []Process) ([]TimeSlice, []Timing) {
	var (
		c         clock
		n         = len(processes)
		completed = make([]bool, n)
		gantt     = make([]TimeSlice, 0, n)
		timings   = make([]Timing, 0, n)
	)
	for len(timings) < n {
		shortest := -1
		for i, p := range processes {
			if completed[i] || p.ArrivalTime > c.now {
				continue
			}
			if shortest == -1 || p.BurstDuration < processes[shortest].BurstDuration {
				shortest = i
			}
		}
		if shortest == -1 {
			next, _ := nextArrival(processes, func(i int) bool { return completed[i] })
			c.idleUntil(next)
			continue
		}

		p := processes[shortest]
		slice := c.run(p.ID, p.BurstDuration)
		gantt = append(gantt, slice)
		timings = append(timings, complete(p, slice.Start, slice.Stop))
		completed[shortest] = true
	}
	return gantt, timings
}
