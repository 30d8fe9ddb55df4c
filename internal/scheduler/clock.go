package scheduler

// clock is the simulated time of a single run.
type clock struct {
	now int64
}

// idleUntil advances the clock to t if it is behind. Idle gaps produce no slice.
func (c *clock) idleUntil(t int64) {
	if c.now < t {
		c.now = t
	}
}

// run puts pid on the CPU for d units and returns the slice it occupied.
func (c *clock) run(pid string, d int64) TimeSlice {
	slice := TimeSlice{PID: pid, Start: c.now, Stop: c.now + d}
	c.now += d
	return slice
}

// nextArrival returns the earliest arrival among processes not yet done.
// ok is false when every process is done.
func nextArrival(processes []Process, done func(i int) bool) (t int64, ok bool) {
	for i, p := range processes {
		if done(i) {
			continue
		}
		if !ok || p.ArrivalTime < t {
			t, ok = p.ArrivalTime, true
		}
	}
	return t, ok
}

// complete builds the timing of a process that first ran at start and finished at completion.
func complete(p Process, start, completion int64) Timing {
	waiting := completion - p.BurstDuration - p.ArrivalTime
	return Timing{
		ProcessID:      p.ID,
		WaitingTime:    waiting,
		TurnaroundTime: waiting + p.BurstDuration,
		CompletionTime: completion,
		ResponseTime:   start - p.ArrivalTime,
	}
}
