package scheduler

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Policy selects one of the supported scheduling algorithms.
type Policy int

const (
	FCFS Policy = iota
	SJF
	RoundRobin
	Priority
)

// Policies lists every supported policy in dispatch order.
var Policies = []Policy{FCFS, SJF, RoundRobin, Priority}

func (p Policy) String() string {
	switch p {
	case FCFS:
		return "fcfs"
	case SJF:
		return "sjf"
	case RoundRobin:
		return "rr"
	case Priority:
		return "priority"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Title is the human-readable policy name used in reports.
func (p Policy) Title() string {
	switch p {
	case FCFS:
		return "First-come, first-serve"
	case SJF:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	case Priority:
		return "Priority"
	default:
		return p.String()
	}
}

// Valid reports whether p is one of Policies.
func (p Policy) Valid() bool {
	return p >= FCFS && p <= Priority
}

// MarshalJSON encodes p by its short name, e.g. "rr".
func (p Policy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts any name ParsePolicy does.
func (p *Policy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePolicy resolves a policy selector. Matching ignores case, spaces, dashes and underscores.
func ParsePolicy(name string) (Policy, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	switch key {
	case "fcfs", "firstcomefirstserve", "firstcomefirstserved":
		return FCFS, nil
	case "sjf", "shortestjobfirst":
		return SJF, nil
	case "rr", "roundrobin":
		return RoundRobin, nil
	case "priority", "priorityscheduling":
		return Priority, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Algorithm returns the implementation for p. quantum is only consulted for RoundRobin.
func (p Policy) Algorithm(quantum int64) (Algorithm, error) {
	switch p {
	case FCFS:
		return fcfs{}, nil
	case SJF:
		return sjf{}, nil
	case RoundRobin:
		if quantum <= 0 {
			return nil, fmt.Errorf("%w: round-robin needs a positive quantum, got %d", ErrInvalidQuantum, quantum)
		}
		return roundRobin{quantum: quantum}, nil
	case Priority:
		return priority{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
}
