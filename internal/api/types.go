package api

import (
	"encoding/json"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

// ScheduleRequest is the body of every simulation endpoint. Policy is ignored
// on the per-policy routes. A nil Quantum falls back to the configured default.
// Processes is kept raw and decoded by the process loader so that bad fields
// are reported per process.
type ScheduleRequest struct {
	Policy    string          `json:"policy"`
	Quantum   *int64          `json:"quantum"`
	Processes json.RawMessage `json:"processes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type CompareResponse struct {
	Results []*scheduler.Result `json:"results"`
}

type PoliciesResponse struct {
	Policies []string `json:"policies"`
	Default  string   `json:"default"`
}
