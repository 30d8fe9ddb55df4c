package loader

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

// LoadJSON accepts either a bare array of processes or an object with a
// "processes" array and an optional "count" that must match its length.
// Processes without an "id" are named P1..Pn by position.
func LoadJSON(data []byte) ([]scheduler.Process, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	root := gjson.ParseBytes(data)
	list := root
	if root.IsObject() {
		list = root.Get("processes")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected a processes array", ErrMalformed)
	}

	items := list.Array()
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: process list is empty", scheduler.ErrInvalidProcessCount)
	}
	if count := root.Get("count"); root.IsObject() && count.Exists() {
		if count.Type != gjson.Number || count.Int() != int64(len(items)) {
			return nil, fmt.Errorf("%w: count %s does not match %d listed processes",
				scheduler.ErrInvalidProcessCount, count.Raw, len(items))
		}
	}

	processes := make([]scheduler.Process, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, &scheduler.FieldError{Index: i, Field: "process", Value: item.Raw, Reason: "not an object"}
		}
		proc := &processes[i]
		proc.ID = item.Get("id").String()
		if proc.ID == "" {
			proc.ID = defaultID(i)
		}

		var err error
		if proc.ArrivalTime, err = intField(item, i, proc.ID, "arrival time", true, "arrival_time", "arrival"); err != nil {
			return nil, err
		}
		if proc.BurstDuration, err = intField(item, i, proc.ID, "burst time", true, "burst_time", "burst"); err != nil {
			return nil, err
		}
		if proc.Priority, err = intField(item, i, proc.ID, "priority", false, "priority"); err != nil {
			return nil, err
		}
	}

	if err := scheduler.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

func intField(item gjson.Result, index int, id, field string, required bool, keys ...string) (int64, error) {
	for _, key := range keys {
		r := item.Get(key)
		if !r.Exists() {
			continue
		}
		if r.Type != gjson.Number {
			return 0, &scheduler.FieldError{ProcessID: id, Index: index, Field: field, Value: r.Raw, Reason: "not an integer"}
		}
		return parseInt(index, id, field, r.Raw)
	}
	if required {
		return 0, &scheduler.FieldError{ProcessID: id, Index: index, Field: field, Reason: "missing"}
	}
	return 0, nil
}
