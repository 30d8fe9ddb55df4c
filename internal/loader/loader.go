// Package loader turns user-supplied process descriptions into scheduler input.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

// ErrMalformed is returned when a process file cannot be parsed at all.
var ErrMalformed = errors.New("malformed process file")

// Load reads processes from path. Files ending in .json are parsed as JSON,
// anything else as CSV.
func Load(path string) ([]scheduler.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read process file: %w", err)
		}
		return LoadJSON(data)
	}
	return LoadCSV(f)
}

// LoadCSV parses rows of id,burst,arrival[,priority].
func LoadCSV(r io.Reader) ([]scheduler.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrMalformed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: process file has no rows", scheduler.ErrInvalidProcessCount)
	}

	processes := make([]scheduler.Process, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, &scheduler.FieldError{Index: i, Field: "row", Value: strings.Join(row, ","),
				Reason: "expected id,burst,arrival[,priority]"}
		}
		proc := &processes[i]
		proc.ID = strings.TrimSpace(row[0])
		if proc.BurstDuration, err = parseInt(i, proc.ID, "burst time", row[1]); err != nil {
			return nil, err
		}
		if proc.ArrivalTime, err = parseInt(i, proc.ID, "arrival time", row[2]); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if proc.Priority, err = parseInt(i, proc.ID, "priority", row[3]); err != nil {
				return nil, err
			}
		}
	}

	if err := scheduler.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

func parseInt(index int, id, field, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &scheduler.FieldError{ProcessID: id, Index: index, Field: field, Value: raw, Reason: "not an integer"}
	}
	return v, nil
}

func defaultID(index int) string {
	return "P" + strconv.Itoa(index+1)
}
