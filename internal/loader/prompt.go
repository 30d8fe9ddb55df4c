package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

// Prompt collects processes interactively: first a count, then one
// "arrival burst [priority]" line per process. Prompts go to w.
func Prompt(r io.Reader, w io.Writer) ([]scheduler.Process, error) {
	scanner := bufio.NewScanner(r)

	_, _ = fmt.Fprint(w, "Enter the number of processes: ")
	line, ok := nextLine(scanner)
	if !ok {
		return nil, fmt.Errorf("%w: no count given", scheduler.ErrInvalidProcessCount)
	}
	count, err := strconv.Atoi(line)
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("%w: %q is not a positive integer", scheduler.ErrInvalidProcessCount, line)
	}

	var processes []scheduler.Process
	for i := 0; i < count; i++ {
		proc := &scheduler.Process{ID: defaultID(i)}

		_, _ = fmt.Fprintf(w, "Process %s (arrival burst priority): ", proc.ID)
		line, ok := nextLine(scanner)
		if !ok {
			return nil, fmt.Errorf("process %s: %w", proc.ID, io.ErrUnexpectedEOF)
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, &scheduler.FieldError{ProcessID: proc.ID, Index: i, Field: "input", Value: line,
				Reason: "expected arrival burst [priority]"}
		}
		if proc.ArrivalTime, err = parseInt(i, proc.ID, "arrival time", fields[0]); err != nil {
			return nil, err
		}
		if proc.BurstDuration, err = parseInt(i, proc.ID, "burst time", fields[1]); err != nil {
			return nil, err
		}
		if len(fields) == 3 {
			if proc.Priority, err = parseInt(i, proc.ID, "priority", fields[2]); err != nil {
				return nil, err
			}
		}
		processes = append(processes, *proc)
	}

	if err := scheduler.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// nextLine returns the next non-blank line, trimmed.
func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}
