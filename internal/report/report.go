// Package report renders simulation results for a terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

const cellWidth = 8

// Render writes the title, Gantt chart, schedule table and summary of one result.
func Render(w io.Writer, processes []scheduler.Process, r *scheduler.Result) {
	Title(w, Heading(r))
	Gantt(w, r.Segments)
	Table(w, processes, r)
	Summary(w, r)
}

// Heading names the policy of r, with its quantum for round-robin.
func Heading(r *scheduler.Result) string {
	if r.Policy == scheduler.RoundRobin {
		return fmt.Sprintf("%s (quantum %d)", r.Policy.Title(), r.Quantum)
	}
	return r.Policy.Title()
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), bold(title))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt draws one cell per slice with the time at which each cell starts
// underneath. Idle gaps between slices get a dimmed cell of their own.
func Gantt(w io.Writer, slices []scheduler.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(slices) == 0 {
		_, _ = fmt.Fprintln(w)
		return
	}

	var (
		bars  strings.Builder
		ticks strings.Builder
		now   int64
	)
	bars.WriteString("|")
	cell := func(label string, paint func(a ...interface{}) string, start int64) {
		left := (cellWidth - len(label)) / 2
		if left < 1 {
			left = 1
		}
		right := cellWidth - len(label) - left
		if right < 1 {
			right = 1
		}
		bars.WriteString(strings.Repeat(" ", left) + paint(label) + strings.Repeat(" ", right) + "|")

		tick := fmt.Sprint(start)
		pad := left + len(label) + right + 1 - len(tick)
		if pad < 1 {
			pad = 1
		}
		ticks.WriteString(tick + strings.Repeat(" ", pad))
	}

	for _, s := range slices {
		if s.Start > now {
			cell("idle", dim, now)
		}
		cell(s.PID, pidColor(s.PID), s.Start)
		now = s.Stop
	}
	ticks.WriteString(fmt.Sprint(now))

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

// Table writes the per-process schedule in input order with averages in the footer.
func Table(w io.Writer, processes []scheduler.Process, r *scheduler.Result) {
	rows := make([][]string, 0, len(processes))
	for _, p := range processes {
		t := r.Timings[p.ID]
		rows = append(rows, []string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstDuration),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(t.WaitingTime),
			fmt.Sprint(t.TurnaroundTime),
			fmt.Sprint(t.CompletionTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", r.Metrics.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", r.Metrics.AvgTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", r.Metrics.Throughput)})
	table.Render()
}

// Summary writes the aggregate metrics as plain lines.
func Summary(w io.Writer, r *scheduler.Result) {
	m := r.Metrics
	_, _ = fmt.Fprintf(w, "Average Waiting Time: %s\n", boldCyan(fmt.Sprintf("%.2f", m.AvgWaitingTime)))
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %s\n", boldCyan(fmt.Sprintf("%.2f", m.AvgTurnaroundTime)))
	_, _ = fmt.Fprintf(w, "Average Response Time: %s\n", boldCyan(fmt.Sprintf("%.2f", m.AvgResponseTime)))
	_, _ = fmt.Fprintf(w, "CPU Utilization: %s\n", boldGreen(fmt.Sprintf("%.2f%%", m.CPUUtilization)))
	_, _ = fmt.Fprintf(w, "Throughput: %s processes/unit time\n", boldGreen(fmt.Sprintf("%.2f", m.Throughput)))
	_, _ = fmt.Fprintln(w)
}

// Comparison writes one row of aggregate metrics per result.
func Comparison(w io.Writer, results []*scheduler.Result) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		m := r.Metrics
		rows = append(rows, []string{
			Heading(r),
			fmt.Sprintf("%.2f", m.AvgWaitingTime),
			fmt.Sprintf("%.2f", m.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", m.AvgResponseTime),
			fmt.Sprintf("%.2f%%", m.CPUUtilization),
			fmt.Sprintf("%.4f", m.Throughput),
		})
	}

	Title(w, "Policy comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Wait", "Turnaround", "Response", "CPU", "Throughput"})
	table.AppendBulk(rows)
	table.Render()
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
