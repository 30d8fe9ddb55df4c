package report

import "github.com/fatih/color"

var (
	bold      = color.New(color.Bold).SprintFunc()
	dim       = color.New(color.Faint).SprintFunc()
	boldCyan  = color.New(color.Bold, color.FgCyan).SprintFunc()
	boldGreen = color.New(color.Bold, color.FgGreen).SprintFunc()
)

// pidColors is a palette of distinct bold colors for telling processes apart in the chart.
var pidColors = []func(a ...interface{}) string{
	color.New(color.Bold, color.FgMagenta).SprintFunc(),
	color.New(color.Bold, color.FgCyan).SprintFunc(),
	color.New(color.Bold, color.FgYellow).SprintFunc(),
	color.New(color.Bold, color.FgGreen).SprintFunc(),
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

// pidColor hashes a process id to a palette entry so a process keeps its color across slices.
func pidColor(pid string) func(a ...interface{}) string {
	var h uint32
	for _, c := range pid {
		h = h*31 + uint32(c)
	}
	return pidColors[h%uint32(len(pidColors))]
}
