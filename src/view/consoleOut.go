package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"galaxylife/src/simulation"
)

//ConsoleOut is the non interactive viewer, it reports the progress as plain lines
type ConsoleOut struct {
	s         *simulation.Simulation
	w         io.Writer
	au        aurora.Aurora
	startTime time.Time
}

//NewConsoleOut creates the viewer writing to w, colors disables the escape sequences when false
func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors)}
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	if st.RunningMode == simulation.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
		}
		fmt.Fprintln(c.w, "\n"+c.au.Red("Finished:").String())
		c.printHashData(resultData)
		fmt.Fprintln(c.w, Render(c.s.Snapshot(), c.au.Green("#").String(), ".", 0, 0))
	} else if st.RunningMode == simulation.RunningStateRun {
		if st.IterationNum > 0 && st.IterationNum%10 == 0 {
			fmt.Fprintf(c.w, "  Iterations done: %v, live cells: %v\n", st.IterationNum, st.LiveCells)
		}
	}
}

func (c *ConsoleOut) Register(s *simulation.Simulation) {
	c.s = s
	o := s.Options()
	a := s.Snapshot()
	fmt.Fprintln(c.w, c.au.Cyan("Running configuration:"))
	c.printHashData(map[string]interface{}{
		"Dimension":        fmt.Sprintf("%v x %v", a.Width, a.Height),
		"Interval":         o.Interval,
		"Max iterations":   fmt.Sprintf("%v steps", o.MaxSteps),
		"Stop when stable": o.StopWhenStable,
	})
}

//Start marks the beginning of the run, the caller drives the simulation
func (c *ConsoleOut) Start() error {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
	return nil
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
