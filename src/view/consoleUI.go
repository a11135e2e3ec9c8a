package view

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"galaxylife/src/simulation"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal viewer, it also controls the simulation by key bindings
type ConsoleUI struct {
	s *simulation.Simulation
	g *gocui.Gui
	k []keyBindings

	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[simulation.RunningState]string{
		simulation.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		simulation.RunningStateStep:     "do the step",
		simulation.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		simulation.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewConsoleUI() (*ConsoleUI, error) {
	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to init terminal")
	}

	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdNextRound, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Reset", t.cmdReset, ""},
	}
	t.g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return errors.Wrapf(err, "[initKeyBindings] key %v", kb.name)
		}
	}
	return nil
}

func (t *ConsoleUI) Register(s *simulation.Simulation) {
	t.s = s
}

//Start runs the terminal main loop until the user quits
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[ConsoleUI.Start] main loop")
	}
	return nil
}

func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {
	a := t.s.Snapshot()
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("field")
		if e != nil {
			return e
		}
		t.drawField(v, a)
		return nil
	})
}

//drawField redraws the entire field at once
func (t *ConsoleUI) drawField(v *gocui.View, a simulation.Area) {
	v.Clear()
	maxW, maxH := v.Size()
	if a.Width > maxW || a.Height > maxH {
		_, _ = fmt.Fprintln(v, Render(a, t.liveFiller, t.deadFiller, maxW, maxH-1))
		_, _ = fmt.Fprint(v, aurora.Red("The field size is larger than the viewing area").BgBlack().String())
		return
	}
	_, _ = fmt.Fprint(v, Render(a, t.liveFiller, t.deadFiller, 0, 0))
}

func (t *ConsoleUI) renderStatus() {
	s := t.s.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.IterationNum))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	c := t.s.Options()
	a := t.s.Snapshot()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", a.Width, a.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
			_, _ = fmt.Fprintln(v, t.renderProp("Stop when stable", "%v", c.StopWhenStable))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Game of Life: galaxy and spaceship"); err != nil && err != gocui.ErrUnknownView {
		return err
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
		t.drawField(v, t.s.Snapshot())
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpLine())
	}

	return nil
}

func (t *ConsoleUI) helpLine() string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, k := range t.k {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.s.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.s.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.s.Stop()
	return nil
}

func (t *ConsoleUI) cmdReset(_ *gocui.View) error {
	t.s.Reset()
	return nil
}
