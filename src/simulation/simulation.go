package simulation

import (
	"slices"
	"sync"
	"time"

	"galaxylife/src/universe"
)

//Area is a copy of the universe's field, safe to keep across ticks
type Area struct {
	Width    int
	Height   int
	Entities [][]universe.Cell
}

//Options represents the simulation's configurable options
type Options struct {
	Interval       time.Duration
	MaxSteps       int
	StopWhenStable bool
}

//Status represents the status of the simulation at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(s *Simulation)
	Start() error
}

//The simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var DefaultOptions = Options{
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
}

//Simulation drives one Universe
//every command is executed by the single main loop goroutine, so the universe is never ticked concurrently
//readers get copies through Snapshot
type Simulation struct {
	options Options
	mu      sync.Mutex //guards u and status
	u       *universe.Universe
	status  Status
	newU    func() *universe.Universe
	stateCh chan Status
	views   []Viewer

	controlCh chan func()
	closeCh   chan struct{}
	closeOnce sync.Once
	done      sync.WaitGroup
	runStop   chan struct{} //non nil while the run loop is active, owned by the main loop
}

//New creates the Simulation around the universe built by newU
//newU is called again on Reset
//stateCh may be nil, otherwise every status change is written to it and the reader must keep up
func New(newU func() *universe.Universe, o Options, stateCh chan Status) *Simulation {
	s := &Simulation{
		options:   o,
		u:         newU(),
		newU:      newU,
		stateCh:   stateCh,
		controlCh: make(chan func()),
		closeCh:   make(chan struct{}),
	}
	s.status.LiveCells = s.u.LiveCells()
	s.done.Add(1)
	go s.mainLoop()
	return s
}

//RegisterViewer registers the viewer - the simulation will call the viewer when the state is changed
//must be called before the first command
func (s *Simulation) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel with the status updates
func (s *Simulation) StateCh() chan Status {
	return s.stateCh
}

//Status returns current status
func (s *Simulation) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Simulation) Options() Options {
	return s.options
}

//Snapshot copies the current generation
func (s *Simulation) Snapshot() Area {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := createArea(int(s.u.Width()), int(s.u.Height()))
	for y, row := range s.u.Rows() {
		copy(a.Entities[y], row)
	}
	return a
}

//Run starts the simulation, returns immediately
//the simulation stops on Stop() or when a finishing condition is reached
func (s *Simulation) Run() {
	s.send(s.run)
}

//Stop stops the simulation, returns immediately
func (s *Simulation) Stop() {
	s.send(s.stop)
}

//Step does one generation, returns immediately
//the Status will be written to the stateCh on start and on finish
func (s *Simulation) Step() {
	s.send(s.step)
}

//Reset replaces the universe with a fresh one and resets all counters, returns immediately
func (s *Simulation) Reset() {
	s.send(s.reset)
}

//Close stops the main loop and waits for it
func (s *Simulation) Close() {
	s.closeOnce.Do(func() { close(s.closeCh) })
	s.done.Wait()
}

//send passes the command to the main loop, commands sent after Close are dropped
func (s *Simulation) send(cmd func()) {
	select {
	case s.controlCh <- cmd:
	case <-s.closeCh:
	}
}

//mainLoop waits for command and executes
func (s *Simulation) mainLoop() {
	defer s.done.Done()
	for {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case <-s.closeCh:
			s.haltRunLoop()
			return
		}
	}
}

//switchRunningState switch the state to RunningState
//also writes the new state to the stateCh to signal upper control software
func (s *Simulation) switchRunningState(to RunningState) {
	s.mu.Lock()
	s.status.RunningMode = to
	st := s.status
	s.mu.Unlock()
	if s.stateCh != nil {
		select {
		case s.stateCh <- st:
		case <-s.closeCh:
		}
	}
}

func (s *Simulation) runningMode() RunningState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status.RunningMode
}

func (s *Simulation) run() {
	if s.runStop != nil || s.runningMode() == RunningStateFinished {
		return
	}
	s.runStop = make(chan struct{})
	s.switchRunningState(RunningStateRun)
	go s.runLoop(s.runStop)
}

//runLoop feeds the main loop with steps at the configured interval
func (s *Simulation) runLoop(stop <-chan struct{}) {
	for {
		select {
		case s.controlCh <- s.runStep:
		case <-stop:
			return
		case <-s.closeCh:
			return
		}
		if s.options.Interval <= 0 {
			continue
		}
		t := time.NewTimer(s.options.Interval)
		select {
		case <-t.C:
		case <-stop:
			t.Stop()
			return
		case <-s.closeCh:
			t.Stop()
			return
		}
	}
}

//runStep is the step queued by the run loop, it may arrive after Stop and is dropped then
func (s *Simulation) runStep() {
	if s.runStop == nil {
		return
	}
	s.step()
}

func (s *Simulation) stop() {
	if s.runStop == nil {
		return
	}
	s.haltRunLoop()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

func (s *Simulation) haltRunLoop() {
	if s.runStop != nil {
		close(s.runStop)
		s.runStop = nil
	}
}

//step calculates the next generation
//afterwards the simulation goes back to Run or Manual unless a finishing condition is reached
func (s *Simulation) step() {
	if s.runningMode() == RunningStateFinished {
		return
	}
	s.switchRunningState(RunningStateStep)

	start := time.Now()
	s.mu.Lock()
	var prev []universe.Cell
	if s.options.StopWhenStable {
		prev = slices.Clone(s.u.Cells())
	}
	s.u.Tick()
	s.status.IterationNum++
	s.status.LiveCells = s.u.LiveCells()
	s.status.IterationTime = time.Since(start)
	finished := s.status.LiveCells == 0 ||
		(s.options.MaxSteps > 0 && s.status.IterationNum >= s.options.MaxSteps) ||
		(prev != nil && slices.Equal(prev, s.u.Cells()))
	s.mu.Unlock()

	rm := RunningStateManual
	if s.runStop != nil {
		rm = RunningStateRun
	}
	if finished {
		s.haltRunLoop()
		rm = RunningStateFinished
	}
	s.switchRunningState(rm)
	s.refreshView()
}

//reset replaces the universe and resets all counters
func (s *Simulation) reset() {
	s.haltRunLoop()
	s.mu.Lock()
	s.u = s.newU()
	s.status = Status{LiveCells: s.u.LiveCells()}
	s.mu.Unlock()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//refreshView calls Refresh event for all registered views
func (s *Simulation) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}

//createArea allocate the new area, the rows share one buffer
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]universe.Cell, height)}
	b := make([]universe.Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}
