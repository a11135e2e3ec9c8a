package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"galaxylife/src/config"
	"galaxylife/src/simulation"
	"galaxylife/src/universe"
	"galaxylife/src/view"
)

var errFinished = errors.New("simulation finished")

func main() {
	cfg, err := initConfig()
	if err != nil {
		log.Fatalf("%+v", err)
	}

	if cfg.Interactive {
		err = runInteractive(cfg)
	} else {
		err = runConsole(cfg)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

//initConfig parses the command line, flags given explicitly win over the config file
func initConfig() (config.Config, error) {
	var configFile string
	flags := config.DefaultConfig()

	flaggy.SetName("galaxylife")
	flaggy.SetDescription("Game of Life on a 23x23 torus seeded with a galaxy and a spaceship")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configFile, "c", "config", "Path to a JSON configuration file")
	flaggy.Duration(&flags.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&flags.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 means no limit")
	flaggy.Bool(&flags.Interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&flags.StopWhenStable, "t", "stopWhenStable", "Finish when a generation equals the previous one")
	flaggy.Parse()

	if configFile == "" {
		return flags, flags.Validate()
	}
	fileCfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fileCfg, errors.Wrap(err, "[initConfig]")
	}
	cfg := mergeFlags(fileCfg, flags)
	return cfg, cfg.Validate()
}

//mergeFlags overrides base with every flag value that differs from the default
func mergeFlags(base config.Config, flags config.Config) config.Config {
	def := config.DefaultConfig()
	if flags.Interval != def.Interval {
		base.Interval = flags.Interval
	}
	if flags.MaxSteps != def.MaxSteps {
		base.MaxSteps = flags.MaxSteps
	}
	if flags.Interactive != def.Interactive {
		base.Interactive = flags.Interactive
	}
	if flags.StopWhenStable != def.StopWhenStable {
		base.StopWhenStable = flags.StopWhenStable
	}
	return base
}

func runInteractive(cfg config.Config) error {
	s := simulation.New(universe.New, cfg.Options(), nil)
	defer s.Close()

	v, err := view.NewConsoleUI()
	if err != nil {
		return err
	}
	s.RegisterViewer(v)
	return v.Start()
}

//runConsole runs the simulation until it finishes or the process is interrupted
func runConsole(cfg config.Config) error {
	stateCh := make(chan simulation.Status, 10) //the buffered channel to getting the simulation status
	s := simulation.New(universe.New, cfg.Options(), stateCh)
	defer s.Close()

	out := view.NewConsoleOut(os.Stdout, true)
	s.RegisterViewer(out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	if err := out.Start(); err != nil {
		return err
	}
	startTime := time.Now()
	s.Run()

	g.Go(func() error {
		return waitFinished(gctx, stateCh)
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			st := s.Status()
			fmt.Printf("\nInterrupted at iteration %v after %v\n", st.IterationNum, time.Since(startTime).Round(time.Millisecond))
		}
		return nil
	})

	if err := g.Wait(); err != nil && err != errFinished {
		return err
	}
	return nil
}

//waitFinished drains the status updates, it returns errFinished to stop the group once the simulation is over
func waitFinished(ctx context.Context, stateCh <-chan simulation.Status) error {
	for {
		select {
		case st := <-stateCh:
			if st.RunningMode == simulation.RunningStateFinished {
				return errFinished
			}
		case <-ctx.Done():
			return nil
		}
	}
}
