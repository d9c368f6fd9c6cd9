package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"rangeslider/internal/logging"
	"rangeslider/internal/slider"
)

const defaultSimulatedTrackWidth = 100

// SimulateCommand replays one drag gesture against a headless host: the
// pointer is held at a fixed distance from where the gesture started while
// the dragged region follows the selection, tick by tick.
type SimulateCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath func() (string, error)
}

func NewSimulateCommand(stdout, stderr io.Writer, configPath func() (string, error)) *SimulateCommand {
	return &SimulateCommand{
		stdout:     stdout,
		stderr:     stderr,
		configPath: configPath,
	}
}

func (c *SimulateCommand) Run(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	path := fs.String("config", "", "config file supplying the range and drag settings")
	kindName := fs.String("kind", "middle", "region to drag: left|right|middle")
	offset := fs.Float64("offset", 20, "pointer distance from the press point, in track units")
	ticks := fs.Int("ticks", 10, "number of ticks to run while the button is held")
	trackWidth := fs.Float64("track-width", 0, "track width (default from config, else 100)")
	poll := fs.Bool("poll", false, "end by letting a tick see the button up instead of releasing")
	level := fs.String("log-level", "info", "log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, ok := slider.ParseKind(strings.ToLower(strings.TrimSpace(*kindName)))
	if !ok {
		return fmt.Errorf("invalid kind %q: must be left, right or middle", *kindName)
	}
	if *ticks < 0 {
		return errors.New("ticks must not be negative")
	}
	cfg, _, err := loadConfig(*path, c.configPath)
	if err != nil {
		return err
	}
	width := *trackWidth
	if width <= 0 {
		width = float64(cfg.UI.TrackWidth)
	}
	if width <= 0 {
		width = defaultSimulatedTrackWidth
	}

	log := logging.New(c.stdout, logging.ParseLevel(*level))
	sim := &simulation{width: width, pressed: true}
	opts := cfg.Drag.Options()
	opts.Logger = log
	ctrl := slider.NewController(slider.NewRangeFromState(cfg.Range.State()), slider.Host{
		Regions: map[slider.Kind]slider.Region{
			kind: simulatedRegion{sim: sim, kind: kind},
		},
		Track:     slider.TrackFunc(func() float64 { return sim.width }),
		Renderer:  slider.RendererFunc(func(o slider.Overlay) { sim.overlay = o }),
		Scheduler: sim,
	}, opts)
	ctrl.SetHooks(slider.Hooks{
		Step: func(g *slider.Gesture, step slider.Step) {
			log.Info("tick",
				logging.F("tick", step.Tick),
				logging.F("moved", step.Moved),
				logging.F("speed", step.Speed),
				logging.F("applied", step.Applied),
				logging.F("start", step.State.Start),
				logging.F("end", step.State.End),
			)
		},
	})
	ctrl.Render()

	sim.pointer = sim.position(kind)
	if !ctrl.Begin(kind) {
		return errors.New("drag refused")
	}
	sim.pointer += *offset

	for i := 0; i < *ticks && ctrl.Dragging(); i++ {
		sim.runNext()
	}
	if *poll {
		sim.pressed = false
		sim.runNext()
	} else {
		ctrl.Release()
	}
	if ctrl.Dragging() {
		return errors.New("gesture still active")
	}
	final := sim.overlay.State
	log.Info("simulation done",
		logging.F("elapsed", sim.elapsed),
		logging.F("start", final.Start),
		logging.F("end", final.End),
	)
	return nil
}

// simulation is the host side of a simulated gesture. Scheduled ticks run
// only when runNext is called.
type simulation struct {
	width   float64
	overlay slider.Overlay
	pointer float64
	pressed bool
	queue   []scheduledTick
	elapsed time.Duration
}

type scheduledTick struct {
	delay time.Duration
	run   func()
}

func (s *simulation) After(d time.Duration, fn func()) {
	s.queue = append(s.queue, scheduledTick{delay: d, run: fn})
}

func (s *simulation) runNext() {
	if len(s.queue) == 0 {
		return
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	s.elapsed += next.delay
	next.run()
}

// position is where region kind currently starts on the track.
func (s *simulation) position(kind slider.Kind) float64 {
	switch kind {
	case slider.RightHandle:
		return s.overlay.TrackWidth - s.overlay.RightHide
	default:
		return s.overlay.LeftHide
	}
}

type simulatedRegion struct {
	sim  *simulation
	kind slider.Kind
}

func (r simulatedRegion) PointerOffset() (float64, bool) {
	return r.sim.pointer - r.sim.position(r.kind), true
}

func (r simulatedRegion) Pressed() bool {
	return r.sim.pressed
}
