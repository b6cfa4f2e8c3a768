package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/config"
	"github.com/ja-he/featedit/internal/control"
	"github.com/ja-he/featedit/internal/control/action"
	"github.com/ja-he/featedit/internal/control/modify"
	"github.com/ja-he/featedit/internal/input"
	"github.com/ja-he/featedit/internal/mapview"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/potatolog"
	"github.com/ja-he/featedit/internal/storage"
	"github.com/ja-he/featedit/internal/styling"
	"github.com/ja-he/featedit/internal/tui"
	"github.com/ja-he/featedit/internal/ui"
	"github.com/ja-he/featedit/internal/ui/panes"
)

const statusHeight = 1

// Screen is what the controller needs of the terminal screen.
type Screen interface {
	ui.Renderer
	ui.RenderOrchestratorControl
	tui.EventPollable
	tui.InitializedScreen
	tui.ScreenSynchronizer

	Dimensions() (x, y, w, h int)
}

// Controller is the struct for the TUI controller.
type Controller struct {
	m      *mapview.Map
	editor *control.Editor
	modify *modify.Control

	rootPane ui.Pane
	keys     input.Processor

	screen           Screen
	controllerEvents chan controllerEvent
}

// NewController creates a new Controller editing the features of the given
// source on the given screen.
func NewController(
	source storage.FeatureSource,
	configData config.Config,
	stylesheet styling.Stylesheet,
	screen Screen,
) (*Controller, error) {
	c := &Controller{
		screen:           screen,
		editor:           control.NewEditor(),
		controllerEvents: make(chan controllerEvent, 32),
	}

	_, _, w, h := screen.Dimensions()
	view := mapview.View{Resolution: configData.Resolution, Width: w, Height: h - statusHeight}
	if features := source.Features(); len(features) > 0 {
		view.Fit(extentOf(features))
	}
	c.m = mapview.New(view, configData.HitTolerance)
	c.m.AddLayer(&mapview.Layer{Source: source, Style: stylesheet.Layer})

	var err error
	c.modify, err = modify.New(modify.Options{
		Map:          c.m,
		Source:       source,
		Editor:       c.editor,
		GeometryType: configData.GeometryType,
		Style:        stylesheet.Select,
		ModifyStyle:  stylesheet.Modify,
		DeleteKey:    input.Keyspec(configData.Keys.Delete),
	})
	if err != nil {
		return nil, fmt.Errorf("could not set up modify control: %w", err)
	}
	c.editor.AddControl(c.modify)

	keys, err := input.ConstructInputTree(c.keyMappings(configData.Keys))
	if err != nil {
		return nil, fmt.Errorf("invalid key configuration: %w", err)
	}
	c.keys = keys
	for _, help := range []input.Help{c.keys.GetHelp(), c.modify.Help()} {
		for sequence, explanation := range help {
			log.Debug().Str("keys", sequence).Str("action", explanation).Msg("key binding")
		}
	}

	mapDimensions := func() (x, y, w, h int) {
		x, y, w, h = screen.Dimensions()
		return x, y, w, h - statusHeight
	}
	statusDimensions := func() (x, y, w, h int) {
		x, y, w, h = screen.Dimensions()
		return x, y + h - statusHeight, w, statusHeight
	}
	c.rootPane = panes.NewRootPane(
		screen,
		screen.Dimensions,
		panes.NewMapPane(
			ui.NewConstrainedRenderer(screen, mapDimensions),
			mapDimensions,
			stylesheet,
			c.m,
			c.modify.Selection().Contains,
			c.modify.Overlay().Features,
		),
		panes.NewStatusPane(
			ui.NewConstrainedRenderer(screen, statusDimensions),
			statusDimensions,
			stylesheet,
			c.modeString,
			c.editor.EditFeature,
			func() string { return c.m.TargetElement().Cursor },
			&potatolog.GlobalMemoryLogReaderWriter,
		),
	)

	c.editor.Activate(c.modify)
	return c, nil
}

func (c *Controller) keyMappings(keys config.Keys) map[input.Keyspec]action.Action {
	pan := func(dx, dy int) func() {
		return func() { c.m.View.Pan(dx, dy) }
	}
	return map[input.Keyspec]action.Action{
		input.Keyspec(keys.Quit): action.New("quit", func() {
			c.controllerEvents <- controllerEventExit
		}),
		input.Keyspec(keys.Toggle): action.New("toggle the modify control", func() {
			c.editor.Toggle(c.modify)
		}),
		input.Keyspec(keys.Left):    action.New("pan left", pan(-1, 0)),
		input.Keyspec(keys.Right):   action.New("pan right", pan(1, 0)),
		input.Keyspec(keys.Up):      action.New("pan up", pan(0, -1)),
		input.Keyspec(keys.Down):    action.New("pan down", pan(0, 1)),
		input.Keyspec(keys.ZoomIn):  action.New("zoom in", func() { c.m.View.Zoom(0.5) }),
		input.Keyspec(keys.ZoomOut): action.New("zoom out", func() { c.m.View.Zoom(2) }),
	}
}

func (c *Controller) modeString() string {
	if !c.modify.Active() {
		return "INACTIVE"
	}
	return c.modify.Mode().String()
}

// handleEvent processes a single screen event and returns whether a redraw is
// due.
func (c *Controller) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key := input.KeyFromTcell(e)
		if c.keys.ProcessInput(key) {
			return true
		}
		c.m.DispatchKey(key)

	case *tcell.EventMouse:
		x, y := e.Position()
		_, _, _, h := c.screen.Dimensions()
		if y >= h-statusHeight {
			return false
		}
		pressed := e.Buttons()&tcell.Button1 != 0
		c.m.HandlePointer(pressed, mapview.Pixel{X: x, Y: y})

	case *tcell.EventResize:
		w, h := e.Size()
		c.m.View.Width, c.m.View.Height = w, h-statusHeight
		c.screen.NeedsSync()

	default:
		return false
	}
	return true
}

type controllerEvent int

const (
	_ controllerEvent = iota
	controllerEventExit
	controllerEventRender
)

// Empties all render events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				{
					// dump extra render events
				}
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the TUI until it is quit.
// Events are polled on a separate goroutine but handled, like all rendering,
// on the calling one.
func (c *Controller) Run() {
	log.Info().Msg("featedit TUI started")

	screenEvents := make(chan tcell.Event, 32)
	done := make(chan struct{})

	defer c.screen.Fini()
	defer c.editor.Dispose()
	defer close(done)

	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case screenEvents <- ev:
			case <-done:
				return
			}
		}
	}()

	c.controllerEvents <- controllerEventRender
	for {
		select {
		case controllerEvent := <-c.controllerEvents:
			switch controllerEvent {
			case controllerEventRender:
				// empty all further render events before rendering, exiting if an
				// exit event was coming up
				if emptyRenderEvents(c.controllerEvents) {
					return
				}
				c.rootPane.Draw()

			case controllerEventExit:
				log.Info().Msg("featedit TUI exiting")
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}

		case ev := <-screenEvents:
			if c.handleEvent(ev) {
				c.controllerEvents <- controllerEventRender
			}
		}
	}
}

func extentOf(features []*model.Feature) orb.Bound {
	var b orb.Bound
	first := true
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		if first {
			b, first = f.Extent(), false
			continue
		}
		b = b.Union(f.Extent())
	}
	return b
}
