package cli

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propgrid/internal/config"
	"github.com/ja-he/propgrid/internal/control/action"
	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/grid"
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/input/processors"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/tui"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/ui/panes"
)

// Controller is the struct for the TUI controller.
type Controller struct {
	rootPane *panes.RootPane

	controllerEvents chan controllerEvent

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
}

// NewController creates a new Controller over the given rows, with editors
// from the given registry.
func NewController(
	stylesheet styling.Stylesheet,
	keys config.KeyBindings,
	registry *edit.Registry,
	rows []*grid.Row,
) (*Controller, error) {
	controller := Controller{
		controllerEvents: make(chan controllerEvent, 32),
	}

	screenHandler, err := tui.NewScreenHandler()
	if err != nil {
		return nil, fmt.Errorf("could not set up screen (%w)", err)
	}
	controller.screenEvents = screenHandler.GetEventPollable()
	controller.initializedScreen = screenHandler
	controller.syncer = screenHandler

	cursorWrangler := ui.NewCursorWrangler(screenHandler)

	propGrid := grid.NewGrid(registry, stylesheet, rows)

	statusHeight := 2
	screenDimensions := screenHandler.Dimensions
	gridDimensions := func() (x, y, w, h int) {
		x, y, w, h = screenDimensions()
		return x, y, w, h - statusHeight
	}
	statusDimensions := func() (x, y, w, h int) {
		x, y, w, h = screenDimensions()
		return x, y + h - statusHeight, w, statusHeight
	}
	helpDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		helpW, helpH := screenW-screenW/8, screenH-screenH/8
		return screenX + (screenW-helpW)/2, screenY + (screenH-helpH)/2, helpW, helpH
	}

	showHelp := false

	// referenced from the action closures below, assigned once constructed
	var gridPane *panes.GridPane

	beginEdit := func() {
		if propGrid.Editing() {
			log.Warn().Msg("asked to begin an edit although one is active; likely logic error")
			return
		}
		if err := propGrid.BeginEdit(); err != nil {
			log.Warn().Msgf("could not begin edit (%s)", err.Error())
			return
		}

		var overlayIndex uint
		endSession := func(end func()) func() {
			return func() {
				end()
				gridPane.PopModalOverlays(overlayIndex)
			}
		}
		sessionSpec := map[input.Keyspec]action.Action{}
		for keyspec, actionName := range keys.Session {
			var do func()
			switch actionName {
			case "commit":
				do = endSession(propGrid.EndEdit)
			case "cancel":
				do = endSession(propGrid.CancelEdit)
			case "press-button-1":
				do = func() { propGrid.PressButton(0) }
			case "press-button-2":
				do = func() { propGrid.PressButton(1) }
			default:
				log.Warn().Msgf("unknown session action '%s' bound to '%s'", actionName, keyspec)
				continue
			}
			explanation := sessionActionExplanation(actionName)
			sessionSpec[input.Keyspec(keyspec)] = action.NewSimple(func() string { return explanation }, do)
		}
		sessionProcessor, err := processors.NewEditInputProcessor(sessionSpec, propGrid.HandleEditKey)
		if err != nil {
			log.Error().Msgf("could not construct session input processor (%s)", err.Error())
			propGrid.CancelEdit()
			return
		}
		overlayIndex = gridPane.ApplyModalOverlay(sessionProcessor)
	}

	gridSpec := map[input.Keyspec]action.Action{}
	for keyspec, actionName := range keys.Grid {
		var do func()
		switch actionName {
		case "next-row":
			do = propGrid.SelectNextRow
		case "prev-row":
			do = propGrid.SelectPrevRow
		case "begin-edit":
			do = beginEdit
		case "set-unspecified":
			do = propGrid.SetSelectedUnspecified
		case "toggle-help":
			do = func() { showHelp = !showHelp }
		case "quit":
			do = func() { controller.controllerEvents <- controllerEventExit }
		default:
			log.Warn().Msgf("unknown grid action '%s' bound to '%s'", actionName, keyspec)
			continue
		}
		explanation := gridActionExplanation(actionName)
		gridSpec[input.Keyspec(keyspec)] = action.NewSimple(func() string { return explanation }, do)
	}
	gridInputTree, err := input.ConstructInputTree(gridSpec)
	if err != nil {
		return nil, fmt.Errorf("could not construct grid input tree (%w)", err)
	}

	hideHelp := action.NewSimple(func() string { return "close this help" }, func() { showHelp = false })
	helpInputTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"?":     hideHelp,
		"<esc>": hideHelp,
	})
	if err != nil {
		return nil, fmt.Errorf("could not construct help input tree (%w)", err)
	}

	gridPane = panes.NewGridPane(
		ui.NewConstrainedRenderer(screenHandler, gridDimensions),
		gridDimensions,
		stylesheet,
		processors.NewModalInputProcessor(gridInputTree),
		propGrid,
		cursorWrangler,
	)
	statusPane := panes.NewStatusPane(
		ui.NewConstrainedRenderer(screenHandler, statusDimensions),
		statusDimensions,
		stylesheet,
		propGrid,
	)
	helpPane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(screenHandler, helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return showHelp },
		processors.NewModalInputProcessor(helpInputTree),
	)
	helpPane.Content = input.Help{}
	for mapping, explanation := range gridInputTree.GetHelp() {
		helpPane.Content[mapping] = explanation
	}
	for keyspec, actionName := range keys.Session {
		helpPane.Content[keyspec] = "(editing) " + sessionActionExplanation(actionName)
	}

	controller.rootPane = panes.NewRootPane(
		screenHandler,
		cursorWrangler,
		screenDimensions,
		processors.NewModalInputProcessor(input.EmptyTree()),
		gridPane,
		statusPane,
		helpPane,
	)

	return &controller, nil
}

func gridActionExplanation(actionName string) string {
	switch actionName {
	case "next-row":
		return "select the next row"
	case "prev-row":
		return "select the previous row"
	case "begin-edit":
		return "begin editing the selected row"
	case "set-unspecified":
		return "clear the selected row's value"
	case "toggle-help":
		return "toggle this help"
	case "quit":
		return "exit program"
	default:
		return actionName
	}
}

func sessionActionExplanation(actionName string) string {
	switch actionName {
	case "commit":
		return "commit the edit and end the session"
	case "cancel":
		return "cancel the edit, discarding any change"
	case "press-button-1":
		return "press the editor's first button"
	case "press-button-2":
		return "press the editor's second button"
	default:
		return actionName
	}
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
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

// Run runs the controller until the program is exited.
func (c *Controller) Run() {
	log.Info().Msg("propgrid demo started")

	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted
	// accordingly.
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.initializedScreen.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				// empty all further render events before rendering
				if emptyRenderEvents(c.controllerEvents) {
					return
				}
				c.rootPane.Draw()

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	// Run the event tracking loop, that waits for and processes events and
	// pings for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()

			switch e := ev.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				inputApplied := c.rootPane.ProcessInput(key)
				if !inputApplied {
					log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
				}
			case *tcell.EventResize:
				c.syncer.NeedsSync()
			}

			c.controllerEvents <- controllerEventRender
		}
	}()

	c.controllerEvents <- controllerEventRender
	wg.Wait()
}
