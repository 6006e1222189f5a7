package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkstorm/internal/board"
	"github.com/dshills/inkstorm/internal/canvas"
	"github.com/dshills/inkstorm/internal/config"
	"github.com/dshills/inkstorm/internal/event"
	"github.com/dshills/inkstorm/internal/input"
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/palette"
)

// demoPointerID is the single mouse pointer the terminal reports.
const demoPointerID = 1

// app owns the demo's screen, document, and input wiring.
type app struct {
	opts    options
	logger  *Logger
	logFile *os.File

	screen  tcell.Screen
	bus     *event.Bus
	router  *input.Router
	editor  *board.Editor
	store   *board.Store
	colors  *palette.Store
	watcher *config.Watcher

	lastButtons tcell.ButtonMask
	lastPos     canvas.Point

	// menu is the open context menu, nil when closed.
	menu *contextMenu

	quit bool
}

// contextMenu is the host's native right-click menu, rendered against
// whatever the selection is when the menu event arrives.
type contextMenu struct {
	at    canvas.Point
	items []string
}

// configEvent carries a reloaded configuration into the event loop so
// retuning happens on the input goroutine.
type configEvent struct {
	tcell.EventTime
	cfg config.Config
}

func newApp(opts options) (*app, error) {
	a := &app{opts: opts}

	logFile, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	a.logFile = logFile

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	a.logger = NewLogger(logFile, ParseLogLevel(level))

	a.store, err = board.NewStore(opts.boardDir)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	doc, err := a.openBoard()
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	a.colors = palette.DefaultStore()
	a.editor = board.NewEditor(doc)

	a.bus = event.NewBus()
	a.bus.PanicHandler = func(ev pointer.Event, v any) {
		a.logger.Error("listener panic on %s: %v", ev.Phase, v)
	}
	a.router = input.NewRouter(a.editor, cfg.InputConfig())

	// Input layer first, at the capture phase.
	a.bus.SubscribeCapture(func(ev pointer.Event, prop *event.Propagation) {
		if a.router.HandleEvent(ev) == pointer.VerdictConsumed {
			prop.Stop()
		}
	})
	// Host default handlers run at the target phase, only for events the
	// input layer delegated.
	a.bus.Subscribe(a.hostHandler)

	a.watcher, err = config.NewWatcher(opts.configPath, a.postConfig,
		config.WithErrorHandler(func(err error) {
			a.logger.Warn("config reload: %v", err)
		}))
	if err != nil {
		// Live retuning is a convenience; run without it.
		a.logger.Warn("config watcher unavailable: %v", err)
	}

	a.logger.Info("opened board %s (%d shapes)", doc.ID, len(doc.Shapes()))
	return a, nil
}

// openBoard loads the requested board or builds the demo document.
func (a *app) openBoard() (*board.Document, error) {
	if a.opts.boardID != "" {
		return a.store.Load(a.opts.boardID)
	}

	doc := board.NewDocument("demo")
	doc.AddShape(board.Shape{Kind: board.KindRect, X: 10, Y: 5, W: 24, H: 8, Color: "#0074d9"})
	doc.AddShape(board.Shape{Kind: board.KindEllipse, X: 44, Y: 10, W: 18, H: 7, Color: "#2ecc40"})
	doc.AddShape(board.Shape{Kind: board.KindNote, X: 26, Y: 16, W: 14, H: 6, Color: "#ffdc00"})
	return doc, nil
}

// Run initializes the screen and drives the event loop until quit.
func (a *app) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	a.screen = screen

	for !a.quit {
		a.render()
		a.handleTcellEvent(screen.PollEvent())
	}
	return nil
}

// Shutdown releases the screen, saves the board, and closes resources.
func (a *app) Shutdown() {
	if a.screen != nil {
		a.screen.Fini()
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.editor != nil {
		if err := a.store.Save(a.editor.Document()); err != nil {
			a.logger.Error("saving board: %v", err)
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// postConfig hands a reloaded config to the event loop.
func (a *app) postConfig(cfg config.Config) {
	if a.screen == nil {
		return
	}
	ev := &configEvent{cfg: cfg}
	ev.SetEventNow()
	_ = a.screen.PostEvent(ev) // best-effort; queue may be full
}

func (a *app) handleTcellEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case *configEvent:
		a.router.ApplyConfig(ev.cfg.InputConfig())
		a.logger.SetLevel(ParseLogLevel(ev.cfg.Log.Level))
		a.logger.Info("config reloaded")
	}
}

func (a *app) handleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape && a.menu != nil:
		a.menu = nil
	case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
		a.quit = true
	case ev.Rune() == 's':
		if err := a.store.Save(a.editor.Document()); err != nil {
			a.logger.Error("saving board: %v", err)
		} else {
			a.logger.Info("board saved")
		}
	case ev.Rune() == 'n':
		a.addNoteAtCenter()
	}
}

// addNoteAtCenter drops a sticky note at the center of the viewport.
func (a *app) addNoteAtCenter() {
	w, h := a.screen.Size()
	center := a.editor.Camera().ScreenToPage(canvas.Point{X: float64(w) / 2, Y: float64(h) / 2})

	entry, err := a.colors.FindByName("yellow")
	if err != nil {
		a.logger.Warn("stock yellow missing: %v", err)
		return
	}
	a.editor.Document().AddShape(board.Shape{
		Kind:  board.KindNote,
		X:     center.X - 7,
		Y:     center.Y - 3,
		W:     14,
		H:     6,
		Color: entry.CSS(),
	})
}

// handleMouse translates one tcell mouse event into pointer events and
// dispatches them through the bus. Terminal cells stand in for pixels;
// the 5px default drag threshold works out to 5 cells.
func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := canvas.Point{X: float64(x), Y: float64(y)}
	mods := convertModifiers(ev.Modifiers())
	buttons := ev.Buttons()
	now := time.Now()

	// Any press closes an open menu before the event is interpreted.
	if a.menu != nil && buttons&^a.lastButtons != 0 {
		a.menu = nil
	}

	if wheel := buttons & (tcell.WheelUp | tcell.WheelDown); wheel != 0 {
		deltaY := 120.0
		if wheel&tcell.WheelUp != 0 {
			deltaY = -120.0
		}
		a.dispatch(pointer.Event{
			Phase:      pointer.PhaseWheel,
			Position:   pos,
			WheelDelta: canvas.Point{Y: deltaY},
			Modifiers:  mods,
			PointerID:  demoPointerID,
			Timestamp:  now,
		})
	}

	if !pos.Equal(a.lastPos) {
		a.dispatch(pointer.Event{
			Phase:     pointer.PhaseMove,
			Position:  pos,
			Modifiers: mods,
			PointerID: demoPointerID,
			Timestamp: now,
		})
		a.lastPos = pos
	}

	for _, m := range []struct {
		mask   tcell.ButtonMask
		button pointer.Button
	}{
		{tcell.Button1, pointer.ButtonLeft},
		{tcell.Button2, pointer.ButtonRight},
		{tcell.Button3, pointer.ButtonMiddle},
	} {
		was := a.lastButtons&m.mask != 0
		is := buttons&m.mask != 0
		if is == was {
			continue
		}

		phase := pointer.PhaseDown
		if was {
			phase = pointer.PhaseUp
		}
		a.dispatch(pointer.Event{
			Phase:     phase,
			Button:    m.button,
			Position:  pos,
			Modifiers: mods,
			PointerID: demoPointerID,
			Timestamp: now,
		})

		// The platform emits a context-menu event after a right release.
		if phase == pointer.PhaseUp && m.button == pointer.ButtonRight {
			a.dispatch(pointer.Event{
				Phase:     pointer.PhaseContextMenu,
				Button:    pointer.ButtonRight,
				Position:  pos,
				Modifiers: mods,
				PointerID: demoPointerID,
				Timestamp: now,
			})
		}
	}
	a.lastButtons = buttons
}

func (a *app) dispatch(ev pointer.Event) {
	consumed := a.bus.Dispatch(ev)
	a.logger.Debug("%s at (%.0f,%.0f): %s", ev.Phase, ev.Position.X, ev.Position.Y,
		map[bool]string{true: "consumed", false: "delegated"}[consumed])
}

// hostHandler is the host editor's own input handling, reached only by
// delegated events.
func (a *app) hostHandler(ev pointer.Event, _ *event.Propagation) {
	switch ev.Phase {
	case pointer.PhaseContextMenu:
		a.openMenu(ev.Position)
	case pointer.PhaseDown:
		if ev.Button == pointer.ButtonLeft {
			// Left click selects directly, the host's default behavior.
			page := a.editor.Camera().ScreenToPage(ev.Position)
			if id, ok := a.editor.HitTest(page); ok {
				a.editor.SetSelection([]string{id})
			} else {
				a.editor.SetSelection(nil)
			}
		}
	}
}

func (a *app) openMenu(at canvas.Point) {
	sel := a.editor.Selection()
	items := []string{"Paste", "Select All"}
	if len(sel) > 0 {
		items = []string{
			fmt.Sprintf("Cut (%d)", len(sel)),
			fmt.Sprintf("Copy (%d)", len(sel)),
			"Delete",
			"Bring to Front",
		}
	}
	a.menu = &contextMenu{at: at, items: items}
}

func convertModifiers(m tcell.ModMask) pointer.Modifier {
	var out pointer.Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(pointer.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(pointer.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(pointer.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(pointer.ModMeta)
	}
	return out
}
