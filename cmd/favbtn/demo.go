package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/favorite"
	"github.com/agiangrant/favorite/config"
	"github.com/agiangrant/favorite/geometry"
	"github.com/agiangrant/favorite/render/term"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	buttonSize    = 80
	iconSize      = 64
)

var (
	demoWatch bool
	demoMute  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the favorite button in the terminal",
	Long: `Draws the button with true-color half blocks.
space/enter or a click toggles it, q or esc quits.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVarP(&demoWatch, "watch", "w", false, "reload the config file when it changes")
	demoCmd.Flags().BoolVar(&demoMute, "mute", false, "do not play a tone on select")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	// The screen belongs to tcell; logs only go to the configured file.
	cfg, logger, closeLog, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := cfg.Theme()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	var sound *chime
	if !demoMute {
		if sound, err = newChime(); err != nil {
			// Non-fatal, the demo runs without sound
			logger.Warn("audio init failed", zap.Error(err))
		}
		defer sound.close()
	}

	d := newDemo(screen, theme, logger, sound)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if demoWatch {
		go func() {
			err := config.Watch(ctx, configPath, func(cfg *config.Config, err error) {
				select {
				case d.reloads <- reload{cfg: cfg, err: err}:
				case <-ctx.Done():
				}
			})
			if err != nil {
				logger.Warn("config watch stopped", zap.Error(err))
			}
		}()
	}

	return d.run(ctx)
}

type reload struct {
	cfg *config.Config
	err error
}

type demo struct {
	screen  tcell.Screen
	button  *favorite.Button
	surface *term.Surface
	logger  *zap.Logger
	reloads chan reload

	// Button area in cells, for hit testing
	area    geometry.Rect
	pressed bool
	inside  bool
	status  string
}

func newDemo(screen tcell.Screen, theme favorite.Theme, logger *zap.Logger, sound *chime) *demo {
	d := &demo{
		screen:  screen,
		logger:  logger,
		reloads: make(chan reload, 1),
		surface: term.New(screen),
	}
	d.button = favorite.New(geometry.R(0, 0, buttonSize, buttonSize), heartIcon(iconSize),
		favorite.WithTheme(theme),
		favorite.WithLogger(logger.Named("button")))
	d.button.OnChange(func(selected bool) {
		if selected {
			sound.play()
		}
		logger.Info("selection changed", zap.Bool("selected", selected))
	})
	d.layout()
	return d
}

// layout centers the button in the screen, leaving a row for the status.
func (d *demo) layout() {
	w, h := d.screen.Size()
	frame := d.button.Frame()
	d.surface.SetScale(term.FitScale(frame, w, h-1))
	cols, rows := d.surface.Size(frame)
	x, y := (w-cols)/2, (h-1-rows)/2
	d.surface.SetOrigin(x, y)
	d.area = geometry.R(float64(x), float64(y), float64(cols), float64(rows))
}

func (d *demo) run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go d.screen.ChannelEvents(events, quit)
	defer close(quit)

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !d.handle(ev) {
				return nil
			}
		case r := <-d.reloads:
			d.apply(r)
		case <-ticker.C:
			d.draw()
		}
	}
}

// handle processes one event and reports whether the demo keeps running.
func (d *demo) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			d.button.Touch(favorite.TouchDown).Touch(favorite.TouchUpInside)
		}
	case *tcell.EventMouse:
		d.mouse(ev)
	case *tcell.EventResize:
		d.screen.Sync()
		d.layout()
	}
	return true
}

// mouse turns raw button state into touch phases.
func (d *demo) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	inside := d.area.Contains(geometry.Point{X: float64(x), Y: float64(y)})
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !d.pressed:
		if inside {
			d.pressed, d.inside = true, true
			d.button.Touch(favorite.TouchDown)
		}
	case down && d.pressed:
		if inside != d.inside {
			d.inside = inside
			if inside {
				d.button.Touch(favorite.TouchDragEnter)
			} else {
				d.button.Touch(favorite.TouchDragExit)
			}
		}
	case !down && d.pressed:
		d.pressed = false
		if inside {
			d.button.Touch(favorite.TouchUpInside)
		} else {
			d.button.Touch(favorite.TouchCancel)
		}
	}
}

func (d *demo) apply(r reload) {
	if r.err != nil {
		d.status = "config error: " + r.err.Error()
		d.logger.Warn("config reload failed", zap.Error(r.err))
		return
	}
	theme, err := r.cfg.Theme()
	if err != nil {
		d.status = "config error: " + err.Error()
		return
	}
	d.button.ApplyTheme(theme)
	d.status = "config reloaded"
	d.logger.Info("config reloaded", zap.Duration("duration", theme.Duration))
}

func (d *demo) draw() {
	d.screen.Clear()
	snap := d.button.Snapshot()
	d.surface.Draw(&snap)

	state := "off"
	if snap.Selected {
		state = "on"
	}
	line := fmt.Sprintf(" favorite: %s  duration: %v  [space] toggle  [q] quit", state, d.button.Duration())
	if d.status != "" {
		line += "  " + d.status
	}
	_, h := d.screen.Size()
	drawText(d.screen, 0, h-1, line, tcell.StyleDefault.Foreground(tcell.ColorGray))
	d.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
