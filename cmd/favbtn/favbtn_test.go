package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/agiangrant/favorite"
	"github.com/agiangrant/favorite/anim"
	"github.com/agiangrant/favorite/geometry"
)

func TestWriteSamples(t *testing.T) {
	timelines := favorite.BuildTimelines(geometry.Build(geometry.R(0, 0, 80, 80)), nil, nil)

	var buf bytes.Buffer
	if err := writeSamples(&buf, []*anim.Timeline{timelines.LineOpacity}, time.Second, 2); err != nil {
		t.Fatalf("writeSamples() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{favorite.TimelineLineOpacity, "opacity", "1.000", "0.000", "500ms", "1s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSamplesRejectsZeroSteps(t *testing.T) {
	timelines := favorite.BuildTimelines(geometry.Build(geometry.R(0, 0, 80, 80)), nil, nil)
	if err := writeSamples(&bytes.Buffer{}, timelines.All(), time.Second, 0); err == nil {
		t.Error("writeSamples() accepted zero steps")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    anim.Value
		want string
	}{
		{anim.Scalar(0.25), "0.250"},
		{anim.Scale(1.2), "scale 1.200, 1.200"},
		{anim.Transform{SX: 2, SY: 2, TX: -4, TY: 1.5}, "scale 2.000, 2.000  move -4.00, 1.50"},
		{anim.RGB(255, 172, 51), "#FFAC33FF"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.v); got != tt.want {
			t.Errorf("formatValue(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command error = %v", err)
	}
	for _, want := range []string{"[button]", "duration", "[timelines]", "[log]"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("config output missing %q", want)
		}
	}
}

func TestHeartIcon(t *testing.T) {
	icon := heartIcon(32)
	if got := icon.Bounds().Dx(); got != 32 {
		t.Fatalf("width = %d, want 32", got)
	}

	tests := []struct {
		name   string
		x, y   int
		opaque bool
	}{
		{"center", 16, 16, true},
		{"left lobe", 9, 9, true},
		{"top notch", 16, 1, false},
		{"corner", 0, 0, false},
		{"bottom corner", 31, 31, false},
	}
	for _, tt := range tests {
		got := icon.AlphaAt(tt.x, tt.y).A == 0xFF
		if got != tt.opaque {
			t.Errorf("%s (%d,%d) opaque = %v, want %v", tt.name, tt.x, tt.y, got, tt.opaque)
		}
	}

	if heartIcon(0).Bounds().Dx() != 0 {
		t.Error("zero size icon should be empty")
	}
}

func newTestDemo(t *testing.T) *demo {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 41)
	return newDemo(screen, favorite.DefaultTheme(), zap.NewNop(), nil)
}

func TestDemoLayoutCentersButton(t *testing.T) {
	d := newTestDemo(t)
	// 80x40 cells for the button, the last row is the status line.
	if d.area != geometry.R(0, 0, 80, 40) {
		t.Errorf("area = %+v, want the full screen above the status line", d.area)
	}
}

func TestDemoKeysToggle(t *testing.T) {
	d := newTestDemo(t)

	if !d.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !d.button.Selected() {
		t.Error("space should select")
	}
	d.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if d.button.Selected() {
		t.Error("enter should deselect")
	}
	if d.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
}

func TestDemoMouseTouchPhases(t *testing.T) {
	d := newTestDemo(t)
	cx, cy := 40, 20

	d.handle(tcell.NewEventMouse(cx, cy, tcell.Button1, tcell.ModNone))
	if d.button.Alpha() != favorite.DefaultDimAlpha {
		t.Errorf("pressed alpha = %v, want %v", d.button.Alpha(), favorite.DefaultDimAlpha)
	}

	// Dragging off and releasing cancels.
	d.handle(tcell.NewEventMouse(79, 40, tcell.Button1, tcell.ModNone))
	if d.button.Alpha() != 1 {
		t.Errorf("alpha after drag exit = %v, want 1", d.button.Alpha())
	}
	d.handle(tcell.NewEventMouse(79, 40, tcell.ButtonNone, tcell.ModNone))
	if d.button.Selected() {
		t.Error("release outside should not toggle")
	}

	// Click inside toggles.
	d.handle(tcell.NewEventMouse(cx, cy, tcell.Button1, tcell.ModNone))
	d.handle(tcell.NewEventMouse(cx, cy, tcell.ButtonNone, tcell.ModNone))
	if !d.button.Selected() {
		t.Error("click should select")
	}
}

func TestDemoDrawStatusLine(t *testing.T) {
	d := newTestDemo(t)
	d.status = "config reloaded"
	d.draw()

	var line strings.Builder
	for x := 0; x < 80; x++ {
		r, _, _, _ := d.screen.GetContent(x, 40)
		line.WriteRune(r)
	}
	if !strings.Contains(line.String(), "favorite: off") {
		t.Errorf("status line = %q", line.String())
	}
}
