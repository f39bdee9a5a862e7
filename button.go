// Package favorite implements a favorite toggle: a two-state control that
// plays a keyframe burst (circle, radiating lines, icon bounce) when it is
// selected and snaps back to rest when it is deselected.
//
// The Button is a plain state-plus-timeline object. It hands bindings to an
// Animator (by default an *anim.Player) and exposes Snapshots that any render
// surface can draw once per frame.
package favorite

import (
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/agiangrant/favorite/anim"
	"github.com/agiangrant/favorite/geometry"
)

// Animator is the render-side collaborator that plays bindings. Play starts
// a binding now, replacing any playback of the same target and property;
// RemoveAll drops every playback on a target so it shows its static values.
//
// One Animator may serve many buttons. Each button only plays, removes and
// ticks targets under its own scope.
type Animator interface {
	Play(b anim.Binding) anim.PlaybackID
	RemoveAll(target anim.Target)
}

// ticker is implemented by animators that can apply a subset of their
// playbacks to a snapshot, such as *anim.Player.
type ticker interface {
	TickMatching(now time.Time, match func(anim.Target) bool, apply anim.ApplyFunc) bool
}

// activity is implemented by animators that report the properties animating
// on a target.
type activity interface {
	Active(target anim.Target) []anim.Property
}

var nextButtonID atomic.Uint64

// newScope returns a target prefix no other button in the process uses.
func newScope() string {
	return fmt.Sprintf("fav-%d", nextButtonID.Add(1))
}

// Dirty flags report what changed since the last TakeDirty.
const (
	DirtyGeometry uint64 = 1 << iota
	DirtyColor
	DirtySelection
	DirtyAlpha
	DirtyAnimation
)

// Option configures a Button.
type Option func(*Button)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(b *Button) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithAnimator replaces the default *anim.Player.
func WithAnimator(a Animator) Option {
	return func(b *Button) {
		b.animator = a
	}
}

// WithClock replaces time.Now for the default player and for Snapshot.
func WithClock(now func() time.Time) Option {
	return func(b *Button) {
		if now != nil {
			b.now = now
		}
	}
}

// WithTheme sets colors, duration, easing and timeline fractions. Zero
// fields of t keep their current value, so a partial theme only changes
// what it sets.
func WithTheme(t Theme) Option {
	return func(b *Button) {
		b.setThemeLocked(t)
	}
}

// WithToggleOnTap makes TouchUpInside toggle the selection.
func WithToggleOnTap(enabled bool) Option {
	return func(b *Button) {
		b.toggleOnTap = enabled
	}
}

// Button is the favorite toggle.
type Button struct {
	mu sync.RWMutex

	frame geometry.Rect
	icon  image.Image

	// Rebuilt together on geometry changes
	shape     geometry.Shape
	layers    layerSet
	timelines Timelines

	imageColorOn  anim.Color
	imageColorOff anim.Color
	circleColor   anim.Color
	lineColor     anim.Color
	duration      time.Duration
	easing        anim.EasingFunc
	fractions     map[string]float64

	selected    bool
	alpha       float64
	dimAlpha    float64
	toggleOnTap bool

	animator Animator
	scope    string // target prefix, fixed for the button's lifetime
	now      func() time.Time
	logger   *zap.Logger

	onChange  []func(selected bool)
	onTouch   []func(e TouchEvent)
	dirtyMask uint64
}

// New creates a deselected button for frame with the given icon. A nil icon
// is replaced by an empty image.
func New(frame geometry.Rect, icon image.Image, opts ...Option) *Button {
	b := &Button{
		frame:       frame,
		icon:        icon,
		alpha:       1,
		toggleOnTap: true,
		scope:       newScope(),
		now:         time.Now,
		logger:      zap.NewNop(),
	}
	b.setThemeLocked(DefaultTheme())
	for _, opt := range opts {
		opt(b)
	}
	if b.icon == nil {
		b.icon = emptyIcon()
	}
	if b.animator == nil {
		b.animator = anim.NewPlayer(anim.WithClock(b.now))
	}

	b.rebuildLocked()
	return b
}

func emptyIcon() image.Image {
	return image.NewAlpha(image.Rect(0, 0, 0, 0))
}

// setThemeLocked copies the theme's set fields without touching layers.
func (b *Button) setThemeLocked(t Theme) {
	var zero anim.Color
	if t.ImageColorOn != zero {
		b.imageColorOn = t.ImageColorOn
	}
	if t.ImageColorOff != zero {
		b.imageColorOff = t.ImageColorOff
	}
	if t.CircleColor != zero {
		b.circleColor = t.CircleColor
	}
	if t.LineColor != zero {
		b.lineColor = t.LineColor
	}
	if t.Duration > 0 {
		b.duration = t.Duration
	}
	if t.Easing != "" || b.easing == nil {
		b.easing = t.easing()
	}
	if t.Fractions != nil {
		b.fractions = make(map[string]float64, len(t.Fractions))
		for k, v := range t.Fractions {
			b.fractions[k] = v
		}
	}
	if t.DimAlpha > 0 && t.DimAlpha <= 1 {
		b.dimAlpha = t.DimAlpha
	}
	if t.ToggleOnTap != nil {
		b.toggleOnTap = *t.ToggleOnTap
	}
}

// rebuildLocked recreates geometry, layers and timelines from scratch.
// Playbacks bound to the old layers are dropped.
func (b *Button) rebuildLocked() {
	b.shape = geometry.Build(b.frame)
	b.layers = buildLayers(b.shape, b.circleColor, b.lineColor, b.imageFillLocked())
	b.timelines = BuildTimelines(b.shape, b.fractions, b.easing)
	b.markDirty(DirtyGeometry)
}

func (b *Button) imageFillLocked() anim.Color {
	if b.selected {
		return b.imageColorOn
	}
	return b.imageColorOff
}

func (b *Button) markDirty(flags uint64) {
	b.dirtyMask |= flags
}

// removeAll drops every playback on this button's layers. Must be called
// without holding b.mu.
func (b *Button) removeAll(animator Animator) {
	for _, target := range b.Targets() {
		animator.RemoveAll(target)
	}
}

// Target returns the animator target the layer called name is played on.
func (b *Button) Target(name anim.Target) anim.Target {
	return anim.Target(b.scope + "/" + string(name))
}

// Targets returns the button's animator targets in z-order.
func (b *Button) Targets() []anim.Target {
	names := LayerNames()
	for i, name := range names {
		names[i] = b.Target(name)
	}
	return names
}

// layerName strips the button's scope from target. ok is false for targets
// owned by another button.
func (b *Button) layerName(target anim.Target) (anim.Target, bool) {
	name, ok := strings.CutPrefix(string(target), b.scope+"/")
	return anim.Target(name), ok
}

func (b *Button) owns(target anim.Target) bool {
	_, ok := b.layerName(target)
	return ok
}

// ============================================================================
// Geometry
// ============================================================================

// Frame returns the bounding rectangle.
func (b *Button) Frame() geometry.Rect {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.frame
}

// SetFrame sets the bounding rectangle and rebuilds geometry, layers and
// timelines. Any running animation is dropped.
func (b *Button) SetFrame(frame geometry.Rect) *Button {
	b.mu.Lock()
	b.frame = frame
	b.rebuildLocked()
	animator := b.animator
	b.mu.Unlock()

	b.removeAll(animator)
	b.logger.Debug("favorite button rebuilt",
		zap.Float64("width", frame.Width),
		zap.Float64("height", frame.Height))
	return b
}

// Image returns the icon.
func (b *Button) Image() image.Image {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.icon
}

// SetImage replaces the icon and rebuilds. A nil icon becomes empty.
func (b *Button) SetImage(icon image.Image) *Button {
	if icon == nil {
		icon = emptyIcon()
	}
	b.mu.Lock()
	b.icon = icon
	b.rebuildLocked()
	animator := b.animator
	b.mu.Unlock()

	b.removeAll(animator)
	b.logger.Debug("favorite button icon replaced",
		zap.Stringer("bounds", icon.Bounds()))
	return b
}

// Geometry returns the current shape geometry.
func (b *Button) Geometry() geometry.Shape {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.shape
}

// Layers returns the static layer values, back to front, without any
// animation applied.
func (b *Button) Layers() []Layer {
	b.mu.RLock()
	ls := b.layers
	b.mu.RUnlock()
	out := []Layer{ls.circle, ls.circleMask}
	out = append(out, ls.lines[:]...)
	return append(out, ls.image)
}

// Timelines returns the current timelines.
func (b *Button) Timelines() Timelines {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.timelines
}

// ============================================================================
// Colors and duration
// ============================================================================

// ImageColorOn returns the icon fill while selected.
func (b *Button) ImageColorOn() anim.Color {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.imageColorOn
}

// SetImageColorOn sets the selected icon fill. Repaints immediately when
// selected; running playbacks are untouched.
func (b *Button) SetImageColorOn(c anim.Color) *Button {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.imageColorOn = c
	if b.selected {
		b.layers.image.FillColor = c
		b.markDirty(DirtyColor)
	}
	return b
}

// ImageColorOff returns the icon fill while deselected.
func (b *Button) ImageColorOff() anim.Color {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.imageColorOff
}

// SetImageColorOff sets the deselected icon fill.
func (b *Button) SetImageColorOff(c anim.Color) *Button {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.imageColorOff = c
	if !b.selected {
		b.layers.image.FillColor = c
		b.markDirty(DirtyColor)
	}
	return b
}

// CircleColor returns the burst circle fill.
func (b *Button) CircleColor() anim.Color {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.circleColor
}

// SetCircleColor sets the burst circle fill.
func (b *Button) SetCircleColor(c anim.Color) *Button {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.circleColor = c
	b.layers.circle.FillColor = c
	b.markDirty(DirtyColor)
	return b
}

// LineColor returns the stroke color of the radiating lines.
func (b *Button) LineColor() anim.Color {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineColor
}

// SetLineColor sets the stroke color of every line.
func (b *Button) SetLineColor(c anim.Color) *Button {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineColor = c
	for i := range b.layers.lines {
		b.layers.lines[i].StrokeColor = c
	}
	b.markDirty(DirtyColor)
	return b
}

// Duration returns the global duration.
func (b *Button) Duration() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.duration
}

// SetDuration sets the global duration every timeline is a fraction of.
// It applies from the next Select; running playbacks keep their length.
// Non-positive durations are ignored.
func (b *Button) SetDuration(d time.Duration) *Button {
	if d <= 0 {
		return b
	}
	b.mu.Lock()
	b.duration = d
	b.mu.Unlock()

	b.logger.Debug("favorite button duration changed", zap.Duration("duration", d))
	return b
}

// TimelineDuration returns the named timeline's share of the global
// duration, or 0 for an unknown name.
func (b *Button) TimelineDuration(name string) time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	tl := b.timelines.ByName(name)
	if tl == nil {
		return 0
	}
	return tl.Duration(b.duration)
}

// ApplyTheme applies a full theme. Colors repaint in place; timelines are
// rebuilt from the current geometry so new fractions and easing take effect
// on the next Select.
func (b *Button) ApplyTheme(t Theme) *Button {
	b.mu.Lock()
	b.setThemeLocked(t)
	b.layers.circle.FillColor = b.circleColor
	for i := range b.layers.lines {
		b.layers.lines[i].StrokeColor = b.lineColor
	}
	b.layers.image.FillColor = b.imageFillLocked()
	b.timelines = BuildTimelines(b.shape, b.fractions, b.easing)
	b.markDirty(DirtyColor)
	d := b.duration
	b.mu.Unlock()

	b.logger.Debug("favorite button theme applied",
		zap.Duration("duration", d),
		zap.String("easing", t.Easing))
	return b
}

// ============================================================================
// Selection state machine
// ============================================================================

// Selected reports whether the button is selected.
func (b *Button) Selected() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selected
}

// SetSelected sets the selection without replaying the burst. Setting the
// current value is a no-op; false runs Deselect.
func (b *Button) SetSelected(selected bool) *Button {
	b.mu.Lock()
	if b.selected == selected {
		b.mu.Unlock()
		return b
	}
	if !selected {
		b.mu.Unlock()
		return b.Deselect()
	}
	b.selected = true
	b.layers.image.FillColor = b.imageColorOn
	b.markDirty(DirtySelection | DirtyColor)
	callbacks := append([]func(bool){}, b.onChange...)
	b.mu.Unlock()

	for _, fn := range callbacks {
		fn(true)
	}
	return b
}

// Select marks the button selected, fills the icon with the on color and
// starts every timeline from time 0. Calling it while selected replays the
// burst.
func (b *Button) Select() *Button {
	b.mu.Lock()
	b.selected = true
	b.layers.image.FillColor = b.imageColorOn
	bindings := b.bindingsLocked()
	animator := b.animator
	b.markDirty(DirtySelection | DirtyColor | DirtyAnimation)
	callbacks := append([]func(bool){}, b.onChange...)
	b.mu.Unlock()

	// Drop the previous burst entirely before starting the new one
	b.removeAll(animator)
	for _, bd := range bindings {
		animator.Play(bd)
	}

	b.logger.Debug("favorite button selected", zap.Int("bindings", len(bindings)))
	for _, fn := range callbacks {
		fn(true)
	}
	return b
}

// Deselect marks the button deselected, fills the icon with the off color
// and cancels every playback. Layers snap to their static values.
func (b *Button) Deselect() *Button {
	b.mu.Lock()
	b.selected = false
	b.layers.image.FillColor = b.imageColorOff
	animator := b.animator
	b.markDirty(DirtySelection | DirtyColor | DirtyAnimation)
	callbacks := append([]func(bool){}, b.onChange...)
	b.mu.Unlock()

	b.removeAll(animator)

	b.logger.Debug("favorite button deselected")
	for _, fn := range callbacks {
		fn(false)
	}
	return b
}

// Toggle selects a deselected button and deselects a selected one.
func (b *Button) Toggle() *Button {
	if b.Selected() {
		return b.Deselect()
	}
	return b.Select()
}

// OnChange registers a callback run after every selection change.
func (b *Button) OnChange(fn func(selected bool)) *Button {
	b.mu.Lock()
	b.onChange = append(b.onChange, fn)
	b.mu.Unlock()
	return b
}

// bindingsLocked binds every timeline to its layers with the current
// duration: circle, mask and image once each, the three line timelines to
// each of the lines.
func (b *Button) bindingsLocked() []anim.Binding {
	tl := b.timelines
	var out []anim.Binding
	out = append(out, tl.Circle.Bind(b.Target(TargetCircle), b.duration)...)
	out = append(out, tl.CircleMask.Bind(b.Target(TargetCircleMask), b.duration)...)
	out = append(out, tl.Image.Bind(b.Target(TargetImage), b.duration)...)
	for i := range b.layers.lines {
		target := b.Target(b.layers.lines[i].Name)
		out = append(out, tl.LineStrokeStart.Bind(target, b.duration)...)
		out = append(out, tl.LineStrokeEnd.Bind(target, b.duration)...)
		out = append(out, tl.LineOpacity.Bind(target, b.duration)...)
	}
	return out
}

// ============================================================================
// Frames
// ============================================================================

// Snapshot returns the visual state at the button's current clock reading.
func (b *Button) Snapshot() Snapshot {
	return b.SnapshotAt(b.now())
}

// SnapshotAt ticks this button's playbacks at now and returns the layers
// with them applied. Playbacks of other buttons sharing the animator are
// left alone. Animators that cannot tick yield static values.
func (b *Button) SnapshotAt(now time.Time) Snapshot {
	b.mu.RLock()
	ls := b.layers
	snap := Snapshot{
		Time:     now,
		Shape:    b.shape,
		Icon:     b.icon,
		Selected: b.selected,
		Alpha:    b.alpha,
	}
	animator := b.animator
	b.mu.RUnlock()

	if t, ok := animator.(ticker); ok {
		t.TickMatching(now, b.owns, func(target anim.Target, p anim.Property, v anim.Value) {
			name, _ := b.layerName(target)
			if l := ls.byName(name); l != nil {
				l.apply(p, v)
			}
		})
	}

	snap.Circle = ls.circle
	snap.CircleMask = ls.circleMask
	snap.Lines = ls.lines
	snap.Image = ls.image
	return snap
}

// Animating reports whether any of the button's layers has an active
// playback. Always false for animators that do not expose it.
func (b *Button) Animating() bool {
	b.mu.RLock()
	animator := b.animator
	b.mu.RUnlock()
	a, ok := animator.(activity)
	if !ok {
		return false
	}
	for _, target := range b.Targets() {
		if len(a.Active(target)) > 0 {
			return true
		}
	}
	return false
}

// TakeDirty returns the dirty flags accumulated since the last call and
// clears them.
func (b *Button) TakeDirty() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	mask := b.dirtyMask
	b.dirtyMask = 0
	return mask
}
