package anim

import (
	"testing"
	"time"
)

// fakeClock is a settable clock for deterministic playback tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPlayer() (*Player, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	return NewPlayer(WithClock(clock.now)), clock
}

func rampTrack(p Property) *Track {
	return MustTrack(p, []float64{0, 1}, []Value{Scalar(0), Scalar(1)})
}

type applied map[Target]map[Property]Value

func collect() (applied, ApplyFunc) {
	out := applied{}
	return out, func(target Target, property Property, value Value) {
		if out[target] == nil {
			out[target] = map[Property]Value{}
		}
		out[target][property] = value
	}
}

func TestTimelineDuration(t *testing.T) {
	tests := []struct {
		fraction float64
		global   time.Duration
		want     time.Duration
	}{
		{0.333, time.Second, 333 * time.Millisecond},
		{0.6, time.Second, 600 * time.Millisecond},
		{1.0, 2 * time.Second, 2 * time.Second},
		{0.6, 500 * time.Millisecond, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		tl := NewTimeline("t", tt.fraction, rampTrack(PropertyOpacity))
		if got := tl.Duration(tt.global); got != tt.want {
			t.Errorf("Duration(%v) with fraction %v = %v, want %v", tt.global, tt.fraction, got, tt.want)
		}
	}
}

func TestTimelineSampleAndBind(t *testing.T) {
	tl := NewTimeline("lines", 0.6, rampTrack(PropertyStrokeStart), rampTrack(PropertyStrokeEnd))

	samples := tl.Sample(0.25)
	if len(samples) != 2 {
		t.Fatalf("Sample() returned %d samples, want 2", len(samples))
	}
	for _, s := range samples {
		if got := float64(s.Value.(Scalar)); !approx(got, 0.25) {
			t.Errorf("Sample(0.25) %s = %v, want 0.25", s.Property, got)
		}
	}

	bindings := tl.Bind("line-0", time.Second)
	if len(bindings) != 2 {
		t.Fatalf("Bind() returned %d bindings, want 2", len(bindings))
	}
	for _, b := range bindings {
		if b.Target != "line-0" || b.Duration != 600*time.Millisecond {
			t.Errorf("Bind() = %+v, want target line-0 and 600ms", b)
		}
	}

	tl.Easing = EaseInQuad
	if got := float64(tl.Sample(0.5)[0].Value.(Scalar)); !approx(got, 0.25) {
		t.Errorf("eased Sample(0.5) = %v, want 0.25", got)
	}
}

func TestPlayerTickInterpolatesAndCompletes(t *testing.T) {
	p, clock := newTestPlayer()

	completed := 0
	p.Play(Binding{
		Target:     "circle",
		Track:      rampTrack(PropertyOpacity),
		Duration:   100 * time.Millisecond,
		OnComplete: func() { completed++ },
	})

	clock.advance(25 * time.Millisecond)
	got, apply := collect()
	if !p.Tick(clock.now(), apply) {
		t.Fatal("Tick() = false mid-playback, want true")
	}
	if v := float64(got["circle"][PropertyOpacity].(Scalar)); !approx(v, 0.25) {
		t.Errorf("value at 25ms = %v, want 0.25", v)
	}

	clock.advance(100 * time.Millisecond)
	got, apply = collect()
	if p.Tick(clock.now(), apply) {
		t.Error("Tick() = true after completion, want false")
	}
	if v := float64(got["circle"][PropertyOpacity].(Scalar)); v != 1 {
		t.Errorf("final value = %v, want 1", v)
	}
	if completed != 1 {
		t.Errorf("OnComplete called %d times, want 1", completed)
	}
	if p.Count() != 0 {
		t.Errorf("Count() = %d after completion, want 0", p.Count())
	}
}

func TestPlayerReplaySameKeyRestarts(t *testing.T) {
	p, clock := newTestPlayer()
	b := Binding{Target: "image", Track: rampTrack(PropertyOpacity), Duration: time.Second}

	first := p.Play(b)
	clock.advance(400 * time.Millisecond)
	second := p.Play(b)

	if first == second {
		t.Fatal("replay reused the playback ID")
	}
	if p.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 after replacing", p.Count())
	}
	id, start, ok := p.Lookup("image", PropertyOpacity)
	if !ok || id != second || !start.Equal(clock.now()) {
		t.Errorf("Lookup() = (%v, %v, %v), want (%v, %v, true)", id, start, ok, second, clock.now())
	}

	got, apply := collect()
	p.Tick(clock.now(), apply)
	if v := float64(got["image"][PropertyOpacity].(Scalar)); v != 0 {
		t.Errorf("value right after replay = %v, want 0", v)
	}
}

func TestPlayerRemoveAllAndActiveChange(t *testing.T) {
	p, _ := newTestPlayer()

	var transitions []bool
	p.OnActiveChange(func(active bool) { transitions = append(transitions, active) })

	p.Play(Binding{Target: "line-0", Track: rampTrack(PropertyStrokeStart), Duration: time.Second})
	p.Play(Binding{Target: "line-0", Track: rampTrack(PropertyStrokeEnd), Duration: time.Second})
	p.Play(Binding{Target: "line-1", Track: rampTrack(PropertyStrokeEnd), Duration: time.Second})

	if got := len(p.Active("line-0")); got != 2 {
		t.Errorf("Active(line-0) has %d properties, want 2", got)
	}

	p.RemoveAll("line-0")
	if got := len(p.Active("line-0")); got != 0 {
		t.Errorf("Active(line-0) has %d properties after RemoveAll, want 0", got)
	}
	if !p.HasActive() {
		t.Error("HasActive() = false, line-1 should still be animating")
	}

	p.RemoveAll("line-1")
	if p.HasActive() {
		t.Error("HasActive() = true after removing every target")
	}

	want := []bool{true, false}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transitions = %v, want %v", transitions, want)
		}
	}
}

func TestPlayerTickMatchingLeavesOtherTargets(t *testing.T) {
	p, clock := newTestPlayer()
	p.Play(Binding{Target: "a/circle", Track: rampTrack(PropertyOpacity), Duration: 100 * time.Millisecond})
	p.Play(Binding{Target: "b/circle", Track: rampTrack(PropertyOpacity), Duration: 100 * time.Millisecond})

	clock.advance(200 * time.Millisecond)
	got, apply := collect()
	ownA := func(target Target) bool { return target == "a/circle" }
	if !p.TickMatching(clock.now(), ownA, apply) {
		t.Error("TickMatching() = false while b/circle is still registered")
	}

	if _, ok := got["b/circle"]; ok {
		t.Error("TickMatching() applied a target it does not match")
	}
	if v := float64(got["a/circle"][PropertyOpacity].(Scalar)); v != 1 {
		t.Errorf("final a/circle value = %v, want 1", v)
	}
	if _, _, ok := p.Lookup("a/circle", PropertyOpacity); ok {
		t.Error("completed a/circle playback was kept")
	}
	if _, _, ok := p.Lookup("b/circle", PropertyOpacity); !ok {
		t.Error("TickMatching() completed a playback it does not match")
	}
}

func TestPlayerCancel(t *testing.T) {
	p, _ := newTestPlayer()
	id := p.Play(Binding{Target: "circle", Track: rampTrack(PropertyOpacity), Duration: time.Second})
	p.Play(Binding{Target: "mask", Track: rampTrack(PropertyOpacity), Duration: time.Second})

	p.Cancel(id)
	if _, _, ok := p.Lookup("circle", PropertyOpacity); ok {
		t.Error("Lookup() found a cancelled playback")
	}
	if p.Count() != 1 {
		t.Errorf("Count() = %d, want 1", p.Count())
	}
}

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"", "linear", "ease-in", "ease-out", "ease", "ease-in-out", "ease-out-cubic", "back"} {
		fn := EasingByName(name)
		if fn == nil {
			t.Errorf("EasingByName(%q) = nil", name)
			continue
		}
		if got := fn(0); !approx(got, 0) {
			t.Errorf("%q(0) = %v, want 0", name, got)
		}
		if got := fn(1); !approx(got, 1) {
			t.Errorf("%q(1) = %v, want 1", name, got)
		}
	}
	for _, name := range []string{"wobble", "bounce", "Linear"} {
		if EasingByName(name) != nil {
			t.Errorf("EasingByName(%q) should be nil", name)
		}
	}
}
