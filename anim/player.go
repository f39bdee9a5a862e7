package anim

import (
	"sync"
	"sync/atomic"
	"time"
)

// PlaybackID uniquely identifies a started playback.
type PlaybackID uint64

var nextPlaybackID atomic.Uint64

func newPlaybackID() PlaybackID {
	return PlaybackID(nextPlaybackID.Add(1))
}

// Target names the visual primitive a track is applied to.
type Target string

// Binding is one track bound to one target with a concrete duration.
type Binding struct {
	Target     Target
	Track      *Track
	Duration   time.Duration
	Easing     EasingFunc
	OnComplete func()
}

// ApplyFunc receives each interpolated value during Tick.
type ApplyFunc func(target Target, property Property, value Value)

// playback is an active binding on the player.
type playback struct {
	id      PlaybackID
	binding Binding
	start   time.Time
}

type playbackKey struct {
	target   Target
	property Property
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithClock replaces time.Now as the player's clock.
func WithClock(now func() time.Time) PlayerOption {
	return func(p *Player) {
		if now != nil {
			p.now = now
		}
	}
}

// Player holds active playbacks and applies their interpolated values once
// per frame. It never advances on its own; the host calls Tick from its
// render loop.
//
// A target carries at most one playback per property: playing a binding for
// an animated (target, property) replaces the earlier playback and restarts
// from time 0.
type Player struct {
	mu        sync.RWMutex
	now       func() time.Time
	playbacks map[playbackKey]*playback

	// Callback when the player switches between idle and animating
	onActiveChange func(hasActive bool)
}

// NewPlayer creates an idle player.
func NewPlayer(opts ...PlayerOption) *Player {
	p := &Player{
		now:       time.Now,
		playbacks: make(map[playbackKey]*playback),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Now returns the player's current clock reading.
func (p *Player) Now() time.Time {
	return p.now()
}

// OnActiveChange sets the callback for when playbacks become active/inactive.
func (p *Player) OnActiveChange(fn func(hasActive bool)) {
	p.mu.Lock()
	p.onActiveChange = fn
	p.mu.Unlock()
}

// Play starts a binding at the current clock reading.
func (p *Player) Play(b Binding) PlaybackID {
	if b.Easing == nil {
		b.Easing = EaseLinear
	}
	pb := &playback{
		id:      newPlaybackID(),
		binding: b,
		start:   p.now(),
	}

	p.mu.Lock()
	wasEmpty := len(p.playbacks) == 0
	p.playbacks[playbackKey{b.Target, b.Track.Property()}] = pb
	callback := p.onActiveChange
	p.mu.Unlock()

	if wasEmpty && callback != nil {
		callback(true)
	}
	return pb.id
}

// RemoveAll cancels every playback on target. The target falls back to its
// static values on the next frame.
func (p *Player) RemoveAll(target Target) {
	p.mu.Lock()
	removed := false
	for k := range p.playbacks {
		if k.target == target {
			delete(p.playbacks, k)
			removed = true
		}
	}
	isEmpty := len(p.playbacks) == 0
	callback := p.onActiveChange
	p.mu.Unlock()

	if removed && isEmpty && callback != nil {
		callback(false)
	}
}

// Cancel stops a single playback by ID.
func (p *Player) Cancel(id PlaybackID) {
	p.mu.Lock()
	removed := false
	for k, pb := range p.playbacks {
		if pb.id == id {
			delete(p.playbacks, k)
			removed = true
			break
		}
	}
	isEmpty := len(p.playbacks) == 0
	callback := p.onActiveChange
	p.mu.Unlock()

	if removed && isEmpty && callback != nil {
		callback(false)
	}
}

// HasActive returns true if any playback is running.
func (p *Player) HasActive() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.playbacks) > 0
}

// Count returns the number of active playbacks.
func (p *Player) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.playbacks)
}

// Active returns the properties currently animated on target.
func (p *Player) Active(target Target) []Property {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var props []Property
	for k := range p.playbacks {
		if k.target == target {
			props = append(props, k.property)
		}
	}
	return props
}

// Lookup returns the ID and start time of the playback animating property on
// target.
func (p *Player) Lookup(target Target, property Property) (PlaybackID, time.Time, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pb, ok := p.playbacks[playbackKey{target, property}]
	if !ok {
		return 0, time.Time{}, false
	}
	return pb.id, pb.start, true
}

// Tick applies every active playback at time now and removes completed
// ones. Completed playbacks get one final apply at position 1 before they
// are dropped. apply runs with the player locked and must not call back
// into it. Returns true if any playback is still active.
func (p *Player) Tick(now time.Time, apply ApplyFunc) bool {
	return p.TickMatching(now, nil, apply)
}

// TickMatching is Tick restricted to the targets match accepts. Playbacks on
// other targets are neither applied nor completed, so several owners can
// share one player and each tick only its own targets. A nil match accepts
// every target. The result still reports playbacks on any target.
func (p *Player) TickMatching(now time.Time, match func(Target) bool, apply ApplyFunc) bool {
	p.mu.Lock()

	var toComplete []*playback
	removed := false

	for k, pb := range p.playbacks {
		if match != nil && !match(k.target) {
			continue
		}
		b := pb.binding
		elapsed := now.Sub(pb.start)

		if elapsed >= b.Duration {
			delete(p.playbacks, k)
			removed = true
			toComplete = append(toComplete, pb)
			if apply != nil {
				apply(b.Target, k.property, b.Track.At(b.Easing(1)))
			}
			continue
		}

		t := 0.0
		if elapsed > 0 {
			t = float64(elapsed) / float64(b.Duration)
		}
		if apply != nil {
			apply(b.Target, k.property, b.Track.At(b.Easing(t)))
		}
	}

	hasActive := len(p.playbacks) > 0
	callback := p.onActiveChange
	p.mu.Unlock()

	// Call completion callbacks outside the lock
	for _, pb := range toComplete {
		if pb.binding.OnComplete != nil {
			pb.binding.OnComplete()
		}
	}

	if removed && !hasActive && callback != nil {
		callback(false)
	}

	return hasActive
}
