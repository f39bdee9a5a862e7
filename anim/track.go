// Package anim implements keyframe tracks and timelines: explicit
// (time, value) pairs interpolated linearly, bundled into timelines that
// share a duration, and a Player that drives active playbacks each frame.
package anim

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrTrackTooShort  = errors.New("anim: track needs at least two keyframes")
	ErrTrackLength    = errors.New("anim: times and values differ in length")
	ErrTrackTimes     = errors.New("anim: key times must increase strictly from 0 to 1")
	ErrTrackValueType = errors.New("anim: value type does not match property")
)

// Track is an ordered list of (normalized time, value) pairs for one
// property. Tracks are immutable once built.
type Track struct {
	property Property
	times    []float64
	values   []Value
}

// NewTrack validates and builds a track. Times must start at 0, end at 1 and
// increase strictly; every value must be of the type the property animates.
func NewTrack(property Property, times []float64, values []Value) (*Track, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times, %d values", ErrTrackLength, len(times), len(values))
	}
	if len(times) < 2 {
		return nil, ErrTrackTooShort
	}
	if times[0] != 0 || times[len(times)-1] != 1 {
		return nil, fmt.Errorf("%w: first=%v last=%v", ErrTrackTimes, times[0], times[len(times)-1])
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("%w: key %d (%v) after %v", ErrTrackTimes, i, times[i], times[i-1])
		}
	}
	for i, v := range values {
		if v == nil || !property.accepts(v) {
			return nil, fmt.Errorf("%w: key %d is %T for %s", ErrTrackValueType, i, v, property)
		}
	}

	t := &Track{
		property: property,
		times:    append([]float64(nil), times...),
		values:   append([]Value(nil), values...),
	}
	return t, nil
}

// MustTrack is like NewTrack but panics on invalid input. Used for the
// built-in keyframe tables.
func MustTrack(property Property, times []float64, values []Value) *Track {
	t, err := NewTrack(property, times, values)
	if err != nil {
		panic(err)
	}
	return t
}

// ScalarTrack builds a track from plain float values.
func ScalarTrack(property Property, times []float64, values []float64) (*Track, error) {
	vs := make([]Value, len(values))
	for i, v := range values {
		vs[i] = Scalar(v)
	}
	return NewTrack(property, times, vs)
}

// Property returns the animated property.
func (t *Track) Property() Property {
	return t.property
}

// Len returns the number of keyframes.
func (t *Track) Len() int {
	return len(t.times)
}

// Key returns the i-th keyframe.
func (t *Track) Key(i int) (float64, Value) {
	return t.times[i], t.values[i]
}

// Times returns a copy of the key times.
func (t *Track) Times() []float64 {
	return append([]float64(nil), t.times...)
}

// Values returns a copy of the key values.
func (t *Track) Values() []Value {
	return append([]Value(nil), t.values...)
}

// At returns the interpolated value at normalized time pos. Positions before
// the first key hold the first value, positions after the last hold the last.
func (t *Track) At(pos float64) Value {
	last := len(t.times) - 1
	if pos <= t.times[0] {
		return t.values[0]
	}
	if pos >= t.times[last] {
		return t.values[last]
	}

	// First key strictly after pos; its predecessor brackets pos.
	i := sort.Search(len(t.times), func(i int) bool { return t.times[i] > pos }) - 1
	t0, t1 := t.times[i], t.times[i+1]
	return t.values[i].Lerp(t.values[i+1], (pos-t0)/(t1-t0))
}

// ScalarAt is At for scalar tracks. Non-scalar tracks return 0.
func (t *Track) ScalarAt(pos float64) float64 {
	if s, ok := t.At(pos).(Scalar); ok {
		return float64(s)
	}
	return 0
}
