// Package engine provides the single-threaded late-update scheduler that
// hosts run aim controllers on. One Step per rendering/simulation frame,
// after locomotion has produced that frame's velocities
package engine

import "sort"

// Updater is a frame-cooperative unit run once per late-update phase
type Updater interface {
	// Update advances the unit by dt seconds of frame time
	Update(dt float64)
	// Priority orders units within a frame; lower values run first.
	// Units mutating shared bones must use distinct priorities so the
	// premultiplied results stay deterministic
	Priority() int
	// Done reports that the unit has terminated and should be removed
	Done() bool
}

// agentUpdater adapts Update signatures that also take an agent speed
type agentUpdater struct {
	u     interface{ Update(dt, agentSpeed float64) }
	prio  int
	done  func() bool
	speed func() float64
}

func (a *agentUpdater) Update(dt float64) { a.u.Update(dt, a.speed()) }
func (a *agentUpdater) Priority() int     { return a.prio }
func (a *agentUpdater) Done() bool        { return a.done() }

// Loop runs updaters in stable priority order once per frame
type Loop struct {
	updaters []Updater
}

// NewLoop creates an empty late-update loop
func NewLoop() *Loop {
	return &Loop{}
}

// Add registers an updater. Order among equal priorities is insertion order
func (l *Loop) Add(u Updater) {
	l.updaters = append(l.updaters, u)
	sort.SliceStable(l.updaters, func(i, j int) bool {
		return l.updaters[i].Priority() < l.updaters[j].Priority()
	})
}

// AddWithSpeed registers a controller-shaped updater whose Update consumes
// the frame's agent velocity magnitude, read from speed each frame
func (l *Loop) AddWithSpeed(u interface {
	Update(dt, agentSpeed float64)
	Priority() int
	Done() bool
}, speed func() float64) {
	if speed == nil {
		speed = func() float64 { return 0 }
	}
	l.Add(&agentUpdater{u: u, prio: u.Priority(), done: u.Done, speed: speed})
}

// Len returns the number of registered updaters
func (l *Loop) Len() int {
	return len(l.updaters)
}

// Step runs one late-update phase, then drops terminated updaters
func (l *Loop) Step(dt float64) {
	for _, u := range l.updaters {
		u.Update(dt)
	}
	kept := l.updaters[:0]
	for _, u := range l.updaters {
		if !u.Done() {
			kept = append(kept, u)
		}
	}
	// Clear the tail so removed updaters are collectable
	for i := len(kept); i < len(l.updaters); i++ {
		l.updaters[i] = nil
	}
	l.updaters = kept
}
