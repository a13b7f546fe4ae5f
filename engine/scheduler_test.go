package engine

import (
	"testing"
)

type recorder struct {
	name  string
	prio  int
	done  bool
	calls *[]string
}

func (r *recorder) Update(dt float64) { *r.calls = append(*r.calls, r.name) }
func (r *recorder) Priority() int     { return r.prio }
func (r *recorder) Done() bool        { return r.done }

func TestLoopRunsInPriorityOrder(t *testing.T) {
	var calls []string
	l := NewLoop()
	l.Add(&recorder{name: "head", prio: 20, calls: &calls})
	l.Add(&recorder{name: "base", prio: 0, calls: &calls})
	l.Add(&recorder{name: "arm", prio: 10, calls: &calls})

	l.Step(1.0 / 60)

	want := []string{"base", "arm", "head"}
	if len(calls) != len(want) {
		t.Fatalf("Expected %d calls, got %d", len(want), len(calls))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Expected call %d to be %s, got %s", i, want[i], calls[i])
		}
	}
}

func TestLoopStableAmongEqualPriorities(t *testing.T) {
	var calls []string
	l := NewLoop()
	l.Add(&recorder{name: "first", prio: 10, calls: &calls})
	l.Add(&recorder{name: "second", prio: 10, calls: &calls})

	for i := 0; i < 5; i++ {
		l.Step(1.0 / 60)
	}

	for i := 0; i+1 < len(calls); i += 2 {
		if calls[i] != "first" || calls[i+1] != "second" {
			t.Fatalf("Expected deterministic insertion order among equal priorities, got %v", calls)
		}
	}
}

func TestLoopRemovesDoneUpdaters(t *testing.T) {
	var calls []string
	l := NewLoop()
	alive := &recorder{name: "alive", prio: 0, calls: &calls}
	dying := &recorder{name: "dying", prio: 1, calls: &calls}
	l.Add(alive)
	l.Add(dying)

	// Done flips during the first step; removal happens after the pass
	l.Step(1.0 / 60)
	dying.done = true
	l.Step(1.0 / 60)
	if l.Len() != 1 {
		t.Fatalf("Expected done updater removed, have %d", l.Len())
	}

	calls = calls[:0]
	l.Step(1.0 / 60)
	if len(calls) != 1 || calls[0] != "alive" {
		t.Errorf("Expected only the live updater to run, got %v", calls)
	}
}

type speedUpdater struct {
	seen []float64
	prio int
	dead bool
}

func (s *speedUpdater) Update(dt, agentSpeed float64) { s.seen = append(s.seen, agentSpeed) }
func (s *speedUpdater) Priority() int                 { return s.prio }
func (s *speedUpdater) Done() bool                    { return s.dead }

func TestLoopAddWithSpeed(t *testing.T) {
	l := NewLoop()
	u := &speedUpdater{prio: 5}

	speed := 0.0
	l.AddWithSpeed(u, func() float64 { return speed })

	speed = 2.5
	l.Step(1.0 / 60)
	speed = 0
	l.Step(1.0 / 60)

	if len(u.seen) != 2 || u.seen[0] != 2.5 || u.seen[1] != 0 {
		t.Errorf("Expected per-frame agent speed 2.5 then 0, got %v", u.seen)
	}

	u.dead = true
	l.Step(1.0 / 60)
	if l.Len() != 0 {
		t.Errorf("Expected done speed updater removed, have %d", l.Len())
	}
}

func TestLoopAddWithSpeedNilReader(t *testing.T) {
	l := NewLoop()
	u := &speedUpdater{}
	l.AddWithSpeed(u, nil)
	l.Step(1.0 / 60)
	if len(u.seen) != 1 || u.seen[0] != 0 {
		t.Errorf("Expected zero speed with nil reader, got %v", u.seen)
	}
}
