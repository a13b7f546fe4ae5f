package aim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tickDt = 1.0 / 60

func TestFollowerUninitializedTickIsNoop(t *testing.T) {
	f := NewTargetFollower()
	pos, atRest := f.Tick(tickDt, 0)
	if pos != (mgl64.Vec3{}) || atRest {
		t.Errorf("Expected no-op before Init, got pos=%v atRest=%v", pos, atRest)
	}
}

func TestFollowerSetTargetDoesNotMove(t *testing.T) {
	f := NewTargetFollower()
	rest := mgl64.Vec3{0, 1.7, 1}
	f.Init(rest)

	f.SetTarget(mgl64.Vec3{5, 5, 5})
	f.ClearTarget()

	if got := f.Position(); got != rest {
		t.Errorf("Expected position untouched by SetTarget/ClearTarget, got %v", got)
	}
}

func TestFollowerApproachesTarget(t *testing.T) {
	f := NewTargetFollower()
	f.Init(mgl64.Vec3{0, 0, 0})
	target := mgl64.Vec3{3, 0, 4}
	f.SetTarget(target)

	prev := target.Sub(f.Position()).Len()
	for i := 0; i < 200; i++ {
		pos, _ := f.Tick(tickDt, 0)
		d := target.Sub(pos).Len()
		if d > prev+1e-12 {
			t.Fatalf("Distance to target increased at tick %d: %v -> %v", i, prev, d)
		}
		prev = d
	}
	if prev > 0.1 {
		t.Errorf("Expected follower near target after 200 ticks, still %v away", prev)
	}
}

func TestFollowerTargetAtOrigin(t *testing.T) {
	// The origin is a legitimate target, not an uninitialized sentinel
	f := NewTargetFollower()
	f.Init(mgl64.Vec3{0, 1, 1})
	f.SetTarget(mgl64.Vec3{})

	for i := 0; i < 300; i++ {
		f.Tick(tickDt, 0)
	}
	if d := f.Position().Len(); d > 0.05 {
		t.Errorf("Expected follower near origin target, still %v away", d)
	}
}

func TestFollowerReturnIsMonotonicAndFinite(t *testing.T) {
	f := NewTargetFollower()
	rest := mgl64.Vec3{0, 1.7, 1}
	f.Init(rest)
	f.SetTarget(mgl64.Vec3{4, 0, -2})
	for i := 0; i < 120; i++ {
		f.Tick(tickDt, 0)
	}

	f.ClearTarget()
	prev := f.Position().Sub(rest).Len()
	arrived := -1
	for i := 0; i < 1000; i++ {
		pos, atRest := f.Tick(tickDt, 0)
		d := pos.Sub(rest).Len()
		if d > prev+1e-12 {
			t.Fatalf("Distance to rest increased at tick %d: %v -> %v", i, prev, d)
		}
		prev = d
		if atRest {
			arrived = i
			break
		}
	}
	if arrived < 0 {
		t.Fatalf("Expected follower to reach rest within 1000 ticks, still %v away", prev)
	}
	if got := f.Position(); got != rest {
		t.Errorf("Expected exact snap to rest, got %v", got)
	}
	if f.Blend() != 0 {
		t.Errorf("Expected blend forced to 0 at rest, got %v", f.Blend())
	}
}

func TestFollowerAtRestFiresExactlyOnce(t *testing.T) {
	f := NewTargetFollower()
	rest := mgl64.Vec3{1, 1, 1}
	f.Init(rest)
	f.SetTarget(mgl64.Vec3{5, 1, 1})
	for i := 0; i < 60; i++ {
		f.Tick(tickDt, 0)
	}
	f.ClearTarget()

	fires := 0
	for i := 0; i < 1100; i++ {
		if _, atRest := f.Tick(tickDt, 0); atRest {
			fires++
		}
	}
	if fires != 1 {
		t.Errorf("Expected at-rest to fire exactly once per return cycle, fired %d times", fires)
	}
}

func TestFollowerAtRestRefiresOnNextCycle(t *testing.T) {
	f := NewTargetFollower()
	rest := mgl64.Vec3{0, 0, 0}
	f.Init(rest)

	runCycle := func() int {
		f.SetTarget(mgl64.Vec3{2, 0, 0})
		for i := 0; i < 60; i++ {
			f.Tick(tickDt, 0)
		}
		f.ClearTarget()
		fires := 0
		for i := 0; i < 1100; i++ {
			if _, atRest := f.Tick(tickDt, 0); atRest {
				fires++
			}
		}
		return fires
	}

	if got := runCycle(); got != 1 {
		t.Fatalf("Expected 1 fire on first cycle, got %d", got)
	}
	if got := runCycle(); got != 1 {
		t.Errorf("Expected 1 fire on second cycle, got %d", got)
	}
}

func TestFollowerBlendRampsAndDecays(t *testing.T) {
	f := NewTargetFollower()
	f.Init(mgl64.Vec3{0, 0, 0})
	f.SetTarget(mgl64.Vec3{3, 0, 0})

	for i := 0; i < 200; i++ {
		f.Tick(tickDt, 0)
	}
	if f.Blend() != 1 {
		t.Errorf("Expected blend saturated at 1 while tracking, got %v", f.Blend())
	}

	f.ClearTarget()
	f.Tick(tickDt, 0)
	if f.Blend() >= 1 {
		t.Errorf("Expected blend decaying after target cleared, got %v", f.Blend())
	}
}

func TestFollowerBoostClampNoOvershoot(t *testing.T) {
	f := NewTargetFollower()
	f.Init(mgl64.Vec3{0, 0, 0})
	target := mgl64.Vec3{1, 2, 3}
	f.SetTarget(target)

	// An absurd boost saturates the interpolation at the target exactly
	pos, _ := f.Tick(10, 1e9)
	if pos != target {
		t.Errorf("Expected saturation at the target, got %v", pos)
	}
}
