// aim-sandbox is a terminal visualization of the aim stack: a humanoid rig
// with layered base/head/arm controllers tracking an orbiting target.
//
// Keys: space toggles the target, w toggles simulated locomotion speed,
// q/esc quits. A short tone plays when a chain settles back at rest
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/aimrig/aim"
	"github.com/lixenwraith/aimrig/engine"
	"github.com/lixenwraith/aimrig/preset"
	"github.com/lixenwraith/aimrig/rig"
)

const (
	frameDt     = 1.0 / 60
	orbitRadius = 2.0
	orbitSpeed  = 0.6 // radians/sec
	walkSpeed   = 2.0
)

type Sandbox struct {
	screen        tcell.Screen
	width, height int

	skel        *rig.Humanoid
	loop        *engine.Loop
	controllers []*aim.Controller

	target   mgl64.Vec3
	tracking bool
	walking  bool
	orbit    float64

	audioInit bool
}

func NewSandbox() (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &Sandbox{
		screen: screen,
		skel:   rig.NewHumanoid(),
		loop:   engine.NewLoop(),
	}
	s.width, s.height = screen.Size()

	for _, r := range []preset.Region{preset.RegionBase, preset.RegionHead, preset.RegionRightArm} {
		cfg, err := preset.Chain(r)
		if err != nil {
			return nil, err
		}
		c, err := aim.New(s.skel, cfg)
		if err != nil {
			return nil, fmt.Errorf("controller %s: %w", r, err)
		}
		region := r
		c.OnRest(func() { s.playRestTone(region) })
		s.controllers = append(s.controllers, c)
		s.loop.AddWithSpeed(c, s.agentSpeed)
	}

	if err := s.initAudio(); err != nil {
		// Non-fatal, the sandbox can run silent
		log.Printf("Audio initialization failed: %v", err)
	}
	return s, nil
}

func (s *Sandbox) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		s.audioInit = true
	}
	return err
}

func (s *Sandbox) playRestTone(r preset.Region) {
	if !s.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	freq := 440.0
	if r == preset.RegionHead {
		freq = 660
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), sine))
}

func (s *Sandbox) agentSpeed() float64 {
	if s.walking {
		return walkSpeed
	}
	return 0
}

func (s *Sandbox) update() {
	s.orbit += orbitSpeed * frameDt
	s.target = mgl64.Vec3{
		orbitRadius * math.Cos(s.orbit),
		1.5 + 0.5*math.Sin(s.orbit*1.7),
		orbitRadius * math.Sin(s.orbit),
	}

	if s.tracking {
		for _, c := range s.controllers {
			c.Start(s.target, false)
		}
	}

	s.loop.Step(frameDt)
}

// project maps world coordinates to screen cells: X/Y plane front view,
// world Z folded into a slight horizontal skew for depth
func (s *Sandbox) project(p mgl64.Vec3) (int, int) {
	scale := float64(s.height) / 3.0
	x := float64(s.width)/2 + (p.X()+0.3*p.Z())*scale
	y := float64(s.height) - 2 - p.Y()*scale
	return int(x), int(y)
}

func (s *Sandbox) plot(p mgl64.Vec3, ch rune, style tcell.Style) {
	x, y := s.project(p)
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.screen.SetContent(x, y, ch, nil, style)
	}
}

func (s *Sandbox) draw() {
	s.screen.Clear()

	boneStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	linkStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, b := range s.skel.Bones() {
		if parent := b.Parent(); parent != nil {
			// Midpoint marker suggests the segment without a line rasterizer
			mid := b.WorldPosition().Add(parent.WorldPosition()).Mul(0.5)
			s.plot(mid, '.', linkStyle)
		}
		s.plot(b.WorldPosition(), 'o', boneStyle)
	}

	if s.tracking {
		s.plot(s.target, 'X', tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	for _, c := range s.controllers {
		if pos, ok := c.FollowerPosition(); ok {
			s.plot(pos, '*', tcell.StyleDefault.Foreground(tcell.ColorYellow))
		}
		if rest, ok := c.RestPosition(); ok {
			s.plot(rest, '+', tcell.StyleDefault.Foreground(tcell.ColorTeal))
		}
	}

	status := fmt.Sprintf(" target:%v walk:%v  [space] target  [w] walk  [q] quit ", s.tracking, s.walking)
	for i, r := range status {
		if i < s.width {
			s.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGreen))
		}
	}

	s.screen.Show()
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.tracking = !s.tracking
				if !s.tracking {
					for _, c := range s.controllers {
						c.Stop()
					}
				}
			case 'w':
				s.walking = !s.walking
			}
		}
	case *tcell.EventResize:
		s.width, s.height = s.screen.Size()
		s.screen.Sync()
	}
	return true
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s.update()
			s.draw()
		}
	}
}

func (s *Sandbox) cleanup() {
	if s.audioInit {
		speaker.Close()
	}
	s.screen.Fini()
}

func main() {
	sandbox, err := NewSandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sandbox.cleanup()

	sandbox.run()
}
