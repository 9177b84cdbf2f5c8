package tabbar

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	frameInterval = time.Second / 60

	// Spring tuning for icon rotation.
	springFrequency = 9.0
	springDamping   = 0.85

	settleAngle    = 0.5
	settleVelocity = 0.5
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// rotor tracks the displayed angle of one icon.
type rotor struct {
	angle    float64
	velocity float64
	target   float64
}

func (r rotor) settled() bool {
	return math.Abs(r.angle-r.target) < settleAngle && math.Abs(r.velocity) < settleVelocity
}

func (r *rotor) snap() {
	r.angle = r.target
	r.velocity = 0
}

func newSpring() harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(60), springFrequency, springDamping)
}

// step advances every rotor one frame and reports whether any still moves.
func step(spring harmonica.Spring, rotors []rotor) bool {
	moving := false
	for i := range rotors {
		r := &rotors[i]
		if r.settled() {
			r.snap()
			continue
		}
		r.angle, r.velocity = spring.Update(r.angle, r.velocity, r.target)
		if r.settled() {
			r.snap()
			continue
		}
		moving = true
	}
	return moving
}

func frame(id int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{id: id, Time: t}
	})
}
