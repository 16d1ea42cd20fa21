package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	meterFilled = "█"
	meterEmpty  = "░"

	meterAngularFrequency = 6.0
	meterDampingRatio     = 1.0

	// Distance under which the spring counts as settled
	meterSettleThreshold = 0.001
)

// Meter is a week progress bar that eases toward its target ratio with spring physics
type Meter struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	width    int
}

// NewMeter creates a Meter of width cells starting empty
func NewMeter(width int) *Meter {
	return &Meter{
		spring: harmonica.NewSpring(harmonica.FPS(UITicksPerSecond), meterAngularFrequency, meterDampingRatio),
		width:  width,
	}
}

// Set moves the target to completed out of total
func (m *Meter) Set(completed, total int) {
	if total <= 0 {
		m.target = 0
		return
	}

	m.target = math.Min(1, float64(completed)/float64(total))
}

// Jump places the meter at its target without animating
func (m *Meter) Jump() {
	m.position = m.target
	m.velocity = 0
}

// Update advances the animation by one tick and reports whether it is still moving
func (m *Meter) Update() bool {
	if m.Settled() {
		return false
	}

	m.position, m.velocity = m.spring.Update(m.position, m.velocity, m.target)

	if m.Settled() {
		m.Jump()
		return false
	}

	return true
}

// Settled reports whether the meter rests at its target
func (m *Meter) Settled() bool {
	return math.Abs(m.target-m.position) < meterSettleThreshold && math.Abs(m.velocity) < meterSettleThreshold
}

// Position returns the displayed ratio clamped to [0, 1]
func (m *Meter) Position() float64 {
	return math.Max(0, math.Min(1, m.position))
}

// Render draws the bar with filled cells in style
func (m *Meter) Render(style lipgloss.Style) string {
	filled := int(math.Round(m.Position() * float64(m.width)))

	return style.Render(strings.Repeat(meterFilled, filled)) + SeparatorStyle.Render(strings.Repeat(meterEmpty, m.width-filled))
}
