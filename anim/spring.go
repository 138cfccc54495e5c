package anim

import (
	"math"
	"time"
)

// Default spring tuning.
const (
	DefaultMass             = 1
	DefaultRestDisplacement = 0.01
	DefaultRestSpeed        = 2
)

// Spring animates a scalar towards a target as a damped harmonic oscillator.
// The motion is evaluated analytically from the moment it was started, so the
// result does not depend on the frame rate.
type Spring struct {
	// Damping is the friction coefficient.
	Damping float32
	// Stiffness is the spring constant.
	Stiffness float32
	// Mass of the animated object. Defaults to DefaultMass.
	Mass float32
	// RestDisplacement is the distance from target below which the spring may
	// settle. Defaults to DefaultRestDisplacement.
	RestDisplacement float32
	// RestSpeed is the speed below which the spring may settle. Defaults to
	// DefaultRestSpeed.
	RestSpeed float32

	from, velocity, target float32
	started                time.Time
	running                bool
}

// Animate starts the spring at value from moving with the given velocity
// (units per second) towards target.
func (s *Spring) Animate(now time.Time, from, velocity, target float32) {
	s.from, s.velocity, s.target = from, velocity, target
	s.started = now
	s.running = from != target || velocity != 0
}

// Stop halts the spring, returning its value at now.
func (s *Spring) Stop(now time.Time) float32 {
	v, _ := s.Value(now)
	s.running = false
	s.from, s.velocity = v, 0
	return v
}

// Running reports whether the spring was moving the last time it was sampled.
func (s *Spring) Running() bool {
	return s.running
}

// Value samples the spring at now. It returns the current value and whether
// the spring is still in motion. Once the spring comes to rest it snaps to the
// target and reports false.
func (s *Spring) Value(now time.Time) (float32, bool) {
	if !s.running {
		return s.from, false
	}
	x, v := s.sample(now.Sub(s.started).Seconds())
	if math.Abs(x) < float64(s.restDisplacement()) && math.Abs(v) < float64(s.restSpeed()) {
		s.running = false
		s.from, s.velocity = s.target, 0
		return s.target, false
	}
	return s.target + float32(x), true
}

// sample returns the displacement from target and the velocity t seconds
// after the spring started.
func (s *Spring) sample(t float64) (x, v float64) {
	if t < 0 {
		t = 0
	}
	var (
		m     = float64(s.mass())
		k     = math.Max(float64(s.Stiffness), 1e-6)
		c     = math.Max(float64(s.Damping), 0)
		x0    = float64(s.from - s.target)
		v0    = float64(s.velocity)
		w0    = math.Sqrt(k / m)
		zeta  = c / (2 * math.Sqrt(k*m))
		decay float64
	)
	switch {
	case zeta < 1:
		a := zeta * w0
		wd := w0 * math.Sqrt(1-zeta*zeta)
		b := (v0 + a*x0) / wd
		decay = math.Exp(-a * t)
		cos, sin := math.Cos(wd*t), math.Sin(wd*t)
		x = decay * (x0*cos + b*sin)
		v = decay * ((b*wd-a*x0)*cos - (a*b+x0*wd)*sin)
	case zeta == 1:
		b := v0 + w0*x0
		decay = math.Exp(-w0 * t)
		x = decay * (x0 + b*t)
		v = decay * (b - w0*(x0+b*t))
	default:
		root := math.Sqrt(zeta*zeta - 1)
		r1 := -w0 * (zeta - root)
		r2 := -w0 * (zeta + root)
		c2 := (v0 - r1*x0) / (r2 - r1)
		c1 := x0 - c2
		e1, e2 := math.Exp(r1*t), math.Exp(r2*t)
		x = c1*e1 + c2*e2
		v = c1*r1*e1 + c2*r2*e2
	}
	return x, v
}

func (s *Spring) mass() float32 {
	if s.Mass <= 0 {
		return DefaultMass
	}
	return s.Mass
}

func (s *Spring) restDisplacement() float32 {
	if s.RestDisplacement <= 0 {
		return DefaultRestDisplacement
	}
	return s.RestDisplacement
}

func (s *Spring) restSpeed() float32 {
	if s.RestSpeed <= 0 {
		return DefaultRestSpeed
	}
	return s.RestSpeed
}
