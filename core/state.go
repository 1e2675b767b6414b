package core

// Motion constants
const (
	MoveStep       = 1.0  // world units per f/b press
	MotionStep     = 0.5  // horizontal motion accumulator step
	TurnStep       = 10.0 // degrees per left/right press
	ClimbStep      = 0.5  // world units per up/down press
	PropStep       = 10.0 // propeller degrees per tick
	HullBaseHeight = 4.0  // hull centre height above the ground at zero altitude
)

// State is everything the input handlers and the timer mutate and the
// renderer reads. It is only touched from the event loop goroutine.
type State struct {
	XPos     float64
	ZPos     float64
	Altitude float64
	Heading  float64 // degrees, unbounded

	PropAngle   float64 // degrees, unbounded
	PropellerOn bool
	Direction   Direction

	// HorizontalMotion accumulates -0.5 per forward and +0.5 per backward press
	HorizontalMotion float64
}

// NewState returns the submarine at the origin with its bow toward -X and
// the propeller stopped
func NewState() *State {
	return &State{Direction: Forward}
}

// ToggleProp starts or stops the propeller animation
func (s *State) ToggleProp() {
	s.PropellerOn = !s.PropellerOn
}

// MoveForward advances the submarine one step along its heading
func (s *State) MoveForward() {
	s.Direction = Forward
	s.HorizontalMotion -= MotionStep
	v := HeadingVector(s.Heading)
	s.XPos -= v[0] * MoveStep
	s.ZPos -= v[2] * MoveStep
}

// MoveBackward retreats the submarine one step along its heading
func (s *State) MoveBackward() {
	s.Direction = Backward
	s.HorizontalMotion += MotionStep
	v := HeadingVector(s.Heading)
	s.XPos += v[0] * MoveStep
	s.ZPos += v[2] * MoveStep
}

func (s *State) TurnLeft()  { s.Heading += TurnStep }
func (s *State) TurnRight() { s.Heading -= TurnStep }
func (s *State) Ascend()    { s.Altitude += ClimbStep }
func (s *State) Descend()   { s.Altitude -= ClimbStep }

// Tick advances the propeller by step ticks' worth of rotation when the
// animation is on. step is 1 for fixed tick stepping.
func (s *State) Tick(step float64) {
	if !s.PropellerOn {
		return
	}
	s.PropAngle += float64(s.Direction) * PropStep * step
}
