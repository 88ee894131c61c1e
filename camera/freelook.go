package camera

import "cull-engine/math"

const (
	NormalSpeed = 15
	FastSpeed   = 45

	// Radians per pixel of cursor movement.
	LookSensitivity = 0.003
)

// StartPosition is where a FreeLook camera starts and returns to on reset.
var StartPosition = math.NewVec3(2, 5, 2)

// Input is the polled keyboard and mouse state a FreeLook reads every frame.
type Input interface {
	IsKeyPressed(key int) bool
	IsMouseButtonPressed(button int) bool
	GetCursorPos() (float64, float64)
}

// KeyMap binds FreeLook actions to Input key and button codes.
type KeyMap struct {
	Forward, Back int
	Left, Right   int
	Up, Down      int
	Fast, Normal  int
	Reset         int
	LookButton    int
}

// FreeLook moves a camera from keyboard input and turns it while the look
// button is held. Fast and Normal latch the movement speed until the other
// is pressed.
type FreeLook struct {
	Keys  KeyMap
	Speed float32
	Start math.Vec3

	lastX, lastY float64
	dragging     bool
}

func NewFreeLook(keys KeyMap) *FreeLook {
	return &FreeLook{
		Keys:  keys,
		Speed: NormalSpeed,
		Start: StartPosition,
	}
}

// Update applies one frame of input to c. dt is the frame time in seconds.
func (fl *FreeLook) Update(in Input, c *Camera, dt float32) {
	if in.IsKeyPressed(fl.Keys.Fast) {
		fl.Speed = FastSpeed
	}
	if in.IsKeyPressed(fl.Keys.Normal) {
		fl.Speed = NormalSpeed
	}

	if in.IsMouseButtonPressed(fl.Keys.LookButton) {
		x, y := in.GetCursorPos()
		if fl.dragging {
			// Screen Y grows downwards and positive yaw turns left.
			c.Rotate(
				-float32(x-fl.lastX)*LookSensitivity,
				-float32(y-fl.lastY)*LookSensitivity,
			)
		}
		fl.lastX, fl.lastY = x, y
		fl.dragging = true
	} else {
		fl.dragging = false
	}

	var lr, bf, ud float32
	step := fl.Speed * dt
	if in.IsKeyPressed(fl.Keys.Left) {
		lr -= step
	}
	if in.IsKeyPressed(fl.Keys.Right) {
		lr += step
	}
	if in.IsKeyPressed(fl.Keys.Forward) {
		bf += step
	}
	if in.IsKeyPressed(fl.Keys.Back) {
		bf -= step
	}
	if in.IsKeyPressed(fl.Keys.Up) {
		ud += step
	}
	if in.IsKeyPressed(fl.Keys.Down) {
		ud -= step
	}

	c.Position = c.Position.
		Add(c.Right().Mul(lr)).
		Add(c.Forward().Mul(bf)).
		Add(c.LocalUp().Mul(ud))

	if in.IsKeyPressed(fl.Keys.Reset) {
		fl.Reset(c)
	}
}

// Reset puts c back at the start position looking down +Z.
func (fl *FreeLook) Reset(c *Camera) {
	c.Position = fl.Start
	c.Yaw = 0
	c.Pitch = 0
}
