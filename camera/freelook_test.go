package camera

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cull-engine/math"
)

var testKeys = KeyMap{
	Forward: 1, Back: 2,
	Left: 3, Right: 4,
	Up: 5, Down: 6,
	Fast: 7, Normal: 8,
	Reset:      9,
	LookButton: 1,
}

type fakeInput struct {
	keys    map[int]bool
	buttons map[int]bool
	x, y    float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		keys:    make(map[int]bool),
		buttons: make(map[int]bool),
	}
}

func (in *fakeInput) IsKeyPressed(key int) bool           { return in.keys[key] }
func (in *fakeInput) IsMouseButtonPressed(button int) bool { return in.buttons[button] }
func (in *fakeInput) GetCursorPos() (float64, float64)     { return in.x, in.y }

func TestFreeLookMoves(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want math.Vec3
	}{
		{
			name: "forward",
			keys: []int{testKeys.Forward},
			want: math.NewVec3(2, 5, 17),
		},
		{
			name: "back",
			keys: []int{testKeys.Back},
			want: math.NewVec3(2, 5, -13),
		},
		{
			name: "strafe right",
			keys: []int{testKeys.Right},
			want: math.NewVec3(-13, 5, 2),
		},
		{
			name: "up",
			keys: []int{testKeys.Up},
			want: math.NewVec3(2, 20, 2),
		},
		{
			name: "opposite keys cancel",
			keys: []int{testKeys.Left, testKeys.Right, testKeys.Down},
			want: math.NewVec3(2, -10, 2),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewCamera(StartPosition, DefaultProjection())
			fl := NewFreeLook(testKeys)
			in := newFakeInput()
			for _, k := range test.keys {
				in.keys[k] = true
			}

			fl.Update(in, c, 1)
			requireVec3Near(t, test.want, c.Position)
		})
	}
}

func TestFreeLookSpeedLatches(t *testing.T) {
	c := NewCamera(math.Vec3Zero, DefaultProjection())
	fl := NewFreeLook(testKeys)
	in := newFakeInput()

	in.keys[testKeys.Fast] = true
	fl.Update(in, c, 0)
	in.keys[testKeys.Fast] = false
	require.Equal(t, float32(FastSpeed), fl.Speed)

	in.keys[testKeys.Forward] = true
	fl.Update(in, c, 0.5)
	requireVec3Near(t, math.NewVec3(0, 0, 22.5), c.Position)

	in.keys[testKeys.Normal] = true
	fl.Update(in, c, 0)
	require.Equal(t, float32(NormalSpeed), fl.Speed)
}

func TestFreeLookMouseLook(t *testing.T) {
	c := NewCamera(math.Vec3Zero, DefaultProjection())
	fl := NewFreeLook(testKeys)
	in := newFakeInput()

	in.x, in.y = 500, 300
	fl.Update(in, c, 0)
	require.Zero(t, c.Yaw, "cursor moves without the button do not turn")

	in.buttons[testKeys.LookButton] = true
	fl.Update(in, c, 0)
	require.Zero(t, c.Yaw, "the first dragged frame only records the cursor")

	in.x, in.y = 600, 200
	fl.Update(in, c, 0)
	require.InDelta(t, -0.3, c.Yaw, 1e-6)
	require.InDelta(t, 0.3, c.Pitch, 1e-6)

	in.y = -10000
	fl.Update(in, c, 0)
	require.Equal(t, float32(MaxPitch), c.Pitch)
}

func TestFreeLookReset(t *testing.T) {
	c := NewCamera(math.NewVec3(40, -3, 7), DefaultProjection())
	c.Yaw, c.Pitch = 1, -1
	fl := NewFreeLook(testKeys)
	in := newFakeInput()

	in.keys[testKeys.Reset] = true
	in.keys[testKeys.Forward] = true
	fl.Update(in, c, 1)

	require.Equal(t, StartPosition, c.Position)
	require.Zero(t, c.Yaw)
	require.Zero(t, c.Pitch)
}
