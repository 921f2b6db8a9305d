package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is the state of the four directional keys, sampled once per frame
// before the camera update.
type Input struct {
	Forward bool
	Back    bool
	Right   bool
	Left    bool
}

// Step applies one translate-mode camera update. Each active direction moves
// the camera position along a fixed world axis by speed*dt: forward/back
// along Z, right/left along X. The target and the up vector are left
// untouched, so the camera slides without turning towards its target.
func Step(cam *rl.Camera3D, in Input, speed, dt float32) {
	if in.Forward {
		cam.Position.Z += speed * dt
	}
	if in.Back {
		cam.Position.Z -= speed * dt
	}
	if in.Right {
		cam.Position.X += speed * dt
	}
	if in.Left {
		cam.Position.X -= speed * dt
	}
}

// pollInput samples the directional keys (W, S, D, A) from the window.
func pollInput() Input {
	return Input{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Right:   rl.IsKeyDown(rl.KeyD),
		Left:    rl.IsKeyDown(rl.KeyA),
	}
}
