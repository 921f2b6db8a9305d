// Package viewer opens a window and redraws a molecule every frame: one
// sphere per atom, one cylinder per bond, under a camera steered by the
// keyboard or by the built-in orbit scheme. The rendering itself is done by
// raylib; this package only owns the frame loop and the camera.
package viewer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/kpotier/molview/pkg/cfg"
	"github.com/kpotier/molview/pkg/molecule"
)

// Bonds are all drawn the same way whatever the two elements are.
const (
	bondRadius = 0.1
	bondSides  = 8
)

var bondColor = rl.NewColor(150, 150, 150, 255)

// Viewer owns the window, the camera and the molecule to draw. It can be
// instanced through the New method. The molecule must not be modified while
// Run is looping.
type Viewer struct {
	cfg        cfg.Cfg
	mol        *molecule.Molecule
	background rl.Color
	camera     rl.Camera3D
}

// New returns an instance of the Viewer structure. It checks the molecule
// before anything is drawn: every element id must be an index into the
// element table and every bond must reference two distinct atoms in
// ascending order.
func New(c cfg.Cfg, mol *molecule.Molecule) (*Viewer, error) {
	for k, a := range mol.Atoms {
		if int(a.Element) >= len(molecule.Elements) {
			return nil, fmt.Errorf("atom %d: element id %d is out of range", k, a.Element)
		}
	}

	for k, b := range mol.Bonds {
		if b.I < 0 || b.J >= len(mol.Atoms) || b.I >= b.J {
			return nil, fmt.Errorf("bond %d: invalid atom pair (%d, %d)", k, b.I, b.J)
		}
	}

	bg, err := c.BackgroundRGBA()
	if err != nil {
		return nil, fmt.Errorf("BackgroundRGBA: %w", err)
	}

	return &Viewer{
		cfg:        c,
		mol:        mol,
		background: rgba(bg),
		camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, -1),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			90,
			rl.CameraPerspective,
		),
	}, nil
}

// Run opens the window and loops until it is closed. It is a thread blocking
// method and must be called from the main goroutine: raylib owns the window
// and the GL context on the calling thread. Each iteration polls the input,
// updates the camera and redraws the whole molecule.
func (v *Viewer) Run() {
	rl.InitWindow(v.cfg.Width, v.cfg.Height, v.cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(v.cfg.FPS)

	orbit := v.cfg.CameraMode == "orbit"
	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		if orbit {
			rl.UpdateCamera(&v.camera, rl.CameraThirdPerson)
		} else {
			Step(&v.camera, pollInput(), v.cfg.CameraSpeed, dt)
		}

		v.draw()
	}
}

// draw renders one frame: background, then atoms, then bonds.
func (v *Viewer) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(v.background)
	rl.BeginMode3D(v.camera)

	for _, a := range v.mol.Atoms {
		el := molecule.Elements[a.Element]
		rl.DrawSphere(vec3(a.Pos), el.Radius, rgba(el.Color))
	}

	for _, b := range v.mol.Bonds {
		rl.DrawCylinderEx(vec3(v.mol.Atoms[b.I].Pos), vec3(v.mol.Atoms[b.J].Pos),
			bondRadius, bondRadius, bondSides, bondColor)
	}

	rl.EndMode3D()
	rl.EndDrawing()
}

func vec3(p [3]float32) rl.Vector3 {
	return rl.NewVector3(p[0], p[1], p[2])
}

// rgba unpacks a 0xRRGGBBAA value.
func rgba(v uint32) rl.Color {
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}
