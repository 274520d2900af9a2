// Package viewer is the sample window that drives an orbit camera from mouse
// input and paints a small scene with it.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/smasonuk/orbitcam"
	"github.com/smasonuk/orbitcam/internal/config"
	"github.com/smasonuk/orbitcam/internal/logger"
	"github.com/smasonuk/orbitcam/internal/scene"
)

var (
	background   = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	gridColor    = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	outlineColor = color.RGBA{R: 100, G: 100, B: 100, A: 20}
)

const cubeSpacing = 3.0

type Game struct {
	cfg *config.Config
	cam orbitcam.CameraManipulator

	world   *scene.World
	gridIdx int

	drag         dragMode
	dragButton   ebiten.MouseButton
	lastX, lastY int
	width        int
	height       int
	showHelp     bool
}

func NewGame(cfg *config.Config) *Game {
	g := &Game{
		cfg:      cfg,
		cam:      orbitcam.NewWithViewport(cfg.Window.Width, cfg.Window.Height),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		gridIdx:  -1,
		showHelp: true,
	}
	g.world = newWorld(cfg.Scene, cfg.Camera.Near)
	if cfg.Scene.GridSize > 0 {
		g.gridIdx = 0
		g.world.SetHidden(g.gridIdx, !cfg.Scene.Grid)
	}
	g.resetView()

	logger.Info("scene ready",
		zap.Int("objects", g.world.ObjectCount()),
		zap.Int("cubes", cfg.Scene.Cubes),
		zap.Bool("grid", cfg.Scene.Grid))
	return g
}

// newWorld lays the cubes out in a row along x, centred on the origin, over
// the ground grid.
func newWorld(cfg config.SceneConfig, near float64) *scene.World {
	w := scene.NewWorld(near)
	if cfg.GridSize > 0 {
		grid := scene.NewGrid(cfg.GridSize, 1, gridColor)
		w.AddObject(grid, mgl64.Vec3{0, -1, 0})
	}

	cube := scene.NewCube(1, scene.CubeColors)
	for i := 0; i < cfg.Cubes; i++ {
		x := (float64(i) - float64(cfg.Cubes-1)/2) * cubeSpacing
		w.AddObject(cube.Clone(), mgl64.Vec3{x, 0, 0})
	}
	return w
}

func (g *Game) resetView() {
	g.cam.LookAt(g.cfg.Camera.EyeVec(), g.cfg.Camera.AtVec())
	logger.Debug("camera reset",
		zap.Float64s("eye", g.cfg.Camera.Eye[:]),
		zap.Float64s("at", g.cfg.Camera.At[:]))
}

func (g *Game) Update() error {
	g.handleKeys()
	g.handleDrag()

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.DollyWithSpeed(wy*g.cfg.Camera.WheelStep, g.cfg.Camera.DollySpeed)
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && g.gridIdx >= 0 {
		hidden := !g.world.Hidden(g.gridIdx)
		g.world.SetHidden(g.gridIdx, hidden)
		logger.Debug("grid toggled", zap.Bool("visible", !hidden))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
}

func (g *Game) handleDrag() {
	if g.drag == dragNone {
		g.drag, g.dragButton = pressedMode()
		if g.drag != dragNone {
			g.lastX, g.lastY = ebiten.CursorPosition()
			logger.Debug("drag started", zap.Stringer("mode", g.drag))
		}
		return
	}

	if !ebiten.IsMouseButtonPressed(g.dragButton) {
		logger.Debug("drag ended", zap.Stringer("mode", g.drag))
		g.drag = dragNone
		return
	}

	x, y := ebiten.CursorPosition()
	dx, dy := x-g.lastX, y-g.lastY
	g.lastX, g.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}

	switch g.drag {
	case dragRotate:
		g.cam.RotateWithSpeed(rotateDelta(dx, dy), g.cfg.Camera.RotateSpeed)
	case dragTrack:
		g.cam.Track(trackDelta(dx, dy))
	case dragDolly:
		g.cam.DollyWithSpeed(dollyDelta(dy), g.cfg.Camera.DollySpeed)
	}
}

// pressedMode picks the gesture for a button pressed this tick.
func pressedMode() (dragMode, ebiten.MouseButton) {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			return dragTrack, ebiten.MouseButtonLeft
		}
		return dragRotate, ebiten.MouseButtonLeft
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		return dragTrack, ebiten.MouseButtonRight
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		return dragDolly, ebiten.MouseButtonMiddle
	}
	return dragNone, ebiten.MouseButtonLeft
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	transform := g.cam.CameraTransform()
	view := toMat4d(transform.Inv())
	proj := g.cam.Projection(g.cfg.Camera.Near, g.cfg.Camera.Far)

	frame := g.world.Render(view, proj, g.width, g.height)
	paintFrame(screen, frame, outlineColor)

	ebitenutil.DebugPrint(screen, g.hud(transform, len(frame.Polygons)))
}

func (g *Game) hud(transform mgl32.Mat4, polygons int) string {
	pos := orbitcam.CameraPosition(transform)
	rot := g.cam.Rotation()
	target := g.cam.Target()

	s := fmt.Sprintf("FPS: %0.2f  polys: %d\n", ebiten.ActualFPS(), polygons)
	s += fmt.Sprintf("eye: (%.2f, %.2f, %.2f)  target: (%.2f, %.2f, %.2f)\n",
		pos.X(), pos.Y(), pos.Z(), target.X(), target.Y(), target.Z())
	s += fmt.Sprintf("distance: %.2f  yaw: %.1f  pitch: %.1f\n",
		g.cam.Distance(), mgl64.RadToDeg(rot.Y()), mgl64.RadToDeg(rot.X()))
	if g.showHelp {
		s += "left drag: rotate  right/shift drag: track  wheel/middle drag: dolly\n"
		s += "R: reset  G: grid  H: help"
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.cam.SetViewport(outsideWidth, outsideHeight)
		logger.Debug("viewport resized", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func toMat4d(m mgl32.Mat4) mgl64.Mat4 {
	var out mgl64.Mat4
	for i := range m {
		out[i] = float64(m[i])
	}
	return out
}
