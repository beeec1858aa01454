package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"numerics"
)

const (
	sampleRate  = 48000
	tps         = 60
	hoverRadius = 10
	rotSpeed    = 90 * math.Pi / 180 // radians per second
	accel       = 120                // px/s^2
)

// Game holds the entire app state.
type Game struct {
	W, H int

	Grids   []GridFamily
	Points  []numerics.Vector2
	moveDir numerics.Vector2 // direction of the moving tiled pattern
	speed   float32          // pixels per second magnitude

	lastInside [][]bool // [gridIdx][pointIdx] whether point was inside thickness band last frame

	hoverIdx int // -1 if none hovered

	audioCtx *audio.Context
}

func NewGame(w, h int, speed float32) *Game {
	fw, fh := float32(w), float32(h)
	grids := []GridFamily{
		{Normal: numerics.UnitX(), Spacing: 60, Color: color.RGBA{0x66, 0x66, 0xFF, 0xFF}, Thickness: 2, FreqHz: 660},
		{Normal: numerics.UnitY(), Spacing: 60, Color: color.RGBA{0x66, 0xFF, 0x66, 0xFF}, Thickness: 2, FreqHz: 880},
		{Normal: numerics.One().Normalize(), Spacing: 85, Color: color.RGBA{0xFF, 0x66, 0x66, 0xFF}, Thickness: 2, FreqHz: 1100},
	}
	center := numerics.New(fw, fh).MultiplyScalar(0.5)
	points := []numerics.Vector2{
		center.Multiply(numerics.New(0.5, 1)),
		center,
		center.Multiply(numerics.New(1.5, 1)),
		center.Multiply(numerics.New(1, 0.5)),
		center.Multiply(numerics.New(1, 1.5)),
	}

	last := make([][]bool, len(grids))
	for i := range last {
		last[i] = make([]bool, len(points))
	}

	return &Game{
		W: w, H: h,
		Grids:      grids,
		Points:     points,
		moveDir:    numerics.New(1, 0.3).Normalize(),
		speed:      speed,
		lastInside: last,
		hoverIdx:   -1,
		audioCtx:   audio.NewContext(sampleRate),
	}
}

func (g *Game) center() numerics.Vector2 {
	return numerics.New(float32(g.W), float32(g.H)).MultiplyScalar(0.5)
}

func (g *Game) Update() error {
	const dt = 1.0 / tps

	// Handle mouse hover and click for adding/removing points
	mx, my := ebiten.CursorPosition()
	mouse := numerics.New(float32(mx), float32(my)).
		Clamp(numerics.Zero(), numerics.New(float32(g.W), float32(g.H)))

	// Hover detection within small radius
	g.hoverIdx = -1
	best := float32(hoverRadius * hoverRadius)
	for i, p := range g.Points {
		if d := p.DistanceSquared(mouse); d <= best {
			best = d
			g.hoverIdx = i
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.hoverIdx >= 0 {
			// Remove hovered point
			idx := g.hoverIdx
			g.Points = append(g.Points[:idx], g.Points[idx+1:]...)
			for gi := range g.lastInside {
				row := g.lastInside[gi]
				g.lastInside[gi] = append(row[:idx], row[idx+1:]...)
			}
			g.hoverIdx = -1
		} else {
			// Add new point at mouse position
			g.Points = append(g.Points, mouse)
			for gi := range g.lastInside {
				g.lastInside[gi] = append(g.lastInside[gi], false)
			}
		}
	}

	// Rotate movement direction by a fixed angular rate
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.moveDir = rotate(g.moveDir, -rotSpeed*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.moveDir = rotate(g.moveDir, rotSpeed*dt)
	}

	// Adjust speed by a fixed amount per second
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.speed += accel * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.speed -= accel * dt
	}
	g.speed = max(g.speed, 0)

	// Offsets advance by the projection of the step onto each grid normal.
	step := g.moveDir.MultiplyScalar(g.speed * dt)
	for i := range g.Grids {
		g.Grids[i].Offset += g.Grids[i].Normal.Dot(step)
	}

	// Touch detection and blips
	center := g.center()
	for gi, gf := range g.Grids {
		for pi, p := range g.Points {
			inside := gf.bandDistance(center, p) <= gf.Thickness
			if inside && !g.lastInside[gi][pi] {
				g.playBlip(gf, p)
			}
			g.lastInside[gi][pi] = inside
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(color.RGBA{0x0D, 0x0D, 0x10, 0xFF})

	center := g.center()
	diag := center.Length() * 2
	for _, gf := range g.Grids {
		// Determine range of k that fits in window bounds: cover up to diagonal distance
		kMin, kMax := gf.lineRange(diag)
		for k := kMin; k <= kMax; k++ {
			p1, p2 := gf.segment(center, k, diag)
			vector.StrokeLine(screen, p1.X, p1.Y, p2.X, p2.Y, 1.5, gf.Color, true)
		}
	}

	// Draw points
	for i, p := range g.Points {
		if i == g.hoverIdx {
			// highlighted point
			drawCross(screen, p, 8, color.RGBA{0xFF, 0xFF, 0x66, 0xFF})
		} else {
			drawCross(screen, p, 6, color.RGBA{0xFF, 0xEE, 0xAA, 0xFF})
		}
	}

	// HUD text
	msg := "Mouse: Left click add/remove point. Hover to highlight.  "
	msg += "Arrows: Left/Right rotate, Up/Down speed +/-\n"
	msg += fmt.Sprintf("Speed: %.1f px/s  Dir: %.2f", g.speed, g.moveDir)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.W, g.H
}

func drawCross(dst *ebiten.Image, p numerics.Vector2, size float32, col color.Color) {
	// Two lines crossing at p
	h := numerics.UnitX().MultiplyScalar(size)
	v := numerics.UnitY().MultiplyScalar(size)
	for _, d := range []numerics.Vector2{h, v} {
		a, b := p.Subtract(d), p.Add(d)
		vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, 1.5, col, true)
	}
}

// playBlip starts a new player per trigger so blips can overlap; ebiten
// stops each one once its bytes are consumed.
func (g *Game) playBlip(gf GridFamily, p numerics.Vector2) {
	pcm := generateBlipPCM(blipParams{
		SampleRate: sampleRate,
		Seconds:    0.06,
		FreqHz:     gf.FreqHz,
		Pan:        p.X / float32(g.W),
	})
	pl := g.audioCtx.NewPlayerFromBytes(pcm)
	pl.Play()
}

func main() {
	width := flag.Int("width", 960, "window width in pixels")
	height := flag.Int("height", 640, "window height in pixels")
	speed := flag.Float64("speed", 120, "initial pattern speed in px/s")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("grythm: invalid window size %dx%d", *width, *height)
	}

	game := NewGame(*width, *height, float32(*speed))
	// Basic window setup
	ebiten.SetWindowSize(game.W, game.H)
	ebiten.SetWindowTitle("Grythm — Grid Rhythm Visualizer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("grythm: %v", err)
	}
}
