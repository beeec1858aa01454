package main

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f32"

	"numerics"
)

// GridFamily represents a family of infinite parallel grid lines.
// Each line satisfies n·(x - center) = k*Spacing + Offset for some integer k.
type GridFamily struct {
	Normal    numerics.Vector2 // must be normalized
	Spacing   float32          // pixels between lines
	Offset    float32          // pixels along normal from center
	Color     color.Color
	Thickness float32 // half-thickness used for touch detection and drawing width
	FreqHz    float64 // blip pitch for this family
}

// bandDistance is the distance from p to the nearest line of gf.
func (gf GridFamily) bandDistance(center, p numerics.Vector2) float32 {
	// Distance along normal from center to point.
	along := gf.Normal.Dot(p.Subtract(center))
	// Nearest integer k such that |along - (k*Spacing + Offset)| is minimized
	k := math32.Round((along - gf.Offset) / gf.Spacing)
	closest := k*gf.Spacing + gf.Offset
	return math32.Abs(along - closest)
}

// lineRange returns the k indices whose lines can be visible within reach
// pixels of the center.
func (gf GridFamily) lineRange(reach float32) (int, int) {
	kMin := int(math32.Floor((-reach-gf.Offset)/gf.Spacing)) - 1
	kMax := int(math32.Ceil((reach-gf.Offset)/gf.Spacing)) + 1
	return kMin, kMax
}

// segment returns the endpoints of line k, extended reach pixels both ways.
func (gf GridFamily) segment(center numerics.Vector2, k int, reach float32) (numerics.Vector2, numerics.Vector2) {
	pt := center.Add(gf.Normal.MultiplyScalar(float32(k)*gf.Spacing + gf.Offset))
	t := gf.Normal.Perp().MultiplyScalar(reach)
	return pt.Add(t), pt.Subtract(t)
}

// aff3 converts an ebiten geometry matrix to its row-major affine form.
func aff3(g ebiten.GeoM) f32.Aff3 {
	var m f32.Aff3
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			m[3*i+j] = float32(g.Element(i, j))
		}
	}
	return m
}

// rotate turns dir by theta radians and renormalizes it to keep drift out.
func rotate(dir numerics.Vector2, theta float64) numerics.Vector2 {
	var g ebiten.GeoM
	g.Rotate(theta)
	return dir.TransformNormal(aff3(g)).Normalize()
}
