package main

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"numerics"
)

func TestBandDistance(t *testing.T) {
	gf := GridFamily{Normal: numerics.UnitX(), Spacing: 60, Offset: 10}
	center := numerics.New(100, 100)

	require.Equal(t, float32(0), gf.bandDistance(center, numerics.New(110, 0)))
	require.Equal(t, float32(5), gf.bandDistance(center, numerics.New(115, 42)))
	require.Equal(t, float32(20), gf.bandDistance(center, numerics.New(150, 0)))
	require.Equal(t, float32(0), gf.bandDistance(center, numerics.New(50, 7)))

	// nearest line lies on the negative side of the center
	require.Equal(t, float32(15), gf.bandDistance(center, numerics.New(35, 0)))
	require.Equal(t, float32(1.5), gf.bandDistance(center, numerics.New(-8.5, 0)))
}

func TestLineRange(t *testing.T) {
	gf := GridFamily{Normal: numerics.UnitY(), Spacing: 50}
	kMin, kMax := gf.lineRange(100)
	require.Equal(t, -3, kMin)
	require.Equal(t, 3, kMax)

	gf.Offset = 25
	kMin, kMax = gf.lineRange(100)
	require.Equal(t, -4, kMin)
	require.Equal(t, 3, kMax)
}

func TestSegment(t *testing.T) {
	gf := GridFamily{Normal: numerics.UnitX(), Spacing: 10, Offset: 5}
	a, b := gf.segment(numerics.Zero(), 2, 100)
	require.Equal(t, numerics.New(25, 100), a)
	require.Equal(t, numerics.New(25, -100), b)
}

func TestAff3FromGeoM(t *testing.T) {
	var g ebiten.GeoM
	g.Scale(2, 3)
	g.Translate(10, 20)
	require.Equal(t, f32.Aff3{2, 0, 10, 0, 3, 20}, aff3(g))

	x, y := g.Apply(4, 5)
	require.Equal(t, numerics.New(float32(x), float32(y)), numerics.New(4, 5).Transform(aff3(g)))
}

func TestRotate(t *testing.T) {
	r := rotate(numerics.UnitX(), math.Pi/2)
	require.InDelta(t, 0, r.X, 1e-6)
	require.InDelta(t, 1, r.Y, 1e-6)

	d := numerics.New(3, 4).Normalize()
	for i := 0; i < 1000; i++ {
		d = rotate(d, 0.01)
	}
	require.InDelta(t, 1, d.Length(), 1e-6)
}

func TestPanGains(t *testing.T) {
	require.Equal(t, numerics.New(1, 0), panGains(0))
	require.Equal(t, panGains(0), panGains(-3))

	r := panGains(1)
	require.InDelta(t, 0, r.X, 1e-6)
	require.InDelta(t, 1, r.Y, 1e-6)

	mid := panGains(0.5)
	require.InDelta(t, mid.X, mid.Y, 1e-6)
	require.InDelta(t, 1, mid.Length(), 1e-6)
}

func TestGenerateBlipPCM(t *testing.T) {
	pcm := generateBlipPCM(blipParams{SampleRate: 1000, Seconds: 0.05, FreqHz: 440, Pan: 0})
	require.Len(t, pcm, 50*4)

	// hard left pan leaves the right channel silent
	for i := 0; i < len(pcm); i += 4 {
		require.Equal(t, []byte{0, 0}, pcm[i+2:i+4])
	}

	require.Nil(t, generateBlipPCM(blipParams{SampleRate: 1000, Seconds: 0}))
}
