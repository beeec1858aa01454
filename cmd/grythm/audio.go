package main

import (
	"encoding/binary"
	"math"

	"numerics"
)

// blipParams describes one percussive blip.
type blipParams struct {
	SampleRate int
	Seconds    float64
	FreqHz     float64
	// Pan in [0, 1]: 0 is hard left, 1 is hard right.
	Pan float32
}

// panGains returns equal-power left/right gains as a vector whose length is 1.
func panGains(pan float32) numerics.Vector2 {
	p := numerics.New(pan, 0).Clamp(numerics.Zero(), numerics.One()).X
	theta := float64(p) * math.Pi / 2
	return numerics.New(float32(math.Cos(theta)), float32(math.Sin(theta)))
}

// generateBlipPCM renders a blip as 16-bit little-endian stereo PCM. The tone
// has a short cosine attack, an exponential decay reaching about -60dB at the
// end, a slight downward pitch glide and a quiet second harmonic.
func generateBlipPCM(p blipParams) []byte {
	n := int(float64(p.SampleRate) * p.Seconds)
	if n <= 1 {
		return nil
	}
	out := make([]byte, 0, n*4)

	const amp = 0.22
	const lambda = 6.9 // exp(-6.9) ~ 0.001

	attackN := int(math.Min(0.005, p.Seconds*0.2) * float64(p.SampleRate))
	startFreq := p.FreqHz * 1.03
	endFreq := p.FreqHz * 0.92

	gains := panGains(p.Pan)
	lo, hi := numerics.Splat(-1), numerics.Splat(1)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)

		envA := 1.0
		if i < attackN {
			envA = 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(attackN))
		}
		env := amp * envA * math.Exp(-lambda*t)

		f := startFreq * math.Pow(endFreq/startFreq, t)
		phase += 2 * math.Pi * f / float64(p.SampleRate)
		mono := (math.Sin(phase) + 0.18*math.Sin(2*phase)) * env

		s := gains.MultiplyScalar(float32(mono)).Clamp(lo, hi)
		out = binary.LittleEndian.AppendUint16(out, uint16(int16(s.X*32767)))
		out = binary.LittleEndian.AppendUint16(out, uint16(int16(s.Y*32767)))
	}
	return out
}
