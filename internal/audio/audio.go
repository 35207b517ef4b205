// Package audio maps vehicle telemetry onto the engine, throttle and brake
// voices and renders them as a continuous float32 stereo stream.
package audio

import (
	"math"
	"sync/atomic"

	"f1demo/internal/vehicle"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	// ActiveThreshold is the intensity above which throttle and brake
	// voices sound.
	ActiveThreshold = 0.1
)

// Voice is a volume/pitch pair. Pitch is a multiplier on the voice's base
// frequency.
type Voice struct {
	Active bool
	Volume float64
	Pitch  float64
}

// Mix is the state of all three voices for one frame.
type Mix struct {
	Engine   Voice
	Throttle Voice
	Brake    Voice
}

// MixFor derives the voices from telemetry. maxRPM normalises the rpm
// proxy; a non-positive maxRPM leaves the engine at idle.
func MixFor(t vehicle.Telemetry, maxRPM float64) Mix {
	r := 0.0
	if maxRPM > 0 {
		r = clampF(t.RPM/maxRPM, 0, 1)
	}
	thr := clampF(t.Throttle, 0, 1)
	brk := clampF(t.Brake, 0, 1)
	return Mix{
		Engine: Voice{
			Active: true,
			Volume: 0.3 + 0.7*r,
			Pitch:  0.8 + 1.2*r,
		},
		Throttle: Voice{
			Active: thr > ActiveThreshold,
			Volume: thr * 0.8,
			Pitch:  0.8 + thr*0.4,
		},
		Brake: Voice{
			Active: brk > ActiveThreshold,
			Volume: brk,
			Pitch:  1.0 - brk*0.3,
		},
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Base frequencies in Hz.
const (
	engineBase   = 90.0
	throttleBase = 180.0
	brakeBase    = 800.0
)

// EngineStream is an endless io.Reader of stereo float32 LE frames. Its
// voices follow the last Mix passed to Set; Set may be called from a
// different goroutine than Read.
type EngineStream struct {
	params [9]atomic.Uint64 // engine, throttle, brake × (active, volume, pitch)

	// Owned by the reader goroutine.
	phase [3]float64
	gain  [3]float64
	seed  uint64
}

func NewEngineStream() *EngineStream {
	s := &EngineStream{seed: 0x5EED}
	s.Set(Mix{Engine: Voice{Active: true, Volume: 0.3, Pitch: 0.8}})
	return s
}

func (s *EngineStream) Set(m Mix) {
	for i, v := range [3]Voice{m.Engine, m.Throttle, m.Brake} {
		active := 0.0
		if v.Active {
			active = 1
		}
		s.params[i*3].Store(math.Float64bits(active))
		s.params[i*3+1].Store(math.Float64bits(v.Volume))
		s.params[i*3+2].Store(math.Float64bits(v.Pitch))
	}
}

func (s *EngineStream) voice(i int) (active bool, vol, pitch float64) {
	return math.Float64frombits(s.params[i*3].Load()) > 0,
		math.Float64frombits(s.params[i*3+1].Load()),
		math.Float64frombits(s.params[i*3+2].Load())
}

// Read fills p with whole stereo frames. It never returns an error.
func (s *EngineStream) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	var target, freq [3]float64
	bases := [3]float64{engineBase, throttleBase, brakeBase}
	for i := range bases {
		active, vol, pitch := s.voice(i)
		if active {
			target[i] = vol
		}
		freq[i] = bases[i] * pitch
	}

	// One-pole smoothing on gain keeps volume changes click-free.
	const smooth = 0.002
	for f := 0; f < frames; f++ {
		sample := 0.0
		for i := range s.phase {
			s.gain[i] += (target[i] - s.gain[i]) * smooth
			s.phase[i] += freq[i] / SampleRate
			if s.phase[i] >= 1 {
				s.phase[i] -= math.Floor(s.phase[i])
			}
		}
		sample += s.gain[0] * engineTone(s.phase[0])
		sample += s.gain[1] * sawTone(s.phase[1]) * 0.5
		sample += s.gain[2] * (math.Sin(2*math.Pi*s.phase[2])*0.6 + lcg(&s.seed)*0.2)
		putStereoF32(p, f, softSat(sample*0.4))
	}
	return frames * 8, nil
}

// engineTone is a fundamental plus two odd harmonics.
func engineTone(phase float64) float64 {
	x := 2 * math.Pi * phase
	return math.Sin(x) + 0.35*math.Sin(3*x) + 0.15*math.Sin(5*x)
}

func sawTone(phase float64) float64 {
	return 2*phase - 1
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// Feedback is the telemetry observer that keeps a stream in sync with the car.
type Feedback struct {
	stream *EngineStream
	maxRPM float64
	last   Mix
}

func NewFeedback(stream *EngineStream, maxRPM float64) *Feedback {
	return &Feedback{stream: stream, maxRPM: maxRPM}
}

func (f *Feedback) Observe(t vehicle.Telemetry) {
	f.last = MixFor(t, f.maxRPM)
	f.stream.Set(f.last)
}

// Last returns the mix applied by the most recent Observe.
func (f *Feedback) Last() Mix { return f.last }
