// Package tones synthesizes simple beeper sounds: sequences of square-wave
// notes rendered as 8-bit unsigned mono samples.
package tones

import "sync"

const (
	// SampleRate is the output rate in Hz.
	SampleRate = 48000
	// Volume is the square wave amplitude around the unsigned midpoint.
	Volume = 32

	silence = 128
)

// Tone is one note of a pattern. Freq 0 is a rest.
type Tone struct {
	Freq   int // Hz
	Millis int
}

// Pattern is a sequence of tones played back to back.
type Pattern []Tone

// Patterns used by the cockpit.
var (
	// GroundWarning is a pair of short high beeps.
	GroundWarning = Pattern{{Freq: 880, Millis: 70}, {Millis: 50}, {Freq: 880, Millis: 70}, {Millis: 250}}
	// Click acknowledges a setting change.
	Click = Pattern{{Freq: 1500, Millis: 15}}
	// Startup rises through three notes.
	Startup = Pattern{{Freq: 440, Millis: 80}, {Freq: 660, Millis: 80}, {Freq: 880, Millis: 120}}
)

// Samples returns the number of samples a pattern lasts.
func (p Pattern) Samples() int {
	n := 0
	for _, t := range p {
		n += noteSamples(t)
	}
	return n
}

func noteSamples(t Tone) int {
	return SampleRate * t.Millis / 1000
}

// Sequencer plays patterns as an io.Reader of unsigned 8-bit samples. It
// never runs dry: with nothing queued it produces silence.
type Sequencer struct {
	mu      sync.Mutex
	pattern Pattern
	pos     int // index of the current tone

	noteLeft int // samples left in the current tone
	waveLeft int // samples left in the current half period
	half     int // half period of the current tone in samples, 0 for a rest
	high     bool

	muted bool
}

// NewSequencer returns an idle sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Play replaces whatever is playing with p.
func (s *Sequencer) Play(p Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pattern = p
	s.pos = -1
	s.noteLeft = 0
}

// Playing reports whether a pattern is still sounding.
func (s *Sequencer) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pattern != nil
}

// SetMuted silences output without stopping the sequencer.
func (s *Sequencer) SetMuted(m bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = m
}

// Read fills p with samples.
func (s *Sequencer) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range p {
		p[i] = s.next()
	}
	if s.muted {
		for i := range p {
			p[i] = silence
		}
	}
	return len(p), nil
}

// next advances one sample.
func (s *Sequencer) next() byte {
	for s.pattern != nil && s.noteLeft == 0 {
		s.pos++
		if s.pos >= len(s.pattern) {
			s.pattern = nil
			break
		}
		t := s.pattern[s.pos]
		s.noteLeft = noteSamples(t)
		s.half = 0
		if t.Freq > 0 {
			s.half = SampleRate / (2 * t.Freq)
			if s.half < 1 {
				s.half = 1
			}
		}
		s.waveLeft = s.half
		s.high = true
	}
	if s.pattern == nil {
		return silence
	}

	s.noteLeft--
	if s.half == 0 {
		return silence
	}
	v := byte(silence - Volume)
	if s.high {
		v = silence + Volume
	}
	s.waveLeft--
	if s.waveLeft == 0 {
		s.high = !s.high
		s.waveLeft = s.half
	}
	return v
}

// Render synthesizes a whole pattern offline.
func Render(p Pattern) []byte {
	s := NewSequencer()
	s.Play(p)
	buf := make([]byte, p.Samples())
	s.Read(buf)
	return buf
}
