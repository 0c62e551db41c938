// Package audio provides the alert cue played when a Pomodoro phase runs
// out. The cue is decoded once into a beep.Buffer and replayed from the
// start on every Play.
package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// ErrSpeakerUnavailable is returned when no audio output could be opened.
var ErrSpeakerUnavailable = errors.New("audio output unavailable")

const sampleRate beep.SampleRate = 44100

var bufferFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Options selects the alert source.
type Options struct {
	// File is an .ogg, .wav or .mp3 file. Empty means a synthesized tone.
	File         string
	Volume       float64
	ToneHz       float64
	ToneDuration time.Duration
}

// Output is the sink the player streams into.
type Output interface {
	Play(s ...beep.Streamer)
	Clear()
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Clear()                  { speaker.Clear() }

// Player plays the alert cue.
type Player struct {
	mu     sync.Mutex
	buffer *beep.Buffer
	volume float64
	output Output
}

// NewPlayer decodes the configured alert and opens the speaker. A speaker
// that fails to initialise is not fatal: the returned player reports
// ErrSpeakerUnavailable from Play and Rewind.
func NewPlayer(opts Options) (*Player, error) {
	buffer, err := loadBuffer(opts)
	if err != nil {
		return nil, err
	}

	var out Output = speakerOutput{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		out = nil
	}
	return newPlayer(buffer, opts.Volume, out), nil
}

func newPlayer(buffer *beep.Buffer, volume float64, out Output) *Player {
	return &Player{buffer: buffer, volume: volume, output: out}
}

// Play restarts the cue from its beginning.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.output == nil {
		return ErrSpeakerUnavailable
	}
	p.output.Clear()
	p.output.Play(&effects.Volume{
		Streamer: p.buffer.Streamer(0, p.buffer.Len()),
		Base:     2,
		Volume:   p.volume,
	})
	return nil
}

// Rewind silences the cue so the next Play starts from the beginning.
func (p *Player) Rewind() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.output == nil {
		return ErrSpeakerUnavailable
	}
	p.output.Clear()
	return nil
}

// Len returns the cue length in samples.
func (p *Player) Len() int {
	return p.buffer.Len()
}

func loadBuffer(opts Options) (*beep.Buffer, error) {
	if opts.File != "" {
		buffer, err := fileBuffer(opts.File)
		if err == nil {
			return buffer, nil
		}
		log.Printf("Failed to load alert %s, using tone: %v", opts.File, err)
	}
	return toneBuffer(opts.ToneHz, opts.ToneDuration)
}

func fileBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alert: %w", err)
	}

	streamer, format, err := decode(path, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode alert: %w", err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	buffer := beep.NewBuffer(bufferFormat)
	buffer.Append(s)
	return buffer, nil
}

func decode(path string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		return vorbis.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	case ".mp3":
		return mp3.Decode(rc)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported alert format %q", ext)
	}
}

func toneBuffer(hz float64, d time.Duration) (*beep.Buffer, error) {
	if hz <= 0 {
		hz = 880
	}
	if d <= 0 {
		d = 600 * time.Millisecond
	}
	tone, err := generators.SineTone(sampleRate, hz)
	if err != nil {
		return nil, fmt.Errorf("generate tone: %w", err)
	}
	buffer := beep.NewBuffer(bufferFormat)
	buffer.Append(beep.Take(sampleRate.N(d), tone))
	return buffer, nil
}
